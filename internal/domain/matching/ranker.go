package matching

import (
	"fmt"
	"sort"
)

const (
	ReasonPerfect = "Perfect skill match"
	ReasonStrong  = "Strong skill match"
	ReasonPartial = "Partial skill match"

	localityReasonFormat = "In your parish: %s"
)

// Profile is the matching view of a requester or candidate.
type Profile struct {
	ID     string
	Parish string
	Skills []string
}

type Candidate interface {
	MatchProfile() Profile
}

// Direction says which side of a pair carries the required skills.
type Direction int

const (
	// CandidateRequires scores a requester against a candidate's requirements
	// (a citizen looking at jobs).
	CandidateRequires Direction = iota
	// RequesterRequires scores candidates against the requester's
	// requirements (a job looking at citizens).
	RequesterRequires
)

type Options struct {
	Direction Direction
	MinScore  int
	Limit     int
}

type Match[C Candidate] struct {
	Candidate C
	Score     int
	Reasons   []string
}

// Rank scores the candidates that share the requester's parish and returns
// them best first. Equal scores keep their input order.
func Rank[C Candidate](requester Profile, candidates []C, opts Options) []Match[C] {
	out := make([]Match[C], 0, len(candidates))
	for _, c := range candidates {
		p := c.MatchProfile()
		if p.Parish != requester.Parish {
			continue
		}

		var score int
		switch opts.Direction {
		case RequesterRequires:
			score = Score(p.Skills, requester.Skills)
		default:
			score = Score(requester.Skills, p.Skills)
		}
		if score < opts.MinScore {
			continue
		}

		out = append(out, Match[C]{
			Candidate: c,
			Score:     score,
			Reasons:   Reasons(score, p.Parish),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return Top(out, opts.Limit)
}

// Reasons returns the human-readable explanation for a score.
func Reasons(score int, parish string) []string {
	reasons := make([]string, 0, 2)
	switch {
	case score >= 100:
		reasons = append(reasons, ReasonPerfect)
	case score >= 75:
		reasons = append(reasons, ReasonStrong)
	case score >= 50:
		reasons = append(reasons, ReasonPartial)
	}
	return append(reasons, fmt.Sprintf(localityReasonFormat, parish))
}

// Top keeps the first n matches. n <= 0 keeps everything.
func Top[C Candidate](ranked []Match[C], n int) []Match[C] {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
