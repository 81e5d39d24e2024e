package matching

// Score returns the share of targetSkills present in requesterSkills as an
// integer percentage in [0,100]. Both inputs are treated as sets and labels
// are compared exactly. An empty target is a vacuous full match.
func Score(requesterSkills, targetSkills []string) int {
	target := toSet(targetSkills)
	if len(target) == 0 {
		return 100
	}

	held := toSet(requesterSkills)
	matched := 0
	for s := range target {
		if _, ok := held[s]; ok {
			matched++
		}
	}

	return percentHalfUp(matched, len(target))
}

// percentHalfUp rounds 100*n/d half up without going through float64.
func percentHalfUp(n, d int) int {
	if d <= 0 {
		return 100
	}
	return (200*n + d) / (2 * d)
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}
