package analytics

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type ParishStat struct {
	Jobs     int `json:"jobs"`
	Citizens int `json:"citizens"`
}

// Snapshot is one periodic analytics record.
type Snapshot struct {
	ID                    uuid.UUID
	Date                  time.Time
	ActiveJobs            int
	TotalApplications     int
	CitizensServed        int
	MicroGigsCompleted    int
	TotalPaymentProcessed float64
	SkillsDemand          map[string]int
	ParishStats           map[string]ParishStat
}

type Dashboard struct {
	TotalJobs         int
	TotalApplications int
	CitizensServed    int
	GigsCompleted     int
	SkillsDemand      map[string]int
	ParishStats       map[string]ParishStat
}

// Aggregate folds snapshots into a dashboard. Job and citizen figures are
// point-in-time gauges and are averaged; applications and gigs are summed.
func Aggregate(snapshots []Snapshot) Dashboard {
	d := Dashboard{
		SkillsDemand: map[string]int{},
		ParishStats:  map[string]ParishStat{},
	}

	var jobs, citizens int
	for _, s := range snapshots {
		jobs += s.ActiveJobs
		citizens += s.CitizensServed
		d.TotalApplications += s.TotalApplications
		d.GigsCompleted += s.MicroGigsCompleted

		for skill, n := range s.SkillsDemand {
			d.SkillsDemand[skill] += n
		}
		for p, st := range s.ParishStats {
			cur := d.ParishStats[p]
			cur.Jobs += st.Jobs
			cur.Citizens += st.Citizens
			d.ParishStats[p] = cur
		}
	}

	n := len(snapshots)
	if n < 1 {
		n = 1
	}
	d.TotalJobs = int(math.Round(float64(jobs) / float64(n)))
	d.CitizensServed = int(math.Round(float64(citizens) / float64(n)))

	return d
}
