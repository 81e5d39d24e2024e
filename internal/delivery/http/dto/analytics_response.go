package dto

import "parish-match/internal/domain/analytics"

type ParishStatResponse struct {
	Jobs     int `json:"jobs"`
	Citizens int `json:"citizens"`
}

type DashboardResponse struct {
	TotalJobs         int                           `json:"total_jobs"`
	TotalApplications int                           `json:"total_applications"`
	CitizensServed    int                           `json:"citizens_served"`
	GigsCompleted     int                           `json:"gigs_completed"`
	SkillsDemand      map[string]int                `json:"skills_demand"`
	ParishStats       map[string]ParishStatResponse `json:"parish_stats"`
}

type UserStatsResponse struct {
	TotalApplications int `json:"total_applications"`
	Submitted         int `json:"submitted"`
	Reviewing         int `json:"reviewing"`
	Interview         int `json:"interview"`
	Accepted          int `json:"accepted"`
	Rejected          int `json:"rejected"`
}

func NewDashboardResponse(d analytics.Dashboard) DashboardResponse {
	stats := make(map[string]ParishStatResponse, len(d.ParishStats))
	for p, st := range d.ParishStats {
		stats[p] = ParishStatResponse{Jobs: st.Jobs, Citizens: st.Citizens}
	}
	demand := d.SkillsDemand
	if demand == nil {
		demand = map[string]int{}
	}
	return DashboardResponse{
		TotalJobs:         d.TotalJobs,
		TotalApplications: d.TotalApplications,
		CitizensServed:    d.CitizensServed,
		GigsCompleted:     d.GigsCompleted,
		SkillsDemand:      demand,
		ParishStats:       stats,
	}
}

func NewUserStatsResponse(st analytics.ApplicationStats) UserStatsResponse {
	return UserStatsResponse{
		TotalApplications: st.Total,
		Submitted:         st.Submitted,
		Reviewing:         st.Reviewing,
		Interview:         st.Interview,
		Accepted:          st.Accepted,
		Rejected:          st.Rejected,
	}
}
