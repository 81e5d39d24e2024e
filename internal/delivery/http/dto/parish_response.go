package dto

import "parish-match/internal/usecase"

type ParishResponse struct {
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	ActiveJobs   int     `json:"active_jobs"`
	DensityColor string  `json:"density_color"`
}

func NewParishResponses(items []usecase.ParishSummary) []ParishResponse {
	out := make([]ParishResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ParishResponse{
			Name:         p.Name,
			Lat:          p.Coordinates.Lat,
			Lng:          p.Coordinates.Lng,
			ActiveJobs:   p.ActiveJobs,
			DensityColor: p.DensityColor,
		})
	}
	return out
}
