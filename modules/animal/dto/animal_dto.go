package dto

// FilterAnimalsRequest mirrors entity.FilterOptions on the wire. Age bounds
// are in whole years; zero max means unbounded.
type FilterAnimalsRequest struct {
	Name         string   `json:"name"`
	MinAgeYears  int      `json:"min_age_years"`
	MaxAgeYears  int      `json:"max_age_years"`
	HealthStatus []string `json:"health_status"`
	Gender       string   `json:"gender"`
}
