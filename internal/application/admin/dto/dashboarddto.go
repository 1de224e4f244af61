package dto

// DashboardDTO holds the admin dashboard counters.
type DashboardDTO struct {
	Payers     int64 `json:"payers"`
	Naic       int64 `json:"naic"`
	Pending    int64 `json:"pending"`
	Unassigned int64 `json:"unassigned"`
}
