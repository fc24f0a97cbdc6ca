package query

// FilterAll is the status filter sentinel meaning "no filter".
const FilterAll = "All"

// ListRequest is the caller's raw filter and sort selection.
// Status "" or FilterAll lists every commission; SortBy is resolved
// through commission.ParseSortKey.
type ListRequest struct {
	Status string
	SortBy string
}

// Summary holds the headline reporting counts.
type Summary struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	InProgress  int     `json:"in_progress"`
	NotStarted  int     `json:"not_started"`
	TotalIncome float64 `json:"total_income"`
}

// CategoryIncome is the income earned from completed commissions of one type.
type CategoryIncome struct {
	Category string  `json:"category"`
	Income   float64 `json:"income"`
}
