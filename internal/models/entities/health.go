package entities

type TableStatus struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
}

// StoreHealth is the result of a facade health check: whether the
// underlying file is reachable and how many rows each table holds.
type StoreHealth struct {
	Status  string        `json:"status"`
	Details string        `json:"details,omitempty"`
	Tables  []TableStatus `json:"tables,omitempty"`
}

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)
