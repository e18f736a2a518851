package entities

// Flight times are free-form strings, not parsed time values; the store
// keeps whatever the caller typed.
type Flight struct {
	ID            int64  `db:"id"`
	Departure     string `db:"departure"`
	Destination   string `db:"destination"`
	DepartureTime string `db:"departureTime"`
	ArrivalTime   string `db:"arrivalTime"`
}
