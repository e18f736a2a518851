package entities

// Reservation references customers and flights by plain integer id. No
// referential integrity is enforced; dangling ids are allowed.
type Reservation struct {
	ID              int64  `db:"id"`
	CustomerID      int64  `db:"customerId"`
	FlightID        int64  `db:"flightId"`
	FlightDate      string `db:"flightDate"`
	ReservationName string `db:"reservationName"`
}
