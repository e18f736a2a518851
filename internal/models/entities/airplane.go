package entities

type Airplane struct {
	ID                int64  `db:"id"`
	Type              string `db:"type"`
	PassengerCapacity int    `db:"passengerCapacity"`
	MaxSpeed          int    `db:"maxSpeed"`
	Range             int    `db:"range"`
}
