package entities

// Customer is one row of the Customer table. DateOfBirth is stored as
// free-form text in YYYY-MM-DD form; the store does not validate it.
type Customer struct {
	ID          int64  `db:"id"`
	FirstName   string `db:"firstName"`
	LastName    string `db:"lastName"`
	Address     string `db:"address"`
	DateOfBirth string `db:"dateOfBirth"`
}
