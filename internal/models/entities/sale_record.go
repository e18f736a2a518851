package entities

// SaleRecord ids are store-assigned. Any value set on ID before Insert is
// ignored.
type SaleRecord struct {
	ID           int64  `db:"id"`
	CustomerID   int64  `db:"customerId"`
	CarID        int64  `db:"carId"`
	DealershipID int64  `db:"dealershipId"`
	PurchaseDate string `db:"purchaseDate"`
}
