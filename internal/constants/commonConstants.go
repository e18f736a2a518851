package constants

type (
	StoreName string
	TableName string
)

// Default database file names, one per entity family. Desktop
// deployments resolve these under a local database/ subdirectory.
const (
	StoreCustomers StoreName = "customers_database.db"
	StoreAirplanes StoreName = "airplanes.db"
	StoreFlights   StoreName = "flights.db"
	StoreSales     StoreName = "sales_database.db"

	TableCustomers    TableName = "Customer"
	TableAirplanes    TableName = "airplanes"
	TableFlights      TableName = "flights"
	TableReservations TableName = "Reservation"
	TableSaleRecords  TableName = "SaleRecord"

	// Subdirectory DefaultPath resolves store files into.
	DatabaseDir = "database"
)
