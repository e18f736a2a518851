package db

const (
	// SchemaVersion is stamped into PRAGMA user_version on first open.
	// Every table here is at version 1; a bump would need real migration
	// code, which nothing requires yet.
	SchemaVersion = 1

	Schema = `
	CREATE TABLE IF NOT EXISTS Customer (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		firstName TEXT NOT NULL,
		lastName TEXT NOT NULL,
		address TEXT NOT NULL,
		dateOfBirth TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS airplanes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL,
		passengerCapacity INTEGER NOT NULL,
		maxSpeed INTEGER NOT NULL,
		"range" INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS flights (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		departure TEXT NOT NULL,
		destination TEXT NOT NULL,
		departureTime TEXT NOT NULL,
		arrivalTime TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS Reservation (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		customerId INTEGER NOT NULL,
		flightId INTEGER NOT NULL,
		flightDate TEXT NOT NULL,
		reservationName TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS SaleRecord (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		customerId INTEGER NOT NULL,
		carId INTEGER NOT NULL,
		dealershipId INTEGER NOT NULL,
		purchaseDate TEXT NOT NULL
	);
	`
)
