package constants

// Every statement the repositories issue lives here. All filters are
// AND-combined except GetCustomersByName, which is the one OR case the
// callers need (first OR last name).

const (
	InsertCustomer = `
	INSERT INTO Customer (firstName, lastName, address, dateOfBirth)
	VALUES (?, ?, ?, ?)
	`

	UpdateCustomer = `
	UPDATE Customer
	SET firstName = ?, lastName = ?, address = ?, dateOfBirth = ?
	WHERE id = ?
	`

	DeleteCustomerByID = `
	DELETE FROM Customer WHERE id = ?
	`

	GetCustomerByID = `
	SELECT * FROM Customer WHERE id = ?
	`

	GetAllCustomers = `
	SELECT * FROM Customer ORDER BY lastName ASC, firstName ASC
	`

	CountCustomers = `
	SELECT COUNT(*) FROM Customer
	`

	CountDuplicateCustomers = `
	SELECT COUNT(*) FROM Customer
	WHERE firstName = ? AND lastName = ? AND address = ?
	`

	GetCustomersByName = `
	SELECT * FROM Customer
	WHERE firstName LIKE ? OR lastName LIKE ?
	ORDER BY lastName ASC, firstName ASC
	`

	// dateOfBirth is YYYY-MM-DD text, so the month is chars 6-7 and the
	// day chars 9-10.
	GetCustomersByBirthMonth = `
	SELECT * FROM Customer
	WHERE substr(dateOfBirth, 6, 2) = ?
	ORDER BY substr(dateOfBirth, 9, 2) ASC
	`
)

const (
	InsertAirplane = `
	INSERT INTO airplanes (type, passengerCapacity, maxSpeed, "range")
	VALUES (?, ?, ?, ?)
	`

	UpdateAirplane = `
	UPDATE airplanes
	SET type = ?, passengerCapacity = ?, maxSpeed = ?, "range" = ?
	WHERE id = ?
	`

	DeleteAirplaneByID = `
	DELETE FROM airplanes WHERE id = ?
	`

	GetAirplaneByID = `
	SELECT * FROM airplanes WHERE id = ?
	`

	GetAllAirplanes = `
	SELECT * FROM airplanes ORDER BY id DESC
	`

	CountAirplanes = `
	SELECT COUNT(*) FROM airplanes
	`

	GetFastestAirplane = `
	SELECT * FROM airplanes ORDER BY maxSpeed DESC LIMIT 1
	`

	GetAirplanesByMinCapacity = `
	SELECT * FROM airplanes WHERE passengerCapacity >= ? ORDER BY id DESC
	`

	GetAirplanesByMinRange = `
	SELECT * FROM airplanes WHERE "range" >= ? ORDER BY id DESC
	`

	GetAirplanesByType = `
	SELECT * FROM airplanes WHERE type LIKE ? ORDER BY id DESC
	`
)

const (
	InsertFlight = `
	INSERT INTO flights (departure, destination, departureTime, arrivalTime)
	VALUES (?, ?, ?, ?)
	`

	UpdateFlight = `
	UPDATE flights
	SET departure = ?, destination = ?, departureTime = ?, arrivalTime = ?
	WHERE id = ?
	`

	DeleteFlightByID = `
	DELETE FROM flights WHERE id = ?
	`

	GetFlightByID = `
	SELECT * FROM flights WHERE id = ?
	`

	GetAllFlights = `
	SELECT * FROM flights ORDER BY id DESC
	`

	CountFlights = `
	SELECT COUNT(*) FROM flights
	`

	GetFlightsByDeparture = `
	SELECT * FROM flights WHERE departure = ? ORDER BY id DESC
	`

	GetFlightsByDestination = `
	SELECT * FROM flights WHERE destination = ? ORDER BY id DESC
	`

	GetFlightsByRoute = `
	SELECT * FROM flights WHERE departure = ? AND destination = ? ORDER BY id DESC
	`
)

const (
	InsertReservation = `
	INSERT INTO Reservation (customerId, flightId, flightDate, reservationName)
	VALUES (?, ?, ?, ?)
	`

	UpdateReservation = `
	UPDATE Reservation
	SET customerId = ?, flightId = ?, flightDate = ?, reservationName = ?
	WHERE id = ?
	`

	DeleteReservationByID = `
	DELETE FROM Reservation WHERE id = ?
	`

	GetReservationByID = `
	SELECT * FROM Reservation WHERE id = ?
	`

	GetAllReservations = `
	SELECT * FROM Reservation ORDER BY id DESC
	`

	CountReservations = `
	SELECT COUNT(*) FROM Reservation
	`

	GetReservationsByCustomer = `
	SELECT * FROM Reservation WHERE customerId = ? ORDER BY id DESC
	`

	GetReservationsByFlight = `
	SELECT * FROM Reservation WHERE flightId = ? ORDER BY id DESC
	`

	GetReservationsByDate = `
	SELECT * FROM Reservation WHERE flightDate = ? ORDER BY id DESC
	`

	GetReservationsByDatePattern = `
	SELECT * FROM Reservation WHERE flightDate LIKE ? ORDER BY id DESC
	`
)

const (
	InsertSaleRecord = `
	INSERT INTO SaleRecord (customerId, carId, dealershipId, purchaseDate)
	VALUES (?, ?, ?, ?)
	`

	UpdateSaleRecord = `
	UPDATE SaleRecord
	SET customerId = ?, carId = ?, dealershipId = ?, purchaseDate = ?
	WHERE id = ?
	`

	DeleteSaleRecordByID = `
	DELETE FROM SaleRecord WHERE id = ?
	`

	GetSaleRecordByID = `
	SELECT * FROM SaleRecord WHERE id = ?
	`

	GetAllSaleRecords = `
	SELECT * FROM SaleRecord ORDER BY id DESC
	`

	CountSaleRecords = `
	SELECT COUNT(*) FROM SaleRecord
	`

	GetSalesByDateRange = `
	SELECT * FROM SaleRecord
	WHERE purchaseDate >= ? AND purchaseDate <= ?
	ORDER BY purchaseDate DESC
	`

	GetSalesByCustomer = `
	SELECT * FROM SaleRecord WHERE customerId = ? ORDER BY id DESC
	`

	GetSalesByDealership = `
	SELECT * FROM SaleRecord WHERE dealershipId = ? ORDER BY id DESC
	`
)
