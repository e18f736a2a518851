// storecheck opens the application's database files and reports whether
// each one is reachable and how many rows its tables hold. The base
// directory defaults to the working directory; pass another one as the
// single argument.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"aviation-management/recordstore/internal/constants"
	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/models/entities"
	"aviation-management/recordstore/internal/store"
)

func main() {
	base := "."
	if len(os.Args) > 1 {
		base = os.Args[1]
	}

	ctx := context.Background()

	customers, err := store.NewCustomerStore(mustPath(base, constants.StoreCustomers))
	if err != nil {
		log.Fatalf("open customer store: %v", err)
	}
	defer customers.Close()
	report(string(constants.StoreCustomers), customers.Health(ctx))

	airplanes, err := store.NewAirplaneStore(mustPath(base, constants.StoreAirplanes))
	if err != nil {
		log.Fatalf("open airplane store: %v", err)
	}
	defer airplanes.Close()
	report(string(constants.StoreAirplanes), airplanes.Health(ctx))

	flights, err := store.NewFlightStore(mustPath(base, constants.StoreFlights))
	if err != nil {
		log.Fatalf("open flight store: %v", err)
	}
	defer flights.Close()
	report(string(constants.StoreFlights), flights.Health(ctx))

	bookings, err := store.NewBookingStore(mustPath(base, constants.StoreSales))
	if err != nil {
		log.Fatalf("open booking store: %v", err)
	}
	defer bookings.Close()
	report(string(constants.StoreSales), bookings.Health(ctx))
}

func mustPath(base string, name constants.StoreName) string {
	path, err := db.DefaultPath(base, name)
	if err != nil {
		log.Fatalf("resolve %s: %v", name, err)
	}
	return path
}

func report(name string, h entities.StoreHealth) {
	fmt.Printf("%s: %s", name, h.Status)
	if h.Details != "" {
		fmt.Printf(" (%s)", h.Details)
	}
	fmt.Println()
	for _, t := range h.Tables {
		fmt.Printf("  %s: %d rows\n", t.Table, t.Rows)
	}
}
