package minercars

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// seedStore writes a one-vehicle, one-account fixture and opens it.
// The vehicle is catalog id 7, listed at 20000 with 3 units; the account
// holds 25000.
func seedStore(t *testing.T, member bool) *Store {
	t.Helper()
	dir := t.TempDir()

	vehicles := "ID,Car Type,Model,Condition,Color,Capacity,Price,Transmission,VIN,Fuel Type,Year,Cars Available,Has Turbo\n" +
		"7,Sedan,Focus,New,Blue,5,20000.0,Automatic,VIN007,Gasoline,2022,3,false\n"
	if err := os.WriteFile(filepath.Join(dir, VehiclesFile), []byte(vehicles), 0644); err != nil {
		t.Fatal(err)
	}

	membership := "false"
	if member {
		membership = "true"
	}
	accounts := "ID,First Name,Last Name,Money Available,Cars Purchased,MinerCars Membership,Username,Password\n" +
		"1,Jane,Doe,25000.0,0," + membership + ",jdoe,secret\n"
	if err := os.WriteFile(filepath.Join(dir, AccountsFile), []byte(accounts), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return store
}

func countTickets(t *testing.T, l *TicketLedger) int {
	t.Helper()
	n := 0
	for range l.Tickets() {
		n++
	}
	return n
}

func TestPurchase(t *testing.T) {
	store := seedStore(t, false)
	engine := store.Engine()

	ticket, err := engine.Purchase("jdoe", "7")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	// charged = 20000 * 1.0625 = 21250
	account := store.Registry.FindByUsername("jdoe")
	if want := M(3750); !account.Balance.Equal(want) {
		t.Errorf("balance = %s, want %s", account.Balance, want)
	}
	if account.CarsPurchased != 1 {
		t.Errorf("cars purchased = %d, want 1", account.CarsPurchased)
	}
	if got := store.Catalog.FindByID(7).Available; got != 2 {
		t.Errorf("availability = %d, want 2", got)
	}

	// The ticket carries the listed price, not the charged price.
	if !ticket.Price.Equal(M(20000)) {
		t.Errorf("ticket price = %s, want listed 20000", ticket.Price)
	}
	if ticket.VehicleID != "7" || !strings.EqualFold(ticket.Username, "jdoe") {
		t.Errorf("ticket key = (%s, %s)", ticket.VehicleID, ticket.Username)
	}
	if ticket.Year != time.Now().Year() {
		t.Errorf("ticket year = %d", ticket.Year)
	}
	if ticket.UniqueID == "" {
		t.Error("ticket has no unique id")
	}

	// The append is durable before Purchase returns.
	data, err := os.ReadFile(filepath.Join(store.dir, TicketsFile))
	if err != nil {
		t.Fatalf("read ledger: %v", err)
	}
	if !strings.Contains(string(data), "7,jdoe,Sedan,Focus") {
		t.Errorf("ledger row missing, got %q", data)
	}
	if !strings.Contains(string(data), "20000.0") {
		t.Errorf("ledger row should record listed price 20000.0, got %q", data)
	}
}

func TestPurchaseMemberDiscount(t *testing.T) {
	store := seedStore(t, true)

	if _, err := store.Engine().Purchase("jdoe", "7"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	// charged = 20000 * 1.0625 * 0.9 = 19125
	account := store.Registry.FindByUsername("jdoe")
	if want := M(5875); !account.Balance.Equal(want) {
		t.Errorf("balance = %s, want %s", account.Balance, want)
	}
}

func TestPurchaseFailures(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		vehicleID string
		wantErr   error
	}{
		{"unknown account", "nobody", "7", ErrAccountNotFound},
		{"unknown vehicle", "jdoe", "99", ErrVehicleNotFound},
		{"malformed id", "jdoe", "seven", ErrVehicleNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := seedStore(t, false)
			_, err := store.Engine().Purchase(tc.username, tc.vehicleID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Purchase error = %v, want %v", err, tc.wantErr)
			}

			// Failed purchases leave all state unchanged.
			if got := store.Catalog.FindByID(7).Available; got != 3 {
				t.Errorf("availability = %d, want 3", got)
			}
			if got := store.Registry.FindByUsername("jdoe").Balance; !got.Equal(M(25000)) {
				t.Errorf("balance = %s, want 25000", got)
			}
			if n := countTickets(t, store.Ledger); n != 0 {
				t.Errorf("ledger has %d tickets, want 0", n)
			}
		})
	}
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	store := seedStore(t, false)
	account := store.Registry.FindByUsername("jdoe")
	account.Balance = M(19999.99)

	_, err := store.Engine().Purchase("jdoe", "7")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Purchase error = %v, want ErrInsufficientFunds", err)
	}
	if !account.Balance.Equal(M(19999.99)) {
		t.Errorf("balance changed to %s", account.Balance)
	}
}

func TestPurchaseNoAvailability(t *testing.T) {
	store := seedStore(t, false)
	store.Catalog.FindByID(7).Available = 0

	_, err := store.Engine().Purchase("jdoe", "7")
	if !errors.Is(err, ErrNoAvailability) {
		t.Fatalf("Purchase error = %v, want ErrNoAvailability", err)
	}
	if n := countTickets(t, store.Ledger); n != 0 {
		t.Errorf("ledger has %d tickets, want 0", n)
	}
}

func TestReturnAfterPurchase(t *testing.T) {
	store := seedStore(t, false)
	engine := store.Engine()

	if _, err := engine.Purchase("jdoe", "7"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	refund, err := engine.Return("jdoe", "7")
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	if !refund.Voided || !refund.VehicleFound {
		t.Fatalf("refund = %+v, want voided", refund)
	}
	if want := M(21250); !refund.Amount.Equal(want) {
		t.Errorf("refund = %s, want %s", refund.Amount, want)
	}

	account := store.Registry.FindByUsername("jdoe")
	if !account.Balance.Equal(M(25000)) {
		t.Errorf("balance = %s, want 25000", account.Balance)
	}
	if account.CarsPurchased != 0 {
		t.Errorf("cars purchased = %d, want 0", account.CarsPurchased)
	}
	if got := store.Catalog.FindByID(7).Available; got != 3 {
		t.Errorf("availability = %d, want 3", got)
	}
	if n := countTickets(t, store.Ledger); n != 0 {
		t.Errorf("ledger has %d tickets, want 0", n)
	}

	// Return persists both collections.
	data, err := os.ReadFile(filepath.Join(store.dir, AccountsFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "25000.0") {
		t.Errorf("accounts file not persisted, got %q", data)
	}
}

func TestReturnTwiceVoidsOnce(t *testing.T) {
	store := seedStore(t, false)
	engine := store.Engine()

	if _, err := engine.Purchase("jdoe", "7"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if _, err := engine.Return("jdoe", "7"); err != nil {
		t.Fatalf("first Return: %v", err)
	}

	refund, err := engine.Return("jdoe", "7")
	if err != nil {
		t.Fatalf("second Return: %v", err)
	}
	if refund.Voided {
		t.Error("second return voided a ticket again")
	}

	// No double credit, no double restock.
	if got := store.Registry.FindByUsername("jdoe").Balance; !got.Equal(M(25000)) {
		t.Errorf("balance = %s, want 25000", got)
	}
	if got := store.Catalog.FindByID(7).Available; got != 3 {
		t.Errorf("availability = %d, want 3", got)
	}
}

func TestReturnMemberRefundIsNotDiscounted(t *testing.T) {
	store := seedStore(t, true)
	engine := store.Engine()

	if _, err := engine.Purchase("jdoe", "7"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	refund, err := engine.Return("jdoe", "7")
	if err != nil {
		t.Fatalf("Return: %v", err)
	}

	// Charged 19125 but refunded the full 21250.
	if want := M(21250); !refund.Amount.Equal(want) {
		t.Errorf("refund = %s, want %s", refund.Amount, want)
	}
	if want := M(27125); !store.Registry.FindByUsername("jdoe").Balance.Equal(want) {
		t.Errorf("balance = %s, want %s", store.Registry.FindByUsername("jdoe").Balance, want)
	}
}

func TestReturnUnknownVehicleIsSuccessfulNoop(t *testing.T) {
	store := seedStore(t, false)

	refund, err := store.Engine().Return("jdoe", "99")
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	if refund.VehicleFound || refund.Voided {
		t.Errorf("refund = %+v, want plain no-op", refund)
	}
	if got := store.Registry.FindByUsername("jdoe").Balance; !got.Equal(M(25000)) {
		t.Errorf("balance = %s, want 25000", got)
	}
}

func TestReturnUnknownAccount(t *testing.T) {
	store := seedStore(t, false)
	if _, err := store.Engine().Return("nobody", "7"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("Return error = %v, want ErrAccountNotFound", err)
	}
}

func TestRevenue(t *testing.T) {
	store := seedStore(t, false)
	engine := store.Engine()

	// Two purchases of the same vehicle.
	store.Registry.FindByUsername("jdoe").Balance = M(100000)
	if _, err := engine.Purchase("jdoe", "7"); err != nil {
		t.Fatal(err)
	}
	if _, err := engine.Purchase("jdoe", "7"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		identifier string
		wantBy     string
		wantTotal  Money
	}{
		{"Sedan", "category", M(40000)},
		{"sedan", "category", M(40000)}, // category matching ignores case
		{"7", "id", M(40000)},
	}
	for _, tc := range tests {
		report := engine.Revenue(tc.identifier)
		if !report.Matched || report.By != tc.wantBy || !report.Total.Equal(tc.wantTotal) {
			t.Errorf("Revenue(%q) = %+v, want %s %s", tc.identifier, report, tc.wantBy, tc.wantTotal)
		}
	}

	if report := engine.Revenue("Spaceship"); report.Matched {
		t.Errorf("Revenue(Spaceship) = %+v, want no match", report)
	}
}
