package minercars

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Sales tax and membership discount applied at purchase time. Tax is applied
// first, then the discount.
var (
	taxRate        = decimal.RequireFromString("1.0625")
	memberDiscount = decimal.RequireFromString("0.9")
)

// Engine failure modes. All are "reported" conditions, not crashes: the
// caller is expected to show them and carry on.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoAvailability    = errors.New("no cars available")
)

// Engine orchestrates the catalog, the registry and the ticket ledger to
// perform purchases and returns as single logical operations, and answers
// revenue queries over the ledger.
//
// A single mutex spans each compound operation, so concurrent callers within
// one process cannot interleave catalog, registry and ledger steps. Nothing
// guards against other processes touching the backing files.
type Engine struct {
	mu       sync.Mutex
	catalog  *Catalog
	registry *Registry
	ledger   *TicketLedger
}

// NewEngine builds an engine over the three collections.
func NewEngine(catalog *Catalog, registry *Registry, ledger *TicketLedger) *Engine {
	return &Engine{catalog: catalog, registry: registry, ledger: ledger}
}

func (e *Engine) Catalog() *Catalog     { return e.catalog }
func (e *Engine) Registry() *Registry   { return e.registry }
func (e *Engine) Ledger() *TicketLedger { return e.ledger }

// Purchase buys one unit of the vehicle for the account and returns the
// issued ticket.
//
// Solvency is checked against the LISTED price, but the amount debited is
// the tax-inclusive (and, for members, discounted) charge. A balance between
// the two therefore goes negative; that asymmetry is inherited behavior,
// kept on purpose.
//
// The ticket append is durable before Purchase returns. The balance and
// availability mutations are in-memory only: persisting the registry and
// the catalog is the caller's responsibility.
func (e *Engine) Purchase(username, vehicleID string) (*Ticket, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account := e.registry.FindByUsername(username)
	if account == nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrAccountNotFound)
	}

	vehicle, err := e.resolveVehicle(vehicleID)
	if err != nil {
		return nil, err
	}

	listed := vehicle.Price
	if account.Balance.LessThan(listed) {
		return nil, fmt.Errorf("balance %s below price %s: %w", account.Balance, listed, ErrInsufficientFunds)
	}
	if vehicle.Available <= 0 {
		return nil, fmt.Errorf("vehicle %d: %w", vehicle.ID, ErrNoAvailability)
	}

	charged := listed.MulRate(taxRate)
	if account.Member {
		charged = charged.MulRate(memberDiscount)
	}

	account.Balance = account.Balance.Sub(charged)
	account.CarsPurchased++

	ticket := NewTicket(vehicleID, username, vehicle.Category, vehicle.Model,
		time.Now().Year(), vehicle.Color, listed)
	if err := e.ledger.Append(ticket); err != nil {
		return nil, err
	}
	vehicle.Available--

	return &ticket, nil
}

// Refund describes the outcome of a Return.
type Refund struct {
	VehicleFound bool
	Voided       bool  // a ticket was found and dropped from the ledger
	Amount       Money // credited back; zero when nothing was voided
}

// Return gives one unit of the vehicle back. The refund is the listed price
// plus tax; the membership discount is never applied to refunds, so a member
// is refunded more than they were charged. Inherited behavior, kept.
//
// A vehicle id that resolves to nothing is a successful no-op, as is a
// (username, vehicle) pair with no ticket to void: in both cases Return
// reports what happened through Refund rather than failing. Registry and
// catalog are persisted before returning whenever the vehicle was resolved,
// voided or not.
func (e *Engine) Return(username, vehicleID string) (*Refund, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account := e.registry.FindByUsername(username)
	if account == nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrAccountNotFound)
	}

	vehicle, err := e.resolveVehicle(vehicleID)
	if err != nil {
		return &Refund{VehicleFound: false}, nil
	}

	refund := &Refund{VehicleFound: true}
	voided, err := e.ledger.Void(strconv.Itoa(vehicle.ID), username)
	if err != nil {
		return refund, err
	}
	if voided {
		refund.Voided = true
		refund.Amount = vehicle.Price.MulRate(taxRate)

		account.Balance = account.Balance.Add(refund.Amount)
		if account.CarsPurchased > 0 {
			account.CarsPurchased--
		}
		vehicle.Available++
	}

	if err := e.registry.Save(); err != nil {
		return refund, err
	}
	if err := e.catalog.Save(); err != nil {
		return refund, err
	}
	return refund, nil
}

// resolveVehicle parses the string id and looks it up in the catalog. A
// malformed id is reported as not-found, never as a distinct failure.
func (e *Engine) resolveVehicle(vehicleID string) (*Vehicle, error) {
	id, err := strconv.Atoi(strings.TrimSpace(vehicleID))
	if err != nil {
		return nil, fmt.Errorf("vehicle %q: %w", vehicleID, ErrVehicleNotFound)
	}
	vehicle := e.catalog.FindByID(id)
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %d: %w", id, ErrVehicleNotFound)
	}
	return vehicle, nil
}

// RevenueReport is the structured result of a revenue query. Matched
// distinguishes "no ledger row matched" from a total that happens to be
// zero.
type RevenueReport struct {
	Identifier string
	By         string // "category" or "id"; empty when nothing matched
	Total      Money
	Matched    bool
}

// Revenue resolves an identifier against the ledger: first as a category
// (case-insensitive) and, when that yields no positive total, as a vehicle
// id (exact string match).
func (e *Engine) Revenue(identifier string) RevenueReport {
	report := RevenueReport{Identifier: identifier}

	if total, matched := e.ledger.RevenueByCategory(identifier); matched && total.IsPositive() {
		report.By = "category"
		report.Total = total
		report.Matched = true
		return report
	}
	if total, matched := e.ledger.RevenueByVehicleID(identifier); matched {
		report.By = "id"
		report.Total = total
		report.Matched = true
		return report
	}
	return report
}
