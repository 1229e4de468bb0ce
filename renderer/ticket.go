package renderer

import (
	"github.com/minercars/minercars"
)

// Tickets renders a user's issued tickets as a markdown table.
func Tickets(username string, tickets []minercars.Ticket) string {
	r := newRenderer()
	r.Printf("# Tickets for %s\n\n", username)
	if len(tickets) == 0 {
		r.Printf("No tickets on file.\n")
		return r.String()
	}

	r.Printf("| Car ID | Type | Model | Year | Color | Price | Ticket |\n")
	r.Printf("|---:|:---|:---|---:|:---|---:|:---|\n")
	for _, t := range tickets {
		r.Printf("| %s | %s | %s | %d | %s | %s | %s |\n",
			t.VehicleID, t.Category, t.Model, t.Year, t.Color, t.Price, t.UniqueID)
	}
	return r.String()
}

// Receipt renders the outcome of a purchase.
func Receipt(t minercars.Ticket, balance minercars.Money) string {
	r := newRenderer()
	r.Printf("# Purchase complete\n\n")
	r.Printf("- Vehicle: %s %s (%s, id %s)\n", t.Category, t.Model, t.Color, t.VehicleID)
	r.Printf("- Listed price: %s\n", t.Price)
	r.Printf("- Ticket: %s\n", t.UniqueID)
	r.Printf("- Remaining balance: %s\n", balance)
	return r.String()
}

// ReturnReceipt renders the outcome of a return.
func ReturnReceipt(vehicleID string, refund *minercars.Refund, balance minercars.Money) string {
	r := newRenderer()
	switch {
	case !refund.VehicleFound:
		r.Printf("Car %s not found; nothing to return.\n", vehicleID)
	case !refund.Voided:
		r.Printf("No ticket on file for car %s; nothing was refunded.\n", vehicleID)
	default:
		r.Printf("# Return complete\n\n")
		r.Printf("- Refunded: %s\n", refund.Amount)
		r.Printf("- New balance: %s\n", balance)
	}
	return r.String()
}
