package minercars

import "github.com/google/uuid"

// Ticket is one row of the issued-tickets ledger. It records a purchase
// event and is immutable once appended; a return voids it.
//
// The price on a ticket is the vehicle's listed price. Tax and membership
// discount are applied to the charge but never recorded here.
type Ticket struct {
	VehicleID string // the catalog id, in the string form the buyer supplied
	Username  string
	Category  Category
	Model     string
	Year      int // calendar year of issuance
	Color     string
	Price     Money  // listed price
	UniqueID  string // generated, canonical UUID string
}

// NewTicket builds a ticket for a purchase and assigns it a fresh unique id.
func NewTicket(vehicleID, username string, category Category, model string, year int, color string, price Money) Ticket {
	return Ticket{
		VehicleID: vehicleID,
		Username:  username,
		Category:  category,
		Model:     model,
		Year:      year,
		Color:     color,
		Price:     price,
		UniqueID:  uuid.NewString(),
	}
}
