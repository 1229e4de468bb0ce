package minercars

// Vehicle is a single catalog entry. The numeric ID is assigned by the
// catalog; the VIN is the business key used for merging and removal.
type Vehicle struct {
	ID           int
	Category     Category
	Model        string
	Condition    string // "New" or "Used"
	Color        string
	Capacity     int
	Price        Money // listed price, before tax and discount
	Transmission string
	VIN          string
	FuelType     string
	Year         int
	Available    int // units on the lot
	Turbo        bool
}
