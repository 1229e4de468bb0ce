package minercars

import "strings"

// Category is the vehicle taxonomy used across the catalog and the ticket
// ledger. Unknown values are carried through as-is rather than rejected.
type Category string

const (
	Sedan     Category = "Sedan"
	SUV       Category = "SUV"
	Hatchback Category = "Hatchback"
	Pickup    Category = "Pickup"
)

// ParseCategory canonicalizes the well-known category names, matching
// case-insensitively. Anything else is kept verbatim.
func ParseCategory(s string) Category {
	for _, c := range []Category{Sedan, SUV, Hatchback, Pickup} {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return Category(s)
}

func (c Category) String() string { return string(c) }

// Matches reports whether the category matches an identifier, ignoring case.
func (c Category) Matches(s string) bool { return strings.EqualFold(string(c), s) }
