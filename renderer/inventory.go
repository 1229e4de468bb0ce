package renderer

import (
	"github.com/minercars/minercars"
)

// Inventory renders the vehicle list as a markdown table.
func Inventory(vehicles []minercars.Vehicle) string {
	r := newRenderer()
	r.Printf("# Inventory\n\n")
	if len(vehicles) == 0 {
		r.Printf("The lot is empty.\n")
		return r.String()
	}

	r.Printf("| ID | Type | Model | Condition | Color | Year | Price | Available | Turbo |\n")
	r.Printf("|---:|:---|:---|:---|:---|---:|---:|---:|:---|\n")
	for _, v := range vehicles {
		turbo := "no"
		if v.Turbo {
			turbo = "yes"
		}
		r.Printf("| %d | %s | %s | %s | %s | %d | %s | %d | %s |\n",
			v.ID, v.Category, v.Model, v.Condition, v.Color, v.Year, v.Price, v.Available, turbo)
	}
	return r.String()
}

// Vehicle renders a single vehicle's full details.
func Vehicle(v minercars.Vehicle) string {
	r := newRenderer()
	r.Printf("## %s %s (id %d)\n\n", v.Category, v.Model, v.ID)
	r.Printf("- Condition: %s\n", v.Condition)
	r.Printf("- Color: %s\n", v.Color)
	r.Printf("- Capacity: %d\n", v.Capacity)
	r.Printf("- Year: %d\n", v.Year)
	r.Printf("- Fuel: %s\n", v.FuelType)
	r.Printf("- Transmission: %s\n", v.Transmission)
	r.Printf("- VIN: %s\n", v.VIN)
	r.Printf("- Price: %s\n", v.Price)
	r.Printf("- Available: %d\n", v.Available)
	return r.String()
}
