package minercars

import "strconv"

// vehicleSchema is the canonical column order of the vehicle resource.
var vehicleSchema = Schema{
	"ID", "Car Type", "Model", "Condition", "Color", "Capacity", "Price",
	"Transmission", "VIN", "Fuel Type", "Year", "Cars Available", "Has Turbo",
}

// vehicleFromRow builds a Vehicle from a header-indexed row. Missing or
// unparsable columns fall back to defaults (numeric 0, boolean false,
// string "No"); a blank "Has Turbo" reads as false.
func vehicleFromRow(schema Schema, row []string) Vehicle {
	str := func(name string) string {
		if v, ok := schema.Lookup(row, name); ok && v != "" {
			return v
		}
		return "No"
	}
	num := func(name string) string {
		v, _ := schema.Lookup(row, name)
		return v
	}

	return Vehicle{
		ID:           parseInt(num("ID")),
		Category:     ParseCategory(str("Car Type")),
		Model:        str("Model"),
		Condition:    str("Condition"),
		Color:        str("Color"),
		Capacity:     parseInt(num("Capacity")),
		Price:        parseMoney(num("Price")),
		Transmission: str("Transmission"),
		VIN:          str("VIN"),
		FuelType:     str("Fuel Type"),
		Year:         parseInt(num("Year")),
		Available:    parseInt(num("Cars Available")),
		Turbo:        parseBool(num("Has Turbo")),
	}
}

// vehicleRow serializes a Vehicle in the canonical column order.
func vehicleRow(v Vehicle) []string {
	return []string{
		strconv.Itoa(v.ID),
		v.Category.String(),
		v.Model,
		v.Condition,
		v.Color,
		strconv.Itoa(v.Capacity),
		v.Price.Plain(),
		v.Transmission,
		v.VIN,
		v.FuelType,
		strconv.Itoa(v.Year),
		strconv.Itoa(v.Available),
		strconv.FormatBool(v.Turbo),
	}
}
