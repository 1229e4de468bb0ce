package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/minercars/minercars"
)

type addCarCmd struct {
	category     string
	model        string
	condition    string
	color        string
	capacity     int
	year         int
	fuelType     string
	transmission string
	vin          string
	price        float64
	count        int
	turbo        bool
}

func (*addCarCmd) Name() string     { return "add-car" }
func (*addCarCmd) Synopsis() string { return "add a car to the inventory" }
func (*addCarCmd) Usage() string {
	return `mcars add-car -vin <vin> -type <type> -model <model> [options]

  Adds a car to the inventory. When the VIN is already on the lot, the
  available count is bumped instead of creating a new entry.
`
}

func (p *addCarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "type", "", "Car type (Sedan, SUV, Hatchback, Pickup).")
	f.StringVar(&p.model, "model", "", "Model name.")
	f.StringVar(&p.condition, "condition", "New", "Condition, new or used.")
	f.StringVar(&p.color, "color", "", "Color.")
	f.IntVar(&p.capacity, "capacity", 0, "Seating capacity.")
	f.IntVar(&p.year, "year", 0, "Model year.")
	f.StringVar(&p.fuelType, "fuel", "", "Fuel type.")
	f.StringVar(&p.transmission, "transmission", "", "Transmission.")
	f.StringVar(&p.vin, "vin", "", "Vehicle identification number.")
	f.Float64Var(&p.price, "price", 0, "Listed price.")
	f.IntVar(&p.count, "count", 1, "Units available.")
	f.BoolVar(&p.turbo, "turbo", false, "Has a turbocharged engine.")
}

func (p *addCarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.vin == "" {
		fmt.Fprintln(os.Stderr, "Error: -vin is required.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	merged := store.Catalog.FindByVIN(p.vin) != nil
	vehicle, err := store.Catalog.Add(minercars.Vehicle{
		Category:     minercars.ParseCategory(p.category),
		Model:        p.model,
		Condition:    p.condition,
		Color:        p.color,
		Capacity:     p.capacity,
		Price:        minercars.M(p.price),
		Transmission: p.transmission,
		VIN:          p.vin,
		FuelType:     p.fuelType,
		Year:         p.year,
		Available:    p.count,
		Turbo:        p.turbo,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	if merged {
		fmt.Printf("VIN %s already on the lot; now %d available.\n", vehicle.VIN, vehicle.Available)
	} else {
		fmt.Printf("Car %d added: %s %s (%s).\n", vehicle.ID, vehicle.Category, vehicle.Model, vehicle.VIN)
	}
	return subcommands.ExitSuccess
}
