package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCarCmd struct {
	vin string
}

func (*removeCarCmd) Name() string     { return "remove-car" }
func (*removeCarCmd) Synopsis() string { return "remove a car from the inventory" }
func (*removeCarCmd) Usage() string {
	return `mcars remove-car -vin <vin>

  Removes the car with the given VIN from the inventory.
`
}

func (p *removeCarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.vin, "vin", "", "Vehicle identification number.")
}

func (p *removeCarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.vin == "" {
		fmt.Fprintln(os.Stderr, "Error: -vin is required.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removed, err := store.Catalog.Remove(p.vin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Fprintf(os.Stderr, "No car with VIN %s on the lot.\n", p.vin)
		return subcommands.ExitFailure
	}

	fmt.Printf("Car %s removed.\n", p.vin)
	return subcommands.ExitSuccess
}
