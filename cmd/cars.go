package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/minercars/minercars"
	"github.com/minercars/minercars/renderer"
)

type carsCmd struct {
	condition string
	id        int
}

func (*carsCmd) Name() string     { return "cars" }
func (*carsCmd) Synopsis() string { return "list the vehicle inventory" }
func (*carsCmd) Usage() string {
	return `mcars cars [-condition <new|used>] [-id <car id>]

  Lists the inventory, optionally filtered by condition, or shows the
  full details of one car.
`
}

func (p *carsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.condition, "condition", "", "Only show vehicles in this condition (new or used).")
	f.IntVar(&p.id, "id", 0, "Show the full details of this car only.")
}

func (p *carsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.id != 0 {
		vehicle := store.Catalog.FindByID(p.id)
		if vehicle == nil {
			fmt.Fprintf(os.Stderr, "Car with ID %d not found.\n", p.id)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.Vehicle(*vehicle))
		return subcommands.ExitSuccess
	}

	vehicles := store.Catalog.Vehicles()
	if p.condition != "" {
		var filtered []minercars.Vehicle
		for _, v := range vehicles {
			if strings.EqualFold(v.Condition, p.condition) {
				filtered = append(filtered, v)
			}
		}
		vehicles = filtered
	}

	printMarkdown(renderer.Inventory(vehicles))
	return subcommands.ExitSuccess
}
