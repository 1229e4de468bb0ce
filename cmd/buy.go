package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/minercars/minercars"
	"github.com/minercars/minercars/renderer"
)

type buyCmd struct {
	vehicleID string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase a car for the logged-in user" }
func (*buyCmd) Usage() string {
	return `mcars buy -id <car id>

  Charges the logged-in account the listed price plus tax (minus the
  membership discount, if any), issues a ticket, and takes one unit off
  the lot. See 'mcars topic purchasing'.
`
}

func (p *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.vehicleID, "id", "", "Catalog id of the car to buy.")
}

func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	session, err := currentSession(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	engine := store.Engine()
	ticket, err := engine.Purchase(session.Username(), p.vehicleID)
	switch {
	case errors.Is(err, minercars.ErrVehicleNotFound):
		fmt.Fprintf(os.Stderr, "Car with ID %s not found.\n", p.vehicleID)
		return subcommands.ExitFailure
	case errors.Is(err, minercars.ErrInsufficientFunds):
		fmt.Fprintln(os.Stderr, "Insufficient funds.")
		return subcommands.ExitFailure
	case errors.Is(err, minercars.ErrNoAvailability):
		fmt.Fprintln(os.Stderr, "No cars available.")
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The ticket is already durable; balance and availability are ours to
	// persist.
	if err := store.Registry.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Catalog.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	balance := store.Registry.FindByUsername(session.Username()).Balance
	printMarkdown(renderer.Receipt(*ticket, balance))
	return subcommands.ExitSuccess
}
