package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/minercars/minercars/renderer"
)

type revenueCmd struct{}

func (*revenueCmd) Name() string     { return "revenue" }
func (*revenueCmd) Synopsis() string { return "total revenue for a car type or id" }
func (*revenueCmd) Usage() string {
	return `mcars revenue <type or id>

  Sums the ticket ledger for the given identifier. A car type match wins
  over a car id match. See 'mcars topic revenue'.
`
}

func (*revenueCmd) SetFlags(f *flag.FlagSet) {}

func (*revenueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one car type or car id.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := store.Engine().Revenue(f.Arg(0))
	printMarkdown(renderer.Revenue(report))
	return subcommands.ExitSuccess
}
