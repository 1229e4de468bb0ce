package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/minercars/minercars/renderer"
)

type returnCmd struct {
	vehicleID string
}

func (*returnCmd) Name() string     { return "return" }
func (*returnCmd) Synopsis() string { return "return a previously bought car" }
func (*returnCmd) Usage() string {
	return `mcars return -id <car id>

  Voids the matching ticket and refunds the listed price plus tax. A car
  with no ticket on file is a successful no-op. See 'mcars topic returns'.
`
}

func (p *returnCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.vehicleID, "id", "", "Catalog id of the car to return.")
}

func (p *returnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	refund, err := store.Engine().Return(session.Username(), p.vehicleID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	balance := store.Registry.FindByUsername(session.Username()).Balance
	printMarkdown(renderer.ReturnReceipt(p.vehicleID, refund, balance))
	return subcommands.ExitSuccess
}
