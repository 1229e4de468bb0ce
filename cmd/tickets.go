package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/minercars/minercars"
	"github.com/minercars/minercars/renderer"
)

type ticketsCmd struct{}

func (*ticketsCmd) Name() string     { return "tickets" }
func (*ticketsCmd) Synopsis() string { return "list the logged-in user's tickets" }
func (*ticketsCmd) Usage() string {
	return `mcars tickets

  Lists every ticket on file for the logged-in user.
`
}

func (*ticketsCmd) SetFlags(f *flag.FlagSet) {}

func (*ticketsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var tickets []minercars.Ticket
	for t := range store.Ledger.TicketsByUser(session.Username()) {
		tickets = append(tickets, t)
	}

	printMarkdown(renderer.Tickets(session.Username(), tickets))
	return subcommands.ExitSuccess
}
