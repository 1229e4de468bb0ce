package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/minercars/minercars"
)

type registerCmd struct {
	firstName string
	lastName  string
	balance   float64
	member    bool
	username  string
	password  string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a customer account" }
func (*registerCmd) Usage() string {
	return `mcars register -u <username> -p <password> [-first <name>] [-last <name>] [-balance <amount>] [-member]

  Adds an account to the registry and persists it.
`
}

func (p *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.firstName, "first", "", "First name.")
	f.StringVar(&p.lastName, "last", "", "Last name.")
	f.Float64Var(&p.balance, "balance", 0, "Opening balance.")
	f.BoolVar(&p.member, "member", false, "Grant the MinerCars membership.")
	f.StringVar(&p.username, "u", "", "Username, the unique login key.")
	f.StringVar(&p.password, "p", "", "Password.")
}

func (p *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.username == "" {
		fmt.Fprintln(os.Stderr, "Error: -u is required.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if store.Registry.FindByUsername(p.username) != nil {
		fmt.Fprintf(os.Stderr, "Username %q is already taken.\n", p.username)
		return subcommands.ExitFailure
	}

	account, err := store.Registry.Add(minercars.Account{
		FirstName: p.firstName,
		LastName:  p.lastName,
		Balance:   minercars.M(p.balance),
		Member:    p.member,
		Username:  p.username,
		Password:  p.password,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account %d added for %s.\n", account.ID, account.Username)
	return subcommands.ExitSuccess
}
