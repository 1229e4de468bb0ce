package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	username string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and open a session" }
func (*loginCmd) Usage() string {
	return `mcars login -u <username> -p <password>

  Authenticates against the account registry and stores the session token
  under the data directory so later commands run as this user.
`
}

func (p *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.username, "u", "", "Username (exact, case sensitive).")
	f.StringVar(&p.password, "p", "", "Password.")
}

func (p *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.username == "" {
		fmt.Fprintln(os.Stderr, "Error: -u is required.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	session := store.Registry.Authenticate(p.username, p.password)
	if session == nil {
		fmt.Fprintln(os.Stderr, "Invalid username or password.")
		return subcommands.ExitFailure
	}
	if err := store.PersistSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}

	a := session.Account
	fmt.Printf("Welcome %s %s. Balance: %s\n", a.FirstName, a.LastName, a.Balance)
	return subcommands.ExitSuccess
}
