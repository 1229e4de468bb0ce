package cmd

import (
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")

	c.Register(&registerCmd{}, "accounts")

	c.Register(&carsCmd{}, "inventory")
	c.Register(&addCarCmd{}, "inventory")
	c.Register(&removeCarCmd{}, "inventory")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&returnCmd{}, "transactions")
	c.Register(&ticketsCmd{}, "transactions")

	c.Register(&revenueCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}
