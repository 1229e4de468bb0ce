// Package cmd implements the CLI application to run the MinerCars back-office.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/minercars/minercars"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("dir", "", "Path to the data directory holding the shop files (default $MINERCARS_DIR or .)")

// DataDir resolves the data directory from the flag, then the environment.
func DataDir() string {
	if *dataDir != "" {
		return *dataDir
	}
	if dir := os.Getenv("MINERCARS_DIR"); dir != "" {
		return dir
	}
	return "."
}

// openStore loads the shop files and restores any persisted session token.
func openStore() (*minercars.Store, error) {
	store, err := minercars.Open(DataDir())
	if err != nil {
		return nil, err
	}
	if err := store.RestoreSession(); err != nil {
		return nil, err
	}
	return store, nil
}

// currentSession returns the active session or an error telling the user to
// log in.
func currentSession(store *minercars.Store) (*minercars.Session, error) {
	if s := store.Registry.Session(); s != nil {
		return s, nil
	}
	return nil, errors.New("nobody is logged in, run 'mcars login' first")
}

// printMarkdown renders markdown for the terminal. If rendering fails the
// raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
