package minercars

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names of the tabular resources inside a data directory.
const (
	VehiclesFile = "vehicles.csv"
	AccountsFile = "accounts.csv"
	TicketsFile  = "issued_tickets.csv"
	sessionFile  = "session.csv"
)

// Store binds the three back-office resources living in one data directory.
type Store struct {
	Catalog  *Catalog
	Registry *Registry
	Ledger   *TicketLedger

	dir string
}

// Open loads the catalog and registry from dir and binds the ticket ledger.
// Missing files simply yield empty collections.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}

	catalog, err := OpenCatalog(filepath.Join(dir, VehiclesFile))
	if err != nil {
		return nil, err
	}
	registry, err := OpenRegistry(filepath.Join(dir, AccountsFile))
	if err != nil {
		return nil, err
	}
	ledger := OpenLedger(filepath.Join(dir, TicketsFile))

	return &Store{Catalog: catalog, Registry: registry, Ledger: ledger, dir: dir}, nil
}

// Engine returns a transaction engine over this store's collections.
func (s *Store) Engine() *Engine {
	return NewEngine(s.Catalog, s.Registry, s.Ledger)
}

// RestoreSession reloads a session token previously persisted by
// PersistSession and installs it on the registry. No file means no session;
// that is not an error.
func (s *Store) RestoreSession() error {
	schema, rows, err := readTable(filepath.Join(s.dir, sessionFile))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	account := accountFromRow(schema, rows[0])
	s.Registry.RestoreSession(&Session{Account: account})
	return nil
}

// PersistSession writes the active session token, if any, next to the data
// files so a later process can restore it. Without an active session the
// persisted token is removed instead.
//
// What is written is the login-time snapshot, so like the in-memory token it
// does not reflect account mutations made after authentication.
func (s *Store) PersistSession() error {
	path := filepath.Join(s.dir, sessionFile)
	session := s.Registry.Session()
	if session == nil {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	return writeTable(path, accountSchema, [][]string{accountRow(session.Account)})
}
