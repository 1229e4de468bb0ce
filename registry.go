package minercars

// Registry is the in-memory customer account collection backed by a tabular
// file. It also owns the single active session token.
type Registry struct {
	path     string
	schema   Schema
	accounts []Account
	session  *Session
}

// OpenRegistry loads the account resource. A missing file yields an empty
// registry.
func OpenRegistry(path string) (*Registry, error) {
	schema, rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if schema == nil {
		schema = accountSchema
	}
	r := &Registry{path: path, schema: schema}
	for _, row := range rows {
		r.accounts = append(r.accounts, accountFromRow(schema, row))
	}
	return r, nil
}

// Accounts returns the registry in file order.
func (r *Registry) Accounts() []Account { return r.accounts }

// FindByUsername returns the account with the exact, case-sensitive
// username, or nil.
func (r *Registry) FindByUsername(username string) *Account {
	for i := range r.accounts {
		if r.accounts[i].Username == username {
			return &r.accounts[i]
		}
	}
	return nil
}

// Authenticate matches username and password exactly. On success it installs
// and returns a session holding a snapshot of the account's fields as of
// now; on failure it returns nil and leaves any existing session untouched.
//
// At most one session exists per registry. One interactive operator per
// process is the assumed model; a multi-client redesign would need
// per-caller sessions.
func (r *Registry) Authenticate(username, password string) *Session {
	for i := range r.accounts {
		a := r.accounts[i]
		if a.Username == username && a.Password == password {
			r.session = &Session{Account: a}
			return r.session
		}
	}
	return nil
}

// Session returns the active session token, or nil when nobody is logged in.
func (r *Registry) Session() *Session { return r.session }

// RestoreSession reinstalls a previously issued session token, e.g. one the
// CLI persisted between invocations.
func (r *Registry) RestoreSession(s *Session) { r.session = s }

// Logout clears the session token unconditionally.
func (r *Registry) Logout() { r.session = nil }

// Add appends an account and persists the registry. A zero id is replaced
// with the next free id (max existing + 1).
func (r *Registry) Add(a Account) (Account, error) {
	if a.ID == 0 {
		a.ID = r.nextID()
	}
	r.accounts = append(r.accounts, a)
	return a, r.Save()
}

// Save rewrites the backing file from the in-memory state: the header row
// followed by one row per account. It is idempotent.
func (r *Registry) Save() error {
	rows := make([][]string, 0, len(r.accounts))
	for _, a := range r.accounts {
		rows = append(rows, accountRow(a))
	}
	return writeTable(r.path, r.schema, rows)
}

func (r *Registry) nextID() int {
	maxID := 0
	for _, a := range r.accounts {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	return maxID + 1
}
