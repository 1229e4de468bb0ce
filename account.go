package minercars

// Account is a customer record. The username is the business key used for
// lookup and authentication; passwords are stored and compared in plaintext,
// as the data files dictate.
type Account struct {
	ID            int
	FirstName     string
	LastName      string
	Balance       Money
	CarsPurchased int
	Member        bool // MinerCars membership, grants a 10% discount at purchase
	Username      string
	Password      string
}

// Session is the single process-wide login token. It holds a snapshot of the
// account taken at authentication time: later mutations to the underlying
// account (purchases, refunds) are not reflected here.
type Session struct {
	Account Account
}

// Username returns the username the session was opened for.
func (s *Session) Username() string { return s.Account.Username }
