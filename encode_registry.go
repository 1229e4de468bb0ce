package minercars

import "strconv"

// accountSchema is the canonical column order of the account resource.
var accountSchema = Schema{
	"ID", "First Name", "Last Name", "Money Available", "Cars Purchased",
	"MinerCars Membership", "Username", "Password",
}

// accountFromRow builds an Account from a header-indexed row.
//
// Any empty field is first substituted with the literal text "false"; for
// numeric columns that substitution fails typed parsing and yields 0, which
// is the documented behavior of the account resource. A column absent from
// the schema falls back to the column default ("Unknown" for strings, 0 for
// numerics, false for the membership flag).
func accountFromRow(schema Schema, row []string) Account {
	get := func(name string) (string, bool) {
		v, ok := schema.Lookup(row, name)
		if ok && v == "" {
			v = "false"
		}
		return v, ok
	}
	str := func(name string) string {
		if v, ok := get(name); ok {
			return v
		}
		return "Unknown"
	}
	num := func(name string) string {
		v, _ := get(name)
		return v
	}

	return Account{
		ID:            parseInt(num("ID")),
		FirstName:     str("First Name"),
		LastName:      str("Last Name"),
		Balance:       parseMoney(num("Money Available")),
		CarsPurchased: parseInt(num("Cars Purchased")),
		Member:        parseBool(num("MinerCars Membership")),
		Username:      str("Username"),
		Password:      str("Password"),
	}
}

// accountRow serializes an Account in the canonical column order.
func accountRow(a Account) []string {
	return []string{
		strconv.Itoa(a.ID),
		a.FirstName,
		a.LastName,
		a.Balance.Plain(),
		strconv.Itoa(a.CarsPurchased),
		strconv.FormatBool(a.Member),
		a.Username,
		a.Password,
	}
}
