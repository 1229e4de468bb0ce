package minercars

import (
	"strconv"
	"strings"
)

// The ticket ledger is a headerless, line-oriented resource: one
// comma-separated row per issued ticket, in issuance order. Columns are
// positional: vehicle id, username, category, model, year, color, listed
// price, unique id.

// ticketLine serializes a ticket to its ledger row.
func ticketLine(t Ticket) string {
	return strings.Join([]string{
		t.VehicleID,
		t.Username,
		t.Category.String(),
		t.Model,
		strconv.Itoa(t.Year),
		t.Color,
		t.Price.Plain(),
		t.UniqueID,
	}, ",")
}

// parseTicketLine parses a ledger row. It reports false for rows too short
// to carry a price; such rows are skipped, never an error.
func parseTicketLine(line string) (Ticket, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < 7 {
		return Ticket{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	t := Ticket{
		VehicleID: fields[0],
		Username:  fields[1],
		Category:  ParseCategory(fields[2]),
		Model:     fields[3],
		Year:      parseInt(fields[4]),
		Color:     fields[5],
		Price:     parseMoney(fields[6]),
	}
	if len(fields) > 7 {
		t.UniqueID = fields[7]
	}
	return t, true
}
