package minercars

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// TicketLedger is the append-only record of issued purchase tickets. Unlike
// the catalog and the registry it holds no in-memory collection: every read
// re-scans the backing file, so queries always see the latest appends.
type TicketLedger struct {
	path string
}

// OpenLedger binds a ledger to its backing file. The file need not exist
// yet; the first append creates it.
func OpenLedger(path string) *TicketLedger {
	return &TicketLedger{path: path}
}

// Append writes the ticket as one new row at the end of the ledger. Prior
// rows are never rewritten.
func (l *TicketLedger) Append(t Ticket) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open ledger %q: %w", l.path, err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, ticketLine(t)+"\n"); err != nil {
		return fmt.Errorf("could not append to ledger %q: %w", l.path, err)
	}
	return nil
}

// Void drops the first row whose vehicle id equals vehicleID and whose
// username matches case-insensitively. All other rows are copied verbatim
// to a temporary file which then replaces the ledger. It reports whether a
// matching row was found and dropped.
//
// If the delete-and-rename replacement fails the original is restored from
// the temporary copy on a best-effort basis, and the void reports failure.
func (l *TicketLedger) Void(vehicleID, username string) (bool, error) {
	src, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not open ledger %q: %w", l.path, err)
	}
	defer src.Close()

	tempPath := filepath.Join(filepath.Dir(l.path), "temp_"+filepath.Base(l.path))
	tmp, err := os.Create(tempPath)
	if err != nil {
		return false, fmt.Errorf("could not create %q: %w", tempPath, err)
	}
	defer tmp.Close()

	found := false
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, ",")
		if !found && len(fields) > 1 &&
			strings.TrimSpace(fields[0]) == vehicleID &&
			strings.EqualFold(strings.TrimSpace(fields[1]), username) {
			found = true
			continue
		}
		if _, err := io.WriteString(tmp, line+"\n"); err != nil {
			return false, fmt.Errorf("could not write %q: %w", tempPath, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("could not scan ledger %q: %w", l.path, err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("could not flush %q: %w", tempPath, err)
	}

	if !found {
		os.Remove(tempPath)
		return false, nil
	}

	src.Close()
	if err := os.Remove(l.path); err != nil {
		os.Remove(tempPath)
		return false, fmt.Errorf("could not delete ledger %q: %w", l.path, err)
	}
	if err := os.Rename(tempPath, l.path); err != nil {
		// The original is already gone; the temp copy is the only remaining
		// data. Leave it in place and say so.
		log.Printf("warning: ledger left in %q after failed rename: %v", tempPath, err)
		return false, fmt.Errorf("could not rename %q to %q: %w", tempPath, l.path, err)
	}
	return true, nil
}

// Tickets returns a lazy, restartable sequence over every ticket in the
// ledger. The file is re-scanned on each iteration; rows the codec cannot
// type are skipped.
func (l *TicketLedger) Tickets() iter.Seq[Ticket] {
	return func(yield func(Ticket) bool) {
		f, err := os.Open(l.path)
		if os.IsNotExist(err) {
			return
		}
		if err != nil {
			log.Printf("warning: could not open ledger %q: %v", l.path, err)
			return
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			t, ok := parseTicketLine(scanner.Text())
			if !ok {
				continue
			}
			if !yield(t) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Printf("warning: could not scan ledger %q: %v", l.path, err)
		}
	}
}

// TicketsByUser returns the sequence of tickets issued to the username,
// matched case-insensitively.
func (l *TicketLedger) TicketsByUser(username string) iter.Seq[Ticket] {
	return func(yield func(Ticket) bool) {
		for t := range l.Tickets() {
			if strings.EqualFold(t.Username, strings.TrimSpace(username)) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// RevenueByCategory sums the listed price across rows whose category
// matches case-insensitively. The second return distinguishes "no matching
// rows" from a genuine zero total.
func (l *TicketLedger) RevenueByCategory(category string) (Money, bool) {
	var total Money
	matched := false
	for t := range l.Tickets() {
		if t.Category.Matches(category) {
			total = total.Add(t.Price)
			matched = true
		}
	}
	return total, matched
}

// RevenueByVehicleID sums the listed price across rows whose vehicle id
// exactly matches the given string.
func (l *TicketLedger) RevenueByVehicleID(id string) (Money, bool) {
	var total Money
	matched := false
	for t := range l.Tickets() {
		if t.VehicleID == id {
			total = total.Add(t.Price)
			matched = true
		}
	}
	return total, matched
}
