package renderer

import (
	"github.com/minercars/minercars"
)

// Revenue renders a revenue report. The wording mirrors the resolution
// order: a category match wins, then a vehicle id match, then nothing.
func Revenue(report minercars.RevenueReport) string {
	r := newRenderer()
	switch {
	case !report.Matched:
		r.Printf("No revenue found for %s.\n", report.Identifier)
	case report.By == "category":
		r.Printf("Total revenue for type %s: %s\n", report.Identifier, report.Total)
	default:
		r.Printf("Total revenue for ID %s: %s\n", report.Identifier, report.Total)
	}
	return r.String()
}
