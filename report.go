package curve3

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is a single curve of a [Report], evaluated at the report's parameter.
type Entry struct {
	Curve      string `json:"curve"`
	Position   Point  `json:"position"`
	Derivative Vec3   `json:"derivative"`
}

// Report is the result of evaluating a curve collection at a fixed parameter
// and aggregating its circles.
//
// Entries appear in the collection's insertion order. CircleRadii holds the
// radii of the collection's circles in ascending order, and TotalRadius their
// sum, rendered with exactly two decimal digits.
type Report struct {
	RunID       uuid.UUID `json:"run_id"`
	EvalAt      float64   `json:"eval_at"`
	Entries     []Entry   `json:"entries"`
	CircleRadii []float64 `json:"circle_radii"`
	TotalRadius string    `json:"total_radius"`
}

// BuildReport evaluates every curve at parameter t and aggregates the
// collection's circles.
func BuildReport(curves []SpaceCurve, t float64) Report {
	entries := make([]Entry, len(curves))
	for i, c := range curves {
		entries[i] = Entry{
			Curve:      c.String(),
			Position:   c.Eval(t),
			Derivative: c.Deriv(t),
		}
	}

	circles := Circles(curves)
	SortByRadius(circles)
	radii := make([]float64, len(circles))
	for i, c := range circles {
		radii[i] = c.Radius()
	}

	rep := Report{
		RunID:       uuid.New(),
		EvalAt:      t,
		Entries:     entries,
		CircleRadii: radii,
		TotalRadius: decimal.NewFromFloat(TotalRadius(circles)).StringFixed(2),
	}
	Logger().Debug("built report",
		"run_id", rep.RunID,
		"curves", len(curves),
		"circles", len(circles),
		"total_radius", rep.TotalRadius,
	)
	return rep
}

// WriteText writes the report as plain text: one line per curve with its
// description, position, and derivative, followed by the sorted circle radii
// and their total.
func (r Report) WriteText(w io.Writer) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	for _, e := range r.Entries {
		writef("%s: position %s, derivative %s\n", e.Curve, e.Position, e.Derivative)
	}
	writef("circle radii:")
	for _, radius := range r.CircleRadii {
		writef(" %g", radius)
	}
	writef("\n")
	writef("total radius: %s\n", r.TotalRadius)
	return err
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
