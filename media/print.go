package media

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// NoResults is printed in place of an empty group.
const NoResults = "No results found in this search"

const ellipsis = "..."

// Printer renders Results as a numbered listing.
//
// Numbers run across all groups and match the Index built from the same Results.
type Printer struct {
	Out io.Writer

	// Heading decorates group names; nil prints them as is.
	Heading func(string) string

	// Width truncates entity lines to this many cells when positive.
	Width int
}

// Print writes the listing. Only write errors are returned.
func (p *Printer) Print(results *Results) error {
	heading := p.Heading
	if heading == nil {
		heading = func(s string) string { return s }
	}

	w := &errWriter{w: p.Out}
	w.println("")

	n := 1
	for _, g := range Groups() {
		w.println(heading(strings.ToUpper(string(g))))

		entities := results.Get(g)
		if len(entities) == 0 {
			w.println(NoResults)
		}

		for _, e := range entities {
			w.println(p.line(n, e))
			n++
		}

		w.println("")
	}

	return w.err
}

// line truncates only the description, so the number survives any width.
func (p *Printer) line(n int, e Entity) string {
	prefix, info := strconv.Itoa(n)+" ", e.Info()
	if p.Width <= 0 || ansi.PrintableRuneWidth(prefix+info) <= p.Width {
		return prefix + info
	}

	room := p.Width - ansi.PrintableRuneWidth(prefix)
	switch {
	case room <= 0:
		return strings.TrimSpace(prefix)
	case room <= ansi.PrintableRuneWidth(ellipsis):
		return prefix + truncate.String(info, uint(room))
	default:
		return prefix + truncate.StringWithTail(info, uint(room), ellipsis)
	}
}

// errWriter remembers the first failed write and skips the rest.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}
