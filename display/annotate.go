package display

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/dhamidi/wary"
)

// unit is one displayed element of the input: a hex pair for raw
// bytes, an escaped character for validated text.
type unit struct {
	text string
	mark bool
}

func (u unit) width() int { return runewidth.StringWidth(u.text) }

// annotate renders the input as one line together with a marker line
// underlining the span. The marker line is empty when the span does
// not point into the input. Input wider than maxWidth is elided around
// the marked region, keeping the failure visible.
func annotate(input wary.Input, span wary.Span, maxWidth int) (line, marks string) {
	raw := input.Raw()
	start, end, marked := span.RangeOf(input.Span())
	caretAtEnd := marked && start == end && start == len(raw)
	if marked && start == end && !caretAtEnd {
		// An empty span inside the input points at a boundary; mark
		// the element that begins there.
		end = start + 1
	}

	sep := ""
	open, close := `"`, `"`
	var units []unit
	if input.IsString() {
		for p := 0; p < len(raw); {
			r, size := utf8.DecodeRune(raw[p:])
			units = append(units, unit{
				text: escapeRune(r),
				mark: marked && p < end && start < p+size,
			})
			p += size
		}
	} else {
		sep = " "
		open, close = "[", "]"
		for p, c := range raw {
			units = append(units, unit{
				text: fmt.Sprintf("%02x", c),
				mark: marked && p < end && start < p+1,
			})
		}
	}

	lo, hi := elide(units, len(sep), maxWidth)

	var lb, mb strings.Builder
	write := func(text string, mark bool) {
		lb.WriteString(text)
		w := runewidth.StringWidth(text)
		if mark {
			mb.WriteString(strings.Repeat("^", w))
		} else {
			mb.WriteString(strings.Repeat(" ", w))
		}
	}

	write(open, false)
	if lo > 0 {
		write("..", false)
		write(sep, false)
	}
	for n := lo; n < hi; n++ {
		if n > lo {
			write(sep, units[n-1].mark && units[n].mark)
		}
		write(units[n].text, units[n].mark)
	}
	if hi < len(units) {
		write(sep, false)
		write("..", false)
	}
	write(close, caretAtEnd)

	marks = strings.TrimRight(mb.String(), " ")
	return lb.String(), marks
}

// elide picks the window of units to display within maxWidth, keeping
// the marked region and trimming whichever side is farther from it.
func elide(units []unit, sepWidth, maxWidth int) (lo, hi int) {
	lo, hi = 0, len(units)
	firstMark, lastMark := -1, -1
	for n, u := range units {
		if u.mark {
			if firstMark < 0 {
				firstMark = n
			}
			lastMark = n
		}
	}
	if firstMark < 0 {
		firstMark, lastMark = 0, 0
	}
	width := func(lo, hi int) int {
		w := 2 // the enclosing delimiters
		for n := lo; n < hi; n++ {
			w += units[n].width()
			if n > lo {
				w += sepWidth
			}
		}
		if lo > 0 {
			w += 2 + sepWidth
		}
		if hi < len(units) {
			w += 2 + sepWidth
		}
		return w
	}
	for width(lo, hi) > maxWidth && hi-lo > 1 {
		if firstMark-lo >= hi-1-lastMark && lo < firstMark {
			lo++
		} else if hi-1 > lastMark {
			hi--
		} else if lo < firstMark {
			lo++
		} else {
			break
		}
	}
	return lo, hi
}

// escapeRune renders one character the way a Go quoted string would,
// without the surrounding quotes.
func escapeRune(r rune) string {
	q := strconv.QuoteRune(r)
	return q[1 : len(q)-1]
}
