// Package display renders wary parse errors as human-readable
// diagnostics: a summary line, the expected value if there is one, the
// input annotated with the failure location, and the numbered
// backtrace of attempted operations.
package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dhamidi/wary"
)

// DefaultInputMaxWidth is the maximum width of the annotated input
// line before elision kicks in.
const DefaultInputMaxWidth = 80

var (
	headerColor = color.New(color.Bold)
	markerColor = color.New(color.FgRed, color.Bold)
)

// ErrorDisplay renders one error. Configure it with the With methods
// and render with String or Lines.
type ErrorDisplay struct {
	err           wary.Details
	banner        bool
	inputMaxWidth int
}

// New returns a renderer for err with the default settings.
func New(err wary.Details) *ErrorDisplay {
	return &ErrorDisplay{err: err, inputMaxWidth: DefaultInputMaxWidth}
}

// WithBanner encloses the rendering in a banner, for errors printed
// into surrounding program output.
func (d *ErrorDisplay) WithBanner(on bool) *ErrorDisplay {
	d.banner = on
	return d
}

// WithInputMaxWidth sets the maximum width of the annotated input
// line. Zero restores the default.
func (d *ErrorDisplay) WithInputMaxWidth(w int) *ErrorDisplay {
	if w <= 0 {
		w = DefaultInputMaxWidth
	}
	d.inputMaxWidth = w
	return d
}

// Render renders err with the default settings.
func Render(err wary.Details) string {
	return New(err).String()
}

// String renders the full diagnostic.
func (d *ErrorDisplay) String() string {
	var b strings.Builder
	if d.banner {
		b.WriteString(strings.Repeat("-", 2))
		b.WriteString(" INPUT ERROR ")
		b.WriteString(strings.Repeat("-", 25))
		b.WriteByte('\n')
	}
	d.writeSummary(&b)
	d.writeExpected(&b)
	d.writeInput(&b)
	d.writeAdditional(&b)
	d.writeBacktrace(&b)
	if d.banner {
		b.WriteString(strings.Repeat("-", 40))
		b.WriteByte('\n')
	}
	return b.String()
}

func (d *ErrorDisplay) writeSummary(b *strings.Builder) {
	fmt.Fprintf(b, "error attempting to %s: %s\n",
		d.err.Backtrace().Root().Operation, d.err.Description())
}

func (d *ErrorDisplay) writeExpected(b *strings.Builder) {
	expected, ok := d.err.ExpectedValue()
	if !ok {
		return
	}
	headerColor.Fprint(b, "expected:\n")
	line, _ := annotate(expected, wary.Span{}, d.inputMaxWidth)
	fmt.Fprintf(b, "  %s\n", line)
}

func (d *ErrorDisplay) writeInput(b *strings.Builder) {
	input := d.err.Input()
	span := d.err.Span()
	headerColor.Fprint(b, "in:\n")
	if _, _, ok := span.RangeOf(input.Span()); !ok {
		// A span outside its own input means a bug in whatever
		// produced the error, not in the input.
		line, _ := annotate(input, wary.Span{}, d.inputMaxWidth)
		fmt.Fprintf(b, "  %s\n", line)
		fmt.Fprint(b, "note: error span is not within the error input; this indicates a bug in the error's producer\n")
		return
	}
	line, marks := annotate(input, span, d.inputMaxWidth)
	fmt.Fprintf(b, "  %s\n", line)
	if strings.ContainsRune(marks, '^') {
		fmt.Fprintf(b, "  %s\n", markerColor.Sprint(marks))
	}
}

func (d *ErrorDisplay) writeAdditional(b *strings.Builder) {
	input := d.err.Input()
	span := d.err.Span()
	headerColor.Fprint(b, "additional:\n")
	if offset, ok := span.OffsetWithin(input.Span()); ok {
		fmt.Fprintf(b, "  error offset: %d, error length: %d, input length: %d\n",
			offset, span.Len(), input.Len())
	} else {
		fmt.Fprintf(b, "  error: %s, input length: %d\n", span, input.Len())
	}
	if r, ok := d.err.(wary.Retryable); ok && !r.RetryRequirement().IsNone() {
		fmt.Fprintf(b, "  retry requirement: %s\n", r.RetryRequirement())
	}
}

func (d *ErrorDisplay) writeBacktrace(b *strings.Builder) {
	headerColor.Fprint(b, "backtrace:\n")
	d.err.Backtrace().Walk(func(depth int, c wary.Context) bool {
		if c.IsChild() {
			fmt.Fprintf(b, "    - `%s`", c.Operation)
		} else {
			fmt.Fprintf(b, "  %d. `%s`", depth, c.Operation)
		}
		if c.Expected != "" {
			fmt.Fprintf(b, " (expected %s)", c.Expected)
		}
		b.WriteByte('\n')
		return true
	})
}
