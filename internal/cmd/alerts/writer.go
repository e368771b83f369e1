package alerts

import (
	"fmt"
	"io"
)

// Writer delivers alerts to a destination.
type Writer interface {
	WriteAlert(alert *Alert) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(*Alert) error

// WriteAlert calls the function.
func (f WriterFunc) WriteAlert(alert *Alert) error {
	return f(alert)
}

// NewWriterTo returns a Writer printing each alert as one line to w,
// followed by its indented detail lines.
func NewWriterTo(w io.Writer) Writer {
	return WriterFunc(func(alert *Alert) error {
		if _, err := fmt.Fprintln(w, alert.String()); err != nil {
			return err
		}
		for _, detail := range alert.Details {
			if _, err := fmt.Fprintf(w, "   %s\n", detail); err != nil {
				return err
			}
		}
		return nil
	})
}

// MultiWriter fans each alert out to every writer, stopping at the
// first failure.
func MultiWriter(writers ...Writer) Writer {
	return WriterFunc(func(alert *Alert) error {
		for _, w := range writers {
			if err := w.WriteAlert(alert); err != nil {
				return err
			}
		}
		return nil
	})
}

// DiscardWriter swallows all alerts.
var DiscardWriter Writer = WriterFunc(func(*Alert) error { return nil })

// StatusTo returns the writer commands use for their status lines:
// alerts go to w, or nowhere when quiet is set.
func StatusTo(w io.Writer, quiet bool) Writer {
	if quiet {
		return DiscardWriter
	}
	return NewWriterTo(w)
}
