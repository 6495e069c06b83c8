package notifier

import (
	"context"
	"fmt"
	"io"
)

var _ Notifier = (*Writer)(nil)

// Writer is a terminal that emits each payload, followed by a newline, to an
// injected io.Writer. Injecting the sink keeps the terminal free of ambient
// globals, so tests can capture output.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer terminal emitting to w.
// It panics if w is nil.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic("notifier: nil writer")
	}
	return &Writer{w: w}
}

func (n *Writer) Notify(ctx context.Context, message string) error {
	return n.Deliver(ctx, n.Format(message))
}

func (n *Writer) Deliver(_ context.Context, payload string) error {
	if _, err := io.WriteString(n.w, payload+"\n"); err != nil {
		return fmt.Errorf("notifier: write payload: %w", err)
	}
	return nil
}

func (n *Writer) Format(message string) string {
	return message
}

func (n *Writer) Describe() string {
	return "Writer"
}
