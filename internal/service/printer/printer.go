package printer

import (
	"fmt"
	"io"
	"os"
)

type ConsolePrinter struct {
	out io.Writer
}

func New(out io.Writer) *ConsolePrinter {
	return &ConsolePrinter{out: out}
}

func NewStdout() *ConsolePrinter {
	return New(os.Stdout)
}

// Print writes one line per statement entry, in order.
func (p *ConsolePrinter) Print(lines []string) error {
	for i, line := range lines {
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return fmt.Errorf("failed to print statement line %d: %w", i, err)
		}
	}
	return nil
}
