// Package monitor implements the interactive PVS stepper: a raw-mode
// terminal session that advances the pipeline one cycle per keypress
// and reprints the Processor Visible State dump, instead of running
// every cycle to completion up front. The raw-mode handling is grounded
// on terminal_host.go's TerminalHost (MakeRaw/Restore, single-byte
// reads, here blocking until a key arrives); unlike that host, the monitor runs synchronously
// on the calling goroutine since there is no device to feed concurrently
// with CPU execution.
package monitor

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/intuitionamiga/mips5sim/internal/pipeline"
)

// IsTerminal reports whether stdin is attached to a terminal. Callers
// should fall back to the plain sequential run when this is false —
// raw mode on a pipe or redirected file is meaningless.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Run steps cpu through at most numCycles cycles, printing the PVS dump
// after each one and waiting for a keypress before continuing. Pressing
// 'q' or Ctrl-C (0x03) ends the session early; any other key advances.
// stdin is restored to its original mode before Run returns, even on
// error.
func Run(cpu *pipeline.CPU, numCycles uint64, out io.Writer) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("monitor: failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	cpu.WritePVS(out)
	fmt.Fprintln(out, "-- press any key to step, q to quit --")

	buf := make([]byte, 1)
	for i := uint64(0); i < numCycles; i++ {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return fmt.Errorf("monitor: reading keypress: %w", err)
		}
		if n > 0 && (buf[0] == 'q' || buf[0] == 0x03) {
			return nil
		}

		cpu.AdvanceCycle()
		cpu.WritePVS(out)
		fmt.Fprintln(out, "-- press any key to step, q to quit --")
	}
	return nil
}
