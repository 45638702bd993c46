// Package snapshot exports a PVS dump to the system clipboard, for the
// CLI's -copy-final-pvs flag. The lazy, once-only clipboard.Init() call
// is grounded on video_backend_ebiten.go's handleClipboardPaste, which
// guards the same library against repeated Init() attempts with a
// sync.Once and a cached ok flag.
package snapshot

import (
	"bytes"
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/intuitionamiga/mips5sim/internal/pipeline"
)

var (
	initOnce sync.Once
	initOK   bool
)

func ensureInit() bool {
	initOnce.Do(func() {
		initOK = clipboard.Init() == nil
	})
	return initOK
}

// CopyFinalPVS renders cpu's current PVS dump and writes it to the
// system clipboard as plain text. Returns an error if the clipboard
// backend could not be initialised (e.g. headless/no display server).
func CopyFinalPVS(cpu *pipeline.CPU) error {
	if !ensureInit() {
		return fmt.Errorf("snapshot: clipboard unavailable on this system")
	}
	var buf bytes.Buffer
	cpu.WritePVS(&buf)
	clipboard.Write(clipboard.FmtText, buf.Bytes())
	return nil
}
