// Package regfile implements the 32x32-bit architectural register bank.
// R0 is hard-wired to zero: every read returns 0 and writes are silently
// dropped, per §3/§4.7.
package regfile

import "fmt"

const NumRegisters = 32

// File is the register bank. Reads are combinational (Read/ReadPorts
// below); the write port is synchronous, applied by Write at
// the end of WB.
type File struct {
	regs [NumRegisters]uint32
}

// New returns a register file with every register, including R0, zeroed.
func New() *File {
	return &File{}
}

// Read returns the current value of register idx, combinational and
// always zero for R0.
func (f *File) Read(idx uint32) uint32 {
	if idx == 0 {
		return 0
	}
	return f.regs[idx&0x1F]
}

// ReadPorts evaluates both combinational read ports at once, matching
// the register file's two simultaneous ReadData1/ReadData2 outputs.
func (f *File) ReadPorts(rs, rt uint32) (readData1, readData2 uint32) {
	return f.Read(rs), f.Read(rt)
}

// Write performs the synchronous write: if regWrite is set and
// writeReg != 0, writeData is latched into that register. A write to R0
// is silently dropped.
func (f *File) Write(regWrite bool, writeReg uint32, writeData uint32) {
	if !regWrite || writeReg == 0 {
		return
	}
	f.regs[writeReg&0x1F] = writeData
}

// Set forces a register to a value outside the normal WB write port —
// used only by the loader to seed the initial architectural state from
// a register-file image. Writing R0 is still silently dropped, matching
// the hard-wired-zero invariant.
func (f *File) Set(idx uint32, value uint32) {
	if idx == 0 {
		return
	}
	f.regs[idx&0x1F] = value
}

// Dump returns a snapshot of all 32 registers in index order, for the
// PVS printer.
func (f *File) Dump() [NumRegisters]uint32 {
	return f.regs
}

// String renders the register file the way the PVS dump expects: one
// line per register, "Rn = 0xXXXXXXXX".
func (f *File) String() string {
	s := ""
	for i := 0; i < NumRegisters; i++ {
		s += fmt.Sprintf("  R%-2d = 0x%08x\n", i, f.regs[i])
	}
	return s
}
