// Package latch defines the four inter-stage pipeline latches (§3). Each
// is a plain value-typed struct, updated only at the cycle boundary its
// owning stage defines — there is no aliasing between latches, per the
// ownership model in §9 ("the CPU owns all latches ... as value-typed
// members").
package latch

// ControlEX holds the EX-stage control fields carried from ID/EX.
type ControlEX struct {
	RegDst bool
	ALUOp  uint32 // 2-bit
	ALUSrc bool
}

// ControlMEM holds the MEM-stage control fields.
type ControlMEM struct {
	Branch   bool
	MemRead  bool
	MemWrite bool
}

// ControlWB holds the WB-stage control fields.
type ControlWB struct {
	MemToReg bool
	RegWrite bool
}

// IFID is the IF/ID latch.
type IFID struct {
	PCPlus4     uint32
	Instruction uint32
}

// IDEX is the ID/EX latch.
type IDEX struct {
	CtrlWB ControlWB
	CtrlMEM ControlMEM
	CtrlEX  ControlEX

	PCPlus4    uint32
	ReadData1  uint32
	ReadData2  uint32
	SignExtImm uint32

	Rs uint32 // 5-bit
	Rt uint32 // 5-bit
	Rd uint32 // 5-bit
}

// Bubble zeroes every control field of the latch, leaving data fields
// untouched, per §3 invariant (iv): a stall injects a bubble with all
// ID/EX control signals forced to 0.
func (l *IDEX) Bubble() {
	l.CtrlWB = ControlWB{}
	l.CtrlMEM = ControlMEM{}
	l.CtrlEX = ControlEX{}
}

// EXMEM is the EX/MEM latch.
type EXMEM struct {
	CtrlWB  ControlWB
	CtrlMEM ControlMEM

	BranchTargetAddr uint32
	ALUZero          bool
	ALUResult        uint32
	ReadData2        uint32
	RegDstIdx        uint32 // 5-bit
}

// MEMWB is the MEM/WB latch.
type MEMWB struct {
	CtrlWB ControlWB

	DataMemReadData uint32
	ALUResult       uint32
	RegDstIdx       uint32 // 5-bit
}
