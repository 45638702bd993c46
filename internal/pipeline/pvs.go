package pipeline

import (
	"fmt"
	"io"
)

// bit renders a boolean as a single binary digit, the PVS dump's format
// for 1-bit control signals.
func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func bits(v uint32, width int) string {
	return fmt.Sprintf("%0*b", width, v)
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}

// WritePVS prints the full Processor Visible State snapshot: cycle
// number, PC, every architectural register, data memory, instruction
// memory, and every field of all four latches. Labels and widths match
// the reference implementation's printPVS for golden-output
// compatibility (§6).
func (c *CPU) WritePVS(w io.Writer) {
	fmt.Fprintf(w, "==================== Cycle %d ====================\n", c.cycle)
	fmt.Fprintf(w, "PC = %s\n", hex32(c.pc))

	fmt.Fprintln(w, "Registers:")
	regs := c.regs.Dump()
	for i, v := range regs {
		fmt.Fprintf(w, "  R%-2d = %s\n", i, hex32(v))
	}

	fmt.Fprintln(w, "Data Memory:")
	for addr, v := range c.dataMem.Dump() {
		fmt.Fprintf(w, "  [%s] = %s\n", hex32(uint32(addr*4)), hex32(v))
	}

	fmt.Fprintln(w, "Instruction Memory:")
	for addr, v := range c.instMem.Dump() {
		fmt.Fprintf(w, "  [%s] = %s\n", hex32(uint32(addr*4)), hex32(v))
	}

	fmt.Fprintln(w, "Latches:")

	fmt.Fprintln(w, "  IF-ID Latch:")
	fmt.Fprintf(w, "    pcPlus4          = %s\n", hex32(c.ifid.PCPlus4))
	fmt.Fprintf(w, "    instruction      = %s\n", hex32(c.ifid.Instruction))

	fmt.Fprintln(w, "  ID-EX Latch:")
	fmt.Fprintf(w, "    ctrlWBMemToReg   = 0b%s\n", bit(c.idex.CtrlWB.MemToReg))
	fmt.Fprintf(w, "    ctrlWBRegWrite   = 0b%s\n", bit(c.idex.CtrlWB.RegWrite))
	fmt.Fprintf(w, "    ctrlMEMBranch    = 0b%s\n", bit(c.idex.CtrlMEM.Branch))
	fmt.Fprintf(w, "    ctrlMEMMemRead   = 0b%s\n", bit(c.idex.CtrlMEM.MemRead))
	fmt.Fprintf(w, "    ctrlMEMMemWrite  = 0b%s\n", bit(c.idex.CtrlMEM.MemWrite))
	fmt.Fprintf(w, "    ctrlEXRegDst     = 0b%s\n", bit(c.idex.CtrlEX.RegDst))
	fmt.Fprintf(w, "    ctrlEXALUOp      = 0b%s\n", bits(c.idex.CtrlEX.ALUOp, 2))
	fmt.Fprintf(w, "    ctrlEXALUSrc     = 0b%s\n", bit(c.idex.CtrlEX.ALUSrc))
	fmt.Fprintf(w, "    pcPlus4          = %s\n", hex32(c.idex.PCPlus4))
	fmt.Fprintf(w, "    regFileReadData1 = %s\n", hex32(c.idex.ReadData1))
	fmt.Fprintf(w, "    regFileReadData2 = %s\n", hex32(c.idex.ReadData2))
	fmt.Fprintf(w, "    signExtImmediate = %s\n", hex32(c.idex.SignExtImm))
	fmt.Fprintf(w, "    rs               = 0b%s\n", bits(c.idex.Rs, 5))
	fmt.Fprintf(w, "    rt               = 0b%s\n", bits(c.idex.Rt, 5))
	fmt.Fprintf(w, "    rd               = 0b%s\n", bits(c.idex.Rd, 5))

	fmt.Fprintln(w, "  EX-MEM Latch:")
	fmt.Fprintf(w, "    ctrlWBMemToReg   = 0b%s\n", bit(c.exmem.CtrlWB.MemToReg))
	fmt.Fprintf(w, "    ctrlWBRegWrite   = 0b%s\n", bit(c.exmem.CtrlWB.RegWrite))
	fmt.Fprintf(w, "    ctrlMEMBranch    = 0b%s\n", bit(c.exmem.CtrlMEM.Branch))
	fmt.Fprintf(w, "    ctrlMEMMemRead   = 0b%s\n", bit(c.exmem.CtrlMEM.MemRead))
	fmt.Fprintf(w, "    ctrlMEMMemWrite  = 0b%s\n", bit(c.exmem.CtrlMEM.MemWrite))
	fmt.Fprintf(w, "    branchTargetAddr = %s\n", hex32(c.exmem.BranchTargetAddr))
	fmt.Fprintf(w, "    aluZero          = 0b%s\n", bit(c.exmem.ALUZero))
	fmt.Fprintf(w, "    aluResult        = %s\n", hex32(c.exmem.ALUResult))
	fmt.Fprintf(w, "    regFileReadData2 = %s\n", hex32(c.exmem.ReadData2))
	fmt.Fprintf(w, "    regDstIdx        = 0b%s\n", bits(c.exmem.RegDstIdx, 5))

	fmt.Fprintln(w, "  MEM-WB Latch:")
	fmt.Fprintf(w, "    ctrlWBMemToReg   = 0b%s\n", bit(c.memwb.CtrlWB.MemToReg))
	fmt.Fprintf(w, "    ctrlWBRegWrite   = 0b%s\n", bit(c.memwb.CtrlWB.RegWrite))
	fmt.Fprintf(w, "    dataMemReadData  = %s\n", hex32(c.memwb.DataMemReadData))
	fmt.Fprintf(w, "    aluResult        = %s\n", hex32(c.memwb.ALUResult))
	fmt.Fprintf(w, "    regDstIdx        = 0b%s\n", bits(c.memwb.RegDstIdx, 5))
}
