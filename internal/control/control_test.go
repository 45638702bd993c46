package control

import "testing"

func TestDecodeRType(t *testing.T) {
	s := Decode(OpcodeRType)
	if !s.RegDst || !s.RegWrite || s.ALUOp != 0b10 {
		t.Fatalf("R-type signals wrong: %+v", s)
	}
	if s.ALUSrc || s.MemToReg || s.MemRead || s.MemWrite || s.Branch {
		t.Fatalf("R-type should leave all other signals zero: %+v", s)
	}
}

func TestDecodeLW(t *testing.T) {
	s := Decode(OpcodeLW)
	if s.RegDst || !s.ALUSrc || !s.MemToReg || !s.RegWrite || !s.MemRead || s.MemWrite || s.Branch || s.ALUOp != 0b00 {
		t.Fatalf("lw signals wrong: %+v", s)
	}
}

func TestDecodeSW(t *testing.T) {
	s := Decode(OpcodeSW)
	if s.RegDst || !s.ALUSrc || s.MemToReg || s.RegWrite || s.MemRead || !s.MemWrite || s.Branch || s.ALUOp != 0b00 {
		t.Fatalf("sw signals wrong: %+v", s)
	}
}

func TestDecodeBEQ(t *testing.T) {
	s := Decode(OpcodeBEQ)
	if s.RegDst || s.ALUSrc || s.MemToReg || s.RegWrite || s.MemRead || s.MemWrite || !s.Branch || s.ALUOp != 0b01 {
		t.Fatalf("beq signals wrong: %+v", s)
	}
}

func TestDecodeUndefinedOpcodeIsAllZero(t *testing.T) {
	s := Decode(0b111111)
	want := Signals{}
	if s != want {
		t.Fatalf("undefined opcode should decode to all-zero signals, got %+v", s)
	}
}
