package alu

import "testing"

func TestEvalAdd(t *testing.T) {
	r := Eval(OpADD, 5, 7)
	if r.Value != 12 || r.Zero {
		t.Fatalf("ADD: got %+v", r)
	}
}

func TestEvalSubZero(t *testing.T) {
	r := Eval(OpSUB, 9, 9)
	if r.Value != 0 || !r.Zero {
		t.Fatalf("SUB equal operands should be zero: %+v", r)
	}
}

func TestEvalSLTUnsigned(t *testing.T) {
	// -1 as unsigned is 0xFFFFFFFF, which is NOT less than 1.
	r := Eval(OpSLT, 0xFFFFFFFF, 1)
	if r.Value != 0 {
		t.Fatalf("SLT must be unsigned: got %+v", r)
	}
	r = Eval(OpSLT, 1, 0xFFFFFFFF)
	if r.Value != 1 {
		t.Fatalf("SLT: got %+v, want value=1", r)
	}
}

func TestEvalNOR(t *testing.T) {
	r := Eval(OpNOR, 0, 0)
	if r.Value != 0xFFFFFFFF {
		t.Fatalf("NOR of zero/zero: got 0x%x", r.Value)
	}
}

func TestEvalWraps32(t *testing.T) {
	r := Eval(OpADD, 0xFFFFFFFF, 1)
	if r.Value != 0 || !r.Zero {
		t.Fatalf("ADD should wrap mod 2^32: got %+v", r)
	}
}

func TestControlDecodeLwSw(t *testing.T) {
	if got := ControlDecode(0b00, 0); got != OpADD {
		t.Fatalf("lw/sw aluOp should select ADD, got %v", got)
	}
}

func TestControlDecodeBeq(t *testing.T) {
	if got := ControlDecode(0b01, 0); got != OpSUB {
		t.Fatalf("beq aluOp should select SUB, got %v", got)
	}
}

func TestControlDecodeRType(t *testing.T) {
	cases := []struct {
		funct uint32
		want  Op
	}{
		{0x0, OpADD},
		{0x2, OpSUB},
		{0x4, OpAND},
		{0x5, OpOR},
		{0xA, OpSLT},
		{0xF, OpAND}, // unrecognised funct defaults to AND
	}
	for _, c := range cases {
		if got := ControlDecode(0b10, c.funct); got != c.want {
			t.Fatalf("funct 0x%x: got %v, want %v", c.funct, got, c.want)
		}
	}
}

func TestControlDecodeDefaultAluOp(t *testing.T) {
	if got := ControlDecode(0b11, 0x2); got != OpAND {
		t.Fatalf("unrecognised aluOp should default to AND, got %v", got)
	}
}
