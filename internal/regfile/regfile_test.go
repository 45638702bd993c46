package regfile

import "testing"

func TestR0AlwaysZero(t *testing.T) {
	f := New()
	f.Set(0, 0xFFFFFFFF)
	if got := f.Read(0); got != 0 {
		t.Fatalf("R0 read: got 0x%x, want 0", got)
	}
}

func TestWriteIgnoredWithoutRegWrite(t *testing.T) {
	f := New()
	f.Write(false, 5, 0x123)
	if got := f.Read(5); got != 0 {
		t.Fatalf("write without regWrite should be dropped, got 0x%x", got)
	}
}

func TestWriteToR0Dropped(t *testing.T) {
	f := New()
	f.Write(true, 0, 0xDEAD)
	if got := f.Read(0); got != 0 {
		t.Fatalf("write to R0 should be dropped, got 0x%x", got)
	}
}

func TestReadPorts(t *testing.T) {
	f := New()
	f.Set(1, 5)
	f.Set(2, 7)
	a, b := f.ReadPorts(1, 2)
	if a != 5 || b != 7 {
		t.Fatalf("ReadPorts: got (%d, %d), want (5, 7)", a, b)
	}
}

func TestSynchronousWriteThenRead(t *testing.T) {
	f := New()
	f.Write(true, 9, 42)
	if got := f.Read(9); got != 42 {
		t.Fatalf("Read after Write: got %d, want 42", got)
	}
}
