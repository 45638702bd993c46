package memory

import "testing"

func TestWordReadWriteLittleEndian(t *testing.T) {
	m := New(64, LittleEndian)
	m.WordWrite(0x10, 0xDEADBEEF)
	if got := m.WordRead(0x10); got != 0xDEADBEEF {
		t.Fatalf("WordRead: got 0x%x, want 0xDEADBEEF", got)
	}
}

func TestWordReadWriteBigEndian(t *testing.T) {
	m := New(64, BigEndian)
	m.WordWrite(0x10, 0xDEADBEEF)
	if got := m.WordRead(0x10); got != 0xDEADBEEF {
		t.Fatalf("WordRead: got 0x%x, want 0xDEADBEEF", got)
	}

	le := New(64, LittleEndian)
	le.WordWrite(0x10, 0xDEADBEEF)
	same := *m
	_ = same
	// Dump assembles words with each memory's own byte order, so the
	// word-level views of identical writes agree across endiannesses.
	beDump := m.Dump()
	leDump := le.Dump()
	if beDump[4] != leDump[4] {
		t.Fatalf("expected matching word-level dumps for identical writes regardless of endianness, got be=0x%x le=0x%x", beDump[4], leDump[4])
	}
}

func TestWordReadWriteHoldsLastRead(t *testing.T) {
	m := New(64, LittleEndian)
	m.WordWrite(0x0, 0x11111111)
	got := m.WordReadWrite(0x0, 0, false, false)
	if got != 0 {
		t.Fatalf("expected zero hold value before any read, got 0x%x", got)
	}
	got = m.WordReadWrite(0x0, 0, true, false)
	if got != 0x11111111 {
		t.Fatalf("expected read value 0x11111111, got 0x%x", got)
	}
	got = m.WordReadWrite(0x0, 0, false, false)
	if got != 0x11111111 {
		t.Fatalf("expected held read value 0x11111111, got 0x%x", got)
	}
}

func TestWordReadWriteStore(t *testing.T) {
	m := New(64, LittleEndian)
	got := m.WordReadWrite(0x20, 0xCAFEBABE, false, true)
	if got != 0xCAFEBABE {
		t.Fatalf("store should return the written value, got 0x%x", got)
	}
	if stored := m.WordRead(0x20); stored != 0xCAFEBABE {
		t.Fatalf("stored value mismatch: got 0x%x", stored)
	}
}

func TestOutOfRangeReadPanics(t *testing.T) {
	m := New(16, LittleEndian)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-range read")
		}
	}()
	m.WordRead(0x100)
}

func TestLoadWords(t *testing.T) {
	m := New(32, LittleEndian)
	m.LoadWords(map[uint32]uint32{0x0: 1, 0x4: 2, 0x8: 3})
	if m.WordRead(0x4) != 2 {
		t.Fatalf("LoadWords did not populate address 0x4")
	}
}
