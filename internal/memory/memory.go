// Package memory implements the word-addressable, endian-tagged byte
// store shared by instruction memory and data memory.
//
// The synchronisation style is grounded on memory_bus.go's SystemBus: a
// contiguous byte slice guarded by a single sync.RWMutex, exposing
// word-granularity little/big-endian accessors. Unlike the teacher's
// fixed little-endian SystemBus, Endianness here is a parameter, per the
// simulator's data model.
package memory

import (
	"encoding/binary"
	"fmt"
	"sync"
)

// Endianness selects the byte order used to assemble and decompose the
// 32-bit words this memory exchanges with the pipeline.
type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

// Memory is an ordered sequence of bytes addressed 0..Size-1, read and
// written a 32-bit word at a time. It is safe for concurrent use.
type Memory struct {
	mu         sync.RWMutex
	bytes      []byte
	endianness Endianness

	// lastRead holds the previous read result, returned by WordReadWrite
	// when neither memRead nor memWrite is asserted — mirrors the
	// original Memory component's "hold the last sampled value" latch
	// behaviour for a cycle with no memory operation.
	lastRead uint32
}

// New allocates a zeroed memory of the given size in bytes.
func New(size int, endianness Endianness) *Memory {
	if endianness != LittleEndian && endianness != BigEndian {
		panic(fmt.Sprintf("memory: unsupported endianness %d", endianness))
	}
	return &Memory{bytes: make([]byte, size), endianness: endianness}
}

// Size returns the memory's capacity in bytes.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bytes)
}

func (m *Memory) order() binary.ByteOrder {
	if m.endianness == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// WordRead loads 4 bytes at addr..addr+3, assembled per endianness into
// a 32-bit word. Out-of-range access is an implementation fault.
func (m *Memory) WordRead(addr uint32) uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.wordReadLocked(addr)
}

func (m *Memory) wordReadLocked(addr uint32) uint32 {
	a := int(addr)
	if a < 0 || a+4 > len(m.bytes) {
		panic(fmt.Sprintf("memory: read address 0x%08x out of range (size %d)", addr, len(m.bytes)))
	}
	return m.order().Uint32(m.bytes[a : a+4])
}

// WordWrite decomposes data per endianness and stores it at
// addr..addr+3. Out-of-range access is an implementation fault.
func (m *Memory) WordWrite(addr uint32, data uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wordWriteLocked(addr, data)
}

func (m *Memory) wordWriteLocked(addr uint32, data uint32) {
	a := int(addr)
	if a < 0 || a+4 > len(m.bytes) {
		panic(fmt.Sprintf("memory: write address 0x%08x out of range (size %d)", addr, len(m.bytes)))
	}
	m.order().PutUint32(m.bytes[a:a+4], data)
}

// WordReadWrite implements the combined read/write port used by the MEM
// stage: if memWrite, data is stored at addr and returned unchanged; if
// memRead (and not memWrite), the word at addr is loaded and returned;
// if neither, the previous read value is returned (§4.6).
func (m *Memory) WordReadWrite(addr uint32, data uint32, memRead, memWrite bool) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if memWrite {
		m.wordWriteLocked(addr, data)
		return data
	}
	if memRead {
		m.lastRead = m.wordReadLocked(addr)
		return m.lastRead
	}
	return m.lastRead
}

// Reset clears every byte of the memory to zero.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bytes {
		m.bytes[i] = 0
	}
	m.lastRead = 0
}

// LoadWords populates the memory from a sparse address->value map, as
// produced by internal/loader from an image file. Addresses must be
// word-aligned and within range.
func (m *Memory) LoadWords(words map[uint32]uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for addr, val := range words {
		m.wordWriteLocked(addr, val)
	}
}

// Dump returns a snapshot of every word in the memory, in ascending
// address order, for use by the PVS printer.
func (m *Memory) Dump() []uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	words := make([]uint32, len(m.bytes)/4)
	for i := range words {
		words[i] = m.order().Uint32(m.bytes[i*4 : i*4+4])
	}
	return words
}
