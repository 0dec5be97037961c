package dnswire

import (
	"encoding/binary"
	"net"
)

// writer is an append-only byte buffer mirroring cursor's scalar readers,
// plus two encode-only facilities: a deferred length index for RDLENGTH-style
// back-patching, and a domain-name compression index.
//
// Grounded on internal/message/builder.go's DNSMessageBuilder append style,
// generalized per spec §4.2; the compression index is passed around as a
// plain value on the writer (scoped to one encode call) rather than shared
// globally, per spec §9's re-architecture note.
type writer struct {
	buf []byte

	// compressionIndex maps a canonical (lowercase, dotted) domain-name
	// suffix to the offset where it was first emitted and the pointer-chase
	// depth recorded at that emission.
	compressionIndex map[string]compressionEntry
}

type compressionEntry struct {
	offset int
	depth  int
}

func newWriter() *writer {
	return &writer{compressionIndex: make(map[string]compressionEntry)}
}

func (w *writer) bytes() []byte { return w.buf }

func (w *writer) len() int { return len(w.buf) }

func (w *writer) writeBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) u16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) u32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) u64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// ipv4 writes the 4-byte big-endian form of ip. Callers must have already
// validated ip is an IPv4 address (see validateIPv4/validateIPv6).
func (w *writer) ipv4(ip net.IP) {
	w.buf = append(w.buf, ip.To4()...)
}

func (w *writer) ipv6(ip net.IP) {
	w.buf = append(w.buf, ip.To16()...)
}

// shortBytes writes a u8 length prefix followed by b. Fails if b is longer
// than 255 bytes.
func (w *writer) shortBytes(b []byte) error {
	if len(b) > 255 {
		return &InvariantError{Field: "short string", Value: len(b), Message: "exceeds 255 bytes"}
	}
	w.u8(uint8(len(b)))
	w.writeBytes(b)
	return nil
}

func (w *writer) shortString(s string) error {
	return w.shortBytes([]byte(s))
}

// lengthIndex is a reservation returned by createLengthIndex; set via
// setLengthIndex once the deferred region has been written.
type lengthIndex struct {
	offset int // offset of the reserved 2-byte length field
}

// createLengthIndex reserves two bytes now, to be back-patched later with
// the number of bytes written since the reservation (RDLENGTH, EDNS option
// length, and SVCB parameter value length).
func (w *writer) createLengthIndex() lengthIndex {
	idx := lengthIndex{offset: w.len()}
	w.u16(0)
	return idx
}

// setLengthIndex back-patches the reservation with the number of bytes
// written since it was created. Fails if that exceeds 65535.
func (w *writer) setLengthIndex(idx lengthIndex) error {
	n := w.len() - (idx.offset + 2)
	if n > 0xFFFF {
		return &InvariantError{Field: "RDLENGTH", Value: n, Message: "exceeds 65535 bytes"}
	}
	binary.BigEndian.PutUint16(w.buf[idx.offset:idx.offset+2], uint16(n))
	return nil
}
