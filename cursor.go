package dnswire

import (
	"encoding/binary"
	"net"
)

// cursor is a bounded sequential reader over an immutable byte slice.
//
// Every cursor carries a reference to the root message bytes (needed to
// follow name-compression pointers, which index into the original message
// regardless of how many sub-cursors deep the current read is) plus its own
// view bounds within that buffer.
//
// Grounded on internal/message/parser.go's offset-threading ParseX(msg,
// offset) functions, generalized into a value per spec §9's "message view"
// note so sub-cursors don't need a parent chain — they carry the root slice
// directly.
type cursor struct {
	root   []byte // the full message, for pointer following
	start  int    // absolute offset of this view's first byte
	end    int    // absolute offset one past this view's last byte
	offset int     // absolute current read position, start <= offset <= end
}

// newCursor creates a cursor over the entirety of msg.
func newCursor(msg []byte) *cursor {
	return &cursor{root: msg, start: 0, end: len(msg), offset: 0}
}

// pos returns the cursor's current absolute offset into the root message.
func (c *cursor) pos() int { return c.offset }

// remaining returns the number of unread bytes in this view.
func (c *cursor) remaining() int { return c.end - c.offset }

// isFinished reports whether the view has been fully consumed.
func (c *cursor) isFinished() bool { return c.offset == c.end }

// finished requires the view to be fully consumed, failing with a bounds
// error carrying the number of leftover bytes otherwise.
func (c *cursor) finished() error {
	if c.offset != c.end {
		return &BoundsError{Operation: "finished", Offset: c.offset, Available: c.end - c.offset, Message: "unconsumed bytes remain"}
	}
	return nil
}

// read returns the next n bytes, advancing the cursor.
func (c *cursor) read(n int) ([]byte, error) {
	if n < 0 || c.offset+n > c.end {
		return nil, boundsErr("read", c.offset, n, c.end-c.offset)
	}
	b := c.root[c.offset : c.offset+n]
	c.offset += n
	return b, nil
}

// sub carves out a child cursor over the next n bytes of this view and
// advances this cursor past them. The child's operations cannot read past
// its own n-byte end, but it still shares the root buffer so name decoding
// inside it can follow pointers anywhere in the message.
func (c *cursor) sub(n int) (*cursor, error) {
	if n < 0 || c.offset+n > c.end {
		return nil, boundsErr("sub", c.offset, n, c.end-c.offset)
	}
	child := &cursor{root: c.root, start: c.offset, end: c.offset + n, offset: c.offset}
	c.offset += n
	return child, nil
}

// atRoot constructs a cursor anchored at an absolute offset into the root
// message, used exclusively to follow a domain-name compression pointer.
func (c *cursor) atRoot(offset int) (*cursor, error) {
	if offset < 0 || offset > len(c.root) {
		return nil, boundsErr("name pointer", offset, 0, len(c.root))
	}
	return &cursor{root: c.root, start: 0, end: len(c.root), offset: offset}, nil
}

func (c *cursor) u8() (uint8, error) {
	b, err := c.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *cursor) u64() (uint64, error) {
	b, err := c.read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (c *cursor) ipv4() (net.IP, error) {
	b, err := c.read(4)
	if err != nil {
		return nil, err
	}
	ip := make(net.IP, 4)
	copy(ip, b)
	return ip, nil
}

func (c *cursor) ipv6() (net.IP, error) {
	b, err := c.read(16)
	if err != nil {
		return nil, err
	}
	ip := make(net.IP, 16)
	copy(ip, b)
	return ip, nil
}

// shortBytes reads a u8 length prefix followed by that many raw bytes.
func (c *cursor) shortBytes() ([]byte, error) {
	n, err := c.u8()
	if err != nil {
		return nil, err
	}
	return c.read(int(n))
}

// shortString reads a length-prefixed short string and validates it as
// UTF-8, per spec §4.1's "validated UTF-8 for string-typed payloads".
func (c *cursor) shortString() (string, error) {
	b, err := c.shortBytes()
	if err != nil {
		return "", err
	}
	return c.validateUTF8("short string", b)
}

// vec reads every remaining byte in this view.
func (c *cursor) vec() ([]byte, error) {
	return c.read(c.remaining())
}

func (c *cursor) validateUTF8(field string, b []byte) (string, error) {
	if !isValidUTF8(b) {
		return "", &CharsetError{Field: field, Message: "invalid UTF-8"}
	}
	return string(b), nil
}
