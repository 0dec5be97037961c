package dnswire

// Message is a complete decoded (or to-be-encoded) DNS message (spec §3).
// Section counts are never stored directly; they are derived from slice
// lengths on encode and validated against the header's counts on decode.
//
// Grounded on internal/message/message.go's DNSMessage aggregate, widened
// from the teacher's fixed 4-record mDNS shape to the general four-section
// layout of RFC 1035 §4.
type Message struct {
	ID          uint16
	Flags       Flags
	Questions   []Question
	Answers     []ResourceRecord
	Authorities []ResourceRecord
	Additionals []ResourceRecord
}

const (
	minMessageLength = 12
	maxMessageLength = 65536
)

// Decode parses a complete DNS message from msg (spec §3's top-level
// Decode operation). It requires every byte of msg to be consumed.
func Decode(msg []byte) (*Message, error) {
	if len(msg) < minMessageLength {
		return nil, boundsErr("Decode", 0, minMessageLength, len(msg))
	}
	if len(msg) > maxMessageLength {
		return nil, &BoundsError{Operation: "Decode", Offset: maxMessageLength, Message: "message exceeds 65536 bytes"}
	}
	c := newCursor(msg)
	h, err := decodeHeader(c)
	if err != nil {
		return nil, err
	}

	questions := make([]Question, 0, h.qdCount)
	for i := 0; i < int(h.qdCount); i++ {
		q, err := decodeQuestion(c)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	decodeSection := func(count uint16) ([]ResourceRecord, error) {
		rrs := make([]ResourceRecord, 0, count)
		for i := 0; i < int(count); i++ {
			rr, err := decodeResourceRecord(c)
			if err != nil {
				return nil, err
			}
			rrs = append(rrs, rr)
		}
		return rrs, nil
	}

	answers, err := decodeSection(h.anCount)
	if err != nil {
		return nil, err
	}
	authorities, err := decodeSection(h.nsCount)
	if err != nil {
		return nil, err
	}
	additionals, err := decodeSection(h.arCount)
	if err != nil {
		return nil, err
	}
	if err := c.finished(); err != nil {
		return nil, err
	}

	return &Message{
		ID:          h.id,
		Flags:       h.flags,
		Questions:   questions,
		Answers:     answers,
		Authorities: authorities,
		Additionals: additionals,
	}, nil
}

// Encode serializes m to wire format (spec §3's top-level Encode
// operation). Section counts are derived from slice lengths.
func (m *Message) Encode() ([]byte, error) {
	if len(m.Questions) > 0xFFFF || len(m.Answers) > 0xFFFF || len(m.Authorities) > 0xFFFF || len(m.Additionals) > 0xFFFF {
		return nil, &InvariantError{Field: "Message", Message: "section has more than 65535 records"}
	}
	w := newWriter()
	h := header{
		id:      m.ID,
		flags:   m.Flags,
		qdCount: uint16(len(m.Questions)),
		anCount: uint16(len(m.Answers)),
		nsCount: uint16(len(m.Authorities)),
		arCount: uint16(len(m.Additionals)),
	}
	h.encode(w)

	for _, q := range m.Questions {
		if err := q.encode(w); err != nil {
			return nil, err
		}
	}
	for _, rr := range m.Answers {
		if err := encodeResourceRecord(rr, w); err != nil {
			return nil, err
		}
	}
	for _, rr := range m.Authorities {
		if err := encodeResourceRecord(rr, w); err != nil {
			return nil, err
		}
	}
	for _, rr := range m.Additionals {
		if err := encodeResourceRecord(rr, w); err != nil {
			return nil, err
		}
	}

	if w.len() > maxMessageLength {
		return nil, &BoundsError{Operation: "Encode", Offset: maxMessageLength, Message: "message exceeds 65536 bytes"}
	}
	return w.bytes(), nil
}
