package dnswire

// Flags holds the bit-packed boolean and enum fields of the DNS header
// (spec §3/§6). The reserved Z bit has no field here — it is required to be
// zero on decode and is always emitted as zero on encode.
//
// Grounded on internal/message/message.go's DNSHeader.Flags bit layout
// (IsQuery/IsResponse/GetRCODE/GetOPCODE), split into named boolean/enum
// fields per spec §3 rather than keeping the raw packed uint16 the teacher
// stores, since the teacher's 4-type mDNS subset never needed ad/cd/opcode
// variety and stopped at accessor methods.
type Flags struct {
	QR     bool
	Opcode Opcode
	AA     bool
	TC     bool
	RD     bool
	RA     bool
	AD     bool
	CD     bool
	RCode  RCode
}

const (
	flagQR = 1 << 15
	flagAA = 1 << 10
	flagTC = 1 << 9
	flagRD = 1 << 8
	flagRA = 1 << 7
	flagZ  = 1 << 6
	flagAD = 1 << 5
	flagCD = 1 << 4
)

// decodeFlags unpacks the 16-bit flags word per spec §6's byte layout:
//
//	byte 0: qr(1) | opcode(4) | aa(1) | tc(1) | rd(1)
//	byte 1: ra(1) | Z(1)=0    | ad(1) | cd(1) | rcode(4)
func decodeFlags(raw uint16) (Flags, error) {
	if raw&flagZ != 0 {
		return Flags{}, &InvariantError{Field: "flags.Z", Value: raw, Message: "reserved Z bit must be zero"}
	}
	opcode, err := opcodeFromCode(uint8((raw >> 11) & 0xF))
	if err != nil {
		return Flags{}, err
	}
	rcode, err := rcodeFromCode(uint8(raw & 0xF))
	if err != nil {
		return Flags{}, err
	}
	return Flags{
		QR:     raw&flagQR != 0,
		Opcode: opcode,
		AA:     raw&flagAA != 0,
		TC:     raw&flagTC != 0,
		RD:     raw&flagRD != 0,
		RA:     raw&flagRA != 0,
		AD:     raw&flagAD != 0,
		CD:     raw&flagCD != 0,
		RCode:  rcode,
	}, nil
}

func (f Flags) encode() uint16 {
	var raw uint16
	if f.QR {
		raw |= flagQR
	}
	raw |= uint16(f.Opcode) << 11
	if f.AA {
		raw |= flagAA
	}
	if f.TC {
		raw |= flagTC
	}
	if f.RD {
		raw |= flagRD
	}
	if f.RA {
		raw |= flagRA
	}
	if f.AD {
		raw |= flagAD
	}
	if f.CD {
		raw |= flagCD
	}
	raw |= uint16(f.RCode)
	return raw
}

// header is the 12-byte fixed section preceding the four record sections.
// The four counts are not retained on Message — they're derived from
// section lengths on encode and validated against actual section lengths
// on decode (spec §3's invariant).
type header struct {
	id      uint16
	flags   Flags
	qdCount uint16
	anCount uint16
	nsCount uint16
	arCount uint16
}

func decodeHeader(c *cursor) (header, error) {
	id, err := c.u16()
	if err != nil {
		return header{}, err
	}
	rawFlags, err := c.u16()
	if err != nil {
		return header{}, err
	}
	flags, err := decodeFlags(rawFlags)
	if err != nil {
		return header{}, err
	}
	qd, err := c.u16()
	if err != nil {
		return header{}, err
	}
	an, err := c.u16()
	if err != nil {
		return header{}, err
	}
	ns, err := c.u16()
	if err != nil {
		return header{}, err
	}
	ar, err := c.u16()
	if err != nil {
		return header{}, err
	}
	return header{id: id, flags: flags, qdCount: qd, anCount: an, nsCount: ns, arCount: ar}, nil
}

func (h header) encode(w *writer) {
	w.u16(h.id)
	w.u16(h.flags.encode())
	w.u16(h.qdCount)
	w.u16(h.anCount)
	w.u16(h.nsCount)
	w.u16(h.arCount)
}
