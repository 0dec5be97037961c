package dnswire

import "net"

// opaqueRData covers record types whose RDATA is an uninterpreted byte
// string spanning the whole RDLENGTH: NULL (RFC 1035 §3.3.10), EID and
// NIMLOC (the Nimrod locator pair), and NSAP (RFC 1706 §5, class IN, must
// be non-empty). Grounded on decode_null/decode_eid/decode_nimloc/decode_nsap
// in _examples/original_source/src/decode/resource_record/decode.rs.
type opaqueRData struct {
	typ  Type
	Data []byte
}

func (d *opaqueRData) Type() Type { return d.typ }

func registerOpaqueRR(typ Type, classConstraint *Class, requireNonEmpty bool) {
	registerRR(typ, classConstraint, func(body *cursor) (RData, error) {
		data, err := body.vec()
		if err != nil {
			return nil, err
		}
		if requireNonEmpty && len(data) == 0 {
			return nil, &InvariantError{Field: typ.String() + ".Data", Message: "must not be empty"}
		}
		return &opaqueRData{typ: typ, Data: data}, nil
	}, func(d RData, w *writer) error {
		o := d.(*opaqueRData)
		if requireNonEmpty && len(o.Data) == 0 {
			return &InvariantError{Field: typ.String() + ".Data", Message: "must not be empty"}
		}
		w.writeBytes(o.Data)
		return nil
	})
}

// NULLData constructs a NULL record's RData.
func NULLData(data []byte) RData { return &opaqueRData{typ: TypeNULL, Data: data} }

// EID constructs an Endpoint Identifier record's RData.
func EID(data []byte) RData { return &opaqueRData{typ: TypeEID, Data: data} }

// NIMLOC constructs a Nimrod Locator record's RData.
func NIMLOC(data []byte) RData { return &opaqueRData{typ: TypeNIMLOC, Data: data} }

// NSAP constructs an NSAP-address record's RData.
func NSAP(data []byte) RData { return &opaqueRData{typ: TypeNSAP, Data: data} }

// SRVRecord locates services for a symbolic domain (RFC 2782).
type SRVRecord struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   DomainName
}

func (*SRVRecord) Type() Type { return TypeSRV }

// LOCRecord encodes geographic location (RFC 1876 §2).
type LOCRecord struct {
	Version   uint8
	Size      uint8
	HorizPre  uint8
	VertPre   uint8
	Latitude  uint32
	Longitude uint32
	Altitude  uint32
}

func (*LOCRecord) Type() Type { return TypeLOC }

// EUI48Record carries a 48-bit IEEE MAC address (RFC 7043 §3).
type EUI48Record struct {
	Address [6]byte
}

func (*EUI48Record) Type() Type { return TypeEUI48 }

// EUI64Record carries a 64-bit IEEE MAC address (RFC 7043 §4).
type EUI64Record struct {
	Address [8]byte
}

func (*EUI64Record) Type() Type { return TypeEUI64 }

// NIDRecord carries an ILNP Node Identifier (RFC 6742 §2.1).
type NIDRecord struct {
	Preference uint16
	NodeID     uint64
}

func (*NIDRecord) Type() Type { return TypeNID }

// L32Record carries an ILNP 32-bit locator (RFC 6742 §2.2).
type L32Record struct {
	Preference uint16
	Locator32  uint32
}

func (*L32Record) Type() Type { return TypeL32 }

// L64Record carries an ILNP 64-bit locator (RFC 6742 §2.3).
type L64Record struct {
	Preference uint16
	Locator64  uint64
}

func (*L64Record) Type() Type { return TypeL64 }

// APLItem is one address-prefix-list entry (RFC 3123 §4).
type APLItem struct {
	AddressFamily uint16
	Prefix        uint8
	Negation      bool
	AFDPart       []byte
}

// APLRecord lists address prefixes (RFC 3123 §4).
type APLRecord struct {
	Items []APLItem
}

func (*APLRecord) Type() Type { return TypeAPL }

// validateAPLAddressFamily requires family to be one of the two registered
// Address Family Identifiers (RFC 3123 §4) and returns its bit length.
func validateAPLAddressFamily(family uint16) (int, error) {
	switch family {
	case 1:
		return 32, nil
	case 2:
		return 128, nil
	default:
		return 0, &EnumError{Enum: "APL.AddressFamily", Value: uint64(family)}
	}
}

// checkAPLPrefix zero-extends afd to the family's full address length and
// requires every bit beyond prefix to be zero, mirroring APItem::new's
// address.check_prefix(prefix) call.
func checkAPLPrefix(field string, bitLen int, prefix uint8, afd []byte) error {
	byteLen := bitLen / 8
	if len(afd) > byteLen {
		return &InvariantError{Field: field, Value: len(afd), Message: "exceeds address family length"}
	}
	if int(prefix) > bitLen {
		return &InvariantError{Field: field, Value: prefix, Message: "prefix length out of range"}
	}
	full := make([]byte, byteLen)
	copy(full, afd)
	return checkAddressPrefix(field, net.IP(full), bitLen, prefix)
}

func init() {
	registerOpaqueRR(TypeNULL, nil, false)
	registerOpaqueRR(TypeEID, nil, false)
	registerOpaqueRR(TypeNIMLOC, nil, false)
	registerOpaqueRR(TypeNSAP, classIN(), true)

	registerRR(TypeSRV, nil, func(body *cursor) (RData, error) {
		priority, err := body.u16()
		if err != nil {
			return nil, err
		}
		weight, err := body.u16()
		if err != nil {
			return nil, err
		}
		port, err := body.u16()
		if err != nil {
			return nil, err
		}
		target, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		return &SRVRecord{Priority: priority, Weight: weight, Port: port, Target: target}, nil
	}, func(d RData, w *writer) error {
		s := d.(*SRVRecord)
		w.u16(s.Priority)
		w.u16(s.Weight)
		w.u16(s.Port)
		return w.encodeDomainName(s.Target)
	})

	registerRR(TypeLOC, nil, func(body *cursor) (RData, error) {
		version, err := body.u8()
		if err != nil {
			return nil, err
		}
		if version != 0 {
			return nil, &EnumError{Enum: "LOC.Version", Value: uint64(version)}
		}
		size, err := body.u8()
		if err != nil {
			return nil, err
		}
		horizPre, err := body.u8()
		if err != nil {
			return nil, err
		}
		vertPre, err := body.u8()
		if err != nil {
			return nil, err
		}
		lat, err := body.u32()
		if err != nil {
			return nil, err
		}
		lon, err := body.u32()
		if err != nil {
			return nil, err
		}
		alt, err := body.u32()
		if err != nil {
			return nil, err
		}
		return &LOCRecord{Version: version, Size: size, HorizPre: horizPre, VertPre: vertPre, Latitude: lat, Longitude: lon, Altitude: alt}, nil
	}, func(d RData, w *writer) error {
		l := d.(*LOCRecord)
		if l.Version != 0 {
			return &EnumError{Enum: "LOC.Version", Value: uint64(l.Version)}
		}
		w.u8(l.Version)
		w.u8(l.Size)
		w.u8(l.HorizPre)
		w.u8(l.VertPre)
		w.u32(l.Latitude)
		w.u32(l.Longitude)
		w.u32(l.Altitude)
		return nil
	})

	registerRR(TypeEUI48, nil, func(body *cursor) (RData, error) {
		b, err := body.read(6)
		if err != nil {
			return nil, err
		}
		var addr [6]byte
		copy(addr[:], b)
		return &EUI48Record{Address: addr}, nil
	}, func(d RData, w *writer) error {
		e := d.(*EUI48Record)
		w.writeBytes(e.Address[:])
		return nil
	})

	registerRR(TypeEUI64, nil, func(body *cursor) (RData, error) {
		b, err := body.read(8)
		if err != nil {
			return nil, err
		}
		var addr [8]byte
		copy(addr[:], b)
		return &EUI64Record{Address: addr}, nil
	}, func(d RData, w *writer) error {
		e := d.(*EUI64Record)
		w.writeBytes(e.Address[:])
		return nil
	})

	registerRR(TypeNID, nil, func(body *cursor) (RData, error) {
		pref, err := body.u16()
		if err != nil {
			return nil, err
		}
		nodeID, err := body.u64()
		if err != nil {
			return nil, err
		}
		return &NIDRecord{Preference: pref, NodeID: nodeID}, nil
	}, func(d RData, w *writer) error {
		n := d.(*NIDRecord)
		w.u16(n.Preference)
		w.u64(n.NodeID)
		return nil
	})

	registerRR(TypeL32, nil, func(body *cursor) (RData, error) {
		pref, err := body.u16()
		if err != nil {
			return nil, err
		}
		loc, err := body.u32()
		if err != nil {
			return nil, err
		}
		return &L32Record{Preference: pref, Locator32: loc}, nil
	}, func(d RData, w *writer) error {
		l := d.(*L32Record)
		w.u16(l.Preference)
		w.u32(l.Locator32)
		return nil
	})

	registerRR(TypeL64, nil, func(body *cursor) (RData, error) {
		pref, err := body.u16()
		if err != nil {
			return nil, err
		}
		loc, err := body.u64()
		if err != nil {
			return nil, err
		}
		return &L64Record{Preference: pref, Locator64: loc}, nil
	}, func(d RData, w *writer) error {
		l := d.(*L64Record)
		w.u16(l.Preference)
		w.u64(l.Locator64)
		return nil
	})

	registerRR(TypeAPL, classIN(), func(body *cursor) (RData, error) {
		var items []APLItem
		for !body.isFinished() {
			family, err := body.u16()
			if err != nil {
				return nil, err
			}
			bitLen, err := validateAPLAddressFamily(family)
			if err != nil {
				return nil, err
			}
			prefix, err := body.u8()
			if err != nil {
				return nil, err
			}
			rawLen, err := body.u8()
			if err != nil {
				return nil, err
			}
			negation := rawLen&0x80 != 0
			afdLen := int(rawLen &^ 0x80)
			afd, err := body.read(afdLen)
			if err != nil {
				return nil, err
			}
			if err := checkAPLPrefix("APLItem.AFDPart", bitLen, prefix, afd); err != nil {
				return nil, err
			}
			items = append(items, APLItem{AddressFamily: family, Prefix: prefix, Negation: negation, AFDPart: afd})
		}
		return &APLRecord{Items: items}, nil
	}, func(d RData, w *writer) error {
		a := d.(*APLRecord)
		for _, item := range a.Items {
			bitLen, err := validateAPLAddressFamily(item.AddressFamily)
			if err != nil {
				return err
			}
			if len(item.AFDPart) > 0x7F {
				return &InvariantError{Field: "APLItem.AFDPart", Value: len(item.AFDPart), Message: "exceeds 127 bytes"}
			}
			if err := checkAPLPrefix("APLItem.AFDPart", bitLen, item.Prefix, item.AFDPart); err != nil {
				return err
			}
			w.u16(item.AddressFamily)
			w.u8(item.Prefix)
			var lenByte uint8 = uint8(len(item.AFDPart))
			if item.Negation {
				lenByte |= 0x80
			}
			w.u8(lenByte)
			w.writeBytes(item.AFDPart)
		}
		return nil
	})
}
