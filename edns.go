package dnswire

// EDNSOptionCode identifies the kind of data carried by one EDNS option
// (RFC 6891 §6.1.2).
type EDNSOptionCode uint16

const (
	EDNSOptionECS              EDNSOptionCode = 0x0008
	EDNSOptionCookie           EDNSOptionCode = 0x000a
	EDNSOptionPadding          EDNSOptionCode = 0x000c
	EDNSOptionExtendedDNSError EDNSOptionCode = 0x000f
)

// EDNSOption is one OPT pseudo-record option. Exactly one of the typed
// fields is meaningful, selected by Code.
//
// Grounded on _examples/original_source/src/rr/edns/rfc_6891.rs's
// EDNSOption enum; flattened into a single struct with a Code discriminant
// rather than a Go interface, since every variant here is a plain value
// type with no behavior beyond encode/decode.
type EDNSOption struct {
	Code             EDNSOptionCode
	ECS              *ECS
	Cookie           *Cookie
	Padding          uint16
	ExtendedDNSError *ExtendedDNSError
}

// OPT is the EDNS pseudo-record (RFC 6891 §6.1). It reinterprets the
// standard CLASS and TTL fields: CLASS becomes the requestor's UDP payload
// size, and TTL is repacked into extended-rcode/version/DO-bit/reserved
// (spec §4.5).
//
// Grounded on _examples/original_source/src/rr/edns/rfc_6891.rs's OPT type
// and src/decode/rr/edns/rfc_6891.rs's rr_opt_ttl.
type OPT struct {
	RequestorPayloadSize uint16
	ExtendedRCode        uint8
	Version              uint8
	DNSSECBit            bool
	Options              []EDNSOption
}

func (*OPT) Type() Type { return TypeOPT }

// OPTResourceRecord wraps opt as a ResourceRecord with the root owner name
// OPT requires; Class and TTL are left zero since encodeResourceRecord
// reinterprets them from opt directly.
func OPTResourceRecord(opt *OPT) ResourceRecord {
	return ResourceRecord{Name: RootDomainName, Data: opt}
}

// ttlWord packs ExtendedRCode/Version/DNSSECBit into the encoded TTL field.
// The low reserved byte is always zero.
func (o *OPT) ttlWord() uint32 {
	var dnssec uint32
	if o.DNSSECBit {
		dnssec = 1
	}
	return uint32(o.ExtendedRCode)<<24 | uint32(o.Version)<<16 | dnssec<<8
}

func decodeOPTTTL(ttl uint32) (extendedRCode, version uint8, dnssec bool, err error) {
	extendedRCode = uint8(ttl >> 24)
	version = uint8(ttl >> 16)
	doByte := uint8(ttl >> 8)
	switch doByte {
	case 0:
		dnssec = false
	case 1:
		dnssec = true
	default:
		return 0, 0, false, &InvariantError{Field: "OPT.TTL", Value: doByte, Message: "DO byte must be 0 or 1"}
	}
	if reserved := uint8(ttl); reserved != 0 {
		return 0, 0, false, &InvariantError{Field: "OPT.TTL", Value: reserved, Message: "reserved byte must be zero"}
	}
	return extendedRCode, version, dnssec, nil
}

func decodeEDNSOption(c *cursor) (EDNSOption, error) {
	rawCode, err := c.u16()
	if err != nil {
		return EDNSOption{}, err
	}
	length, err := c.u16()
	if err != nil {
		return EDNSOption{}, err
	}
	body, err := c.sub(int(length))
	if err != nil {
		return EDNSOption{}, err
	}
	code := EDNSOptionCode(rawCode)
	opt := EDNSOption{Code: code}
	switch code {
	case EDNSOptionECS:
		ecs, err := decodeECS(body)
		if err != nil {
			return EDNSOption{}, err
		}
		opt.ECS = &ecs
	case EDNSOptionCookie:
		cookie, err := decodeCookie(body)
		if err != nil {
			return EDNSOption{}, err
		}
		opt.Cookie = &cookie
	case EDNSOptionPadding:
		padding, err := decodePadding(body)
		if err != nil {
			return EDNSOption{}, err
		}
		opt.Padding = padding
	case EDNSOptionExtendedDNSError:
		ede, err := decodeExtendedDNSError(body)
		if err != nil {
			return EDNSOption{}, err
		}
		opt.ExtendedDNSError = &ede
	default:
		return EDNSOption{}, &EnumError{Enum: "EDNSOptionCode", Value: uint64(rawCode)}
	}
	if err := body.finished(); err != nil {
		return EDNSOption{}, err
	}
	return opt, nil
}

func decodeECS(body *cursor) (ECS, error) {
	family, err := body.u16()
	if err != nil {
		return ECS{}, err
	}
	source, err := body.u8()
	if err != nil {
		return ECS{}, err
	}
	scope, err := body.u8()
	if err != nil {
		return ECS{}, err
	}
	raw, err := body.vec()
	if err != nil {
		return ECS{}, err
	}
	var address []byte
	switch family {
	case 1:
		if len(raw) > 4 {
			return ECS{}, boundsErr("ECS ipv4 address", 0, len(raw), 4)
		}
		address = make([]byte, 4)
		copy(address, raw)
	case 2:
		if len(raw) > 16 {
			return ECS{}, boundsErr("ECS ipv6 address", 0, len(raw), 16)
		}
		address = make([]byte, 16)
		copy(address, raw)
	default:
		return ECS{}, &EnumError{Enum: "ECS.AddressFamily", Value: uint64(family)}
	}
	return NewECS(source, scope, address)
}

func encodeECS(ecs *ECS, w *writer) error {
	if err := checkECSAddress(ecs.Address, maxU8(ecs.SourcePrefixLength, ecs.ScopePrefixLength)); err != nil {
		return err
	}
	if v4 := ecs.Address.To4(); v4 != nil {
		w.u16(1)
		w.u8(ecs.SourcePrefixLength)
		w.u8(ecs.ScopePrefixLength)
		w.writeBytes(v4)
		return nil
	}
	w.u16(2)
	w.u8(ecs.SourcePrefixLength)
	w.u8(ecs.ScopePrefixLength)
	w.writeBytes(ecs.Address.To16())
	return nil
}

func decodeCookie(body *cursor) (Cookie, error) {
	raw, err := body.vec()
	if err != nil {
		return Cookie{}, err
	}
	n := len(raw)
	var client [8]byte
	switch {
	case n == 8:
		copy(client[:], raw)
		return NewCookie(client, nil)
	case n >= 16 && n <= 40:
		copy(client[:], raw[:8])
		return NewCookie(client, raw[8:])
	default:
		return Cookie{}, &InvariantError{Field: "Cookie", Value: n, Message: "invalid cookie length"}
	}
}

func encodeCookie(cookie *Cookie, w *writer) error {
	w.writeBytes(cookie.ClientCookie[:])
	if cookie.ServerCookie != nil {
		n := len(cookie.ServerCookie)
		if n < minServerCookieLength || n > maxServerCookieLength {
			return &InvariantError{Field: "Cookie.ServerCookie", Value: n, Message: "must be 8-32 bytes"}
		}
		w.writeBytes(cookie.ServerCookie)
	}
	return nil
}

func decodePadding(body *cursor) (uint16, error) {
	raw, err := body.vec()
	if err != nil {
		return 0, err
	}
	for _, b := range raw {
		if b != 0 {
			return 0, &InvariantError{Field: "Padding", Value: b, Message: "padding bytes must be zero"}
		}
	}
	if len(raw) > 0xFFFF {
		return 0, &InvariantError{Field: "Padding", Value: len(raw), Message: "exceeds 65535 bytes"}
	}
	return uint16(len(raw)), nil
}

func encodePadding(n uint16, w *writer) error {
	w.writeBytes(make([]byte, n))
	return nil
}

func decodeExtendedDNSError(body *cursor) (ExtendedDNSError, error) {
	rawCode, err := body.u16()
	if err != nil {
		return ExtendedDNSError{}, err
	}
	infoCode, err := extendedDNSErrorCodeFromCode(rawCode)
	if err != nil {
		return ExtendedDNSError{}, err
	}
	raw, err := body.vec()
	if err != nil {
		return ExtendedDNSError{}, err
	}
	text, err := NewExtendedDNSErrorExtraText(string(raw))
	if err != nil {
		return ExtendedDNSError{}, err
	}
	return ExtendedDNSError{InfoCode: infoCode, ExtraText: text}, nil
}

func encodeExtendedDNSError(ede *ExtendedDNSError, w *writer) error {
	w.u16(uint16(ede.InfoCode))
	w.writeBytes([]byte(ede.ExtraText.String()))
	return nil
}

func encodeEDNSOption(opt EDNSOption, w *writer) error {
	w.u16(uint16(opt.Code))
	idx := w.createLengthIndex()
	var err error
	switch opt.Code {
	case EDNSOptionECS:
		if opt.ECS == nil {
			return &InvariantError{Field: "EDNSOption.ECS", Message: "must not be nil"}
		}
		err = encodeECS(opt.ECS, w)
	case EDNSOptionCookie:
		if opt.Cookie == nil {
			return &InvariantError{Field: "EDNSOption.Cookie", Message: "must not be nil"}
		}
		err = encodeCookie(opt.Cookie, w)
	case EDNSOptionPadding:
		err = encodePadding(opt.Padding, w)
	case EDNSOptionExtendedDNSError:
		if opt.ExtendedDNSError == nil {
			return &InvariantError{Field: "EDNSOption.ExtendedDNSError", Message: "must not be nil"}
		}
		err = encodeExtendedDNSError(opt.ExtendedDNSError, w)
	default:
		return &EnumError{Enum: "EDNSOptionCode", Value: uint64(opt.Code)}
	}
	if err != nil {
		return err
	}
	return w.setLengthIndex(idx)
}

// decodeOPTRecord decodes an OPT pseudo-record. The owner name must be root
// (spec §4.5); class and TTL are reinterpreted rather than validated as a
// normal Class/TTL pair.
func decodeOPTRecord(body *cursor, name DomainName, rawClass uint16, ttl uint32) (ResourceRecord, error) {
	if !name.IsRoot() {
		return ResourceRecord{}, &InvariantError{Field: "OPT.Name", Value: name.String(), Message: "owner name must be root"}
	}
	extendedRCode, version, dnssec, err := decodeOPTTTL(ttl)
	if err != nil {
		return ResourceRecord{}, err
	}
	var options []EDNSOption
	for !body.isFinished() {
		opt, err := decodeEDNSOption(body)
		if err != nil {
			return ResourceRecord{}, err
		}
		options = append(options, opt)
	}
	if err := body.finished(); err != nil {
		return ResourceRecord{}, err
	}
	opt := &OPT{
		RequestorPayloadSize: rawClass,
		ExtendedRCode:        extendedRCode,
		Version:              version,
		DNSSECBit:            dnssec,
		Options:              options,
	}
	return ResourceRecord{Name: name, Data: opt}, nil
}

func init() {
	rrCodecs[TypeOPT] = rrCodec{
		decode: decodeOPTRecord,
		encode: func(rr ResourceRecord, w *writer) error {
			opt := rr.Data.(*OPT)
			for _, o := range opt.Options {
				if err := encodeEDNSOption(o, w); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
