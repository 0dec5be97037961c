package dnswire

// TXTRecord carries one or more length-prefixed character-strings spanning
// the whole RDLENGTH (RFC 1035 §3.3.14). Grounded on decode_txt in
// _examples/original_source/src/decode/resource_record/decode.rs, which
// loops shortString reads until the view is exhausted.
type TXTRecord struct {
	Strings []string
}

func (*TXTRecord) Type() Type { return TypeTXT }

// HINFORecord describes host CPU and OS (RFC 1035 §3.3.2).
type HINFORecord struct {
	CPU string
	OS  string
}

func (*HINFORecord) Type() Type { return TypeHINFO }

// X25Record carries an X.121 PSDN address as a string of decimal digits
// (RFC 1183 §3.1).
type X25Record struct {
	PSDNAddress PSDNAddress
}

func (*X25Record) Type() Type { return TypeX25 }

// ISDNRecord carries an ISDN number and an optional subaddress
// (RFC 1183 §3.2).
type ISDNRecord struct {
	ISDNAddress ISDNAddress
	SubAddress  string // empty if absent
}

func (*ISDNRecord) Type() Type { return TypeISDN }

// GPOSRecord carries geographical position as three character-strings,
// each 1-256 bytes (RFC 1712 §3).
type GPOSRecord struct {
	Longitude string
	Latitude  string
	Altitude  string
}

func (*GPOSRecord) Type() Type { return TypeGPOS }

// CAARecord constrains which CAs may issue certificates for a name
// (RFC 8659 §4).
type CAARecord struct {
	Flags uint8
	Tag   Tag
	Value []byte
}

func (*CAARecord) Type() Type { return TypeCAA }

// URIRecord maps a name to a URI with a priority/weight pair, SRV-style
// (RFC 7553 §4.3).
type URIRecord struct {
	Priority uint16
	Weight   uint16
	Target   string
}

func (*URIRecord) Type() Type { return TypeURI }

func isDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateGPOSField(field, s string) error {
	if len(s) < 1 || len(s) > 256 {
		return &InvariantError{Field: field, Value: len(s), Message: "must be 1-256 bytes"}
	}
	return nil
}

// validateCAATag requires tag to be non-empty ASCII alphanumeric
// (RFC 8659 §4.1), case-insensitively.
func validateCAATag(tag string) error {
	if tag == "" {
		return &CharsetError{Field: "CAA.Tag", Message: "must not be empty"}
	}
	for _, r := range tag {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isAlpha && !isDigit {
			return &CharsetError{Field: "CAA.Tag", Message: "must be ASCII alphanumeric"}
		}
	}
	return nil
}

func init() {
	registerRR(TypeTXT, nil, func(body *cursor) (RData, error) {
		var strs []string
		for !body.isFinished() {
			s, err := body.shortString()
			if err != nil {
				return nil, err
			}
			strs = append(strs, s)
		}
		if len(strs) == 0 {
			return nil, &InvariantError{Field: "TXT.Strings", Message: "must contain at least one string"}
		}
		return &TXTRecord{Strings: strs}, nil
	}, func(d RData, w *writer) error {
		txt := d.(*TXTRecord)
		if len(txt.Strings) == 0 {
			return &InvariantError{Field: "TXT.Strings", Message: "must contain at least one string"}
		}
		for _, s := range txt.Strings {
			if err := w.shortString(s); err != nil {
				return err
			}
		}
		return nil
	})

	registerRR(TypeHINFO, nil, func(body *cursor) (RData, error) {
		cpu, err := body.shortString()
		if err != nil {
			return nil, err
		}
		os, err := body.shortString()
		if err != nil {
			return nil, err
		}
		return &HINFORecord{CPU: cpu, OS: os}, nil
	}, func(d RData, w *writer) error {
		h := d.(*HINFORecord)
		if err := w.shortString(h.CPU); err != nil {
			return err
		}
		return w.shortString(h.OS)
	})

	registerRR(TypeX25, nil, func(body *cursor) (RData, error) {
		s, err := body.shortString()
		if err != nil {
			return nil, err
		}
		addr, err := NewPSDNAddress(s)
		if err != nil {
			return nil, err
		}
		return &X25Record{PSDNAddress: addr}, nil
	}, func(d RData, w *writer) error {
		x := d.(*X25Record)
		if _, err := NewPSDNAddress(x.PSDNAddress.String()); err != nil {
			return err
		}
		return w.shortString(x.PSDNAddress.String())
	})

	registerRR(TypeISDN, nil, func(body *cursor) (RData, error) {
		raw, err := body.shortString()
		if err != nil {
			return nil, err
		}
		addr, err := NewISDNAddress(raw)
		if err != nil {
			return nil, err
		}
		var sub string
		if !body.isFinished() {
			sub, err = body.shortString()
			if err != nil {
				return nil, err
			}
		}
		return &ISDNRecord{ISDNAddress: addr, SubAddress: sub}, nil
	}, func(d RData, w *writer) error {
		i := d.(*ISDNRecord)
		if _, err := NewISDNAddress(i.ISDNAddress.String()); err != nil {
			return err
		}
		if err := w.shortString(i.ISDNAddress.String()); err != nil {
			return err
		}
		if i.SubAddress != "" {
			return w.shortString(i.SubAddress)
		}
		return nil
	})

	registerRR(TypeGPOS, nil, func(body *cursor) (RData, error) {
		long, err := body.shortString()
		if err != nil {
			return nil, err
		}
		lat, err := body.shortString()
		if err != nil {
			return nil, err
		}
		alt, err := body.shortString()
		if err != nil {
			return nil, err
		}
		if err := validateGPOSField("GPOS.Longitude", long); err != nil {
			return nil, err
		}
		if err := validateGPOSField("GPOS.Latitude", lat); err != nil {
			return nil, err
		}
		if err := validateGPOSField("GPOS.Altitude", alt); err != nil {
			return nil, err
		}
		return &GPOSRecord{Longitude: long, Latitude: lat, Altitude: alt}, nil
	}, func(d RData, w *writer) error {
		g := d.(*GPOSRecord)
		if err := validateGPOSField("GPOS.Longitude", g.Longitude); err != nil {
			return err
		}
		if err := validateGPOSField("GPOS.Latitude", g.Latitude); err != nil {
			return err
		}
		if err := validateGPOSField("GPOS.Altitude", g.Altitude); err != nil {
			return err
		}
		if err := w.shortString(g.Longitude); err != nil {
			return err
		}
		if err := w.shortString(g.Latitude); err != nil {
			return err
		}
		return w.shortString(g.Altitude)
	})

	registerRR(TypeCAA, nil, func(body *cursor) (RData, error) {
		flags, err := body.u8()
		if err != nil {
			return nil, err
		}
		rawTag, err := body.shortString()
		if err != nil {
			return nil, err
		}
		tag, err := NewTag(rawTag)
		if err != nil {
			return nil, err
		}
		value, err := body.vec()
		if err != nil {
			return nil, err
		}
		return &CAARecord{Flags: flags, Tag: tag, Value: value}, nil
	}, func(d RData, w *writer) error {
		c := d.(*CAARecord)
		if _, err := NewTag(c.Tag.String()); err != nil {
			return err
		}
		w.u8(c.Flags)
		if err := w.shortString(c.Tag.String()); err != nil {
			return err
		}
		w.writeBytes(c.Value)
		return nil
	})

	registerRR(TypeURI, nil, func(body *cursor) (RData, error) {
		priority, err := body.u16()
		if err != nil {
			return nil, err
		}
		weight, err := body.u16()
		if err != nil {
			return nil, err
		}
		raw, err := body.vec()
		if err != nil {
			return nil, err
		}
		target, err := body.validateUTF8("URI.Target", raw)
		if err != nil {
			return nil, err
		}
		return &URIRecord{Priority: priority, Weight: weight, Target: target}, nil
	}, func(d RData, w *writer) error {
		u := d.(*URIRecord)
		if !isValidUTF8([]byte(u.Target)) {
			return &CharsetError{Field: "URI.Target", Message: "invalid UTF-8"}
		}
		w.u16(u.Priority)
		w.u16(u.Weight)
		w.writeBytes([]byte(u.Target))
		return nil
	})
}
