package dnswire

// prefDomainRData covers MX, RT and KX: a 16-bit preference followed by a
// single domain name (RFC 1035 §3.3.9, RFC 1183 §3.3, RFC 2230 §3.1).
// Grounded on decode_mx/decode_rt/decode_kx in
// _examples/original_source/src/decode/resource_record/decode.rs, which
// share the same u16-then-domain shape.
type prefDomainRData struct {
	typ        Type
	Preference uint16
	Exchange   DomainName
}

func (d *prefDomainRData) Type() Type { return d.typ }

func registerPrefDomainRR(typ Type) {
	registerRR(typ, nil, func(body *cursor) (RData, error) {
		pref, err := body.u16()
		if err != nil {
			return nil, err
		}
		name, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		return &prefDomainRData{typ: typ, Preference: pref, Exchange: name}, nil
	}, func(d RData, w *writer) error {
		p := d.(*prefDomainRData)
		w.u16(p.Preference)
		return w.encodeDomainName(p.Exchange)
	})
}

// MX constructs a mail-exchange record's RData.
func MX(preference uint16, exchange DomainName) RData {
	return &prefDomainRData{typ: TypeMX, Preference: preference, Exchange: exchange}
}

// RT constructs a route-through record's RData.
func RT(preference uint16, host DomainName) RData {
	return &prefDomainRData{typ: TypeRT, Preference: preference, Exchange: host}
}

// KX constructs a key-exchanger record's RData.
func KX(preference uint16, exchanger DomainName) RData {
	return &prefDomainRData{typ: TypeKX, Preference: preference, Exchange: exchanger}
}

// AFSDBRecord locates an AFS cell database server (RFC 1183 §1).
type AFSDBRecord struct {
	Subtype  uint16
	Hostname DomainName
}

func (*AFSDBRecord) Type() Type { return TypeAFSDB }

// PXRecord maps an RFC 822 mail address to an X.400 one (RFC 2163 §4).
type PXRecord struct {
	Preference uint16
	Map822     DomainName
	MapX400    DomainName
}

func (*PXRecord) Type() Type { return TypePX }

// twoDomainRData covers MINFO and RP: two domain names back to back
// (RFC 1035 §3.3.7, RFC 1183 §2.2).
type twoDomainRData struct {
	typ    Type
	First  DomainName
	Second DomainName
}

func (d *twoDomainRData) Type() Type { return d.typ }

// MINFO constructs a mailbox-information record's RData.
func MINFO(rmailbx, emailbx DomainName) RData {
	return &twoDomainRData{typ: TypeMINFO, First: rmailbx, Second: emailbx}
}

// RP constructs a responsible-person record's RData.
func RP(mbox, txt DomainName) RData {
	return &twoDomainRData{typ: TypeRP, First: mbox, Second: txt}
}

// LPRecord pairs a preference with a domain name carrying locator records
// (RFC 6742 §2.5).
type LPRecord struct {
	Preference uint16
	FQDN       DomainName
}

func (*LPRecord) Type() Type { return TypeLP }

func init() {
	registerPrefDomainRR(TypeMX)
	registerPrefDomainRR(TypeRT)
	registerPrefDomainRR(TypeKX)

	registerRR(TypeAFSDB, nil, func(body *cursor) (RData, error) {
		subtype, err := body.u16()
		if err != nil {
			return nil, err
		}
		if subtype != 1 && subtype != 2 {
			return nil, &EnumError{Enum: "AFSDB.Subtype", Value: uint64(subtype)}
		}
		host, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		return &AFSDBRecord{Subtype: subtype, Hostname: host}, nil
	}, func(d RData, w *writer) error {
		a := d.(*AFSDBRecord)
		if a.Subtype != 1 && a.Subtype != 2 {
			return &EnumError{Enum: "AFSDB.Subtype", Value: uint64(a.Subtype)}
		}
		w.u16(a.Subtype)
		return w.encodeDomainName(a.Hostname)
	})

	registerRR(TypePX, nil, func(body *cursor) (RData, error) {
		pref, err := body.u16()
		if err != nil {
			return nil, err
		}
		map822, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		mapX400, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		return &PXRecord{Preference: pref, Map822: map822, MapX400: mapX400}, nil
	}, func(d RData, w *writer) error {
		p := d.(*PXRecord)
		w.u16(p.Preference)
		if err := w.encodeDomainName(p.Map822); err != nil {
			return err
		}
		return w.encodeDomainName(p.MapX400)
	})

	registerRR(TypeMINFO, nil, func(body *cursor) (RData, error) {
		first, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		second, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		return &twoDomainRData{typ: TypeMINFO, First: first, Second: second}, nil
	}, func(d RData, w *writer) error {
		t := d.(*twoDomainRData)
		if err := w.encodeDomainName(t.First); err != nil {
			return err
		}
		return w.encodeDomainName(t.Second)
	})

	registerRR(TypeRP, nil, func(body *cursor) (RData, error) {
		first, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		second, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		return &twoDomainRData{typ: TypeRP, First: first, Second: second}, nil
	}, func(d RData, w *writer) error {
		t := d.(*twoDomainRData)
		if err := w.encodeDomainName(t.First); err != nil {
			return err
		}
		return w.encodeDomainName(t.Second)
	})

	registerRR(TypeLP, nil, func(body *cursor) (RData, error) {
		pref, err := body.u16()
		if err != nil {
			return nil, err
		}
		fqdn, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		return &LPRecord{Preference: pref, FQDN: fqdn}, nil
	}, func(d RData, w *writer) error {
		lp := d.(*LPRecord)
		w.u16(lp.Preference)
		return w.encodeDomainName(lp.FQDN)
	})
}
