package dnswire

// SOARecord marks the start of a zone of authority (RFC 1035 §3.3.13).
// Grounded on decode_soa in
// _examples/original_source/src/decode/resource_record/decode.rs, which
// reads two domain names followed by five u32 fields in this exact order.
type SOARecord struct {
	MName   DomainName
	RName   DomainName
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (*SOARecord) Type() Type { return TypeSOA }

func init() {
	registerRR(TypeSOA, nil, func(body *cursor) (RData, error) {
		mname, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		rname, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		serial, err := body.u32()
		if err != nil {
			return nil, err
		}
		refresh, err := body.u32()
		if err != nil {
			return nil, err
		}
		retry, err := body.u32()
		if err != nil {
			return nil, err
		}
		expire, err := body.u32()
		if err != nil {
			return nil, err
		}
		minimum, err := body.u32()
		if err != nil {
			return nil, err
		}
		return &SOARecord{
			MName: mname, RName: rname,
			Serial: serial, Refresh: refresh, Retry: retry,
			Expire: expire, Minimum: minimum,
		}, nil
	}, func(d RData, w *writer) error {
		soa := d.(*SOARecord)
		if err := w.encodeDomainName(soa.MName); err != nil {
			return err
		}
		if err := w.encodeDomainName(soa.RName); err != nil {
			return err
		}
		w.u32(soa.Serial)
		w.u32(soa.Refresh)
		w.u32(soa.Retry)
		w.u32(soa.Expire)
		w.u32(soa.Minimum)
		return nil
	})
}
