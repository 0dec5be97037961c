package dnswire

import "net"

// A is the 4-byte IPv4 host-address record (spec §4.4 table). Must be class
// IN. Grounded on decode_a in
// _examples/original_source/src/decode/resource_record/decode.rs.
type ARecord struct {
	Address net.IP
}

func (*ARecord) Type() Type { return TypeA }

// AAAA is the 16-byte IPv6 host-address record. Must be class IN.
type AAAARecord struct {
	Address net.IP
}

func (*AAAARecord) Type() Type { return TypeAAAA }

// WKS describes a well-known service on an IPv4 host (RFC 1035 §3.4.2).
// Must be class IN.
type WKSRecord struct {
	Address  net.IP
	Protocol uint8
	BitMap   []byte
}

func (*WKSRecord) Type() Type { return TypeWKS }

func init() {
	registerRR(TypeA, classIN(), func(body *cursor) (RData, error) {
		ip, err := body.ipv4()
		if err != nil {
			return nil, err
		}
		return &ARecord{Address: ip}, nil
	}, func(d RData, w *writer) error {
		a := d.(*ARecord)
		if err := validateIPv4("A.Address", a.Address); err != nil {
			return err
		}
		w.ipv4(a.Address)
		return nil
	})

	registerRR(TypeAAAA, classIN(), func(body *cursor) (RData, error) {
		ip, err := body.ipv6()
		if err != nil {
			return nil, err
		}
		return &AAAARecord{Address: ip}, nil
	}, func(d RData, w *writer) error {
		a := d.(*AAAARecord)
		if err := validateIPv6("AAAA.Address", a.Address); err != nil {
			return err
		}
		w.ipv6(a.Address)
		return nil
	})

	registerRR(TypeWKS, classIN(), func(body *cursor) (RData, error) {
		ip, err := body.ipv4()
		if err != nil {
			return nil, err
		}
		proto, err := body.u8()
		if err != nil {
			return nil, err
		}
		bitmap, err := body.vec()
		if err != nil {
			return nil, err
		}
		return &WKSRecord{Address: ip, Protocol: proto, BitMap: bitmap}, nil
	}, func(d RData, w *writer) error {
		wks := d.(*WKSRecord)
		if err := validateIPv4("WKS.Address", wks.Address); err != nil {
			return err
		}
		w.ipv4(wks.Address)
		w.u8(wks.Protocol)
		w.writeBytes(wks.BitMap)
		return nil
	})
}
