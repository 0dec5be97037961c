package dnswire

// SSHFPRecord publishes an SSH public key fingerprint (RFC 4255 §3.1).
type SSHFPRecord struct {
	Algorithm   uint8
	FPType      uint8
	Fingerprint []byte
}

func (*SSHFPRecord) Type() Type { return TypeSSHFP }

// validateSSHFPAlgorithm requires algo to be one of the SSHFP algorithm
// numbers of RFC 4255 §3.1 (0, 1 or 2), mirroring rr_sshfp_algorithm. The
// later RFC 6594/7479 algorithm numbers are rejected.
func validateSSHFPAlgorithm(algo uint8) error {
	switch algo {
	case 0, 1, 2:
		return nil
	default:
		return &EnumError{Enum: "SSHFP.Algorithm", Value: uint64(algo)}
	}
}

// validateSSHFPType requires fpType to be one of the registered fingerprint
// types (RFC 4255 §3.1), mirroring rr_sshfp_type.
func validateSSHFPType(fpType uint8) error {
	switch fpType {
	case 0, 1:
		return nil
	default:
		return &EnumError{Enum: "SSHFP.FPType", Value: uint64(fpType)}
	}
}

// DNSKEYRecord publishes a DNSSEC public key (RFC 4034 §2.1). Protocol must
// always be 3 per RFC 4034 §2.1.2.
type DNSKEYRecord struct {
	ZoneKey          bool
	SecureEntryPoint bool
	Protocol         uint8
	Algorithm        uint8
	PublicKey        []byte
}

func (*DNSKEYRecord) Type() Type { return TypeDNSKEY }

// DSRecord is a Delegation Signer record (RFC 4034 §5.1).
type DSRecord struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

func (*DSRecord) Type() Type { return TypeDS }

const (
	dnskeyFlagZoneKey      = 1 << 8
	dnskeySecureEntryPoint = 1 << 0
	dnskeyKnownFlagsMask   = dnskeyFlagZoneKey | dnskeySecureEntryPoint
)

func init() {
	registerRR(TypeSSHFP, nil, func(body *cursor) (RData, error) {
		algo, err := body.u8()
		if err != nil {
			return nil, err
		}
		if err := validateSSHFPAlgorithm(algo); err != nil {
			return nil, err
		}
		fpType, err := body.u8()
		if err != nil {
			return nil, err
		}
		if err := validateSSHFPType(fpType); err != nil {
			return nil, err
		}
		fp, err := body.vec()
		if err != nil {
			return nil, err
		}
		return &SSHFPRecord{Algorithm: algo, FPType: fpType, Fingerprint: fp}, nil
	}, func(d RData, w *writer) error {
		s := d.(*SSHFPRecord)
		if err := validateSSHFPAlgorithm(s.Algorithm); err != nil {
			return err
		}
		if err := validateSSHFPType(s.FPType); err != nil {
			return err
		}
		w.u8(s.Algorithm)
		w.u8(s.FPType)
		w.writeBytes(s.Fingerprint)
		return nil
	})

	registerRR(TypeDNSKEY, nil, func(body *cursor) (RData, error) {
		flags, err := body.u16()
		if err != nil {
			return nil, err
		}
		if flags&^dnskeyKnownFlagsMask != 0 {
			return nil, &InvariantError{Field: "DNSKEY.Flags", Value: flags, Message: "unknown flag bits must be zero"}
		}
		protocol, err := body.u8()
		if err != nil {
			return nil, err
		}
		if protocol != 3 {
			return nil, &InvariantError{Field: "DNSKEY.Protocol", Value: protocol, Message: "must be 3"}
		}
		algo, err := body.u8()
		if err != nil {
			return nil, err
		}
		key, err := body.vec()
		if err != nil {
			return nil, err
		}
		return &DNSKEYRecord{
			ZoneKey:          flags&dnskeyFlagZoneKey != 0,
			SecureEntryPoint: flags&dnskeySecureEntryPoint != 0,
			Protocol:         protocol,
			Algorithm:        algo,
			PublicKey:        key,
		}, nil
	}, func(d RData, w *writer) error {
		k := d.(*DNSKEYRecord)
		if k.Protocol != 3 {
			return &InvariantError{Field: "DNSKEY.Protocol", Value: k.Protocol, Message: "must be 3"}
		}
		var flags uint16
		if k.ZoneKey {
			flags |= dnskeyFlagZoneKey
		}
		if k.SecureEntryPoint {
			flags |= dnskeySecureEntryPoint
		}
		w.u16(flags)
		w.u8(k.Protocol)
		w.u8(k.Algorithm)
		w.writeBytes(k.PublicKey)
		return nil
	})

	registerRR(TypeDS, nil, func(body *cursor) (RData, error) {
		keyTag, err := body.u16()
		if err != nil {
			return nil, err
		}
		algo, err := body.u8()
		if err != nil {
			return nil, err
		}
		digestType, err := body.u8()
		if err != nil {
			return nil, err
		}
		digest, err := body.vec()
		if err != nil {
			return nil, err
		}
		return &DSRecord{KeyTag: keyTag, Algorithm: algo, DigestType: digestType, Digest: digest}, nil
	}, func(d RData, w *writer) error {
		ds := d.(*DSRecord)
		w.u16(ds.KeyTag)
		w.u8(ds.Algorithm)
		w.u8(ds.DigestType)
		w.writeBytes(ds.Digest)
		return nil
	})
}
