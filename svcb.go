package dnswire

import (
	"net"
	"sort"
)

// ServiceParameterKey is the IANA-registered numeric identifier of a
// SvcParam (draft-ietf-dnsop-svcb-https §14.3).
type ServiceParameterKey uint16

const (
	SvcParamMandatory     ServiceParameterKey = 0
	SvcParamALPN          ServiceParameterKey = 1
	SvcParamNoDefaultALPN ServiceParameterKey = 2
	SvcParamPort          ServiceParameterKey = 3
	SvcParamIPv4Hint      ServiceParameterKey = 4
	SvcParamECH           ServiceParameterKey = 5
	SvcParamIPv6Hint      ServiceParameterKey = 6
	SvcParamKey65535      ServiceParameterKey = 65535
)

// ServiceParameter is one key/value pair of a Service Binding record's
// parameter set. Exactly one field is populated per Key, except
// NoDefaultALPN and Key65535 which carry no value, and any other key
// (7-65534, including the 65280-65534 private-use range), whose raw value
// bytes are kept in PrivateData.
//
// Grounded on
// _examples/original_source/src/rr/draft_ietf_dnsop_svcb_https.rs's
// ServiceParameter enum.
type ServiceParameter struct {
	Key           ServiceParameterKey
	MandatoryKeys []ServiceParameterKey // SvcParamMandatory
	ALPNIDs       []string              // SvcParamALPN
	Port          uint16                // SvcParamPort
	IPv4Hints     []net.IP              // SvcParamIPv4Hint
	ECHConfigList []byte                // SvcParamECH
	IPv6Hints     []net.IP              // SvcParamIPv6Hint
	PrivateData   []byte                // any other key, including 65280-65534
}

// ServiceBinding is a SVCB or HTTPS record (draft-ietf-dnsop-svcb-https
// §2.2). Priority 0 is alias mode, in which Parameters must be empty;
// nonzero priority is service mode.
//
// Grounded on
// _examples/original_source/src/rr/draft_ietf_dnsop_svcb_https.rs's
// ServiceBinding type; the BTreeSet<ServiceParameter> ordered-by-key
// collection is rendered here as a plain slice that encode sorts and
// validates for duplicate keys, since Go has no ordered-set container in
// the examples pack worth adopting for one field.
type ServiceBinding struct {
	Priority   uint16
	TargetName DomainName
	Parameters []ServiceParameter
	HTTPS      bool
}

func (s *ServiceBinding) Type() Type {
	if s.HTTPS {
		return TypeHTTPS
	}
	return TypeSVCB
}

// IsAlias reports whether this binding is in alias mode (spec §9 resolves
// Open Question 2: alias mode with a non-empty parameter set is rejected
// outright on encode, rather than silently dropped).
func (s *ServiceBinding) IsAlias() bool { return s.Priority == 0 }

func decodeServiceParameter(key ServiceParameterKey, body *cursor) (ServiceParameter, error) {
	switch key {
	case SvcParamMandatory:
		var ids []ServiceParameterKey
		for !body.isFinished() {
			v, err := body.u16()
			if err != nil {
				return ServiceParameter{}, err
			}
			ids = append(ids, ServiceParameterKey(v))
		}
		return ServiceParameter{Key: key, MandatoryKeys: ids}, nil
	case SvcParamALPN:
		var ids []string
		for !body.isFinished() {
			s, err := body.shortString()
			if err != nil {
				return ServiceParameter{}, err
			}
			ids = append(ids, s)
		}
		return ServiceParameter{Key: key, ALPNIDs: ids}, nil
	case SvcParamNoDefaultALPN:
		return ServiceParameter{Key: key}, nil
	case SvcParamPort:
		port, err := body.u16()
		if err != nil {
			return ServiceParameter{}, err
		}
		return ServiceParameter{Key: key, Port: port}, nil
	case SvcParamIPv4Hint:
		var hints []net.IP
		for !body.isFinished() {
			ip, err := body.ipv4()
			if err != nil {
				return ServiceParameter{}, err
			}
			hints = append(hints, ip)
		}
		return ServiceParameter{Key: key, IPv4Hints: hints}, nil
	case SvcParamECH:
		length, err := body.u16()
		if err != nil {
			return ServiceParameter{}, err
		}
		config, err := body.vec()
		if err != nil {
			return ServiceParameter{}, err
		}
		if len(config) != int(length) {
			return ServiceParameter{}, &InvariantError{Field: "SvcParamECH", Value: len(config), Message: "length prefix mismatch"}
		}
		return ServiceParameter{Key: key, ECHConfigList: config}, nil
	case SvcParamIPv6Hint:
		var hints []net.IP
		for !body.isFinished() {
			ip, err := body.ipv6()
			if err != nil {
				return ServiceParameter{}, err
			}
			hints = append(hints, ip)
		}
		return ServiceParameter{Key: key, IPv6Hints: hints}, nil
	case SvcParamKey65535:
		return ServiceParameter{Key: key}, nil
	default:
		data, err := body.vec()
		if err != nil {
			return ServiceParameter{}, err
		}
		return ServiceParameter{Key: key, PrivateData: data}, nil
	}
}

func encodeServiceParameter(p ServiceParameter, w *writer) error {
	w.u16(uint16(p.Key))
	idx := w.createLengthIndex()
	switch p.Key {
	case SvcParamMandatory:
		keys := append([]ServiceParameterKey(nil), p.MandatoryKeys...)
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, k := range keys {
			w.u16(uint16(k))
		}
	case SvcParamALPN:
		for _, id := range p.ALPNIDs {
			if err := w.shortString(id); err != nil {
				return err
			}
		}
	case SvcParamNoDefaultALPN:
	case SvcParamPort:
		w.u16(p.Port)
	case SvcParamIPv4Hint:
		for _, ip := range p.IPv4Hints {
			if err := validateIPv4("SvcParamIPv4Hint", ip); err != nil {
				return err
			}
			w.ipv4(ip)
		}
	case SvcParamECH:
		if len(p.ECHConfigList) > 0xFFFF {
			return &InvariantError{Field: "SvcParamECH", Value: len(p.ECHConfigList), Message: "exceeds 65535 bytes"}
		}
		w.u16(uint16(len(p.ECHConfigList)))
		w.writeBytes(p.ECHConfigList)
	case SvcParamIPv6Hint:
		for _, ip := range p.IPv6Hints {
			if err := validateIPv6("SvcParamIPv6Hint", ip); err != nil {
				return err
			}
			w.ipv6(ip)
		}
	case SvcParamKey65535:
	default:
		w.writeBytes(p.PrivateData)
	}
	return w.setLengthIndex(idx)
}

func registerServiceBindingRR(typ Type, https bool) {
	registerRR(typ, classIN(), func(body *cursor) (RData, error) {
		priority, err := body.u16()
		if err != nil {
			return nil, err
		}
		target, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		var params []ServiceParameter
		if priority != 0 {
			var lastKey ServiceParameterKey
			haveLast := false
			for !body.isFinished() {
				rawKey, err := body.u16()
				if err != nil {
					return nil, err
				}
				key := ServiceParameterKey(rawKey)
				if haveLast && key <= lastKey {
					return nil, &InvariantError{Field: "ServiceBinding.Parameters", Value: rawKey, Message: "keys must appear in strictly ascending order"}
				}
				lastKey, haveLast = key, true
				length, err := body.u16()
				if err != nil {
					return nil, err
				}
				sub, err := body.sub(int(length))
				if err != nil {
					return nil, err
				}
				param, err := decodeServiceParameter(key, sub)
				if err != nil {
					return nil, err
				}
				if err := sub.finished(); err != nil {
					return nil, err
				}
				params = append(params, param)
			}
		}
		return &ServiceBinding{Priority: priority, TargetName: target, Parameters: params, HTTPS: https}, nil
	}, func(d RData, w *writer) error {
		sb := d.(*ServiceBinding)
		w.u16(sb.Priority)
		if err := w.encodeDomainName(sb.TargetName); err != nil {
			return err
		}
		if sb.IsAlias() {
			if len(sb.Parameters) > 0 {
				return &InvariantError{Field: "ServiceBinding.Parameters", Message: "alias mode (priority 0) must carry no parameters"}
			}
			return nil
		}
		params := append([]ServiceParameter(nil), sb.Parameters...)
		sort.Slice(params, func(i, j int) bool { return params[i].Key < params[j].Key })
		for i := 1; i < len(params); i++ {
			if params[i].Key == params[i-1].Key {
				return &InvariantError{Field: "ServiceBinding.Parameters", Value: params[i].Key, Message: "duplicate parameter key"}
			}
		}
		for _, p := range params {
			if err := encodeServiceParameter(p, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func init() {
	registerServiceBindingRR(TypeSVCB, false)
	registerServiceBindingRR(TypeHTTPS, true)
}
