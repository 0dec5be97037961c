package dnswire

import (
	"fmt"
	"strings"
)

// String renders rr in zone-file-like presentation format, for debugging
// and test failure messages only; it is not part of the wire codec and is
// never parsed back.
//
// Grounded on the Display impls scattered across
// _examples/original_source/src/rr/*.rs (e.g. rfc_6891.rs's OPT, SRV's
// "name ttl class type rdata" convention), collapsed into one generic
// renderer keyed by RData's concrete type instead of one Display impl per
// type.
func (rr ResourceRecord) String() string {
	typ := rr.Data.Type()
	if opt, ok := rr.Data.(*OPT); ok {
		return opt.String()
	}
	return fmt.Sprintf("%s %d %s %s %s", rr.Name.String(), rr.TTL, rr.Class, typ, renderRData(rr.Data))
}

func (o *OPT) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, ". 0 IN OPT %d %d %d %v", o.RequestorPayloadSize, o.ExtendedRCode, o.Version, o.DNSSECBit)
	for _, opt := range o.Options {
		fmt.Fprintf(&b, " %s", renderEDNSOption(opt))
	}
	return b.String()
}

func renderEDNSOption(opt EDNSOption) string {
	switch opt.Code {
	case EDNSOptionECS:
		return fmt.Sprintf("%d %d %s", opt.ECS.SourcePrefixLength, opt.ECS.ScopePrefixLength, opt.ECS.Address)
	case EDNSOptionCookie:
		return fmt.Sprintf("%x%s", opt.Cookie.ClientCookie, renderServerCookie(opt.Cookie))
	case EDNSOptionPadding:
		return fmt.Sprintf("%d", opt.Padding)
	case EDNSOptionExtendedDNSError:
		return fmt.Sprintf("Extended DNS Errors %d %s", opt.ExtendedDNSError.InfoCode, opt.ExtendedDNSError.ExtraText)
	default:
		return fmt.Sprintf("OPT%d", opt.Code)
	}
}

func renderServerCookie(c *Cookie) string {
	if c.ServerCookie == nil {
		return ""
	}
	return fmt.Sprintf(" %x", c.ServerCookie)
}

func (sb *ServiceBinding) String() string {
	recordType := "SVCB"
	if sb.HTTPS {
		recordType = "HTTPS"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s IN %s %d %s", sb.TargetName.String(), recordType, sb.Priority, sb.TargetName.String())
	for _, p := range sb.Parameters {
		fmt.Fprintf(&b, " %s", renderServiceParameter(p))
	}
	return b.String()
}

func renderServiceParameter(p ServiceParameter) string {
	switch p.Key {
	case SvcParamMandatory:
		parts := make([]string, len(p.MandatoryKeys))
		for i, k := range p.MandatoryKeys {
			parts[i] = fmt.Sprintf("%d", k)
		}
		return "mandatory=" + strings.Join(parts, ",")
	case SvcParamALPN:
		return "alpn=" + strings.Join(p.ALPNIDs, ",")
	case SvcParamNoDefaultALPN:
		return "no-default-alpn"
	case SvcParamPort:
		return fmt.Sprintf("port=%d", p.Port)
	case SvcParamIPv4Hint:
		parts := make([]string, len(p.IPv4Hints))
		for i, ip := range p.IPv4Hints {
			parts[i] = ip.String()
		}
		return "ipv4hint=" + strings.Join(parts, ",")
	case SvcParamECH:
		return fmt.Sprintf("ech=%x", p.ECHConfigList)
	case SvcParamIPv6Hint:
		parts := make([]string, len(p.IPv6Hints))
		for i, ip := range p.IPv6Hints {
			parts[i] = ip.String()
		}
		return "ipv6hint=" + strings.Join(parts, ",")
	case SvcParamKey65535:
		return "reserved"
	default:
		return fmt.Sprintf("key%d=%x", p.Key, p.PrivateData)
	}
}

// renderRData gives a best-effort presentation of any registered RData. It
// intentionally does not cover every field of every type; this is a
// debugging aid, not a zone-file encoder.
func renderRData(d RData) string {
	switch v := d.(type) {
	case *domainRData:
		return v.Name.String()
	case *ARecord:
		return v.Address.String()
	case *AAAARecord:
		return v.Address.String()
	case *SOARecord:
		return fmt.Sprintf("%s %s %d %d %d %d %d", v.MName, v.RName, v.Serial, v.Refresh, v.Retry, v.Expire, v.Minimum)
	case *TXTRecord:
		return strings.Join(v.Strings, " ")
	case *SRVRecord:
		return fmt.Sprintf("%d %d %d %s", v.Priority, v.Weight, v.Port, v.Target)
	case *ServiceBinding:
		return v.String()
	default:
		return fmt.Sprintf("%+v", d)
	}
}

// String renders m's four sections, for debugging only.
func (m *Message) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "id=%d opcode=%s rcode=%s qr=%v", m.ID, m.Flags.Opcode, m.Flags.RCode, m.Flags.QR)
	for _, q := range m.Questions {
		fmt.Fprintf(&b, "\n;%s %s %s", q.Name.String(), q.QClass, q.QType)
	}
	for _, rr := range m.Answers {
		fmt.Fprintf(&b, "\n%s", rr.String())
	}
	for _, rr := range m.Authorities {
		fmt.Fprintf(&b, "\n%s", rr.String())
	}
	for _, rr := range m.Additionals {
		fmt.Fprintf(&b, "\n%s", rr.String())
	}
	return b.String()
}
