package dnswire

import (
	"net"
	"strings"
)

// PSDNAddress is an X.121 PSDN address: a non-empty string of decimal
// digits (RFC 1183 §3.1).
//
// Grounded on _examples/original_source/src/rr/subtypes.rs's
// PSDNAddress::try_from.
type PSDNAddress struct {
	value string
}

// NewPSDNAddress validates s is composed entirely of decimal digits.
func NewPSDNAddress(s string) (PSDNAddress, error) {
	if !isDecimalDigits(s) {
		return PSDNAddress{}, &CharsetError{Field: "PSDNAddress", Message: "must be decimal digits"}
	}
	return PSDNAddress{value: s}, nil
}

func (p PSDNAddress) String() string { return p.value }

// ISDNAddress is an ISDN number: a non-empty string of decimal digits
// (RFC 1183 §3.2).
//
// Grounded on _examples/original_source/src/rr/subtypes.rs's
// ISDNAddress::try_from.
type ISDNAddress struct {
	value string
}

// NewISDNAddress validates s is composed entirely of decimal digits.
func NewISDNAddress(s string) (ISDNAddress, error) {
	if !isDecimalDigits(s) {
		return ISDNAddress{}, &CharsetError{Field: "ISDNAddress", Message: "must be decimal digits"}
	}
	return ISDNAddress{value: s}, nil
}

func (i ISDNAddress) String() string { return i.value }

// Tag is a CAA property tag: non-empty ASCII alphanumeric, stored
// case-folded to lowercase (RFC 8659 §4.1).
//
// Grounded on _examples/original_source/src/rr/subtypes.rs's Tag::try_from.
type Tag struct {
	value string
}

// NewTag validates s against the CAA tag grammar and returns it lowercased.
func NewTag(s string) (Tag, error) {
	if err := validateCAATag(s); err != nil {
		return Tag{}, err
	}
	return Tag{value: strings.ToLower(s)}, nil
}

func (t Tag) String() string { return t.value }

// Cookie is an EDNS COOKIE option value (RFC 7873 §4). The client cookie is
// always present and exactly 8 bytes; the server cookie, when present, must
// be 8-32 bytes.
//
// Grounded on _examples/original_source/src/rr/edns/rfc_7873.rs's Cookie
// type and its Cookie::new/set_server_cookie validation.
type Cookie struct {
	ClientCookie [8]byte
	ServerCookie []byte // nil if absent
}

const (
	minServerCookieLength = 8
	maxServerCookieLength = 32
)

// NewCookie validates serverCookie's length (if present) before constructing
// a Cookie.
func NewCookie(clientCookie [8]byte, serverCookie []byte) (Cookie, error) {
	if serverCookie != nil {
		n := len(serverCookie)
		if n < minServerCookieLength || n > maxServerCookieLength {
			return Cookie{}, &InvariantError{Field: "Cookie.ServerCookie", Value: n, Message: "must be 8-32 bytes"}
		}
	}
	return Cookie{ClientCookie: clientCookie, ServerCookie: serverCookie}, nil
}

// ExtendedDNSErrorExtraText is the free-text component of an Extended DNS
// Error option (RFC 8914 §4). Bounded so a u16 length prefix can frame it.
//
// Grounded on _examples/original_source/src/rr/edns/rfc_8914.rs's
// ExtendedDNSErrorExtraText::try_from.
type ExtendedDNSErrorExtraText struct {
	text string
}

const maxExtendedDNSErrorExtraText = 0xFFFF - 2

// NewExtendedDNSErrorExtraText validates text fits the option's length
// budget.
func NewExtendedDNSErrorExtraText(text string) (ExtendedDNSErrorExtraText, error) {
	if len(text) > maxExtendedDNSErrorExtraText {
		return ExtendedDNSErrorExtraText{}, &InvariantError{Field: "ExtendedDNSErrorExtraText", Value: len(text), Message: "too big"}
	}
	if !isValidUTF8([]byte(text)) {
		return ExtendedDNSErrorExtraText{}, &CharsetError{Field: "ExtendedDNSErrorExtraText", Message: "invalid UTF-8"}
	}
	return ExtendedDNSErrorExtraText{text: text}, nil
}

func (e ExtendedDNSErrorExtraText) String() string { return e.text }

// ExtendedDNSErrorCode is the info-code field of an Extended DNS Error
// option (RFC 8914 §5.2).
type ExtendedDNSErrorCode uint16

// Extended DNS Error codes (RFC 8914 §5.2), grounded on
// _examples/original_source/src/rr/edns/rfc_8914.rs's
// ExtendedDNSErrorCodes enum.
const (
	EDEOther                      ExtendedDNSErrorCode = 0
	EDEUnsupportedDNSKEYAlgorithm ExtendedDNSErrorCode = 1
	EDEUnsupportedDSDigestType    ExtendedDNSErrorCode = 2
	EDEStaleAnswer                ExtendedDNSErrorCode = 3
	EDEForgedAnswer               ExtendedDNSErrorCode = 4
	EDEDNSSECIndeterminate        ExtendedDNSErrorCode = 5
	EDEDNSSECBogus                ExtendedDNSErrorCode = 6
	EDESignatureExpired           ExtendedDNSErrorCode = 7
	EDESignatureNotYetValid       ExtendedDNSErrorCode = 8
	EDEDNSKEYMissing              ExtendedDNSErrorCode = 9
	EDERRSIGsMissing              ExtendedDNSErrorCode = 10
	EDENoZoneKeyBitSet            ExtendedDNSErrorCode = 11
	EDENSECMissing                ExtendedDNSErrorCode = 12
	EDECachedError                ExtendedDNSErrorCode = 13
	EDENotReady                   ExtendedDNSErrorCode = 14
	EDEBlocked                    ExtendedDNSErrorCode = 15
	EDECensored                   ExtendedDNSErrorCode = 16
	EDEFiltered                   ExtendedDNSErrorCode = 17
	EDEProhibited                 ExtendedDNSErrorCode = 18
	EDEStaleNXDomainAnswer        ExtendedDNSErrorCode = 19
	EDENotAuthoritative           ExtendedDNSErrorCode = 20
	EDENotSupported               ExtendedDNSErrorCode = 21
	EDENoReachableAuthority       ExtendedDNSErrorCode = 22
	EDENetworkError               ExtendedDNSErrorCode = 23
	EDEInvalidData                ExtendedDNSErrorCode = 24
)

var extendedDNSErrorCodeNames = map[ExtendedDNSErrorCode]bool{
	EDEOther: true, EDEUnsupportedDNSKEYAlgorithm: true, EDEUnsupportedDSDigestType: true,
	EDEStaleAnswer: true, EDEForgedAnswer: true, EDEDNSSECIndeterminate: true,
	EDEDNSSECBogus: true, EDESignatureExpired: true, EDESignatureNotYetValid: true,
	EDEDNSKEYMissing: true, EDERRSIGsMissing: true, EDENoZoneKeyBitSet: true,
	EDENSECMissing: true, EDECachedError: true, EDENotReady: true, EDEBlocked: true,
	EDECensored: true, EDEFiltered: true, EDEProhibited: true, EDEStaleNXDomainAnswer: true,
	EDENotAuthoritative: true, EDENotSupported: true, EDENoReachableAuthority: true,
	EDENetworkError: true, EDEInvalidData: true,
}

func extendedDNSErrorCodeFromCode(raw uint16) (ExtendedDNSErrorCode, error) {
	code := ExtendedDNSErrorCode(raw)
	if !extendedDNSErrorCodeNames[code] {
		return 0, &EnumError{Enum: "ExtendedDNSErrorCode", Value: uint64(raw)}
	}
	return code, nil
}

// ExtendedDNSError is the RFC 8914 EDNS option payload.
type ExtendedDNSError struct {
	InfoCode  ExtendedDNSErrorCode
	ExtraText ExtendedDNSErrorExtraText
}

// ECS is an EDNS Client Subnet option value (RFC 7871 §6). The address must
// have no set bits beyond max(SourcePrefixLength, ScopePrefixLength), per
// the "check_prefix" invariant.
//
// Grounded on _examples/original_source/src/rr/edns/rfc_7871.rs's ECS type
// and src/rr/mod.rs's Address::check_prefix.
type ECS struct {
	SourcePrefixLength uint8
	ScopePrefixLength  uint8
	Address            net.IP
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

// checkAddressPrefix requires every bit of ip beyond prefixLength to be
// zero, mirroring check_ipv4_addr/check_ipv6_addr.
func checkAddressPrefix(field string, ip net.IP, bitLen int, prefixLength uint8) error {
	if int(prefixLength) > bitLen {
		return &InvariantError{Field: field, Value: prefixLength, Message: "prefix length out of range"}
	}
	if int(prefixLength) == bitLen {
		return nil
	}
	index := int(prefixLength) / 8
	remain := uint(prefixLength) % 8
	mask := uint8(0xFF) >> remain
	if ip[index]&mask != 0 {
		return &InvariantError{Field: field, Value: ip.String(), Message: "address does not fit mask"}
	}
	for _, b := range ip[index+1:] {
		if b != 0 {
			return &InvariantError{Field: field, Value: ip.String(), Message: "address does not fit mask"}
		}
	}
	return nil
}

func checkECSAddress(address net.IP, prefixLength uint8) error {
	if v4 := address.To4(); v4 != nil {
		return checkAddressPrefix("ECS.Address", v4, 32, prefixLength)
	}
	return checkAddressPrefix("ECS.Address", address.To16(), 128, prefixLength)
}

// NewECS validates that address has no bits set beyond the wider of the two
// prefix lengths before constructing the option.
func NewECS(sourcePrefixLength, scopePrefixLength uint8, address net.IP) (ECS, error) {
	if err := checkECSAddress(address, maxU8(sourcePrefixLength, scopePrefixLength)); err != nil {
		return ECS{}, err
	}
	return ECS{SourcePrefixLength: sourcePrefixLength, ScopePrefixLength: scopePrefixLength, Address: address}, nil
}
