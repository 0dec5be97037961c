package dnswire

import (
	"net"
	"unicode/utf8"
)

func isValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// validateIPv4 requires ip to hold a 4-byte-representable IPv4 address.
func validateIPv4(field string, ip net.IP) error {
	if ip.To4() == nil {
		return &InvariantError{Field: field, Value: ip.String(), Message: "not a valid IPv4 address"}
	}
	return nil
}

// validateIPv6 requires ip to have a 16-byte form: a 16-byte value or a
// 4-byte IPv4 address. IPv4 and IPv4-mapped addresses are accepted and are
// written as their 16-byte IPv4-mapped form; only other lengths are rejected.
func validateIPv6(field string, ip net.IP) error {
	if len(ip) != net.IPv6len && ip.To16() == nil {
		return &InvariantError{Field: field, Value: ip.String(), Message: "not a valid IPv6 address"}
	}
	return nil
}
