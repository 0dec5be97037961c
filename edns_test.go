package dnswire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCookieRoundTrip(t *testing.T) {
	client := [8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	cookie, err := NewCookie(client, []byte{9, 9, 9, 9, 9, 9, 9, 9})
	require.NoError(t, err)

	w := newWriter()
	require.NoError(t, encodeCookie(&cookie, w))

	c := newCursor(w.bytes())
	got, err := decodeCookie(c)
	require.NoError(t, err)
	require.Equal(t, cookie, got)
}

func TestCookieRejectsShortServerCookie(t *testing.T) {
	_, err := NewCookie([8]byte{}, []byte{1, 2, 3})
	require.Error(t, err)
	var invErr *InvariantError
	require.ErrorAs(t, err, &invErr)
}

func TestPaddingRejectsNonZeroBytes(t *testing.T) {
	c := newCursor([]byte{0, 1, 0})
	_, err := decodePadding(c)
	require.Error(t, err)
}

func TestExtendedDNSErrorRoundTrip(t *testing.T) {
	text, err := NewExtendedDNSErrorExtraText("signature expired")
	require.NoError(t, err)
	ede := &ExtendedDNSError{InfoCode: EDESignatureExpired, ExtraText: text}

	w := newWriter()
	require.NoError(t, encodeExtendedDNSError(ede, w))

	c := newCursor(w.bytes())
	got, err := decodeExtendedDNSError(c)
	require.NoError(t, err)
	require.Equal(t, ede.InfoCode, got.InfoCode)
	require.Equal(t, ede.ExtraText.String(), got.ExtraText.String())
}

func TestExtendedDNSErrorRejectsUnknownCode(t *testing.T) {
	w := newWriter()
	w.u16(9999)
	c := newCursor(w.bytes())
	_, err := decodeExtendedDNSError(c)
	require.Error(t, err)
	var enumErr *EnumError
	require.ErrorAs(t, err, &enumErr)
}

func TestECSRejectsAddressBitsBeyondPrefix(t *testing.T) {
	// 203.0.113.1 has a nonzero low byte but a /24 prefix claims only the
	// first three octets matter, so this must be rejected.
	_, err := NewECS(24, 0, []byte{203, 0, 113, 1})
	require.Error(t, err)
	var invErr *InvariantError
	require.ErrorAs(t, err, &invErr)
}

func TestUnknownEDNSOptionCodeIsEnumError(t *testing.T) {
	w := newWriter()
	w.u16(0xBEEF)
	idx := w.createLengthIndex()
	require.NoError(t, w.setLengthIndex(idx))

	c := newCursor(w.bytes())
	_, err := decodeEDNSOption(c)
	require.Error(t, err)
	var enumErr *EnumError
	require.ErrorAs(t, err, &enumErr)
}
