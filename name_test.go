package dnswire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomainNameRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"root", "."},
		{"single label", "com."},
		{"multi label", "www.example.com."},
		{"label with digits and hyphen", "a-z0-9."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dn, err := ParseDomainName(tt.in)
			require.NoError(t, err)

			w := newWriter()
			require.NoError(t, w.encodeDomainName(dn))

			c := newCursor(w.bytes())
			got, err := c.decodeDomainName()
			require.NoError(t, err)
			require.True(t, dn.Equal(got))
		})
	}
}

func TestDomainNameCompressionReusesSuffix(t *testing.T) {
	a, err := ParseDomainName("www.example.com.")
	require.NoError(t, err)
	b, err := ParseDomainName("mail.example.com.")
	require.NoError(t, err)

	w := newWriter()
	require.NoError(t, w.encodeDomainName(a))
	firstLen := w.len()
	require.NoError(t, w.encodeDomainName(b))

	// b should compress against "example.com." written as part of a, so it
	// costs far less than re-emitting every label.
	require.Less(t, w.len()-firstLen, len(b.String()))

	c := newCursor(w.bytes())
	gotA, err := c.decodeDomainName()
	require.NoError(t, err)
	require.True(t, a.Equal(gotA))
	gotB, err := c.decodeDomainName()
	require.NoError(t, err)
	require.True(t, b.Equal(gotB))
}

func TestDomainNameRejectsHostilePointerLoop(t *testing.T) {
	// Two compression pointers, each pointing at the other: a 2-byte
	// compression pointer loop that must be caught by the recursion bound rather than
	// looping forever.
	msg := make([]byte, 4)
	msg[0], msg[1] = 0xC0, 0x02
	msg[2], msg[3] = 0xC0, 0x00

	c := newCursor(msg)
	_, err := c.decodeDomainName()
	require.Error(t, err)
	var resErr *ResourceError
	require.ErrorAs(t, err, &resErr)
}

func TestDomainNameTooLongRejected(t *testing.T) {
	labels := make([]Label, 0, 40)
	for i := 0; i < 40; i++ {
		l, err := NewLabel("sevenchar")
		require.NoError(t, err)
		labels = append(labels, l)
	}
	_, err := NewDomainName(labels...)
	require.Error(t, err)
	var invErr *InvariantError
	require.ErrorAs(t, err, &invErr)
}

func TestLabelRejectsLeadingHyphen(t *testing.T) {
	_, err := NewLabel("-bad")
	require.Error(t, err)
}

func TestLabelRejectsTrailingHyphen(t *testing.T) {
	_, err := NewLabel("bad-")
	require.Error(t, err)
}
