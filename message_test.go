package dnswire

import (
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustDomainName(t *testing.T, s string) DomainName {
	t.Helper()
	dn, err := ParseDomainName(s)
	require.NoError(t, err)
	return dn
}

func TestMessageRoundTripMinimalQuery(t *testing.T) {
	name := mustDomainName(t, "example.com.")
	msg := &Message{
		ID:    0x1234,
		Flags: Flags{QR: false, Opcode: OpcodeQuery, RD: true},
		Questions: []Question{
			{Name: name, QType: QTypeFromType(TypeA), QClass: QClassFromClass(ClassIN)},
		},
	}

	wire, err := msg.Encode()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(wire), minMessageLength)

	got, err := Decode(wire)
	require.NoError(t, err)
	require.Equal(t, msg.ID, got.ID)
	require.Equal(t, msg.Flags, got.Flags)
	require.Len(t, got.Questions, 1)
	require.True(t, got.Questions[0].Name.Equal(name))
}

func TestMessageRoundTripCompressedAResponse(t *testing.T) {
	owner := mustDomainName(t, "www.example.com.")
	msg := &Message{
		ID:    7,
		Flags: Flags{QR: true, AA: true, Opcode: OpcodeQuery},
		Questions: []Question{
			{Name: owner, QType: QTypeFromType(TypeA), QClass: QClassFromClass(ClassIN)},
		},
		Answers: []ResourceRecord{
			{Name: owner, Class: ClassIN, TTL: 300, Data: &ARecord{Address: net.IPv4(93, 184, 216, 34)}},
		},
	}

	wire, err := msg.Encode()
	require.NoError(t, err)

	got, err := Decode(wire)
	require.NoError(t, err)
	require.Len(t, got.Answers, 1)
	a, ok := got.Answers[0].Data.(*ARecord)
	require.True(t, ok)
	require.True(t, a.Address.Equal(net.IPv4(93, 184, 216, 34)))
	require.True(t, got.Answers[0].Name.Equal(owner))

	// The answer's owner name must have compressed against the question's,
	// so the message is shorter than writing both names in full would be:
	// header, question (name + 4 bytes), answer (name + 10 bytes + 4-byte A).
	nameWireLen := len(owner.String()) + 1
	require.Less(t, len(wire), 12+(nameWireLen+4)+(nameWireLen+10+4))
}

func TestMessageRoundTripWithOPTAndECS(t *testing.T) {
	addr := net.IPv4(203, 0, 113, 0).To4()
	ecs, err := NewECS(24, 0, addr)
	require.NoError(t, err)

	opt := &OPT{
		RequestorPayloadSize: 4096,
		Version:              0,
		DNSSECBit:            true,
		Options:              []EDNSOption{{Code: EDNSOptionECS, ECS: &ecs}},
	}

	msg := &Message{
		ID:          99,
		Flags:       Flags{QR: false, Opcode: OpcodeQuery, RD: true},
		Questions:   []Question{{Name: mustDomainName(t, "example.org."), QType: QTypeFromType(TypeA), QClass: QClassFromClass(ClassIN)}},
		Additionals: []ResourceRecord{OPTResourceRecord(opt)},
	}

	wire, err := msg.Encode()
	require.NoError(t, err)

	got, err := Decode(wire)
	require.NoError(t, err)
	require.Len(t, got.Additionals, 1)
	gotOPT, ok := got.Additionals[0].Data.(*OPT)
	require.True(t, ok)
	require.True(t, got.Additionals[0].Name.IsRoot())
	require.Equal(t, uint16(4096), gotOPT.RequestorPayloadSize)
	require.True(t, gotOPT.DNSSECBit)
	require.Len(t, gotOPT.Options, 1)
	require.NotNil(t, gotOPT.Options[0].ECS)
	require.Equal(t, uint8(24), gotOPT.Options[0].ECS.SourcePrefixLength)
	require.True(t, gotOPT.Options[0].ECS.Address.Equal(addr))
}

func TestOPTRejectsNonRootOwnerName(t *testing.T) {
	w := newWriter()
	require.NoError(t, w.encodeDomainName(mustDomainName(t, "not-root.")))
	w.u16(uint16(TypeOPT))
	w.u16(4096)
	w.u32(0)
	idx := w.createLengthIndex()
	require.NoError(t, w.setLengthIndex(idx))

	c := newCursor(w.bytes())
	_, err := decodeResourceRecord(c)
	require.Error(t, err)
	var invErr *InvariantError
	require.ErrorAs(t, err, &invErr)
}

func TestServiceBindingAliasModeRejectsParameters(t *testing.T) {
	sb := &ServiceBinding{
		Priority:   0,
		TargetName: mustDomainName(t, "svc.example.com."),
		Parameters: []ServiceParameter{{Key: SvcParamPort, Port: 443}},
	}
	rr := ResourceRecord{Name: mustDomainName(t, "example.com."), Class: ClassIN, TTL: 300, Data: sb}

	w := newWriter()
	err := encodeResourceRecord(rr, w)
	require.Error(t, err)
	var invErr *InvariantError
	require.ErrorAs(t, err, &invErr)
}

func TestServiceBindingServiceModeSortsParametersByKey(t *testing.T) {
	sb := &ServiceBinding{
		Priority:   1,
		TargetName: mustDomainName(t, "svc.example.com."),
		Parameters: []ServiceParameter{
			{Key: SvcParamIPv4Hint, IPv4Hints: []net.IP{net.IPv4(1, 2, 3, 4)}},
			{Key: SvcParamALPN, ALPNIDs: []string{"h2", "h3"}},
			{Key: SvcParamPort, Port: 443},
		},
	}
	rr := ResourceRecord{Name: mustDomainName(t, "example.com."), Class: ClassIN, TTL: 300, Data: sb}

	wire, err := func() ([]byte, error) {
		w := newWriter()
		if err := encodeResourceRecord(rr, w); err != nil {
			return nil, err
		}
		return w.bytes(), nil
	}()
	require.NoError(t, err)

	c := newCursor(wire)
	got, err := decodeResourceRecord(c)
	require.NoError(t, err)
	gotSB, ok := got.Data.(*ServiceBinding)
	require.True(t, ok)
	require.Len(t, gotSB.Parameters, 3)
	// Parameters must come back in ascending key order regardless of the
	// order they were constructed in (spec's SVCB ordering invariant).
	require.Equal(t, SvcParamALPN, gotSB.Parameters[0].Key)
	require.Equal(t, SvcParamPort, gotSB.Parameters[1].Key)
	require.Equal(t, SvcParamIPv4Hint, gotSB.Parameters[2].Key)
}

func TestMessageDecodeRejectsTrailingBytes(t *testing.T) {
	msg := &Message{ID: 1, Flags: Flags{Opcode: OpcodeQuery}}
	wire, err := msg.Encode()
	require.NoError(t, err)

	_, err = Decode(append(wire, 0xFF))
	require.Error(t, err)
	var boundsErr *BoundsError
	require.ErrorAs(t, err, &boundsErr)
}

func TestMessageDecodeRejectsTooShort(t *testing.T) {
	_, err := Decode([]byte{0, 1, 2})
	require.Error(t, err)
}

func TestMessageEncodeDecodeDiff(t *testing.T) {
	msg := &Message{
		ID:    55,
		Flags: Flags{QR: true, AA: true, Opcode: OpcodeQuery, RCode: RCodeNoError},
		Questions: []Question{
			{Name: mustDomainName(t, "diff.example."), QType: QTypeFromType(TypeTXT), QClass: QClassFromClass(ClassIN)},
		},
		Answers: []ResourceRecord{
			{Name: mustDomainName(t, "diff.example."), Class: ClassIN, TTL: 60, Data: &TXTRecord{Strings: []string{"hello", "world"}}},
		},
	}

	wire, err := msg.Encode()
	require.NoError(t, err)
	got, err := Decode(wire)
	require.NoError(t, err)

	if diff := cmp.Diff(msg.Questions[0].Name.String(), got.Questions[0].Name.String()); diff != "" {
		t.Fatalf("question name mismatch (-want +got):\n%s", diff)
	}
	gotTXT, ok := got.Answers[0].Data.(*TXTRecord)
	require.True(t, ok)
	if diff := cmp.Diff(msg.Answers[0].Data.(*TXTRecord).Strings, gotTXT.Strings); diff != "" {
		t.Fatalf("TXT strings mismatch (-want +got):\n%s", diff)
	}
}
