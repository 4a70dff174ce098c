package stun

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageBuilders(t *testing.T) {
	for _, tc := range []struct {
		msg   *Message
		class MessageClass
	}{
		{NewBindingRequest(), ClassRequest},
		{NewBindingIndication(), ClassIndication},
		{NewBindingSuccessResponse(), ClassSuccessResponse},
		{NewBindingErrorResponse(), ClassErrorResponse},
	} {
		assert.Equal(t, MethodBinding, tc.msg.Header.Method)
		assert.Equal(t, tc.class, tc.msg.Header.Class)
		assert.NotEqual(t, TransactionID{}, tc.msg.Header.TransactionID)
	}
}

func TestSetTransactionID(t *testing.T) {
	id := NewTransactionID()
	m := NewBindingSuccessResponse().SetTransactionID(id)
	assert.Equal(t, id, m.Header.TransactionID)
}

func TestGetFirstOccurrence(t *testing.T) {
	m := NewBindingRequest().Add(
		Software("first"),
		Software("second"),
	)
	a, ok := m.Get(AttrSoftware)
	assert.True(t, ok)
	assert.Equal(t, Software("first"), a)

	_, ok = m.Get(AttrNonce)
	assert.False(t, ok)
}

func TestEncodeEmptyMessage(t *testing.T) {
	m := NewBindingIndication()
	raw, err := m.Encode(nil)
	assert.NoError(t, err)
	assert.Len(t, raw, messageHeaderSize)
	assert.Zero(t, bin.Uint16(raw[2:4]))

	got, err := Decode(raw, nil)
	assert.NoError(t, err)
	assert.Empty(t, got.Attributes)
	assert.Equal(t, m.Header.TransactionID, got.Header.TransactionID)
}

func TestMessageRoundTrip(t *testing.T) {
	cred := &Credentials{Password: "TEST_PASS"}
	m := NewBindingSuccessResponse().Add(
		Software("stunwire test agent"),
		MappedAddress{IP: net.IP{213, 141, 156, 236}, Port: 21254},
		XORMappedAddress{IP: net.IP{192, 0, 2, 1}, Port: 32853},
		AlternateServer{IP: net.IP{10, 0, 0, 2}, Port: DefaultPort},
		NewErrorCode(420, "Unknown Attribute"),
		UnknownAttributes{AttrPriority, AttrType(0x7777)},
		Priority(0x6e0001ff),
		UseCandidate{},
		ICEControlled(0x932ff9b151263b36),
		ICEControlling(0x1122334455667788),
		Nonce("nonce-value"),
	).AddMessageIntegrity().AddFingerprint()

	raw, err := m.Encode(cred)
	assert.NoError(t, err)
	assert.Equal(t, len(raw)-messageHeaderSize, int(bin.Uint16(raw[2:4])))

	got, err := Decode(raw, cred)
	assert.NoError(t, err)
	assert.Equal(t, m.Header.TransactionID, got.Header.TransactionID)
	assert.Equal(t, ClassSuccessResponse, got.Header.Class)
	assert.Equal(t, uint16(len(raw)-messageHeaderSize), got.Header.Length)
	assert.Len(t, got.Attributes, len(m.Attributes))

	// Placeholders aside, decoded attributes match the originals in
	// both value and order.
	for i, a := range m.Attributes {
		switch a.Type() {
		case AttrMessageIntegrity, AttrFingerprint:
			continue
		}
		assert.Equal(t, a, got.Attributes[i])
	}
}

func TestEncodeDeterministic(t *testing.T) {
	m := NewBindingRequest().
		Add(Software("determinism")).
		AddMessageIntegrity().
		AddFingerprint()
	cred := &Credentials{Password: "pass"}

	first, err := m.Encode(cred)
	assert.NoError(t, err)
	second, err := m.Encode(cred)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeUnknownAttributeHandling(t *testing.T) {
	base := NewBindingRequest().Add(Software("test"))

	t.Run("OptionalSkipped", func(t *testing.T) {
		raw, err := base.Encode(nil)
		assert.NoError(t, err)
		raw = append(raw, 0x87, 0x77, 0x00, 0x04, 1, 2, 3, 4)
		bin.PutUint16(raw[2:4], uint16(len(raw)-messageHeaderSize))

		got, err := Decode(raw, nil)
		assert.NoError(t, err)
		assert.Len(t, got.Attributes, 1)
	})
	t.Run("RequiredFatal", func(t *testing.T) {
		raw, err := base.Encode(nil)
		assert.NoError(t, err)
		raw = append(raw, 0x77, 0x77, 0x00, 0x04, 1, 2, 3, 4)
		bin.PutUint16(raw[2:4], uint16(len(raw)-messageHeaderSize))

		_, err = Decode(raw, nil)
		var unknown UnknownAttrError
		assert.ErrorAs(t, err, &unknown)
		assert.Equal(t, AttrType(0x7777), unknown.Type)
	})
}

func TestDecodeTruncatedAttribute(t *testing.T) {
	m := NewBindingRequest().Add(Priority(7))
	raw, err := m.Encode(nil)
	assert.NoError(t, err)

	_, err = Decode(raw[:len(raw)-2], nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestMessageString(t *testing.T) {
	m := NewBindingRequest().Add(Software("test"))
	s := m.String()
	assert.Contains(t, s, "binding")
	assert.Contains(t, s, "request")
	assert.Contains(t, s, "attrs=1")
}
