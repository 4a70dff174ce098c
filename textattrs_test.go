package stun

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextAttributes(t *testing.T) {
	id := NewTransactionID()
	for _, a := range []Attribute{
		Username("user"),
		Realm("example.org"),
		Nonce("f//499k954d6OL34oL9FSTvy64sA"),
		Software("stunwire test"),
	} {
		t.Run(a.Type().String(), func(t *testing.T) {
			b, err := appendAttribute(nil, a, id)
			assert.NoError(t, err)

			got, n, err := readAttribute(b, id)
			assert.NoError(t, err)
			assert.Equal(t, len(b), n)
			assert.Equal(t, a, got)
		})
	}
}

func TestTextAttributeLimits(t *testing.T) {
	id := NewTransactionID()

	t.Run("UsernameAtLimit", func(t *testing.T) {
		u := Username(strings.Repeat("u", maxUsernameB))
		_, err := u.appendValue(nil, id)
		assert.NoError(t, err)
	})
	t.Run("UsernameTooBig", func(t *testing.T) {
		u := Username(strings.Repeat("u", maxUsernameB+1))
		_, err := u.appendValue(nil, id)
		assert.ErrorIs(t, err, ErrValueTooBig)
	})
	t.Run("SoftwareTooBig", func(t *testing.T) {
		s := Software(strings.Repeat("s", maxTextB+1))
		_, err := s.appendValue(nil, id)
		assert.ErrorIs(t, err, ErrValueTooBig)
	})
}

func TestDecodeTextInvalidUTF8(t *testing.T) {
	_, err := decodeText([]byte{0xff, 0xfe, 0xfd})
	assert.ErrorIs(t, err, ErrInvalidString)

	// Through the attribute dispatcher as well.
	_, err = decodeAttribute(AttrSoftware, []byte{0xff}, TransactionID{})
	assert.ErrorIs(t, err, ErrInvalidString)
}
