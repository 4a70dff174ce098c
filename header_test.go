package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderRoundTrip(t *testing.T) {
	for _, class := range []MessageClass{
		ClassRequest,
		ClassIndication,
		ClassSuccessResponse,
		ClassErrorResponse,
	} {
		t.Run(class.String(), func(t *testing.T) {
			h := Header{
				Class:         class,
				Method:        MethodBinding,
				TransactionID: NewTransactionID(),
				Length:        52,
			}
			b := h.appendTo(nil)
			assert.Len(t, b, messageHeaderSize)

			got, err := DecodeHeader(b)
			assert.NoError(t, err)
			assert.Equal(t, h, got)
		})
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	h := Header{
		Class:         ClassRequest,
		Method:        MethodBinding,
		TransactionID: NewTransactionID(),
	}
	b := h.appendTo(nil)

	t.Run("UnexpectedEOF", func(t *testing.T) {
		_, err := DecodeHeader(b[:messageHeaderSize-1])
		assert.ErrorIs(t, err, ErrUnexpectedHeaderEOF)
		_, err = DecodeHeader(nil)
		assert.ErrorIs(t, err, ErrUnexpectedHeaderEOF)
	})
	t.Run("CookieMismatch", func(t *testing.T) {
		bad := append([]byte(nil), b...)
		bad[4] = 0x42
		_, err := DecodeHeader(bad)
		assert.ErrorIs(t, err, ErrMagicCookieMismatch)
	})
	t.Run("UnknownMethod", func(t *testing.T) {
		bad := append([]byte(nil), b...)
		bin.PutUint16(bad[0:2], 0x0002) // not Binding
		_, err := DecodeHeader(bad)
		assert.ErrorIs(t, err, ErrUnrecognizedMessageMethod)
	})
}

func TestMessageClassString(t *testing.T) {
	assert.Equal(t, "request", ClassRequest.String())
	assert.Equal(t, "indication", ClassIndication.String())
	assert.Equal(t, "success response", ClassSuccessResponse.String())
	assert.Equal(t, "error response", ClassErrorResponse.String())
	assert.Equal(t, "binding", MethodBinding.String())
	assert.Equal(t, "0x0004", Method(0x0004).String())
}
