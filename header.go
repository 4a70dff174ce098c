package stun

import (
	"fmt"

	"github.com/pkg/errors"
)

// MessageClass is one of the four STUN message classes, stored with its
// class bits (C1, C0) already at their wire positions inside the 16-bit
// message type field.
type MessageClass uint16

// Possible values for message class in STUN Message Type.
const (
	ClassRequest         MessageClass = 0x0000
	ClassIndication      MessageClass = 0x0010
	ClassSuccessResponse MessageClass = 0x0100
	ClassErrorResponse   MessageClass = 0x0110
)

func (c MessageClass) String() string {
	switch c {
	case ClassRequest:
		return "request"
	case ClassIndication:
		return "indication"
	case ClassSuccessResponse:
		return "success response"
	case ClassErrorResponse:
		return "error response"
	default:
		return fmt.Sprintf("0x%04x", uint16(c))
	}
}

// Method is a STUN message method, stored at its wire bit positions
// inside the 16-bit message type field.
type Method uint16

// Possible methods for STUN Message.
const (
	MethodBinding Method = 0x0001
)

func (m Method) String() string {
	switch m {
	case MethodBinding:
		return "binding"
	default:
		return fmt.Sprintf("0x%04x", uint16(m))
	}
}

// Class and method occupy disjoint bit masks of the message type field:
//
//	 0                 1
//	 2  3  4 5 6 7 8 9 0 1 2 3 4 5
//	+--+--+-+-+-+-+-+-+-+-+-+-+-+-+
//	|M |M |M|M|M|C|M|M|M|C|M|M|M|M|
//	|11|10|9|8|7|1|6|5|4|0|3|2|1|0|
//	+--+--+-+-+-+-+-+-+-+-+-+-+-+-+
//
// Figure 3: Format of STUN Message Type Field
const (
	classBits  = 0x0110 // 0b0000_0001_0001_0000
	methodBits = 0xfeef // 0b1111_1110_1110_1111
)

// Header is the fixed 20-byte STUN message header.
type Header struct {
	Class         MessageClass
	Method        Method
	TransactionID TransactionID

	// Length is the byte count of the attribute section. The decoder
	// sets it from the wire; the encoder always recomputes it and never
	// trusts a caller-supplied value.
	Length uint16
}

// appendTo appends the 20-byte encoding of h to b.
func (h Header) appendTo(b []byte) []byte {
	var hdr [messageHeaderSize]byte
	bin.PutUint16(hdr[0:2], uint16(h.Class)|uint16(h.Method))
	bin.PutUint16(hdr[2:4], h.Length)
	bin.PutUint32(hdr[4:8], magicCookie)
	copy(hdr[8:], h.TransactionID[:])
	return append(b, hdr[:]...)
}

// DecodeHeader reads the fixed 20-byte header from the beginning of b.
//
// ErrMagicCookieMismatch signals that b is likely not a STUN message;
// callers multiplexing STUN with other protocols on the same socket can
// use it to route non-STUN traffic elsewhere.
func DecodeHeader(b []byte) (Header, error) {
	var h Header
	if len(b) < messageHeaderSize {
		return h, ErrUnexpectedHeaderEOF
	}
	t := bin.Uint16(b[0:2])
	h.Length = bin.Uint16(b[2:4])
	if cookie := bin.Uint32(b[4:8]); cookie != magicCookie {
		return h, errors.Wrapf(ErrMagicCookieMismatch,
			"0x%08x (should be 0x%08x)", cookie, uint32(magicCookie),
		)
	}
	copy(h.TransactionID[:], b[8:messageHeaderSize])

	switch method := Method(t & methodBits); method {
	case MethodBinding:
		h.Method = method
	default:
		return h, errors.Wrapf(ErrUnrecognizedMessageMethod, "0x%04x", uint16(method))
	}
	switch class := MessageClass(t & classBits); class {
	case ClassRequest, ClassIndication, ClassSuccessResponse, ClassErrorResponse:
		h.Class = class
	default:
		return h, errors.Wrapf(ErrUnrecognizedMessageClass, "0x%04x", uint16(class))
	}
	return h, nil
}
