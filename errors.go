package stun

import "fmt"

// Error is error type for constant errors in stun package.
//
// See http://dave.cheney.net/2016/04/07/constant-errors for more info.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrUnexpectedHeaderEOF means that there were not enough bytes to
	// read a message header.
	ErrUnexpectedHeaderEOF Error = "unexpected EOF: not enough bytes to read header"

	// ErrInsufficientData means that an attribute value was shorter than
	// its declared or type-mandated length.
	ErrInsufficientData Error = "not enough bytes to read value"

	// ErrMagicCookieMismatch means that the magic cookie field does not
	// contain 0x2112A442; the buffer is likely not a STUN message.
	ErrMagicCookieMismatch Error = "magic cookie mismatch"

	// ErrUnrecognizedMessageClass means that the masked class bits do not
	// map to a known message class.
	ErrUnrecognizedMessageClass Error = "unrecognized message class"

	// ErrUnrecognizedMessageMethod means that the masked method bits do
	// not map to a known message method.
	ErrUnrecognizedMessageMethod Error = "unrecognized message method"

	// ErrInvalidAddressFamily means that an address attribute carried a
	// family byte other than 0x01 (IPv4) or 0x02 (IPv6).
	ErrInvalidAddressFamily Error = "invalid address family"

	// ErrInvalidString means that a text attribute value is not valid
	// UTF-8.
	ErrInvalidString Error = "value is not valid UTF-8"

	// ErrValueTooBig means that a UTF-8 value crosses the byte ceiling
	// RFC 5389 sets for its attribute.
	ErrValueTooBig Error = "UTF-8 value too big"

	// ErrFingerprintNotLast means that a FINGERPRINT attribute is not the
	// last attribute of the message.
	ErrFingerprintNotLast Error = "FINGERPRINT is not the last attribute"

	// ErrAttributeAfterIntegrity means that an attribute other than
	// FINGERPRINT was placed after MESSAGE-INTEGRITY.
	ErrAttributeAfterIntegrity Error = "attribute after MESSAGE-INTEGRITY"

	// ErrMissingIntegrityPassword means that a placeholder
	// MESSAGE-INTEGRITY attribute is present but no credentials were
	// supplied to Encode.
	ErrMissingIntegrityPassword Error = "placeholder MESSAGE-INTEGRITY but no password supplied"

	// ErrMissingUsername means that a REALM is present without a USERNAME,
	// making long-term credential key derivation impossible.
	ErrMissingUsername Error = "no username for long-term credentials"

	// ErrSASLPrepFailure means that the SASLprep hook rejected a
	// credential string.
	ErrSASLPrepFailure Error = "SASLprep failed"
)

// UnknownAttrError means that the decoder met an attribute type code it
// does not implement. Type tells whether the attribute was
// comprehension-required.
type UnknownAttrError struct {
	Type AttrType
}

func (e UnknownAttrError) Error() string {
	return fmt.Sprintf("unrecognized attribute type 0x%04x", uint16(e.Type))
}

// CRCMismatch represents FINGERPRINT check error.
type CRCMismatch struct {
	Expected uint32 // computed over the received bytes
	Actual   uint32 // carried by the FINGERPRINT attribute
}

func (e CRCMismatch) Error() string {
	return fmt.Sprintf("CRC mismatch: %x (expected) != %x (actual)",
		e.Expected,
		e.Actual,
	)
}

// IntegrityMismatch represents MESSAGE-INTEGRITY check error.
type IntegrityMismatch struct {
	Expected []byte // computed over the received bytes
	Actual   []byte // carried by the MESSAGE-INTEGRITY attribute
}

func (e IntegrityMismatch) Error() string {
	return fmt.Sprintf("integrity check failed: %x (expected) != %x (actual)",
		e.Expected,
		e.Actual,
	)
}
