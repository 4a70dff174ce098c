package stun

import "github.com/pkg/errors"

// UnknownAttributes represents UNKNOWN-ATTRIBUTES attribute: the list
// of 16-bit type codes a server did not understand, sent in error
// responses with code 420.
//
// RFC 5389 Section 15.9.
type UnknownAttributes []AttrType

// Type returns AttrUnknownAttributes.
func (u UnknownAttributes) Type() AttrType {
	return AttrUnknownAttributes
}

func (u UnknownAttributes) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	for _, t := range u {
		b = append(b, byte(t>>8), byte(t))
	}
	return b, nil
}

func decodeUnknownAttributes(v []byte) (Attribute, error) {
	if len(v)%2 != 0 {
		return nil, errors.Wrap(ErrInsufficientData, "UNKNOWN-ATTRIBUTES value")
	}
	u := make(UnknownAttributes, 0, len(v)/2)
	for i := 0; i < len(v); i += 2 {
		u = append(u, AttrType(bin.Uint16(v[i:i+2])))
	}
	return u, nil
}
