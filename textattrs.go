package stun

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Byte ceilings from RFC 5389: text values must be less than 128
// characters, which can be as long as 763 bytes; USERNAME must be less
// than 513 bytes.
const (
	maxUsernameB = 512
	maxTextB     = 763
)

// Username represents USERNAME attribute: the username part of the
// credential used in the message-integrity check. Must be SASL-prepared
// by the caller.
//
// RFC 5389 Section 15.3.
type Username string

// Type returns AttrUsername.
func (u Username) Type() AttrType {
	return AttrUsername
}

func (u Username) String() string {
	return string(u)
}

func (u Username) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return appendText(b, string(u), maxUsernameB)
}

// Realm represents REALM attribute. Its presence in a request signals
// that long-term credentials are in use.
//
// RFC 5389 Section 15.7.
type Realm string

// Type returns AttrRealm.
func (r Realm) Type() AttrType {
	return AttrRealm
}

func (r Realm) String() string {
	return string(r)
}

func (r Realm) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return appendText(b, string(r), maxTextB)
}

// Nonce represents NONCE attribute.
//
// RFC 5389 Section 15.8.
type Nonce string

// Type returns AttrNonce.
func (n Nonce) Type() AttrType {
	return AttrNonce
}

func (n Nonce) String() string {
	return string(n)
}

func (n Nonce) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return appendText(b, string(n), maxTextB)
}

// Software represents SOFTWARE attribute: a textual description of the
// software sending the message, for diagnostics only.
//
// RFC 5389 Section 15.10.
type Software string

// Type returns AttrSoftware.
func (s Software) Type() AttrType {
	return AttrSoftware
}

func (s Software) String() string {
	return string(s)
}

func (s Software) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return appendText(b, string(s), maxTextB)
}

func appendText(b []byte, s string, limit int) ([]byte, error) {
	if len(s) > limit {
		return nil, errors.Wrapf(ErrValueTooBig, "limit %d, length %d", limit, len(s))
	}
	return append(b, s...), nil
}

func decodeText(v []byte) (string, error) {
	if !utf8.Valid(v) {
		return "", ErrInvalidString
	}
	return string(v), nil
}
