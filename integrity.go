package stun

import (
	"crypto/hmac"
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	messageIntegritySize = 20 // HMAC-SHA1 output
	integrityAttrSize    = attributeHeaderSize + messageIntegritySize
)

// separator for credentials.
const credentialsSep = ":"

// MessageIntegrity represents MESSAGE-INTEGRITY attribute: an
// HMAC-SHA1 of the STUN message, including the header, up to and
// including the attribute preceding MESSAGE-INTEGRITY itself.
//
// An empty value is a placeholder: the encoder computes the HMAC from
// the Credentials supplied to Encode and substitutes it. A non-empty
// value is written verbatim.
//
// RFC 5389 Section 15.4.
type MessageIntegrity []byte

// Type returns AttrMessageIntegrity.
func (i MessageIntegrity) Type() AttrType {
	return AttrMessageIntegrity
}

func (i MessageIntegrity) String() string {
	return fmt.Sprintf("HMAC: 0x%x", []byte(i))
}

func (i MessageIntegrity) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return append(b, i...), nil
}

// Credentials supplies the password used to compute and verify
// MESSAGE-INTEGRITY, together with the key-derivation inputs observed
// in the message itself (USERNAME and REALM).
//
// Prep is the SASLprep normalization hook applied to the password
// before key derivation; a nil Prep uses the password as-is, matching
// the convention that credential strings are SASL-prepared by the
// caller.
type Credentials struct {
	Password string
	Prep     func(string) (string, error)
}

func (c *Credentials) prep(s string) (string, error) {
	if c.Prep == nil {
		return s, nil
	}
	out, err := c.Prep(s)
	if err != nil {
		return "", errors.Wrap(ErrSASLPrepFailure, err.Error())
	}
	return out, nil
}

// key derives the HMAC key per RFC 5389 section 15.4. Without a realm
// the prepped password itself is the key (short-term credentials). With
// a realm a username is mandatory and the key is the 16-byte MD5 digest
// of "username:realm:password" (long-term credentials).
func (c *Credentials) key(username, realm string, haveUsername, haveRealm bool) ([]byte, error) {
	password, err := c.prep(c.Password)
	if err != nil {
		return nil, err
	}
	if !haveRealm {
		return []byte(password), nil
	}
	if !haveUsername {
		return nil, ErrMissingUsername
	}
	h := md5.New() //nolint:gosec
	fmt.Fprint(h, strings.Join([]string{username, realm, password}, credentialsSep)) //nolint:errcheck
	return h.Sum(nil), nil
}

// integrityHMAC computes the HMAC-SHA1 of msg with the header length
// field patched to span up to and including the MESSAGE-INTEGRITY
// attribute that follows msg. The patch is required because the hash
// covers the length field itself; msg is never modified.
func integrityHMAC(key, msg []byte) []byte {
	buf := make([]byte, len(msg))
	copy(buf, msg)
	bin.PutUint16(buf[2:4], uint16(len(buf)-messageHeaderSize+integrityAttrSize))
	mac := hmac.New(sha1.New, key) // #nosec
	mac.Write(buf)                 //nolint:errcheck
	return mac.Sum(nil)
}
