package stun

import (
	"crypto/hmac"
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"
)

// Message represents a single STUN message: a header plus an ordered
// attribute list. Attribute order is significant on the wire:
// duplicates are permitted and only the first occurrence is
// authoritative, MESSAGE-INTEGRITY must come after every attribute it
// protects, and FINGERPRINT must come last.
//
// A Message is owned by the call site that built or decoded it; the
// codec never shares or mutates it in the background.
type Message struct {
	Header     Header
	Attributes []Attribute
}

// New returns a Message of the given method and class with a fresh
// random transaction id.
func New(method Method, class MessageClass) *Message {
	return &Message{
		Header: Header{
			Class:         class,
			Method:        method,
			TransactionID: NewTransactionID(),
		},
	}
}

// NewBindingRequest returns a Binding request message.
func NewBindingRequest() *Message {
	return New(MethodBinding, ClassRequest)
}

// NewBindingIndication returns a Binding indication message.
func NewBindingIndication() *Message {
	return New(MethodBinding, ClassIndication)
}

// NewBindingSuccessResponse returns a Binding success response message.
func NewBindingSuccessResponse() *Message {
	return New(MethodBinding, ClassSuccessResponse)
}

// NewBindingErrorResponse returns a Binding error response message.
func NewBindingErrorResponse() *Message {
	return New(MethodBinding, ClassErrorResponse)
}

// SetTransactionID sets the transaction id, overriding the generated
// one. Useful for pairing a response with its request.
func (m *Message) SetTransactionID(id TransactionID) *Message {
	m.Header.TransactionID = id
	return m
}

// Add appends attributes to the message in order.
func (m *Message) Add(attrs ...Attribute) *Message {
	m.Attributes = append(m.Attributes, attrs...)
	return m
}

// AddMessageIntegrity appends a placeholder MESSAGE-INTEGRITY attribute
// whose value Encode computes from the supplied credentials. Call after
// all other attributes except FINGERPRINT have been added.
func (m *Message) AddMessageIntegrity() *Message {
	return m.Add(MessageIntegrity(nil))
}

// AddFingerprint appends a placeholder FINGERPRINT attribute that
// Encode fills with the computed checksum. Must stay the last
// attribute.
func (m *Message) AddFingerprint() *Message {
	return m.Add(Fingerprint(0))
}

// AddLongTermCredentials appends USERNAME and REALM followed by a
// placeholder MESSAGE-INTEGRITY, switching Encode to the long-term
// credential key. Username and realm must be SASL-prepared by the
// caller.
func (m *Message) AddLongTermCredentials(username, realm string) *Message {
	return m.Add(Username(username), Realm(realm)).AddMessageIntegrity()
}

// Get returns the first attribute of type t. When duplicates are
// present on the wire only the first occurrence is authoritative.
func (m *Message) Get(t AttrType) (Attribute, bool) {
	for _, a := range m.Attributes {
		if a.Type() == t {
			return a, true
		}
	}
	return nil, false
}

func (m *Message) String() string {
	return fmt.Sprintf("%s %s l=%d attrs=%d id=%s",
		m.Header.Method,
		m.Header.Class,
		m.Header.Length,
		len(m.Attributes),
		base64.StdEncoding.EncodeToString(m.Header.TransactionID[:]),
	)
}

// Encode serializes m into wire format. The header length is always
// recomputed from the encoded attributes.
//
// Placeholder MESSAGE-INTEGRITY and FINGERPRINT attributes are replaced
// with computed values; cred supplies the password for the former and
// may be nil when no placeholder MESSAGE-INTEGRITY is present.
// Non-placeholder values pass through verbatim.
func (m *Message) Encode(cred *Credentials) ([]byte, error) {
	header := m.Header
	header.Length = 0 // patched below
	b := header.appendTo(make([]byte, 0, 128))

	var (
		integrityPresent        bool
		username, realm         string
		haveUsername, haveRealm bool
	)
	for i, a := range m.Attributes {
		switch attr := a.(type) {
		case Username:
			username, haveUsername = string(attr), true
		case Realm:
			realm, haveRealm = string(attr), true
		case Fingerprint:
			if i != len(m.Attributes)-1 {
				return nil, errors.Wrapf(ErrFingerprintNotLast,
					"attribute %d of %d", i+1, len(m.Attributes),
				)
			}
			if attr == 0 {
				// The checksum covers the length field, which must
				// already count the FINGERPRINT attribute itself.
				bin.PutUint16(b[2:4], uint16(len(b)-messageHeaderSize+fingerprintAttrSize))
				a = Fingerprint(fingerprintValue(b))
			}
		case MessageIntegrity:
			integrityPresent = true
			if len(attr) == 0 {
				if cred == nil {
					return nil, ErrMissingIntegrityPassword
				}
				key, err := cred.key(username, realm, haveUsername, haveRealm)
				if err != nil {
					return nil, err
				}
				a = MessageIntegrity(integrityHMAC(key, b))
			}
		default:
			// Only FINGERPRINT may follow MESSAGE-INTEGRITY.
			if integrityPresent {
				return nil, errors.Wrapf(ErrAttributeAfterIntegrity, "%s", a.Type())
			}
		}
		var err error
		if b, err = appendAttribute(b, a, m.Header.TransactionID); err != nil {
			return nil, err
		}
	}
	bin.PutUint16(b[2:4], uint16(len(b)-messageHeaderSize))
	return b, nil
}

// Decode parses a STUN message from b.
//
// When cred is non-nil, any MESSAGE-INTEGRITY attribute is verified
// against its password combined with the USERNAME and REALM attributes
// seen earlier in the message; a nil cred skips verification.
//
// Attributes following MESSAGE-INTEGRITY still have to parse but are
// dropped from the result per RFC 5389 section 15.4, FINGERPRINT being
// the single exception. Unrecognized comprehension-optional attribute
// types are skipped; comprehension-required ones abort the decode with
// UnknownAttrError.
func Decode(b []byte, cred *Credentials) (*Message, error) {
	header, err := DecodeHeader(b)
	if err != nil {
		return nil, err
	}
	msg := &Message{Header: header}
	var (
		integritySeen           bool
		username, realm         string
		haveUsername, haveRealm bool
	)
	for offset := messageHeaderSize; offset < len(b); {
		a, n, err := readAttribute(b[offset:], header.TransactionID)
		if err != nil {
			var unknown UnknownAttrError
			if errors.As(err, &unknown) && unknown.Type.Optional() {
				offset += n
				continue
			}
			return nil, err
		}
		offset += n
		if !integritySeen {
			msg.Attributes = append(msg.Attributes, a)
		}
		switch attr := a.(type) {
		case Username:
			username, haveUsername = string(attr), true
		case Realm:
			realm, haveRealm = string(attr), true
		case Fingerprint:
			if offset != len(b) {
				return nil, errors.Wrapf(ErrFingerprintNotLast,
					"%d trailing bytes", len(b)-offset,
				)
			}
			computed := fingerprintValue(b[:offset-n])
			if computed != uint32(attr) {
				return nil, CRCMismatch{Expected: computed, Actual: uint32(attr)}
			}
			if integritySeen {
				// FINGERPRINT is the one attribute legally placed after
				// MESSAGE-INTEGRITY, so it is kept explicitly.
				msg.Attributes = append(msg.Attributes, a)
			}
		case MessageIntegrity:
			integritySeen = true
			if cred != nil {
				key, err := cred.key(username, realm, haveUsername, haveRealm)
				if err != nil {
					return nil, err
				}
				expected := integrityHMAC(key, b[:offset-n])
				if !hmac.Equal(expected, attr) {
					return nil, IntegrityMismatch{Expected: expected, Actual: attr}
				}
			}
		}
	}
	return msg, nil
}
