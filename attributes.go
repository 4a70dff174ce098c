package stun

import (
	"fmt"

	"github.com/pkg/errors"
)

// AttrType is attribute type.
type AttrType uint16

// Attribute type codes registered by RFC 5389 and RFC 8445.
const (
	AttrMappedAddress     AttrType = 0x0001 // MAPPED-ADDRESS
	AttrUsername          AttrType = 0x0006 // USERNAME
	AttrMessageIntegrity  AttrType = 0x0008 // MESSAGE-INTEGRITY
	AttrErrorCode         AttrType = 0x0009 // ERROR-CODE
	AttrUnknownAttributes AttrType = 0x000A // UNKNOWN-ATTRIBUTES
	AttrRealm             AttrType = 0x0014 // REALM
	AttrNonce             AttrType = 0x0015 // NONCE
	AttrXORMappedAddress  AttrType = 0x0020 // XOR-MAPPED-ADDRESS
	AttrPriority          AttrType = 0x0024 // PRIORITY
	AttrUseCandidate      AttrType = 0x0025 // USE-CANDIDATE
	AttrSoftware          AttrType = 0x8022 // SOFTWARE
	AttrAlternateServer   AttrType = 0x8023 // ALTERNATE-SERVER
	AttrFingerprint       AttrType = 0x8028 // FINGERPRINT
	AttrICEControlled     AttrType = 0x8029 // ICE-CONTROLLED
	AttrICEControlling    AttrType = 0x802A // ICE-CONTROLLING
)

// Required reports whether t is comprehension-required: an agent that
// does not understand the attribute cannot process the message.
// Type values at or above 0x8000 are comprehension-optional and may be
// ignored when not understood (RFC 5389, section 15).
func (t AttrType) Required() bool {
	return t < 0x8000
}

// Optional reports whether t is comprehension-optional.
func (t AttrType) Optional() bool {
	return !t.Required()
}

func (t AttrType) String() string {
	switch t {
	case AttrMappedAddress:
		return "MAPPED-ADDRESS"
	case AttrUsername:
		return "USERNAME"
	case AttrMessageIntegrity:
		return "MESSAGE-INTEGRITY"
	case AttrErrorCode:
		return "ERROR-CODE"
	case AttrUnknownAttributes:
		return "UNKNOWN-ATTRIBUTES"
	case AttrRealm:
		return "REALM"
	case AttrNonce:
		return "NONCE"
	case AttrXORMappedAddress:
		return "XOR-MAPPED-ADDRESS"
	case AttrPriority:
		return "PRIORITY"
	case AttrUseCandidate:
		return "USE-CANDIDATE"
	case AttrSoftware:
		return "SOFTWARE"
	case AttrAlternateServer:
		return "ALTERNATE-SERVER"
	case AttrFingerprint:
		return "FINGERPRINT"
	case AttrICEControlled:
		return "ICE-CONTROLLED"
	case AttrICEControlling:
		return "ICE-CONTROLLING"
	default:
		return fmt.Sprintf("0x%04x", uint16(t))
	}
}

// Attribute is a decoded STUN attribute value. The set of
// implementations is closed: one type per attribute this package
// understands, each owning its semantic payload rather than raw TLV
// bytes.
type Attribute interface {
	// Type returns the registered 16-bit attribute type code.
	Type() AttrType

	// appendValue appends the attribute value, without the 4-byte
	// type/length header and without padding, to b.
	appendValue(b []byte, id TransactionID) ([]byte, error)
}

const padding = 4

func nearestPaddedValueLength(l int) int {
	n := padding * (l / padding)
	if n < l {
		n += padding
	}
	return n
}

// appendAttribute encodes a as a TLV and appends it to b, zero-padding
// the value to the next 4-byte boundary. Padding is always regenerated,
// never carried over from the wire.
func appendAttribute(b []byte, a Attribute, id TransactionID) ([]byte, error) {
	first := len(b)
	b = append(b, 0, 0, 0, 0) // type and length, patched below
	b, err := a.appendValue(b, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", a.Type())
	}
	length := len(b) - first - attributeHeaderSize
	bin.PutUint16(b[first:first+2], uint16(a.Type()))
	bin.PutUint16(b[first+2:first+4], uint16(length))
	for n := nearestPaddedValueLength(length); length < n; length++ {
		b = append(b, 0)
	}
	return b, nil
}

// readAttribute decodes a single TLV from the beginning of b, returning
// the attribute and the number of bytes consumed including padding.
//
// When the type code is not implemented, the TLV is still fully
// consumed and n is valid, so the caller can skip a
// comprehension-optional attribute and continue with the next one.
func readAttribute(b []byte, id TransactionID) (a Attribute, n int, err error) {
	if len(b) < attributeHeaderSize {
		return nil, 0, errors.Wrap(ErrInsufficientData, "attribute header")
	}
	var (
		t      = AttrType(bin.Uint16(b[0:2]))
		length = int(bin.Uint16(b[2:4]))
	)
	if len(b) < attributeHeaderSize+length {
		return nil, 0, errors.Wrapf(ErrInsufficientData, "%s value", t)
	}
	n = attributeHeaderSize + nearestPaddedValueLength(length)
	if n > len(b) {
		// Padding truncated by the end of the buffer.
		n = len(b)
	}
	v := b[attributeHeaderSize : attributeHeaderSize+length]
	a, err = decodeAttribute(t, v, id)
	if err != nil {
		return nil, n, err
	}
	return a, n, nil
}

// decodeAttribute dispatches v to the type-specific decoder for t.
func decodeAttribute(t AttrType, v []byte, id TransactionID) (Attribute, error) {
	switch t {
	case AttrMappedAddress:
		return decodeMappedAddress(v)
	case AttrXORMappedAddress:
		return decodeXORMappedAddress(v, id)
	case AttrAlternateServer:
		return decodeAlternateServer(v)
	case AttrUsername:
		s, err := decodeText(v)
		return Username(s), err
	case AttrRealm:
		s, err := decodeText(v)
		return Realm(s), err
	case AttrNonce:
		s, err := decodeText(v)
		return Nonce(s), err
	case AttrSoftware:
		s, err := decodeText(v)
		return Software(s), err
	case AttrMessageIntegrity:
		return MessageIntegrity(append([]byte(nil), v...)), nil
	case AttrFingerprint:
		u, err := decodeUint32(v)
		return Fingerprint(u), err
	case AttrErrorCode:
		return decodeErrorCode(v)
	case AttrUnknownAttributes:
		return decodeUnknownAttributes(v)
	case AttrPriority:
		u, err := decodeUint32(v)
		return Priority(u), err
	case AttrUseCandidate:
		return UseCandidate{}, nil
	case AttrICEControlled:
		u, err := decodeUint64(v)
		return ICEControlled(u), err
	case AttrICEControlling:
		u, err := decodeUint64(v)
		return ICEControlling(u), err
	default:
		return nil, UnknownAttrError{Type: t}
	}
}

func decodeUint32(v []byte) (uint32, error) {
	if len(v) < 4 {
		return 0, errors.Wrap(ErrInsufficientData, "32-bit value")
	}
	return bin.Uint32(v), nil
}

func decodeUint64(v []byte) (uint64, error) {
	if len(v) < 8 {
		return 0, errors.Wrap(ErrInsufficientData, "64-bit value")
	}
	return bin.Uint64(v), nil
}
