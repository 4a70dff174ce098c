// Package stun implements encoding and decoding of STUN messages as
// defined by RFC 5389, together with the ICE attribute extensions from
// RFC 8445.
//
// The package is a pure codec: it turns a Message value into the bytes
// that go on the wire and parses received bytes back, verifying the
// FINGERPRINT and MESSAGE-INTEGRITY mechanisms along the way. Sending
// and receiving datagrams, transaction retransmission, and ICE session
// logic are left to the caller.
//
// Building and encoding a request:
//
//	m := stun.NewBindingRequest().
//		Add(stun.Software("stunwire")).
//		AddMessageIntegrity().
//		AddFingerprint()
//	raw, err := m.Encode(&stun.Credentials{Password: "secret"})
//
// Decoding with verification:
//
//	m, err := stun.Decode(raw, &stun.Credentials{Password: "secret"})
package stun

import (
	"crypto/rand"
	"encoding/binary"
)

// bin is shorthand to binary.BigEndian.
var bin = binary.BigEndian

const (
	// magicCookie is fixed value that aids in distinguishing STUN packets
	// from packets of other protocols when STUN is multiplexed with those
	// other protocols on the same port.
	//
	// The magic cookie field MUST contain the fixed value 0x2112A442 in
	// network byte order.
	//
	// Defined in "STUN Message Structure", section 6.
	magicCookie         = 0x2112A442
	attributeHeaderSize = 4
	messageHeaderSize   = 20
)

// TransactionIDSize is length of transaction id in bytes (96 bits).
const TransactionIDSize = 12

// DefaultPort is IANA assigned port for "stun" protocol.
const DefaultPort = 3478

// TransactionID correlates a request with its response and doubles as
// XOR keying material for IPv6 XOR-MAPPED-ADDRESS encoding.
type TransactionID [TransactionIDSize]byte

// NewTransactionID returns new random transaction ID using crypto/rand
// as source.
func NewTransactionID() (id TransactionID) {
	if _, err := rand.Read(id[:]); err != nil {
		panic(err)
	}
	return id
}

// IsMessage returns true if b looks like STUN message.
// Useful for multiplexing. IsMessage does not guarantee
// that decoding will be successful.
func IsMessage(b []byte) bool {
	return len(b) >= messageHeaderSize && bin.Uint32(b[4:8]) == magicCookie
}
