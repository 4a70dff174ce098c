package stun

import "hash/crc32"

const (
	fingerprintXORValue uint32 = 0x5354554e
	fingerprintSize            = 4 // 32 bit
	fingerprintAttrSize        = attributeHeaderSize + fingerprintSize
)

// Fingerprint represents FINGERPRINT attribute: CRC-32 based tamper
// evidence over the whole message. When present it must be the last
// attribute.
//
// The zero value is a placeholder: the encoder replaces it with the
// checksum computed over the message built so far. A non-zero value is
// written verbatim.
//
// RFC 5389 Section 15.5.
type Fingerprint uint32

// Type returns AttrFingerprint.
func (f Fingerprint) Type() AttrType {
	return AttrFingerprint
}

func (f Fingerprint) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return append(b, byte(f>>24), byte(f>>16), byte(f>>8), byte(f)), nil
}

// fingerprintValue returns CRC-32 of b XOR-ed by 0x5354554e.
//
// The value of the attribute is computed as the CRC-32 of the STUN message
// up to (but excluding) the FINGERPRINT attribute itself, XOR'ed with
// the 32-bit value 0x5354554e (the XOR helps in cases where an
// application packet is also using CRC-32 in it).
func fingerprintValue(b []byte) uint32 {
	return crc32.ChecksumIEEE(b) ^ fingerprintXORValue
}
