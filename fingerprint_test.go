package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintRoundTrip(t *testing.T) {
	m := NewBindingRequest().
		Add(Software("test vector")).
		AddFingerprint()
	raw, err := m.Encode(nil)
	assert.NoError(t, err)

	got, err := Decode(raw, nil)
	assert.NoError(t, err)

	fp, ok := got.Get(AttrFingerprint)
	assert.True(t, ok)
	assert.NotZero(t, fp.(Fingerprint), "placeholder must be substituted")
}

func TestFingerprintTamperDetection(t *testing.T) {
	m := NewBindingRequest().
		Add(Software("test vector")).
		AddFingerprint()
	raw, err := m.Encode(nil)
	assert.NoError(t, err)

	// Flip a bit inside the SOFTWARE value. The result is still valid
	// ASCII so the decode fails on the checksum, not on parsing.
	tampered := append([]byte(nil), raw...)
	tampered[messageHeaderSize+attributeHeaderSize] ^= 0x01
	_, err = Decode(tampered, nil)
	var mismatch CRCMismatch
	assert.ErrorAs(t, err, &mismatch)
	assert.NotEqual(t, mismatch.Expected, mismatch.Actual)
}

func TestFingerprintVerbatimValue(t *testing.T) {
	// A non-zero FINGERPRINT passes through unmodified and then fails
	// verification, since it is not the real checksum.
	m := NewBindingRequest().Add(Fingerprint(0xdeadbeef))
	raw, err := m.Encode(nil)
	assert.NoError(t, err)

	_, err = Decode(raw, nil)
	var mismatch CRCMismatch
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint32(0xdeadbeef), mismatch.Actual)
}

func TestFingerprintNotLastEncode(t *testing.T) {
	m := NewBindingRequest().
		AddFingerprint().
		Add(Software("after"))
	_, err := m.Encode(nil)
	assert.ErrorIs(t, err, ErrFingerprintNotLast)
}

func TestFingerprintNotLastDecode(t *testing.T) {
	m := NewBindingRequest().
		Add(Software("test")).
		AddFingerprint()
	raw, err := m.Encode(nil)
	assert.NoError(t, err)

	// Append a PRIORITY attribute after FINGERPRINT and fix up the
	// header length.
	raw = append(raw, 0x00, 0x24, 0x00, 0x04, 0, 0, 0, 1)
	bin.PutUint16(raw[2:4], uint16(len(raw)-messageHeaderSize))

	_, err = Decode(raw, nil)
	assert.ErrorIs(t, err, ErrFingerprintNotLast)
}
