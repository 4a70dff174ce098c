package stun

// ICE attributes from RFC 8445.

// Priority represents PRIORITY attribute: the candidate priority
// computed by the algorithm in RFC 8445 section 5.1.2, carried in
// Binding requests during connectivity checks.
//
// RFC 8445 Section 7.1.1.
type Priority uint32

// Type returns AttrPriority.
func (p Priority) Type() AttrType {
	return AttrPriority
}

func (p Priority) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return append(b, byte(p>>24), byte(p>>16), byte(p>>8), byte(p)), nil
}

// UseCandidate represents USE-CANDIDATE attribute, included by the
// controlling agent to nominate a candidate pair. It carries no value.
//
// RFC 8445 Section 7.1.2.
type UseCandidate struct{}

// Type returns AttrUseCandidate.
func (UseCandidate) Type() AttrType {
	return AttrUseCandidate
}

func (UseCandidate) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return b, nil
}

// ICEControlled represents ICE-CONTROLLED attribute: the tiebreaker
// value the controlled agent includes in Binding requests, used to
// resolve role conflicts.
//
// RFC 8445 Section 7.1.3.
type ICEControlled uint64

// Type returns AttrICEControlled.
func (c ICEControlled) Type() AttrType {
	return AttrICEControlled
}

func (c ICEControlled) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return appendUint64(b, uint64(c)), nil
}

// ICEControlling represents ICE-CONTROLLING attribute: the tiebreaker
// value the controlling agent includes in Binding requests.
//
// RFC 8445 Section 7.1.3.
type ICEControlling uint64

// Type returns AttrICEControlling.
func (c ICEControlling) Type() AttrType {
	return AttrICEControlling
}

func (c ICEControlling) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return appendUint64(b, uint64(c)), nil
}

func appendUint64(b []byte, v uint64) []byte {
	var buf [8]byte
	bin.PutUint64(buf[:], v)
	return append(b, buf[:]...)
}
