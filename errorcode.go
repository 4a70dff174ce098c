package stun

import (
	"fmt"

	"github.com/pkg/errors"
)

// constants for ERROR-CODE value layout.
const (
	errorCodeClassByte   = 2
	errorCodeNumberByte  = 3
	errorCodeReasonStart = 4
	errorCodeModulo      = 100
)

// ErrorCode represents ERROR-CODE attribute: a numeric error code in
// the 300-699 range plus a UTF-8 reason phrase. Class carries the
// hundreds digit, Number the code modulo 100, each in its own wire
// byte.
//
// RFC 5389 Section 15.6.
type ErrorCode struct {
	Class  byte
	Number byte
	Reason string
}

// NewErrorCode splits code into its class and number parts.
func NewErrorCode(code int, reason string) ErrorCode {
	return ErrorCode{
		Class:  byte(code / errorCodeModulo),
		Number: byte(code % errorCodeModulo),
		Reason: reason,
	}
}

// Code returns the combined error code value.
func (e ErrorCode) Code() int {
	return int(e.Class)*errorCodeModulo + int(e.Number)
}

// Type returns AttrErrorCode.
func (e ErrorCode) Type() AttrType {
	return AttrErrorCode
}

func (e ErrorCode) String() string {
	return fmt.Sprintf("%d %s", e.Code(), e.Reason)
}

func (e ErrorCode) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	b = append(b, 0, 0, e.Class, e.Number)
	return appendText(b, e.Reason, maxTextB)
}

func decodeErrorCode(v []byte) (Attribute, error) {
	if len(v) < errorCodeReasonStart {
		return nil, errors.Wrap(ErrInsufficientData, "ERROR-CODE value")
	}
	reason, err := decodeText(v[errorCodeReasonStart:])
	if err != nil {
		return nil, err
	}
	return ErrorCode{
		Class:  v[errorCodeClassByte],
		Number: v[errorCodeNumberByte],
		Reason: reason,
	}, nil
}
