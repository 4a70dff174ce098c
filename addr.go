package stun

import (
	"net"
	"strconv"

	"github.com/pion/transport/v3/utils/xor"
	"github.com/pkg/errors"
)

// Address family values from RFC 5389 section 15.1.
const (
	familyIPv4 byte = 0x01
	familyIPv6 byte = 0x02
)

// addressHeaderSize covers the reserved byte, the family byte and the
// 16-bit port that precede the address bytes.
const addressHeaderSize = 4

// ErrBadIPLength means that len(IP) is not net.{IPv6len,IPv4len}.
const ErrBadIPLength Error = "invalid length of IP value"

// MappedAddress represents MAPPED-ADDRESS attribute: the reflexive
// transport address of the client, encoded directly in binary.
//
// RFC 5389 Section 15.1.
type MappedAddress struct {
	IP   net.IP
	Port int
}

// Type returns AttrMappedAddress.
func (a MappedAddress) Type() AttrType {
	return AttrMappedAddress
}

func (a MappedAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

func (a MappedAddress) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return appendAddress(b, a.IP, a.Port)
}

// AlternateServer represents ALTERNATE-SERVER attribute: a different
// STUN server the client should try. Encoded the same way as
// MAPPED-ADDRESS.
//
// RFC 5389 Section 15.11.
type AlternateServer struct {
	IP   net.IP
	Port int
}

// Type returns AttrAlternateServer.
func (a AlternateServer) Type() AttrType {
	return AttrAlternateServer
}

func (a AlternateServer) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

func (a AlternateServer) appendValue(b []byte, _ TransactionID) ([]byte, error) {
	return appendAddress(b, a.IP, a.Port)
}

// XORMappedAddress represents XOR-MAPPED-ADDRESS attribute. It is
// identical to MAPPED-ADDRESS except that the transport address is
// obfuscated through the XOR function: the port and the first 4 address
// bytes against the magic cookie, the remaining IPv6 address bytes
// against the transaction id.
//
// RFC 5389 Section 15.2.
type XORMappedAddress struct {
	IP   net.IP
	Port int
}

// Type returns AttrXORMappedAddress.
func (a XORMappedAddress) Type() AttrType {
	return AttrXORMappedAddress
}

func (a XORMappedAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

func (a XORMappedAddress) appendValue(b []byte, id TransactionID) ([]byte, error) {
	ip, family, err := normalizeIP(a.IP)
	if err != nil {
		return nil, err
	}
	value := make([]byte, addressHeaderSize+len(ip))
	value[1] = family
	// X-Port is the mapped port XOR'ed with the most significant 16 bits
	// of the magic cookie.
	bin.PutUint16(value[2:4], uint16(a.Port)^uint16(magicCookie>>16))
	xor.XorBytes(value[4:], ip, xorKey(id))
	return append(b, value...), nil
}

// normalizeIP reduces IPv4-in-IPv6 values to 4 bytes and returns the
// wire family byte.
func normalizeIP(ip net.IP) (net.IP, byte, error) {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4, familyIPv4, nil
	}
	if len(ip) == net.IPv6len {
		return ip, familyIPv6, nil
	}
	return nil, 0, errors.Wrapf(ErrBadIPLength, "got %d", len(ip))
}

// xorKey is the 16-byte keying material for address obfuscation: the
// magic cookie followed by the transaction id.
func xorKey(id TransactionID) []byte {
	key := make([]byte, net.IPv6len)
	bin.PutUint32(key[0:4], magicCookie)
	copy(key[4:], id[:])
	return key
}

func appendAddress(b []byte, ip net.IP, port int) ([]byte, error) {
	ip, family, err := normalizeIP(ip)
	if err != nil {
		return nil, err
	}
	value := make([]byte, addressHeaderSize, addressHeaderSize+len(ip))
	value[1] = family
	bin.PutUint16(value[2:4], uint16(port))
	value = append(value, ip...)
	return append(b, value...), nil
}

func decodeMappedAddress(v []byte) (Attribute, error) {
	ip, port, err := decodeAddressValue(v, false, TransactionID{})
	if err != nil {
		return nil, err
	}
	return MappedAddress{IP: ip, Port: port}, nil
}

func decodeAlternateServer(v []byte) (Attribute, error) {
	ip, port, err := decodeAddressValue(v, false, TransactionID{})
	if err != nil {
		return nil, err
	}
	return AlternateServer{IP: ip, Port: port}, nil
}

func decodeXORMappedAddress(v []byte, id TransactionID) (Attribute, error) {
	ip, port, err := decodeAddressValue(v, true, id)
	if err != nil {
		return nil, err
	}
	return XORMappedAddress{IP: ip, Port: port}, nil
}

func decodeAddressValue(v []byte, xored bool, id TransactionID) (net.IP, int, error) {
	if len(v) < addressHeaderSize+net.IPv4len {
		return nil, 0, errors.Wrap(ErrInsufficientData, "address")
	}
	port := int(bin.Uint16(v[2:4]))
	if xored {
		port ^= magicCookie >> 16
	}
	var ipLen int
	switch family := v[1]; family {
	case familyIPv4:
		ipLen = net.IPv4len
	case familyIPv6:
		ipLen = net.IPv6len
	default:
		return nil, 0, errors.Wrapf(ErrInvalidAddressFamily, "0x%02x", family)
	}
	if len(v) < addressHeaderSize+ipLen {
		return nil, 0, errors.Wrap(ErrInsufficientData, "address value")
	}
	ip := make(net.IP, ipLen)
	if xored {
		xor.XorBytes(ip, v[4:4+ipLen], xorKey(id))
	} else {
		copy(ip, v[4:])
	}
	return ip, port, nil
}
