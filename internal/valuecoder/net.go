package valuecoder

import (
	"net"

	"github.com/go-docsis/docsistlv/internal/registry"
)

func decodeIP(raw []byte, size int) Decoded {
	kind := registry.KindIPv4
	if size == 16 {
		kind = registry.KindIPv6
	}
	if len(raw) != size {
		return Decoded{Kind: kind, RawFallback: true,
			Warning: "ip address length mismatch"}
	}
	var ip net.IP
	if size == 4 {
		ip = net.IPv4(raw[0], raw[1], raw[2], raw[3])
	} else {
		ip = append(net.IP(nil), raw...)
	}
	return Decoded{Kind: kind, IP: ip.String()}
}

func encodeIP(s string, size int) ([]byte, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, ErrInvalidAddress
	}
	if size == 4 {
		v4 := ip.To4()
		if v4 == nil {
			return nil, ErrInvalidAddress
		}
		return append([]byte(nil), v4...), nil
	}
	v16 := ip.To16()
	if v16 == nil {
		return nil, ErrInvalidAddress
	}
	return append([]byte(nil), v16...), nil
}

func decodeMAC(raw []byte) Decoded {
	if len(raw) != 6 {
		return Decoded{Kind: registry.KindMAC, RawFallback: true,
			Warning: "mac address length mismatch"}
	}
	return Decoded{Kind: registry.KindMAC, MAC: net.HardwareAddr(raw).String()}
}

func encodeMAC(s string) ([]byte, error) {
	hw, err := net.ParseMAC(s)
	if err != nil || len(hw) != 6 {
		return nil, ErrInvalidAddress
	}
	return []byte(hw), nil
}
