// Package netclass parses interface addresses and classifies them as
// private or public IPv4.
package netclass

import (
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

// privateNets is the IANA special-purpose registry subset treated as private
var privateNets = mustPrefixes(
	"0.0.0.0/8",
	"10.0.0.0/8",
	"127.0.0.0/8",
	"169.254.0.0/16",
	"172.16.0.0/12",
	"192.0.0.0/24",
	"192.0.0.170/31",
	"192.0.2.0/24",
	"192.168.0.0/16",
	"198.18.0.0/15",
	"198.51.100.0/24",
	"203.0.113.0/24",
	"240.0.0.0/4",
	"255.255.255.255/32",
)

// globalExceptions are carved out of 192.0.0.0/24 and are globally reachable
var globalExceptions = mustPrefixes(
	"192.0.0.9/32",
	"192.0.0.10/32",
)

// ParseIPv4 parses s as an IPv4 host or network. Bare addresses become /32.
// The mask may be a prefix length, a dotted netmask or a dotted hostmask.
// Host bits beyond the mask are tolerated and cleared. Surrounding
// whitespace is not accepted.
func ParseIPv4(s string) (netip.Prefix, bool) {
	addrPart, maskPart, hasMask := strings.Cut(s, "/")

	addr, err := netip.ParseAddr(addrPart)
	if err != nil || !addr.Is4() {
		return netip.Prefix{}, false
	}

	n := 32
	if hasMask {
		var ok bool
		if n, ok = prefixLen(maskPart); !ok {
			return netip.Prefix{}, false
		}
	}
	return netip.PrefixFrom(addr, n).Masked(), true
}

// prefixLen turns "24", "255.255.255.0" or "0.0.0.255" into 24. A dotted
// value is tried as a netmask first, then as a hostmask.
func prefixLen(mask string) (int, bool) {
	if mask == "" {
		return 0, false
	}
	if strings.Trim(mask, "0123456789") == "" {
		n, err := strconv.Atoi(mask)
		if err != nil || n > 32 {
			return 0, false
		}
		return n, true
	}

	m, err := netip.ParseAddr(mask)
	if err != nil || !m.Is4() {
		return 0, false
	}
	b := m.As4()
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	if n, ok := leadingOnes(v); ok {
		return n, true
	}
	return leadingOnes(^v)
}

// leadingOnes returns the number of leading one bits when v is a
// contiguous run of ones followed only by zeros
func leadingOnes(v uint32) (int, bool) {
	n := bits.LeadingZeros32(^v)
	return n, v == ^uint32(0)<<(32-n)
}

// IsPrivate reports whether both the first and last address of p fall in
// private ranges
func IsPrivate(p netip.Prefix) bool {
	p = p.Masked()
	return isPrivateAddr(p.Addr()) && isPrivateAddr(lastAddr(p))
}

// IsPublic is the complement of IsPrivate
func IsPublic(p netip.Prefix) bool {
	return !IsPrivate(p)
}

func isPrivateAddr(a netip.Addr) bool {
	for _, n := range globalExceptions {
		if n.Contains(a) {
			return false
		}
	}
	for _, n := range privateNets {
		if n.Contains(a) {
			return true
		}
	}
	return false
}

// lastAddr returns the broadcast address of an IPv4 prefix
func lastAddr(p netip.Prefix) netip.Addr {
	b := p.Addr().As4()
	hostBits := 32 - p.Bits()
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	if hostBits >= 32 {
		v = ^uint32(0)
	} else {
		v |= (uint32(1) << hostBits) - 1
	}
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func mustPrefixes(cidrs ...string) []netip.Prefix {
	out := make([]netip.Prefix, 0, len(cidrs))
	for _, c := range cidrs {
		out = append(out, netip.MustParsePrefix(c))
	}
	return out
}
