package netclass

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"bare address", "8.8.8.8", "8.8.8.8/32", true},
		{"cidr", "8.8.8.0/24", "8.8.8.0/24", true},
		{"non-strict cidr", "8.8.8.8/24", "8.8.8.0/24", true},
		{"netmask", "8.8.8.8/255.255.255.0", "8.8.8.0/24", true},
		{"hostmask", "8.8.8.8/0.0.0.255", "8.8.8.0/24", true},
		{"all-ones netmask", "8.8.8.8/255.255.255.255", "8.8.8.8/32", true},
		{"zero netmask", "8.8.8.8/0.0.0.0", "0.0.0.0/0", true},
		{"zero prefix", "8.8.8.8/0", "0.0.0.0/0", true},
		{"non-contiguous mask", "8.8.8.8/255.0.255.0", "", false},
		{"empty prefix", "8.8.8.8/", "", false},
		{"double slash", "8.8.8.8/24/8", "", false},
		{"signed prefix", "8.8.8.8/+24", "", false},
		{"surrounding spaces", "  9.9.9.9 ", "", false},
		{"leading space", " 8.8.8.8", "", false},
		{"empty", "", "", false},
		{"garbage", "not-an-ip", "", false},
		{"octet overflow", "256.1.1.1", "", false},
		{"bad prefix length", "1.1.1.1/33", "", false},
		{"ipv6", "2001:db8::1", "", false},
		{"ipv6 cidr", "2001:db8::/32", "", false},
		{"ipv4 mapped ipv6", "::ffff:8.8.8.8", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIPv4(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseIPv4(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got.String() != tt.want {
				t.Errorf("ParseIPv4(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsPrivate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10.0.0.5", true},
		{"10.0.0.1", true},
		{"192.168.1.1", true},
		{"172.16.0.1", true},
		{"172.31.255.255", true},
		{"127.0.0.1", true},
		{"169.254.10.10", true},
		{"192.0.2.7", true},
		{"198.18.0.1", true},
		{"198.51.100.1", true},
		{"203.0.113.9", true},
		{"240.0.0.1", true},
		{"255.255.255.255", true},
		{"0.0.0.0", true},
		{"192.0.0.8", true},
		{"192.0.0.9", false},
		{"192.0.0.10", false},
		{"8.8.8.8", false},
		{"9.9.9.9", false},
		{"172.32.0.1", false},
		{"100.64.0.1", false},
		{"11.0.0.1", false},
		{"10.0.0.0/8", true},
		{"10.1.2.3/16", true},
		{"8.8.8.8/24", false},
		{"8.8.8.8/255.255.255.0", false},
		{"8.8.8.8/0.0.0.255", false},
		{"10.1.2.3/255.255.0.0", true},
		// spans private and public space
		{"172.0.0.0/8", false},
		{"0.0.0.0/0", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, ok := ParseIPv4(tt.input)
			if !ok {
				t.Fatalf("ParseIPv4(%q) failed", tt.input)
			}
			if got := IsPrivate(p); got != tt.want {
				t.Errorf("IsPrivate(%s) = %v, want %v", tt.input, got, tt.want)
			}
			if IsPublic(p) == tt.want {
				t.Errorf("IsPublic(%s) should be the complement of IsPrivate", tt.input)
			}
		})
	}
}

func TestRFC1918AlwaysPrivate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var addr string
		switch rapid.IntRange(0, 2).Draw(t, "range") {
		case 0:
			addr = fmt.Sprintf("10.%d.%d.%d",
				rapid.IntRange(0, 255).Draw(t, "b"),
				rapid.IntRange(0, 255).Draw(t, "c"),
				rapid.IntRange(0, 255).Draw(t, "d"))
		case 1:
			addr = fmt.Sprintf("172.%d.%d.%d",
				rapid.IntRange(16, 31).Draw(t, "b"),
				rapid.IntRange(0, 255).Draw(t, "c"),
				rapid.IntRange(0, 255).Draw(t, "d"))
		default:
			addr = fmt.Sprintf("192.168.%d.%d",
				rapid.IntRange(0, 255).Draw(t, "c"),
				rapid.IntRange(0, 255).Draw(t, "d"))
		}

		p, ok := ParseIPv4(addr)
		if !ok {
			t.Fatalf("ParseIPv4(%q) failed", addr)
		}
		if !IsPrivate(p) {
			t.Fatalf("%s should be private", addr)
		}
	})
}

func TestParseIPv4NeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		p, ok := ParseIPv4(s)
		if ok && !p.Addr().Is4() {
			t.Fatalf("ParseIPv4(%q) returned non-IPv4 prefix %s", s, p)
		}
	})
}
