package inventory

import (
	"context"

	"github.com/paularlott/logger"

	"github.com/martinsuchenak/vedgeip/internal/log"
	"github.com/martinsuchenak/vedgeip/internal/model"
	"github.com/martinsuchenak/vedgeip/internal/netclass"
)

// Raw interface fields read from the controller
const (
	InterfaceNameKey    = "ifname"
	InterfaceAddressKey = "ip-address"
)

// InterfaceSource returns the raw interface list of one device
type InterfaceSource interface {
	Interfaces(ctx context.Context, systemIP string) []map[string]any
}

// Enrich fetches every device's interfaces and keeps those that are not
// ignored and carry a public IPv4 address. It returns a new set; devices
// is left untouched. Every returned device has a non-nil interface map.
// Once ctx is done no further devices are fetched or returned.
func Enrich(ctx context.Context, devices *model.DeviceSet, source InterfaceSource, ignore []string, logger logger.Logger) *model.DeviceSet {
	logger = log.OrNop(logger)

	ignored := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		ignored[name] = struct{}{}
	}

	out := model.NewDeviceSet()
	total := devices.Len()
	for n, device := range devices.Devices() {
		if ctx.Err() != nil {
			logger.Warn("Interface fetch cancelled", "remaining", total-n)
			break
		}
		logger.Info("Fetching interface information", "device", device.SystemIP, "num", n+1, "total", total)

		enriched := device.Clone()
		enriched.Interfaces = model.NewInterfaceMap()
		for _, iface := range source.Interfaces(ctx, device.SystemIP) {
			name, addr, ok := filterInterface(iface, ignored, logger)
			if ok {
				enriched.Interfaces.Set(name, addr)
			}
		}
		out.Put(enriched)
	}

	return out
}

// filterInterface applies the ignore list, the IPv4 syntax check and the
// private range check, in that order
func filterInterface(iface map[string]any, ignored map[string]struct{}, logger logger.Logger) (string, string, bool) {
	// An empty name is still a name
	name, ok := iface[InterfaceNameKey].(string)
	if !ok {
		logger.Info("Interface has no name, skipping")
		return "", "", false
	}

	if _, skip := ignored[name]; skip {
		logger.Info("Interface is in the ignore list, skipping", "interface", name)
		return "", "", false
	}

	addr, _ := iface[InterfaceAddressKey].(string)
	prefix, ok := netclass.ParseIPv4(addr)
	if !ok {
		logger.Info("Interface has no usable IPv4 address, skipping", "interface", name, "address", addr)
		return "", "", false
	}

	if netclass.IsPrivate(prefix) {
		logger.Info("Interface has a private IP, skipping", "interface", name, "address", addr)
		return "", "", false
	}

	logger.Info("Interface has a public IP, adding to the list", "interface", name, "address", addr)
	return name, addr, true
}
