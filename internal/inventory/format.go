// Package inventory turns raw controller records into device records and
// attaches the public IPv4 interfaces of each device.
package inventory

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/paularlott/logger"

	"github.com/martinsuchenak/vedgeip/internal/log"
	"github.com/martinsuchenak/vedgeip/internal/model"
)

// SystemIPKey is the raw field that identifies a device
const SystemIPKey = "system-ip"

// Format projects raw devices onto keys, keyed by system IP. Missing fields
// become model.NotAvailable. A later duplicate system IP replaces the
// earlier record. Records without a system IP are skipped.
func Format(raw []map[string]any, keys []string, logger logger.Logger) *model.DeviceSet {
	logger = log.OrNop(logger)
	devices := model.NewDeviceSet()

	for i, rec := range raw {
		systemIP, ok := stringify(rec[SystemIPKey])
		if !ok || systemIP == "" {
			logger.Warn("Skipping device without system-ip", "index", i)
			continue
		}

		fields := make(map[string]string, len(keys))
		for _, key := range keys {
			if v, ok := stringify(rec[key]); ok {
				fields[key] = v
			} else {
				fields[key] = model.NotAvailable
			}
		}

		if _, dup := devices.Get(systemIP); dup {
			logger.Warn("Duplicate system-ip, keeping the later record", "system_ip", systemIP)
		}
		devices.Put(&model.Device{SystemIP: systemIP, Fields: fields})
	}

	return devices
}

// stringify renders a decoded JSON value for a report cell. It returns false
// for absent and null values.
func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val), true
		}
		return string(b), true
	}
}
