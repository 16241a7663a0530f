package model

// NotAvailable is written for any requested field the controller did not return
const NotAvailable = "N/A"

// DefaultKeys are the device fields projected into the reports when no
// other key list is configured
var DefaultKeys = []string{"system-ip", "host-name", "reachability", "version", "site-id"}

// InterfaceColumns are appended to the key list in every report header
var InterfaceColumns = []string{"interface-name", "interface-IP"}

// Device represents one managed device, keyed by its system IP
type Device struct {
	SystemIP   string            `json:"system-ip"`
	Fields     map[string]string `json:"fields"`
	Interfaces *InterfaceMap     `json:"interfaces"`
}

// Field returns the projected value for key, or NotAvailable
func (d *Device) Field(key string) string {
	if v, ok := d.Fields[key]; ok {
		return v
	}
	return NotAvailable
}

// HasInterfaces reports whether at least one interface survived filtering
func (d *Device) HasInterfaces() bool {
	return d.Interfaces != nil && d.Interfaces.Len() > 0
}

// Clone returns a copy that shares nothing with d
func (d *Device) Clone() *Device {
	fields := make(map[string]string, len(d.Fields))
	for k, v := range d.Fields {
		fields[k] = v
	}
	c := &Device{SystemIP: d.SystemIP, Fields: fields}
	if d.Interfaces != nil {
		c.Interfaces = d.Interfaces.Clone()
	}
	return c
}

// HeaderRow returns keys followed by the interface columns
func HeaderRow(keys []string) []string {
	header := make([]string, 0, len(keys)+len(InterfaceColumns))
	header = append(header, keys...)
	return append(header, InterfaceColumns...)
}
