package model

// InterfaceMap is an insertion-ordered map of interface name to address.
// Setting an existing name replaces its address but keeps its position.
type InterfaceMap struct {
	names []string
	addrs map[string]string
}

// NewInterfaceMap creates an empty interface map
func NewInterfaceMap() *InterfaceMap {
	return &InterfaceMap{addrs: make(map[string]string)}
}

// Set records name -> address
func (m *InterfaceMap) Set(name, address string) {
	if _, ok := m.addrs[name]; !ok {
		m.names = append(m.names, name)
	}
	m.addrs[name] = address
}

// Get returns the address stored for name
func (m *InterfaceMap) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	addr, ok := m.addrs[name]
	return addr, ok
}

// Len returns the number of interfaces
func (m *InterfaceMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns the interface names in insertion order
func (m *InterfaceMap) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Addresses returns the addresses in the same order as Names
func (m *InterfaceMap) Addresses() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.names))
	for _, n := range m.names {
		out = append(out, m.addrs[n])
	}
	return out
}

// Each calls fn for every interface in insertion order
func (m *InterfaceMap) Each(fn func(name, address string)) {
	if m == nil {
		return
	}
	for _, n := range m.names {
		fn(n, m.addrs[n])
	}
}

// Map returns a plain map copy, mainly for comparisons in tests
func (m *InterfaceMap) Map() map[string]string {
	out := make(map[string]string, m.Len())
	m.Each(func(name, address string) { out[name] = address })
	return out
}

// Clone returns an independent copy
func (m *InterfaceMap) Clone() *InterfaceMap {
	c := NewInterfaceMap()
	m.Each(c.Set)
	return c
}

// DeviceSet is an insertion-ordered map of system IP to device.
// Putting an existing system IP replaces the record in place (last write wins).
type DeviceSet struct {
	keys    []string
	devices map[string]*Device
}

// NewDeviceSet creates an empty device set
func NewDeviceSet() *DeviceSet {
	return &DeviceSet{devices: make(map[string]*Device)}
}

// Put stores d under d.SystemIP
func (s *DeviceSet) Put(d *Device) {
	if _, ok := s.devices[d.SystemIP]; !ok {
		s.keys = append(s.keys, d.SystemIP)
	}
	s.devices[d.SystemIP] = d
}

// Get returns the device stored for systemIP
func (s *DeviceSet) Get(systemIP string) (*Device, bool) {
	d, ok := s.devices[systemIP]
	return d, ok
}

// Len returns the number of devices
func (s *DeviceSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the system IPs in insertion order
func (s *DeviceSet) Keys() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Devices returns the devices in insertion order
func (s *DeviceSet) Devices() []*Device {
	if s == nil {
		return nil
	}
	out := make([]*Device, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.devices[k])
	}
	return out
}
