// Package vio gives binary-analysis tooling a single flat address space over
// many independently opened backing stores. Each opened store is a descriptor
// reachable by a recyclable handle or by any address inside its mapped
// interval; byte ranges spanning several descriptors decompose into ordered
// chunks for scatter I/O.
package vio

// Vio resolves URIs to registered plugins and scatters reads and writes
// across the descriptors backing a range. Like DescQuery it is
// single-threaded; wrap it in a mutex for shared use.
type Vio struct {
	plugins []Plugin
	descs   *DescQuery
}

func New() *Vio {
	return &Vio{descs: NewDescQuery()}
}

// Register appends p to the plugin list. Resolution tries plugins in
// registration order, first accept wins.
func (v *Vio) Register(p Plugin) {
	v.plugins = append(v.plugins, p)
}

func (v *Vio) resolve(uri string) (Plugin, error) {
	for _, p := range v.plugins {
		if p.Accept(uri) {
			return p, nil
		}
	}
	return nil, ErrPluginNotFound
}

func (v *Vio) Open(uri string, mode Mode) (uint64, error) {
	p, err := v.resolve(uri)
	if err != nil {
		return 0, err
	}
	return v.descs.Open(p, uri, mode)
}

func (v *Vio) OpenAt(uri string, mode Mode, at uint64) (uint64, error) {
	p, err := v.resolve(uri)
	if err != nil {
		return 0, err
	}
	return v.descs.OpenAt(p, uri, mode, at)
}

// Close closes hndl and releases its backend resource.
func (v *Vio) Close(hndl uint64) error {
	d, err := v.descs.Close(hndl)
	if err != nil {
		return err
	}
	return d.Close()
}

func (v *Vio) Desc(hndl uint64) *Desc {
	return v.descs.Desc(hndl)
}

func (v *Vio) AddrToHandle(paddr uint64) (uint64, bool) {
	return v.descs.AddrToHandle(paddr)
}

func (v *Vio) AddrRangeToHandles(paddr, size uint64) []DescChunk {
	return v.descs.AddrRangeToHandles(paddr, size)
}

// Read fills b from the descriptors covering [paddr, paddr+len(b)-1].
// The whole range must be mapped.
func (v *Vio) Read(paddr uint64, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	chunks := v.descs.AddrRangeToHandles(paddr, uint64(len(b)))
	if chunks == nil {
		return ErrAddressInvalid
	}
	var off uint64
	for _, c := range chunks {
		if err := v.descs.Desc(c.Hndl).Read(c.PAddr, b[off:off+c.Size]); err != nil {
			return err
		}
		off += c.Size
	}
	return nil
}

// Write copies b across the descriptors covering [paddr, paddr+len(b)-1],
// under the same coverage rule as Read.
func (v *Vio) Write(paddr uint64, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	chunks := v.descs.AddrRangeToHandles(paddr, uint64(len(b)))
	if chunks == nil {
		return ErrAddressInvalid
	}
	var off uint64
	for _, c := range chunks {
		if err := v.descs.Desc(c.Hndl).Write(c.PAddr, b[off:off+c.Size]); err != nil {
			return err
		}
		off += c.Size
	}
	return nil
}
