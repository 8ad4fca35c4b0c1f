package vio

// Mode is the access requested from a backend. It is forwarded to the plugin
// unmodified; descriptors additionally gate Read/Write on it.
type Mode int

const (
	MODE_NONE Mode = 0
	MODE_READ Mode = 1 << (iota - 1)
	MODE_WRITE

	MODE_RW = MODE_READ | MODE_WRITE
)
