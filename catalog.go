package ink

import "sync"

// Catalog is the process-wide registry of layer identities.
//
// Lifecycle: a catalog is append-only while layers are registered, and
// becomes read-only the first time a Grid is constructed against it.
// This follows the database/sql driver-registry pattern: registration
// errors are programming errors and panic early, reads never lock out
// of the hot path once the catalog is frozen.
//
// Register is safe for concurrent use; everything after freezing is
// read-only and needs no synchronization.
type Catalog struct {
	mu     sync.RWMutex
	frozen bool
	layers []*Layer
	byName map[string]*Layer
}

// NewCatalog creates an empty layer catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]*Layer)}
}

// Register adds a layer to the catalog and returns its handle.
// Ordinals are assigned in registration order, starting at 0.
//
// Register panics if:
//   - fn is nil
//   - a layer with the same name is already registered
//   - the catalog has been frozen by a Grid construction
func (c *Catalog) Register(name string, fn Transform) *Layer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if fn == nil {
		panic("ink: Register transform is nil")
	}
	if c.frozen {
		panic("ink: Register called on a frozen catalog")
	}
	if _, dup := c.byName[name]; dup {
		panic("ink: Register called twice for layer " + name)
	}

	l := &Layer{ordinal: len(c.layers), name: name, fn: fn}
	c.layers = append(c.layers, l)
	c.byName[name] = l
	return l
}

// freeze makes the catalog read-only. Called by NewGrid; stores size
// their slot tables against a catalog that can no longer grow.
func (c *Catalog) freeze() {
	c.mu.Lock()
	c.frozen = true
	c.mu.Unlock()
}

// Frozen reports whether the catalog still accepts registrations.
func (c *Catalog) Frozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frozen
}

// Len returns the number of registered layers.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.layers)
}

// Layer returns the layer with the given ordinal, or nil if no such
// layer is registered.
func (c *Catalog) Layer(ordinal int) *Layer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if ordinal < 0 || ordinal >= len(c.layers) {
		return nil
	}
	return c.layers[ordinal]
}

// ByName returns the layer registered under name.
func (c *Catalog) ByName(name string) (*Layer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	l, ok := c.byName[name]
	return l, ok
}

// Layers returns the registered layers in ordinal order.
// The returned slice is a copy; the handles are shared.
func (c *Catalog) Layers() []*Layer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Layer, len(c.layers))
	copy(out, c.layers)
	return out
}
