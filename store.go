package ink

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned by NewGrid for a draw style outside the
// defined set.
var ErrUnknownStyle = errors.New("ink: unknown draw style")

// DrawStyle selects the LayerStore variant a Grid installs in every cell.
// The style is fixed for the lifetime of the grid.
type DrawStyle uint8

const (
	// DrawStyleSet keeps at most one active layer per cell.
	DrawStyleSet DrawStyle = iota
	// DrawStyleAdditive keeps a bounded insertion-ordered layer sequence.
	DrawStyleAdditive
	// DrawStyleSequence keeps one applied flag per catalog layer.
	DrawStyleSequence
)

var drawStyleNames = [...]string{
	DrawStyleSet:      "set",
	DrawStyleAdditive: "additive",
	DrawStyleSequence: "sequence",
}

// String returns the lower-case style name.
func (s DrawStyle) String() string {
	if int(s) < len(drawStyleNames) {
		return drawStyleNames[s]
	}
	return "unknown"
}

// ParseDrawStyle converts a style name ("set", "additive", "sequence",
// case-insensitive) to a DrawStyle.
func ParseDrawStyle(name string) (DrawStyle, error) {
	for i, n := range drawStyleNames {
		if strings.EqualFold(name, n) {
			return DrawStyle(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownStyle, name)
}

// LayerStore holds the layer state of a single grid cell and composes it
// into a final color. The three variants share this interface but differ
// in what Add, Erase, and Special mean; see SetStore, AdditiveStore, and
// SequenceStore.
//
// This is a sealed interface: the unexported methods keep the variant set
// closed to this package, so callers can rely on exhaustive handling.
type LayerStore interface {
	// Add activates layer l in the store. It reports whether the store
	// registered a change; variants deliberately report true even for
	// idempotent re-adds, matching edit-history semantics rather than a
	// strict state delta.
	Add(l *Layer) bool

	// Erase performs the variant's erase with l as the argument; which
	// layer is actually removed depends on the variant. It reports
	// whether the store registered a change.
	Erase(l *Layer) bool

	// GetColor composes the stored layers onto start for the cell at
	// (x, y) at timestamp t. A read never changes the stored state.
	GetColor(start Color, t int64, x, y int) Color

	// Special applies the variant's store-wide effect. When the effect
	// destructively removed a layer (SequenceStore's median rule), the
	// removed layer is returned so the caller can invert the effect
	// later; the self-inverse variants return nil.
	Special() *Layer

	// eraseTarget returns the layer an Erase(l) issued right now would
	// remove, or nil when there is nothing to remove. PaintAction uses
	// this to snapshot prior values before destructive edits.
	eraseTarget(l *Layer) *Layer

	// storeMarker seals the interface.
	storeMarker()
}

// newLayerStore builds one cell's store for the given style.
func newLayerStore(style DrawStyle, cat *Catalog) (LayerStore, error) {
	switch style {
	case DrawStyleSet:
		return NewSetStore(), nil
	case DrawStyleAdditive:
		return NewAdditiveStore(), nil
	case DrawStyleSequence:
		return NewSequenceStore(cat), nil
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownStyle, style)
	}
}
