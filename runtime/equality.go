package runtime

import (
	"bytes"
	"math"

	"github.com/wireumb/umb/wire"
)

// Equal reports whether m and other hold the same message type and field
// values. Float fields use NaN-equals-NaN semantics (two NaN values compare
// equal here, unlike Go's own == on float32), matching the structural
// equality the original message contract expects rather than IEEE 754
// comparison semantics.
func (m *Instance) Equal(other *Instance) bool {
	if other == nil {
		return false
	}
	if m.analysis.TypeID != other.analysis.TypeID {
		return false
	}

	for _, f := range m.analysis.Fields {
		a := m.values[f.Name]
		b := other.values[f.Name]

		switch f.Type {
		case wire.TypeByte:
			if a.b != b.b {
				return false
			}
		case wire.TypeBool:
			if a.bl != b.bl {
				return false
			}
		case wire.TypeInt:
			if a.i != b.i {
				return false
			}
		case wire.TypeFloat:
			if !floatEqual(a.f, b.f) {
				return false
			}
		case wire.TypeString:
			if a.s != b.s {
				return false
			}
		case wire.TypeBytes:
			if !bytes.Equal(a.by, b.by) {
				return false
			}
		}
	}

	return true
}

func floatEqual(a, b float32) bool {
	if math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
		return true
	}
	return a == b
}
