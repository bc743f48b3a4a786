package harness

import (
	"math"
	"math/rand"

	"github.com/wireumb/umb/runtime"
	"github.com/wireumb/umb/schema"
	"github.com/wireumb/umb/wire"
)

// maxGeneratedDynamicLen caps how long a generated string/bytes field is,
// independent of wire.MaxDynamicSize: most of the value in fuzzing comes
// from short and boundary-length values, not from always paying for a
// 255-unit field.
const maxGeneratedDynamicLen = 48

// surrogateLow and surrogateHigh bound the UTF-16 surrogate range, which is
// not a valid standalone code point and must never be generated as a rune
// (codec.Encoder.String and the wire format only ever carry BMP scalar
// values, never surrogate halves).
const (
	surrogateLow  = 0xD800
	surrogateHigh = 0xDFFF
)

// randRune returns a random Basic Multilingual Plane scalar value, never a
// surrogate half.
func randRune(rng *rand.Rand) rune {
	for {
		r := rune(rng.Intn(0x10000))
		if r < surrogateLow || r > surrogateHigh {
			return r
		}
	}
}

// randString returns a random BMP-only string of up to maxGeneratedDynamicLen
// code units.
func randString(rng *rand.Rand) string {
	n := rng.Intn(maxGeneratedDynamicLen + 1)
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = randRune(rng)
	}
	return string(runes)
}

// randBytes returns a random byte slice of up to maxGeneratedDynamicLen bytes.
func randBytes(rng *rand.Rand) []byte {
	n := rng.Intn(maxGeneratedDynamicLen + 1)
	if n == 0 {
		return nil
	}
	b := make([]byte, n)
	rng.Read(b)
	return b
}

// randFloat32 returns an arbitrary float32 bit pattern, including NaN and
// the two infinities: strconv's round-trip formatting (codec.FormatFloat/
// ParseFloat) and runtime.Instance.Equal's NaN-equals-NaN comparison both
// treat every bit pattern as a legitimate wire value, so the generator
// does not special-case or exclude any of them.
func randFloat32(rng *rand.Rand) float32 {
	return math.Float32frombits(rng.Uint32())
}

// Populate assigns every field of inst a random value, driven by rng and
// a's declared field types. It never returns an error: every Instance
// setter here is called with a value of the field's own declared type, so
// runtime.ErrFieldTypeMismatch can never trigger.
func Populate(rng *rand.Rand, inst *runtime.Instance, a *schema.Analysis) {
	for _, f := range a.Fields {
		switch f.Type {
		case wire.TypeByte:
			_ = inst.SetByte(f.Name, byte(rng.Intn(256)))
		case wire.TypeBool:
			_ = inst.SetBool(f.Name, rng.Intn(2) == 1)
		case wire.TypeInt:
			_ = inst.SetInt(f.Name, rng.Int31())
		case wire.TypeFloat:
			_ = inst.SetFloat(f.Name, randFloat32(rng))
		case wire.TypeString:
			_ = inst.SetString(f.Name, randString(rng))
		case wire.TypeBytes:
			_ = inst.SetBytes(f.Name, randBytes(rng))
		}
	}
}
