package harness

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireumb/umb/runtime"
	"github.com/wireumb/umb/schema"
	"github.com/wireumb/umb/trace"
)

const fixtureYAML = `
messages:
  - name: Ping
    fields:
      - name: seq
        type: int
  - name: Flags
    fields:
      - name: a
        type: bool
      - name: b
        type: bool
      - name: c
        type: bool
  - name: Greeting
    fields:
      - name: id
        type: byte
      - name: active
        type: bool
      - name: ratio
        type: float
      - name: label
        type: string
      - name: payload
        type: bytes
`

func compileFixture(t *testing.T) *schema.Schema {
	t.Helper()
	doc, err := schema.LoadDocument(bytes.NewBufferString(fixtureYAML))
	require.NoError(t, err)
	s, err := schema.Compile(doc)
	require.NoError(t, err)
	return s
}

func TestRunRoundTripsEveryRegisteredType(t *testing.T) {
	s := compileFixture(t)
	reg := runtime.NewRegistry(s)

	report := Run(reg, Config{Seed: 1, Rounds: 64})
	require.True(t, report.OK(), "%s", report.String())
	require.Len(t, report.Results, len(s.Messages))
}

func TestRunIsDeterministicForAGivenSeed(t *testing.T) {
	s := compileFixture(t)
	reg := runtime.NewRegistry(s)

	first := Run(reg, Config{Seed: 42, Rounds: 8})
	second := Run(reg, Config{Seed: 42, Rounds: 8})
	require.Equal(t, first, second)
}

func TestRunWithCaptureWritesOneRecordPerPacket(t *testing.T) {
	s := compileFixture(t)
	reg := runtime.NewRegistry(s)

	var buf bytes.Buffer
	w := trace.NewWriter(&buf, trace.NewNoOpCodec())

	report := Run(reg, Config{Seed: 7, Rounds: 4}, WithCapture(w))
	require.True(t, report.OK())
	require.Positive(t, buf.Len())

	r := trace.NewReader(&buf, trace.NewNoOpCodec())
	count := 0
	for {
		_, err := r.ReadRecord()
		if err != nil {
			break
		}
		count++
	}
	require.Positive(t, count)
}

func TestPopulateRespectsDeclaredFieldTypes(t *testing.T) {
	s := compileFixture(t)
	reg := runtime.NewRegistry(s)
	a, ok := reg.Analysis("Greeting")
	require.True(t, ok)

	inst, ok := reg.New("Greeting")
	require.True(t, ok)

	rng := rand.New(rand.NewSource(5))
	Populate(rng, inst, a)

	label, err := inst.String("label")
	require.NoError(t, err)
	require.LessOrEqual(t, len([]rune(label)), maxGeneratedDynamicLen)

	payload, err := inst.BytesField("payload")
	require.NoError(t, err)
	require.LessOrEqual(t, len(payload), maxGeneratedDynamicLen)
}

func TestRandStringNeverProducesSurrogateHalves(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		r := randRune(rng)
		require.False(t, r >= surrogateLow && r <= surrogateHigh)
	}
}
