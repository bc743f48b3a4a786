package harness

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/wireumb/umb/internal/options"
	"github.com/wireumb/umb/runtime"
	"github.com/wireumb/umb/trace"
	"github.com/wireumb/umb/transport"
)

// DefaultRounds is the number of randomized instances generated per
// registered message type when Config.Rounds is left zero.
const DefaultRounds = 256

// Config controls a Run's randomization and iteration count.
type Config struct {
	// Seed is the base PRNG seed. Run derives a distinct, deterministic
	// per-(type, round) seed from it so a failure is reproducible by
	// re-running with the same Config.
	Seed int64
	// Rounds is how many random instances to generate per message type.
	// Zero means DefaultRounds.
	Rounds int
}

// RunOption configures an optional side effect of Run, such as capturing
// every generated packet stream to a trace.Writer.
type RunOption = options.Option[*runConfig]

type runConfig struct {
	capture *trace.Writer
}

// WithCapture has Run write every round's framed packets to w as one
// trace record per packet, in addition to round-tripping them in memory.
// Useful for turning a failing round into a replayable fixture.
func WithCapture(w *trace.Writer) RunOption {
	return options.NoError(func(c *runConfig) { c.capture = w })
}

// Run round-trips Config.Rounds randomized instances of every message type
// reg declares through the packet transport, and reports which rounds, if
// any, failed to come back equal to what went in.
func Run(reg *runtime.Registry, cfg Config, opts ...RunOption) *Report {
	rc := &runConfig{}
	_ = options.Apply(rc, opts...)

	rounds := cfg.Rounds
	if rounds == 0 {
		rounds = DefaultRounds
	}

	ids := reg.TypeIDs()
	slices.Sort(ids)

	report := &Report{}
	for _, id := range ids {
		report.Results = append(report.Results, runType(reg, id, cfg.Seed, rounds, rc))
	}
	return report
}

func runType(reg *runtime.Registry, id uint16, seed int64, rounds int, rc *runConfig) Result {
	inst, _ := reg.NewByTypeID(id)
	analysis, _ := reg.Analysis(inst.Name())
	res := Result{Name: inst.Name(), TypeID: id, Rounds: rounds}

	for round := 0; round < rounds; round++ {
		rng := rand.New(rand.NewSource(seed + int64(id)*int64(rounds) + int64(round)))

		want, _ := reg.NewByTypeID(id)
		Populate(rng, want, analysis)

		msg, err := want.Bytes()
		if err != nil {
			res.Failures = append(res.Failures, Failure{Round: round, Stage: "encode", Err: err})
			continue
		}

		packets := transport.Frame(msg)
		if rc.capture != nil {
			if err := captureRound(rc.capture, packets); err != nil {
				res.Failures = append(res.Failures, Failure{Round: round, Stage: "transport", Err: err})
				continue
			}
		}

		recv := transport.NewReceiver()
		var gotMsg []byte
		var gotType uint16
		transportFailed := false
		for _, pkt := range packets {
			if _, err := recv.Feed(pkt); err != nil {
				res.Failures = append(res.Failures, Failure{Round: round, Stage: "transport", Err: err})
				transportFailed = true
				break
			}
		}
		if transportFailed {
			continue
		}

		var ok bool
		gotMsg, gotType, ok = recv.Message()
		if !ok {
			res.Failures = append(res.Failures, Failure{Round: round, Stage: "transport", Err: fmt.Errorf("harness: receiver never reached done state")})
			continue
		}
		if gotType != id {
			res.Failures = append(res.Failures, Failure{Round: round, Stage: "transport", Err: fmt.Errorf("harness: got type %d, want %d", gotType, id)})
			continue
		}

		got, _ := reg.NewByTypeID(id)
		if !got.FromBytes(gotMsg) {
			res.Failures = append(res.Failures, Failure{Round: round, Stage: "decode", Err: fmt.Errorf("harness: FromBytes rejected reassembled payload")})
			continue
		}

		if !want.Equal(got) {
			res.Failures = append(res.Failures, Failure{Round: round, Stage: "equal", Detail: "decoded instance does not match the value that was encoded"})
		}
	}

	return res
}

func captureRound(w *trace.Writer, packets [][]byte) error {
	for _, pkt := range packets {
		if err := w.WriteRecord(pkt); err != nil {
			return err
		}
	}
	return nil
}
