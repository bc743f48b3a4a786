package sizecheck

import "github.com/wireumb/umb/schema"

// Baseline accumulates per-message footprint samples across a sequence of
// compiled schema snapshots (e.g. one per commit), so a caller can ask
// whether a message's current footprint is an outlier against its own
// history instead of against a single prior snapshot.
type Baseline struct {
	byMessage map[string]*runningStat
}

// Observe folds one snapshot's per-message footprint into the baseline.
// A message's footprint is its StaticSize when statically sized, or its
// StaticPart otherwise - the same quantity Compare diffs between two
// snapshots.
func (b *Baseline) Observe(s *schema.Schema) {
	if b.byMessage == nil {
		b.byMessage = make(map[string]*runningStat)
	}
	for i := range s.Messages {
		a := &s.Messages[i]
		stat, ok := b.byMessage[a.Name]
		if !ok {
			stat = &runningStat{}
			b.byMessage[a.Name] = stat
		}
		stat.add(float64(footprint(a)))
	}
}

// ZScore reports how many standard deviations value is from the observed
// mean footprint of the named message. ok is false if the message was never
// observed or has fewer than two samples.
func (b *Baseline) ZScore(name string, value int) (z float64, ok bool) {
	stat, exists := b.byMessage[name]
	if !exists {
		return 0, false
	}

	return stat.zscore(float64(value))
}

// footprint is the single number Compare and Baseline both track: the fixed
// wire cost of a message, independent of how large its dynamic fields
// happen to be on any one instance.
func footprint(a *schema.Analysis) int {
	if a.HasStaticSize {
		return a.StaticSize
	}

	return a.StaticPart
}
