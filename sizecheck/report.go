package sizecheck

import "fmt"

// Kind categorizes a single footprint regression.
type Kind int

const (
	// KindSizeGrew: the message's footprint increased.
	KindSizeGrew Kind = iota
	// KindSizeShrank: the message's footprint decreased. Reported for
	// completeness (it is not a regression) so a diff tool can show the full
	// picture of a schema change.
	KindSizeShrank
	// KindBecameMultipart: the message was AlwaysSinglePart before and no
	// longer is.
	KindBecameMultipart
	// KindBecameDynamic: the message was statically sized before and has at
	// least one dynamic field now (or vice versa), changing which footprint
	// field (StaticSize vs StaticPart) is meaningful.
	KindBecameDynamic
	// KindBoolPackGrew: the packed-bool byte count for the message
	// increased, independent of any other field change.
	KindBoolPackGrew
	// KindAdded: the message exists in the current schema but not the
	// baseline.
	KindAdded
	// KindRemoved: the message exists in the baseline but not the current
	// schema.
	KindRemoved
)

func (k Kind) String() string {
	switch k {
	case KindSizeGrew:
		return "size-grew"
	case KindSizeShrank:
		return "size-shrank"
	case KindBecameMultipart:
		return "became-multipart"
	case KindBecameDynamic:
		return "became-dynamic"
	case KindBoolPackGrew:
		return "bool-pack-grew"
	case KindAdded:
		return "added"
	case KindRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Finding describes one detected change for one message between two
// schema snapshots.
type Finding struct {
	Message string
	Kind    Kind
	Before  int
	After   int
	Detail  string
}

func (f Finding) String() string {
	if f.Detail != "" {
		return fmt.Sprintf("%s: %s (%d -> %d, %s)", f.Message, f.Kind, f.Before, f.After, f.Detail)
	}

	return fmt.Sprintf("%s: %s (%d -> %d)", f.Message, f.Kind, f.Before, f.After)
}

// Report is the result of Compare: every Finding, in schema declaration
// order of the current snapshot (removed messages trail at the end).
type Report struct {
	Findings []Finding
}

// Regressed reports whether the report contains any finding that represents
// a genuine regression (grew, became multipart, bool-pack grew) as opposed
// to a purely informational one (shrank, added, removed).
func (r *Report) Regressed() bool {
	for _, f := range r.Findings {
		switch f.Kind {
		case KindSizeGrew, KindBecameMultipart, KindBoolPackGrew:
			return true
		}
	}

	return false
}

func (r *Report) String() string {
	if len(r.Findings) == 0 {
		return "Report{no findings}"
	}

	return fmt.Sprintf("Report{%d findings, regressed=%t}", len(r.Findings), r.Regressed())
}
