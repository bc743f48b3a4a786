package sizecheck

import (
	"github.com/wireumb/umb/internal/options"
	"github.com/wireumb/umb/schema"
)

// Compare diffs two compiled schemas message-by-message and reports every
// footprint regression: a larger static size, a message that lost its
// AlwaysSinglePart guarantee, or a bool-pack layout that now consumes more
// packed bytes. Messages present in only one schema are reported as
// KindAdded/KindRemoved rather than compared.
func Compare(before, after *schema.Schema, opts ...CompareOption) *Report {
	cfg := defaultCompareConfig()
	_ = options.Apply(&cfg, opts...) // functional options never fail here

	beforeByName := make(map[string]*schema.Analysis, len(before.Messages))
	for i := range before.Messages {
		beforeByName[before.Messages[i].Name] = &before.Messages[i]
	}

	seen := make(map[string]bool, len(before.Messages))
	report := &Report{}

	for i := range after.Messages {
		cur := &after.Messages[i]
		seen[cur.Name] = true

		prev, existed := beforeByName[cur.Name]
		if !existed {
			report.Findings = append(report.Findings, Finding{
				Message: cur.Name,
				Kind:    KindAdded,
				After:   footprint(cur),
			})
			continue
		}

		report.Findings = append(report.Findings, compareMessage(prev, cur, cfg)...)
	}

	for i := range before.Messages {
		prev := &before.Messages[i]
		if !seen[prev.Name] {
			report.Findings = append(report.Findings, Finding{
				Message: prev.Name,
				Kind:    KindRemoved,
				Before:  footprint(prev),
			})
		}
	}

	return report
}

// compareMessage returns every finding for one message present in both
// snapshots.
func compareMessage(prev, cur *schema.Analysis, cfg CompareConfig) []Finding {
	var findings []Finding

	if prev.HasStaticSize != cur.HasStaticSize {
		findings = append(findings, Finding{
			Message: cur.Name,
			Kind:    KindBecameDynamic,
			Before:  footprint(prev),
			After:   footprint(cur),
			Detail:  dynamicTransitionDetail(prev.HasStaticSize, cur.HasStaticSize),
		})
	}

	beforeSize, afterSize := footprint(prev), footprint(cur)
	switch {
	case afterSize > beforeSize:
		findings = append(findings, Finding{
			Message: cur.Name,
			Kind:    KindSizeGrew,
			Before:  beforeSize,
			After:   afterSize,
		})
	case afterSize < beforeSize && cfg.ReportShrinkage:
		findings = append(findings, Finding{
			Message: cur.Name,
			Kind:    KindSizeShrank,
			Before:  beforeSize,
			After:   afterSize,
		})
	}

	if prev.AlwaysSinglePart && !cur.AlwaysSinglePart {
		findings = append(findings, Finding{
			Message: cur.Name,
			Kind:    KindBecameMultipart,
			Before:  beforeSize,
			After:   afterSize,
		})
	}

	beforePackBytes, afterPackBytes := boolPackBytes(prev), boolPackBytes(cur)
	if afterPackBytes > beforePackBytes {
		findings = append(findings, Finding{
			Message: cur.Name,
			Kind:    KindBoolPackGrew,
			Before:  beforePackBytes,
			After:   afterPackBytes,
		})
	}

	return findings
}

func dynamicTransitionDetail(wasStatic, isStatic bool) string {
	if wasStatic && !isStatic {
		return "gained a dynamic field"
	}

	return "lost its last dynamic field"
}

// boolPackBytes returns the number of packed bytes a message's bool fields
// occupy. BoolPackBytes is authoritative and must be used as-is: deriving it
// from max(Byte) over the surviving BoolPacks table silently undercounts a
// dropped trailing singleton's byte, the exact bug schema.computeBoolPacks
// fixes relative to the literal original algorithm.
func boolPackBytes(a *schema.Analysis) int {
	return a.BoolPackBytes
}
