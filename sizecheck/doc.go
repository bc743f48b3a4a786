// Package sizecheck compares two compiled schemas and reports messages whose
// wire footprint regressed: a larger static size, a bool-pack layout that now
// consumes more bytes, or a message that silently crossed the single-packet
// boundary and now requires multipart framing.
//
// # Basic usage
//
//	before, _ := schema.Compile(oldDoc)
//	after, _ := schema.Compile(newDoc)
//	report := sizecheck.Compare(before, after)
//	for _, f := range report.Findings {
//	    fmt.Println(f)
//	}
//
// # Tracking drift across many snapshots
//
// Compare is a point-in-time A/B diff. For longer-running drift detection -
// flagging a message whose size is an outlier against its own history rather
// than against a single prior snapshot - build a Baseline from a sequence of
// snapshots and query it per message:
//
//	var bl sizecheck.Baseline
//	for _, snap := range history {
//	    bl.Observe(snap)
//	}
//	z, ok := bl.ZScore("Telemetry", latest.Messages[i].StaticSize)
//
// This mirrors the "collect samples, estimate a baseline, flag a deviation"
// shape used elsewhere for runtime measurements, applied here to schema
// footprint instead of wall-clock or byte-throughput samples.
package sizecheck
