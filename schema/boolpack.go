package schema

import "github.com/wireumb/umb/wire"

// BoolPack describes where one bool field lands in its message's packed
// boolean bytes.
type BoolPack struct {
	// FieldName is the bool field's name.
	FieldName string
	// FieldIndex is the field's position among all of the message's fields.
	FieldIndex int
	// PackIndex is this bool's bit position (0-7) within its packed byte.
	PackIndex int
	// Byte is the index of the packed byte this bool belongs to, counting
	// only bytes actually used by packs of two or more consecutive bools,
	// plus one byte per lone (unpacked) bool.
	Byte int
	// Last marks the final bool of its run of consecutive bools. A run that
	// spans several packed bytes carries Last only on its final entry.
	Last bool
	// Boundary marks the bool occupying bit 7 of a fully packed byte.
	Boundary bool
}

// computeBoolPacks walks fields in order and lays out which bools share a
// packed byte. A run of two or more consecutive bool fields packs into
// shared bytes, eight bits per byte, rolling into a new byte on the 9th bit
// of a run. A run of exactly one bool field is a singleton: it is dropped
// from the returned table (that field gets a plain unpacked byte on the
// wire instead, see codec.Encoder.Bool) but still consumes one byte of the
// message's packed-byte counter, which is why this also returns the total
// byte count rather than leaving the caller to infer it from table
// contents.
func computeBoolPacks(fields []Field) ([]BoolPack, int) {
	var packs []BoolPack

	totalPackBytes := 0
	consecutive := 0
	byteIdx := 0
	bitIdx := 0

	closeRun := func() {
		if consecutive == 0 {
			return
		}
		bytesUsed := (consecutive + wire.BoolsPerByte - 1) / wire.BoolsPerByte
		if consecutive == 1 {
			packs = packs[:len(packs)-1]
		} else {
			packs[len(packs)-1].Last = true
		}
		totalPackBytes += bytesUsed
		consecutive = 0
		bitIdx = 0
		byteIdx = totalPackBytes
	}

	for i, f := range fields {
		if f.Type != wire.TypeBool {
			closeRun()
			continue
		}

		bp := BoolPack{
			FieldName:  f.Name,
			FieldIndex: i,
			PackIndex:  bitIdx,
			Byte:       byteIdx,
		}

		consecutive++
		bitIdx = (bitIdx + 1) % wire.BoolsPerByte
		if bitIdx == 0 {
			bp.Boundary = true
			byteIdx++
		}

		packs = append(packs, bp)
	}
	closeRun()

	return packs, totalPackBytes
}

// groupByPackedByte splits an ordered BoolPack table into the runs of
// entries that share one physical packed byte. Entries are already in field
// order and Byte is monotonically non-decreasing, so a new group starts
// whenever Byte changes.
func groupByPackedByte(packs []BoolPack) [][]BoolPack {
	var groups [][]BoolPack
	for _, bp := range packs {
		if len(groups) == 0 || groups[len(groups)-1][0].Byte != bp.Byte {
			groups = append(groups, []BoolPack{bp})
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], bp)
	}
	return groups
}
