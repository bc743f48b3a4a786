package schema

import "github.com/wireumb/umb/wire"

// Analysis is a compiled message: its declaration plus everything the
// codec and transport need to size and frame it, computed once at compile
// time instead of per-message at runtime.
type Analysis struct {
	Message

	// HasStaticSize is true when every field's wire size is fixed by the
	// schema alone (byte, int, bool), independent of field values.
	HasStaticSize bool
	// StaticSize is the total wire size (header included) when
	// HasStaticSize is true; zero otherwise.
	StaticSize int
	// StaticPart is the size of the fixed-width portion of a dynamically
	// sized message: the packet header, every static field, every packed
	// bool byte, and one length-prefix byte per dynamic field. Zero when
	// HasStaticSize is true.
	StaticPart int
	// AlwaysSinglePart is true when the message is statically sized and
	// that size never exceeds a single packet.
	AlwaysSinglePart bool
	// HasFloatFields, HasStringFields, HasBytesFields report which dynamic
	// field kinds appear in the message, so a caller can decide whether it
	// needs the corresponding codec helpers at all.
	HasFloatFields  bool
	HasStringFields bool
	HasBytesFields  bool

	// BoolPacks describes the packed-byte layout of the message's bool
	// fields, see computeBoolPacks.
	BoolPacks []BoolPack
	// BoolGroups partitions BoolPacks into the runs that share one physical
	// packed byte, in field order; each group is written or read as a
	// single codec.Encoder.PackedBools/Decoder.PackedBools call.
	BoolGroups [][]BoolPack
	// BoolPackBytes is the total number of packed bytes the message's bool
	// fields occupy on the wire, including bytes consumed by dropped
	// singleton runs (see computeBoolPacks) - unlike len(BoolGroups), this
	// is the authoritative count and must not be re-derived from BoolPacks.
	BoolPackBytes int
}

// analyzeMessage computes an Analysis for a single compiled message.
func analyzeMessage(m Message) Analysis {
	a := Analysis{Message: m}

	packedBytes := 0
	a.BoolPacks, packedBytes = computeBoolPacks(m.Fields)
	a.BoolGroups = groupByPackedByte(a.BoolPacks)
	a.BoolPackBytes = packedBytes
	totalPackSize := packedBytes * wire.SizeofByte

	allStatic := true
	staticSize := wire.HeaderSize + totalPackSize
	dynamicFieldCount := 0

	for _, f := range m.Fields {
		switch f.Type {
		case wire.TypeBool:
			// already accounted for in totalPackSize
		case wire.TypeByte:
			staticSize += wire.SizeofByte
		case wire.TypeInt:
			staticSize += wire.SizeofInt
		default:
			allStatic = false
			dynamicFieldCount++
		}

		switch f.Type {
		case wire.TypeFloat:
			a.HasFloatFields = true
		case wire.TypeString:
			a.HasStringFields = true
		case wire.TypeBytes:
			a.HasBytesFields = true
		}
	}

	a.HasStaticSize = allStatic
	if allStatic {
		a.StaticSize = staticSize
		a.AlwaysSinglePart = staticSize <= wire.PacketSize
	} else {
		a.StaticPart = staticSize + dynamicFieldCount*wire.DynamicFieldHeaderSize
	}

	return a
}
