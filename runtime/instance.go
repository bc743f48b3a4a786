// Package runtime implements the UMB message contract (to_bytes/from_bytes/
// serialized_size/type_id/equality) as a single reflective type, Instance,
// driven by a compiled schema.Analysis. Since template rendering into a
// target language's generated bindings is out of scope, one Instance type
// serves every message any schema declares: field order, bool-pack layout,
// and static/dynamic sizing all come from the Analysis rather than from
// per-message generated code.
package runtime

import (
	"github.com/wireumb/umb/codec"
	"github.com/wireumb/umb/schema"
	"github.com/wireumb/umb/wire"
)

// fieldValue holds one field's current value, tagged with its declared
// type so Get/Set can reject a type mismatch instead of silently reading
// the wrong union member.
type fieldValue struct {
	kind wire.FieldType
	b    byte
	i    int32
	bl   bool
	f    float32
	s    string
	by   []byte
}

// Instance is a live value of one compiled message.
type Instance struct {
	analysis *schema.Analysis

	values map[string]fieldValue
	// floatText caches the exact wire text a float field was decoded from,
	// so re-encoding an untouched field reproduces the same bytes even
	// though a float's decimal text form is not unique.
	floatText map[string]string
}

// New creates a zero-valued Instance for the given compiled message.
func New(a *schema.Analysis) *Instance {
	inst := &Instance{
		analysis:  a,
		values:    make(map[string]fieldValue, len(a.Fields)),
		floatText: make(map[string]string),
	}
	for _, f := range a.Fields {
		inst.values[f.Name] = fieldValue{kind: f.Type}
	}
	return inst
}

// TypeID returns the message's wire type tag.
func (m *Instance) TypeID() uint16 { return m.analysis.TypeID }

// Name returns the message's declared name.
func (m *Instance) Name() string { return m.analysis.Name }

// Size returns the serialized wire size of the instance in its current
// state, header included. For a statically sized message this is a
// constant from the compiled analysis; for a dynamic message it reflects
// the current length of every string/bytes/float field.
func (m *Instance) Size() int {
	if m.analysis.HasStaticSize {
		return m.analysis.StaticSize
	}

	enc := codec.NewEncoder()
	defer enc.Release()
	// encode errors here would mean a field holds an out-of-range value;
	// Size is best-effort sizing, actual validation happens in Bytes/Put.
	_ = m.encodeFields(enc)
	return wire.HeaderSize + enc.Len()
}

// Bytes serializes the instance to a newly allocated wire-format byte
// slice: the logical message header (size, sole-part, type) followed by
// every field in wire order.
func (m *Instance) Bytes() ([]byte, error) {
	enc := codec.NewEncoder()
	if err := m.encodeFields(enc); err != nil {
		enc.Release()
		return nil, err
	}
	fields := enc.Finish()

	out := make([]byte, wire.HeaderSize+len(fields))
	h := wire.PacketHeader{Size: byte(wire.HeaderSize + len(fields)), Part: wire.PartSolePart, Type: m.TypeID()}
	h.Put(out)
	copy(out[wire.HeaderSize:], fields)
	return out, nil
}

// Put serializes the instance into dst, which must be exactly Size() bytes
// long. Returns false if dst is the wrong length or a field fails to
// encode (e.g. an oversize dynamic field), mirroring the original
// to_bytes(span) contract's boolean result.
func (m *Instance) Put(dst []byte) bool {
	b, err := m.Bytes()
	if err != nil || len(dst) != len(b) {
		return false
	}
	copy(dst, b)
	return true
}

// FromBytes decodes src into the instance's fields, overwriting any
// previous values. src is the full logical message: the 4-byte header
// followed by field bytes. Returns false on any decode failure - a src
// too short to hold even the header, short buffer, malformed dynamic
// field, or trailing bytes after a fully static message's fields -
// leaving the instance in a partially overwritten but still valid-to-read
// state, matching the original contract's "leave values
// default-constructed on failure" guarantee loosely: fields decoded
// before the failure keep their new values, the rest keep their prior ones.
func (m *Instance) FromBytes(src []byte) bool {
	if len(src) < wire.HeaderSize {
		return false
	}

	dec := codec.NewDecoder(src[wire.HeaderSize:])
	if err := m.decode(dec); err != nil {
		return false
	}
	if m.analysis.HasStaticSize && !dec.Done() {
		return false
	}
	return true
}

// encodeFields writes every field in wire order: bool-pack groups are
// written as one packed byte, singleton bools as a standalone byte,
// everything else via its own codec primitive. The logical message header
// is written separately by Bytes, once the fields' total length is known.
func (m *Instance) encodeFields(enc *codec.Encoder) error {
	fields := m.analysis.Fields
	groups := m.analysis.BoolGroups
	groupIdx := 0

	for i := 0; i < len(fields); {
		f := fields[i]

		if f.Type == wire.TypeBool && groupIdx < len(groups) && groups[groupIdx][0].FieldIndex == i {
			group := groups[groupIdx]
			groupIdx++

			bits := make([]bool, len(group))
			for gi, bp := range group {
				bits[gi] = m.values[bp.FieldName].bl
			}
			enc.PackedBools(bits)
			i += len(group)
			continue
		}

		v := m.values[f.Name]
		switch f.Type {
		case wire.TypeByte:
			enc.Byte(v.b)
		case wire.TypeBool:
			enc.Bool(v.bl)
		case wire.TypeInt:
			enc.Int32(v.i)
		case wire.TypeFloat:
			if err := enc.Float(v.f, m.floatText[f.Name]); err != nil {
				return err
			}
		case wire.TypeString:
			if err := enc.String(v.s); err != nil {
				return err
			}
		case wire.TypeBytes:
			if err := enc.Bytes(v.by); err != nil {
				return err
			}
		}
		i++
	}
	return nil
}

// decode reads every field in wire order, the mirror image of encodeFields.
func (m *Instance) decode(dec *codec.Decoder) error {
	fields := m.analysis.Fields
	groups := m.analysis.BoolGroups
	groupIdx := 0

	for i := 0; i < len(fields); {
		f := fields[i]

		if f.Type == wire.TypeBool && groupIdx < len(groups) && groups[groupIdx][0].FieldIndex == i {
			group := groups[groupIdx]
			groupIdx++

			bits, err := dec.PackedBools(len(group))
			if err != nil {
				return err
			}
			for gi, bp := range group {
				m.values[bp.FieldName] = fieldValue{kind: wire.TypeBool, bl: bits[gi]}
			}
			i += len(group)
			continue
		}

		switch f.Type {
		case wire.TypeByte:
			b, err := dec.Byte()
			if err != nil {
				return err
			}
			m.values[f.Name] = fieldValue{kind: wire.TypeByte, b: b}
		case wire.TypeBool:
			bl, err := dec.Bool()
			if err != nil {
				return err
			}
			m.values[f.Name] = fieldValue{kind: wire.TypeBool, bl: bl}
		case wire.TypeInt:
			iv, err := dec.Int32()
			if err != nil {
				return err
			}
			m.values[f.Name] = fieldValue{kind: wire.TypeInt, i: iv}
		case wire.TypeFloat:
			fv, text, err := dec.Float()
			if err != nil {
				return err
			}
			m.values[f.Name] = fieldValue{kind: wire.TypeFloat, f: fv}
			m.floatText[f.Name] = text
		case wire.TypeString:
			s, err := dec.String()
			if err != nil {
				return err
			}
			m.values[f.Name] = fieldValue{kind: wire.TypeString, s: s}
		case wire.TypeBytes:
			by, err := dec.Bytes()
			if err != nil {
				return err
			}
			m.values[f.Name] = fieldValue{kind: wire.TypeBytes, by: by}
		}
		i++
	}
	return nil
}
