package runtime

import (
	"fmt"

	"github.com/wireumb/umb/wire"
)

// ErrUnknownField is returned by a Get/Set call naming a field the
// instance's message does not declare.
var ErrUnknownField = fmt.Errorf("runtime: unknown field")

// ErrFieldTypeMismatch is returned by a typed Get/Set call against a field
// declared with a different wire type.
var ErrFieldTypeMismatch = fmt.Errorf("runtime: field type mismatch")

func (m *Instance) checkField(name string, want wire.FieldType) (fieldValue, error) {
	v, ok := m.values[name]
	if !ok {
		return fieldValue{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if v.kind != want {
		return fieldValue{}, fmt.Errorf("%w: %q is %s, not %s", ErrFieldTypeMismatch, name, v.kind, want)
	}
	return v, nil
}

// Byte returns the value of a byte field.
func (m *Instance) Byte(name string) (byte, error) {
	v, err := m.checkField(name, wire.TypeByte)
	return v.b, err
}

// SetByte sets the value of a byte field.
func (m *Instance) SetByte(name string, v byte) error {
	if _, err := m.checkField(name, wire.TypeByte); err != nil {
		return err
	}
	m.values[name] = fieldValue{kind: wire.TypeByte, b: v}
	return nil
}

// Bool returns the value of a bool field (packed or standalone).
func (m *Instance) Bool(name string) (bool, error) {
	v, err := m.checkField(name, wire.TypeBool)
	return v.bl, err
}

// SetBool sets the value of a bool field.
func (m *Instance) SetBool(name string, v bool) error {
	if _, err := m.checkField(name, wire.TypeBool); err != nil {
		return err
	}
	m.values[name] = fieldValue{kind: wire.TypeBool, bl: v}
	return nil
}

// Int returns the value of an int field.
func (m *Instance) Int(name string) (int32, error) {
	v, err := m.checkField(name, wire.TypeInt)
	return v.i, err
}

// SetInt sets the value of an int field.
func (m *Instance) SetInt(name string, v int32) error {
	if _, err := m.checkField(name, wire.TypeInt); err != nil {
		return err
	}
	m.values[name] = fieldValue{kind: wire.TypeInt, i: v}
	return nil
}

// Float returns the value of a float field.
func (m *Instance) Float(name string) (float32, error) {
	v, err := m.checkField(name, wire.TypeFloat)
	return v.f, err
}

// SetFloat sets the value of a float field. The cached wire text for this
// field, if any, is cleared: the next encode regenerates fresh text from v.
func (m *Instance) SetFloat(name string, v float32) error {
	if _, err := m.checkField(name, wire.TypeFloat); err != nil {
		return err
	}
	m.values[name] = fieldValue{kind: wire.TypeFloat, f: v}
	delete(m.floatText, name)
	return nil
}

// String returns the value of a string field.
func (m *Instance) String(name string) (string, error) {
	v, err := m.checkField(name, wire.TypeString)
	return v.s, err
}

// SetString sets the value of a string field.
func (m *Instance) SetString(name string, v string) error {
	if _, err := m.checkField(name, wire.TypeString); err != nil {
		return err
	}
	m.values[name] = fieldValue{kind: wire.TypeString, s: v}
	return nil
}

// BytesField returns the value of a bytes field. Named to avoid colliding
// with the Bytes method that serializes the whole instance.
func (m *Instance) BytesField(name string) ([]byte, error) {
	v, err := m.checkField(name, wire.TypeBytes)
	return v.by, err
}

// SetBytes sets the value of a bytes field.
func (m *Instance) SetBytes(name string, v []byte) error {
	if _, err := m.checkField(name, wire.TypeBytes); err != nil {
		return err
	}
	m.values[name] = fieldValue{kind: wire.TypeBytes, by: v}
	return nil
}
