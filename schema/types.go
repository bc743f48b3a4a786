// Package schema compiles a UMB schema document (a list of message
// declarations, each a name and an ordered list of typed fields) into an
// analyzed, immutable model: per-message static/dynamic size classification,
// bool-pack layout, and a stable fingerprint. It has no notion of a wire
// connection or a particular language backend — schema.Compile's output is
// consumed by the runtime and transport packages, and by cmd/umbc.
package schema

import "github.com/wireumb/umb/wire"

// Field is one declared field of a message, in the order it appears on the
// wire.
type Field struct {
	// Name is the field's identifier, unique within its message.
	Name string
	// Type is the field's wire type.
	Type wire.FieldType
}

// Message is a single declared message: a name, a sequential type id
// assigned at compile time, and its ordered fields.
type Message struct {
	// Name is the message's identifier, unique within the schema.
	Name string
	// TypeID is the sequential, schema-order message type tag that goes on
	// the wire in every packet header for this message.
	TypeID uint16
	// Fields is the message's fields in wire order.
	Fields []Field
}

// Document is the parsed, not-yet-analyzed form of a schema: what a loader
// produces straight from YAML, before Compile assigns type ids and computes
// per-message layout.
type Document struct {
	Messages []DocumentMessage
}

// DocumentMessage is one message as written in the schema source, before a
// TypeID has been assigned.
type DocumentMessage struct {
	Name   string
	Fields []Field
}
