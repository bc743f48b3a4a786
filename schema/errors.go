package schema

import "errors"

var (
	// ErrNoMessages is returned when a schema document declares zero messages.
	ErrNoMessages = errors.New("schema: document declares no messages")

	// ErrDuplicateMessage is returned when two messages share a name.
	ErrDuplicateMessage = errors.New("schema: duplicate message name")

	// ErrDuplicateField is returned when two fields of the same message
	// share a name.
	ErrDuplicateField = errors.New("schema: duplicate field name")

	// ErrUnknownFieldType is returned when a field declares a type outside
	// the closed set wire.ParseFieldType recognizes.
	ErrUnknownFieldType = errors.New("schema: unknown field type")

	// ErrEmptyName is returned when a message or field declares an empty name.
	ErrEmptyName = errors.New("schema: empty name")

	// ErrTooManyMessages is returned when a document declares more messages
	// than wire.MaxMessageTypes allows.
	ErrTooManyMessages = errors.New("schema: too many messages")
)
