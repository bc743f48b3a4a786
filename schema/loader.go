package schema

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wireumb/umb/wire"
)

// yamlDocument is the raw shape of a schema source file, before field types
// are resolved against wire.ParseFieldType.
type yamlDocument struct {
	Messages []yamlMessage `yaml:"messages"`
}

type yamlMessage struct {
	Name   string      `yaml:"name"`
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadDocument parses a schema source in the YAML form cmd/umbc consumes:
//
//	messages:
//	  - name: Ping
//	    fields:
//	      - name: seq
//	        type: int
func LoadDocument(r io.Reader) (Document, error) {
	var raw yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Document{}, fmt.Errorf("schema: parse document: %w", err)
	}

	doc := Document{Messages: make([]DocumentMessage, 0, len(raw.Messages))}
	for _, rm := range raw.Messages {
		if rm.Name == "" {
			return Document{}, ErrEmptyName
		}

		fields := make([]Field, 0, len(rm.Fields))
		for _, rf := range rm.Fields {
			if rf.Name == "" {
				return Document{}, fmt.Errorf("%w: message %q", ErrEmptyName, rm.Name)
			}
			ft, ok := wire.ParseFieldType(rf.Type)
			if !ok {
				return Document{}, fmt.Errorf("%w: %q (message %q, field %q)", ErrUnknownFieldType, rf.Type, rm.Name, rf.Name)
			}
			fields = append(fields, Field{Name: rf.Name, Type: ft})
		}

		doc.Messages = append(doc.Messages, DocumentMessage{Name: rm.Name, Fields: fields})
	}

	return doc, nil
}

// Validate checks a Document for duplicate message names, duplicate field
// names within a message, and message-count limits, without performing size
// analysis.
func (d Document) Validate() error {
	if len(d.Messages) == 0 {
		return ErrNoMessages
	}
	if len(d.Messages) > wire.MaxMessageTypes {
		return fmt.Errorf("%w: %d declared, max %d", ErrTooManyMessages, len(d.Messages), wire.MaxMessageTypes)
	}

	seenMsg := make(map[string]struct{}, len(d.Messages))
	for _, m := range d.Messages {
		if _, dup := seenMsg[m.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateMessage, m.Name)
		}
		seenMsg[m.Name] = struct{}{}

		seenField := make(map[string]struct{}, len(m.Fields))
		for _, f := range m.Fields {
			if _, dup := seenField[f.Name]; dup {
				return fmt.Errorf("%w: %q.%q", ErrDuplicateField, m.Name, f.Name)
			}
			seenField[f.Name] = struct{}{}
		}
	}

	return nil
}
