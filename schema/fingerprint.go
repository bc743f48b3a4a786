package schema

import (
	"strconv"
	"strings"

	"github.com/wireumb/umb/internal/hash"
)

// fingerprint hashes a document's declaration order, names, and field types
// into a single value that changes whenever any of those change. It
// deliberately ignores nothing: renaming a field, reordering two messages,
// or swapping a field's type all change the fingerprint, since all three
// change what goes on the wire or which TypeID a message gets.
//
// Compile stores the result in Schema.Fingerprint, and cmd/umbc compile
// prints it, so two compiles can be compared for drift at a glance.
func fingerprint(doc Document) uint64 {
	var b strings.Builder
	for _, m := range doc.Messages {
		b.WriteString("msg:")
		b.WriteString(m.Name)
		b.WriteByte('\n')
		for _, f := range m.Fields {
			b.WriteString("  field:")
			b.WriteString(f.Name)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(int(f.Type)))
			b.WriteByte('\n')
		}
	}

	return hash.ID(b.String())
}
