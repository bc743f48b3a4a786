// Package umb implements UMB, a schema-driven binary message format for a
// fixed-size-packet wire protocol between a host process and a constrained
// embedded peer (for example a scripting runtime with only primitive byte
// I/O). A schema declares a set of messages, each a name and an ordered list
// of typed fields (byte, int, bool, float, string, bytes); compiling it
// produces a static layout - per-message size, bool-pack layout, whether a
// message ever needs more than one packet - that the codec and packet
// transport use to serialize and frame values without any runtime type
// information beyond the compiled schema itself.
//
// This package is a thin top-level convenience wrapper around schema and
// runtime, the two packages that do the actual work; use them directly for
// anything beyond compiling a schema and building a registry from it.
//
// # Basic usage
//
//	s, err := umb.CompileFile("messages.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg := umb.NewRegistry(s)
//
//	ping, _ := reg.New("Ping")
//	_ = ping.SetInt("seq", 1)
//
//	payload, err := ping.Bytes()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	packets := transport.Frame(payload)
package umb

import (
	"io"
	"os"

	"github.com/wireumb/umb/runtime"
	"github.com/wireumb/umb/schema"
)

// Schema is a compiled schema document: every declared message has been
// assigned a wire type id and analyzed for static/dynamic sizing and
// bool-pack layout.
type Schema = schema.Schema

// Registry builds zero-valued Instance values for every message a Schema
// declares, looked up by name or by wire type id.
type Registry = runtime.Registry

// Instance is a live value of one compiled message: the unit the codec and
// packet transport serialize and frame.
type Instance = runtime.Instance

// Compile parses a schema document from r and compiles it: each message
// declaration gets a sequential wire type id and a full size/bool-pack
// analysis.
func Compile(r io.Reader) (*Schema, error) {
	doc, err := schema.LoadDocument(r)
	if err != nil {
		return nil, err
	}
	return schema.Compile(doc)
}

// CompileFile opens path and compiles it as a schema document.
func CompileFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Compile(f)
}

// NewRegistry builds a Registry over every message s declares.
func NewRegistry(s *Schema) *Registry {
	return runtime.NewRegistry(s)
}
