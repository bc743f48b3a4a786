package umb

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireumb/umb/transport"
)

const sampleYAML = `
messages:
  - name: Ping
    fields:
      - name: seq
        type: int
  - name: Greeting
    fields:
      - name: label
        type: string
      - name: loud
        type: bool
`

func TestCompileAndRegistryRoundTrip(t *testing.T) {
	s, err := Compile(bytes.NewBufferString(sampleYAML))
	require.NoError(t, err)
	require.Len(t, s.Messages, 2)

	reg := NewRegistry(s)

	ping, ok := reg.New("Ping")
	require.True(t, ok)
	require.NoError(t, ping.SetInt("seq", 7))

	payload, err := ping.Bytes()
	require.NoError(t, err)

	packets := transport.Frame(payload)
	require.Len(t, packets, 1)

	recv := transport.NewReceiver()
	state, err := recv.Feed(packets[0])
	require.NoError(t, err)
	require.Equal(t, transport.StateDone, state)

	gotPayload, gotType, ok := recv.Message()
	require.True(t, ok)
	require.Equal(t, ping.TypeID(), gotType)

	decoded, ok := reg.NewByTypeID(gotType)
	require.True(t, ok)
	require.True(t, decoded.FromBytes(gotPayload))
	require.True(t, ping.Equal(decoded))

	seq, err := decoded.Int("seq")
	require.NoError(t, err)
	require.EqualValues(t, 7, seq)
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	s, err := CompileFile(path)
	require.NoError(t, err)
	require.Len(t, s.Messages, 2)
}

func TestCompileFileMissing(t *testing.T) {
	_, err := CompileFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
