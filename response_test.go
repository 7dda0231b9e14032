package adaptordata

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sinkRecorder records every call made on a Response.
type sinkRecorder struct {
	notModified bool
	notFound    bool
	contentType string
	metadata    Metadata
	principals  []string
	body        bytes.Buffer
}

func (s *sinkRecorder) RespondNotModified() error { s.notModified = true; return nil }
func (s *sinkRecorder) RespondNotFound() error    { s.notFound = true; return nil }
func (s *sinkRecorder) SetContentType(ct string)  { s.contentType = ct }
func (s *sinkRecorder) SetMetadata(meta Metadata) { s.metadata = meta }
func (s *sinkRecorder) SetACL(p []string)         { s.principals = p }

func (s *sinkRecorder) Write(p []byte) (int, error) { return s.body.Write(p) }

func TestApplyResult_FullDocument(t *testing.T) {
	doc := &Document{
		DocID:    "/docs/a",
		MimeType: "text/plain",
		Metadata: Metadata{{Name: "Dept", Value: "Engineering"}},
		Content:  []byte("hello"),
	}

	sink := &sinkRecorder{}
	require.NoError(t, ApplyResult(doc, sink))

	assert.Equal(t, "text/plain", sink.contentType)
	assert.Equal(t, doc.Metadata, sink.metadata)
	assert.Equal(t, "hello", sink.body.String())
	assert.False(t, sink.notFound)
	assert.False(t, sink.notModified)
}

func TestApplyResult_NotFoundWins(t *testing.T) {
	// The wire format allows contradictory flags; not-found takes
	// precedence and is terminal.
	doc := &Document{
		DocID:    "/docs/a",
		NotFound: true,
		UpToDate: true,
		Content:  []byte("ignored"),
	}

	sink := &sinkRecorder{}
	require.NoError(t, ApplyResult(doc, sink))

	assert.True(t, sink.notFound)
	assert.False(t, sink.notModified)
	assert.Zero(t, sink.body.Len())
}

func TestApplyResult_UpToDateIsTerminal(t *testing.T) {
	doc := &Document{
		DocID:    "/docs/a",
		UpToDate: true,
		MimeType: "text/plain",
	}

	sink := &sinkRecorder{}
	require.NoError(t, ApplyResult(doc, sink))

	assert.True(t, sink.notModified)
	assert.Empty(t, sink.contentType)
}
