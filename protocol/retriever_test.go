package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetriever_FullDocument(t *testing.T) {
	p := newTestParser(frame("\n",
		"id=/docs/report",
		"mime-type=application/pdf",
		"meta-name=Department",
		"meta-value=Engineering",
		"meta-name=Creator",
		"meta-value=howardhawks",
		"content",
	) + "\n%PDF-1.4 raw \n bytes \x00 here")

	result, err := p.ReadFromRetriever()
	require.NoError(t, err)

	assert.Equal(t, "/docs/report", result.DocID)
	assert.Equal(t, "application/pdf", result.MimeType)
	assert.Equal(t, map[string]string{
		"Department": "Engineering",
		"Creator":    "howardhawks",
	}, result.Metadata)
	assert.False(t, result.UpToDate)
	assert.False(t, result.NotFound)
	// The payload is captured verbatim, delimiters included.
	assert.Equal(t, "%PDF-1.4 raw \n bytes \x00 here", string(result.Content))
}

func TestRetriever_MissingData(t *testing.T) {
	p := newTestParser("GSA Adaptor Data Version 1 [\x00]")

	_, err := p.ReadFromRetriever()
	var seqErr *SequenceError
	require.ErrorAs(t, err, &seqErr)
	assert.Contains(t, err.Error(), "missing")
}

func TestRetriever_FirstCommandMustBeID(t *testing.T) {
	p := newTestParser(frame("\n", "up-to-date"))

	_, err := p.ReadFromRetriever()
	var seqErr *SequenceError
	require.ErrorAs(t, err, &seqErr)
}

func TestRetriever_SecondIDRejected(t *testing.T) {
	p := newTestParser(frame("\n", "id=doc1", "id=doc2"))

	_, err := p.ReadFromRetriever()
	var seqErr *SequenceError
	require.ErrorAs(t, err, &seqErr)
	assert.Contains(t, err.Error(), "one document ID")
}

func TestRetriever_MetaNamePairing(t *testing.T) {
	// meta-name directly followed by another meta-name is fatal.
	p := newTestParser(frame("\n", "id=doc1", "meta-name=Dept", "meta-name=Creator"))

	_, err := p.ReadFromRetriever()
	var seqErr *SequenceError
	require.ErrorAs(t, err, &seqErr)
	assert.Contains(t, err.Error(), "meta-value")
}

func TestRetriever_MetaNameAtEOS(t *testing.T) {
	p := newTestParser(frame("\n", "id=doc1", "meta-name=Dept"))

	_, err := p.ReadFromRetriever()
	var seqErr *SequenceError
	require.ErrorAs(t, err, &seqErr)
}

func TestRetriever_DuplicateMetaNameLastWins(t *testing.T) {
	p := newTestParser(frame("\n",
		"id=doc1",
		"meta-name=Dept",
		"meta-value=Engineering",
		"meta-name=Dept",
		"meta-value=Sales",
	))

	result, err := p.ReadFromRetriever()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Dept": "Sales"}, result.Metadata)
}

func TestRetriever_StatusFlags(t *testing.T) {
	p := newTestParser(frame("\n", "id=doc1", "up-to-date"))

	result, err := p.ReadFromRetriever()
	require.NoError(t, err)
	assert.True(t, result.UpToDate)
	assert.False(t, result.NotFound)
	assert.Nil(t, result.Content)
}

func TestRetriever_PermissiveFlagCombinations(t *testing.T) {
	// No mutual exclusion is enforced between the status flags and
	// content; the consumer resolves conflicts.
	p := newTestParser(frame("\n", "id=doc1", "not-found", "up-to-date", "content") + "\nstill here")

	result, err := p.ReadFromRetriever()
	require.NoError(t, err)
	assert.True(t, result.NotFound)
	assert.True(t, result.UpToDate)
	assert.Equal(t, "still here", string(result.Content))
}

func TestRetriever_EmptyContent(t *testing.T) {
	p := newTestParser(frame("\n", "id=doc1", "content"))

	result, err := p.ReadFromRetriever()
	require.NoError(t, err)
	assert.Empty(t, result.Content)
}

func TestRetriever_ListerOperationRejected(t *testing.T) {
	p := newTestParser(frame("\n", "id=doc1", "crawl-once"))

	_, err := p.ReadFromRetriever()
	var seqErr *SequenceError
	require.ErrorAs(t, err, &seqErr)
}
