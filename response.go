package adaptordata

import "github.com/pior/adaptordata/protocol"

// Response is the sink a retrieval result is served into. Implementations
// hold no parsing logic; they forward what they are given to whatever
// answers the original request.
//
// RespondNotFound and RespondNotModified are terminal: once one of them
// is called nothing else will be called on the response.
type Response interface {
	// RespondNotModified signals that the requester already has the
	// latest version of the document and its metadata.
	RespondNotModified() error

	// RespondNotFound signals that the document does not exist in the
	// repository.
	RespondNotFound() error

	// SetContentType describes the content type of the document.
	SetContentType(contentType string)

	// SetMetadata provides metadata that applies to the document.
	SetMetadata(meta Metadata)

	// SetACL provides the document's access principals for early-binding
	// security.
	SetACL(principals []string)

	// Write appends document content bytes.
	Write(p []byte) (int, error)
}

// Document is a retrieval result mapped into library value types.
type Document struct {
	DocID    DocID
	Metadata Metadata
	MimeType string
	Content  []byte

	// UpToDate and NotFound are carried through as received. The wire
	// format does not forbid contradictory combinations (both set, or
	// not-found alongside content); consumers resolve them, ApplyResult
	// gives not-found precedence.
	UpToDate bool
	NotFound bool
}

func documentFromResult(result *protocol.Result) *Document {
	return &Document{
		DocID:    DocID(result.DocID),
		Metadata: MetadataFromMap(result.Metadata),
		MimeType: result.MimeType,
		Content:  result.Content,
		UpToDate: result.UpToDate,
		NotFound: result.NotFound,
	}
}

// ApplyResult serves a retrieval result into a response sink. Not-found
// wins over up-to-date, and both short-circuit metadata and content.
func ApplyResult(doc *Document, resp Response) error {
	if doc.NotFound {
		return resp.RespondNotFound()
	}
	if doc.UpToDate {
		return resp.RespondNotModified()
	}

	if doc.MimeType != "" {
		resp.SetContentType(doc.MimeType)
	}
	if len(doc.Metadata) > 0 {
		resp.SetMetadata(doc.Metadata)
	}
	if doc.Content != nil {
		if _, err := resp.Write(doc.Content); err != nil {
			return err
		}
	}
	return nil
}
