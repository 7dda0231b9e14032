package protocol

import (
	"errors"
	"fmt"
	"io"
)

// Result is the outcome of one retriever session: a single document's
// metadata, content, and status flags.
//
// UpToDate and NotFound are independent and no mutual exclusion is
// enforced between them or against a present Content; the source side is
// permissive here and conflict resolution belongs to the consumer.
type Result struct {
	DocID    string
	Metadata map[string]string
	Content  []byte
	UpToDate bool
	NotFound bool
	MimeType string
}

// ReadFromRetriever interprets the whole session under the retriever
// grammar. The first command must be a document ID and exactly one may
// appear. meta-name must be immediately followed by meta-value; later
// pairs overwrite earlier ones with the same name.
func (p *Parser) ReadFromRetriever() (*Result, error) {
	cmd, err := p.readCommand()
	if errors.Is(err, io.EOF) {
		return nil, &SequenceError{Message: "retriever: invalid or missing retriever data"}
	}
	if err != nil {
		return nil, err
	}
	if cmd.Op != OpID {
		return nil, &SequenceError{Message: fmt.Sprintf(
			"retriever: the first operation must be a document ID, got %q", cmd.Op)}
	}

	result := &Result{
		DocID:    cmd.Argument,
		Metadata: make(map[string]string),
	}

	for {
		cmd, err = p.readCommand()
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return nil, err
		}

		switch cmd.Op {
		case OpID:
			return nil, &SequenceError{Message: "retriever: only one document ID can be specified"}
		case OpContent:
			result.Content = cmd.Content
		case OpMetaName:
			name := cmd.Argument
			next, err := p.readCommand()
			if err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			if err != nil || next.Op != OpMetaValue {
				return nil, &SequenceError{Message: "retriever: meta-name must be immediately followed by meta-value"}
			}
			result.Metadata[name] = next.Argument
		case OpUpToDate:
			result.UpToDate = true
		case OpNotFound:
			result.NotFound = true
		case OpMimeType:
			result.MimeType = cmd.Argument
		default:
			return nil, &SequenceError{Message: fmt.Sprintf(
				"retriever: invalid operation %q", cmd.Op)}
		}
	}
}
