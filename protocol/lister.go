package protocol

import (
	"errors"
	"fmt"
	"io"
)

// Entry is one document crawl directive produced by a lister session.
// Flags accumulate on the most recently named document until the next
// "id" command or end-of-stream closes the entry.
type Entry struct {
	DocID            string
	LastModified     string
	CrawlImmediately bool
	CrawlOnce        bool
	Lock             bool
	Delete           bool
}

// ReadFromLister interprets the whole session under the lister grammar
// and returns the crawl directives in encounter order. A session with a
// header but no body is a valid empty batch. The first command must be a
// document ID.
func (p *Parser) ReadFromLister() ([]Entry, error) {
	var entries []Entry

	cmd, err := p.readCommand()
	if errors.Is(err, io.EOF) {
		return entries, nil
	}
	if err != nil {
		return nil, err
	}
	if cmd.Op != OpID {
		return nil, &SequenceError{Message: fmt.Sprintf(
			"lister: the first operation must be a document ID, got %q", cmd.Op)}
	}

	current := Entry{DocID: cmd.Argument}
	for {
		cmd, err = p.readCommand()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch cmd.Op {
		case OpID:
			entries = append(entries, current)
			current = Entry{DocID: cmd.Argument}
		case OpLastModified:
			current.LastModified = cmd.Argument
		case OpCrawlImmediately:
			current.CrawlImmediately = true
		case OpCrawlOnce:
			current.CrawlOnce = true
		case OpLock:
			current.Lock = true
		case OpDelete:
			current.Delete = true
		default:
			return nil, &SequenceError{Message: fmt.Sprintf(
				"lister: invalid operation %q", cmd.Op)}
		}
	}

	return append(entries, current), nil
}
