package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

const headerPrefix = "GSA Adaptor Data Version"

// Characters that may never appear in a delimiter: they are reserved for
// the header and body syntax.
const reservedDelimiterChars = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	":/-_ =+[]"

// Parser decodes one adaptor data session from one byte stream. It is
// single-threaded and synchronous: every read may block on the
// underlying source, and a Parser must not be shared between goroutines
// without external serialization. A fatal error aborts the whole
// session; there is no resumable recovery.
type Parser struct {
	scan *scanner

	// Session state. marker and version are frozen by the first
	// successful header read; inIDList toggles as tokens are consumed.
	marker   []byte
	version  int
	inIDList bool
}

// NewParser binds a parser to a byte source for the lifetime of one
// session.
func NewParser(r io.Reader) *Parser {
	return &Parser{scan: newScanner(r)}
}

// Version returns the protocol version declared by the header, reading
// the header first if needed.
func (p *Parser) Version() (int, error) {
	if err := p.ensureHeader(); err != nil {
		return 0, err
	}
	return p.version, nil
}

// ensureHeader reads and validates the session header. It is a no-op
// once the delimiter is known.
func (p *Parser) ensureHeader() error {
	if p.marker != nil {
		return nil
	}

	tok, err := p.scan.readToken([]byte("["))
	if errors.Is(err, io.EOF) {
		return &HeaderError{Message: fmt.Sprintf("data must begin with %q", headerPrefix)}
	}
	if err != nil {
		return err
	}
	line, err := decodeText(tok)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(line, headerPrefix) {
		return &HeaderError{Message: fmt.Sprintf("data must begin with %q", headerPrefix)}
	}

	versionPart := line[len(headerPrefix):]
	if len(versionPart) < 3 {
		return &HeaderError{Message: fmt.Sprintf(
			"version %q is invalid: at least one digit with one leading and one trailing space",
			versionPart)}
	}

	delim, err := p.scan.readToken([]byte("]"))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &HeaderError{Message: "delimiter must be at least one byte long"}
		}
		return err
	}
	if len(delim) == 0 {
		return &HeaderError{Message: "delimiter must be at least one byte long"}
	}
	if bytes.ContainsAny(delim, reservedDelimiterChars) {
		return &HeaderError{Message: "invalid character in delimiter"}
	}

	version, err := strconv.Atoi(strings.TrimSpace(versionPart))
	if err != nil {
		return &HeaderError{Message: fmt.Sprintf("version %q is invalid", versionPart)}
	}

	// The token aliases the scanner's buffer; the marker outlives it.
	p.marker = bytes.Clone(delim)
	p.version = version
	return nil
}

// nextLine returns the next logical line as its split form: either
// ["id", value] while in an id-list, or the line split on the first "="
// into keyword and optional argument. io.EOF means end of session.
func (p *Parser) nextLine() ([]string, error) {
	if err := p.ensureHeader(); err != nil {
		return nil, err
	}

	for {
		tok, err := p.scan.readToken(p.marker)
		if err != nil {
			// io.EOF implicitly terminates an open id-list.
			return nil, err
		}
		line, err := decodeText(tok)
		if err != nil {
			return nil, err
		}

		if p.inIDList {
			if line == "" {
				// Two consecutive delimiters close the id-list.
				p.inIDList = false
				continue
			}
			// Entries in an id-list carry no other commands.
			return []string{"id", line}, nil
		}

		switch line {
		case "":
			// Consecutive delimiters outside an id-list collapse.
			continue
		case keywordIDList:
			p.inIDList = true
			continue
		}
		return strings.SplitN(line, "=", 2), nil
	}
}

// readCommand returns the next recognized command, skipping unrecognized
// keywords for forward compatibility. io.EOF means end of session.
func (p *Parser) readCommand() (*Command, error) {
	for {
		tokens, err := p.nextLine()
		if err != nil {
			return nil, err
		}

		if tokens[0] == keywordUnavailable {
			detail := ""
			if len(tokens) > 1 {
				detail = tokens[1]
			}
			return nil, &UnavailableError{Detail: detail}
		}

		op, ok := lookupOperation(tokens[0])
		if !ok {
			slog.Warn("adaptordata: skipping unrecognized command", "keyword", tokens[0])
			continue
		}

		cmd := &Command{Op: op}
		if len(tokens) > 1 {
			cmd.Argument = tokens[1]
		}
		if op == OpContent {
			// Marker scanning stops permanently: the rest of the stream
			// is the payload. A read failure here discards the partial
			// payload, the session fails atomically.
			cmd.Content, err = p.scan.readRest()
			if err != nil {
				return nil, err
			}
		}
		return cmd, nil
	}
}

// decodeText validates a token as strict UTF-8 and copies it to a
// string.
func decodeText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &DecodeError{Message: "token is not valid UTF-8"}
	}
	return string(b), nil
}
