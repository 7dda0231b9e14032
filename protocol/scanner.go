package protocol

import (
	"bufio"
	"bytes"
	"io"
)

// scanner reads delimiter-framed tokens from a byte stream. The output
// buffer is owned by the scanner and reused across calls to avoid
// re-allocating on long runs of partial matches.
type scanner struct {
	r   *bufio.Reader
	buf bytes.Buffer
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReader(r)}
}

// readToken reads bytes up to the next occurrence of marker and returns
// them without the marker. End-of-stream with nothing buffered returns
// io.EOF; bytes followed by end-of-stream form a final token. The two
// cases must stay distinct: an empty token (two adjacent markers) closes
// an id-list, true end-of-stream ends the session.
//
// The returned slice aliases the scanner's internal buffer and is only
// valid until the next call.
func (s *scanner) readToken(marker []byte) ([]byte, error) {
	s.buf.Reset()
	cursor := 0

	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			// A partial marker match at end-of-stream was literal data.
			if cursor > 0 {
				s.buf.Write(marker[:cursor])
			}
			if s.buf.Len() == 0 {
				return nil, io.EOF
			}
			return s.buf.Bytes(), nil
		}

		if b == marker[cursor] {
			cursor++
			if cursor == len(marker) {
				return s.buf.Bytes(), nil
			}
			continue
		}

		if cursor > 0 {
			// The match broke off: the buffered prefix was literal data.
			s.buf.Write(marker[:cursor])
			cursor = 0
			// The byte that broke the match may itself start a new one.
			if b == marker[0] {
				cursor = 1
				continue
			}
		}
		s.buf.WriteByte(b)
	}
}

// readRest consumes every remaining byte of the stream. Used for the
// binary payload of the content command, after which no marker scanning
// happens.
func (s *scanner) readRest() ([]byte, error) {
	return io.ReadAll(s.r)
}
