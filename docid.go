package adaptordata

import "unicode/utf8"

// DocID identifies a document within a repository. It is opaque to this
// library: only the adaptor that produced it can interpret it.
type DocID string

func (d DocID) String() string {
	return string(d)
}

// IsValidDocID reports whether id can travel through the wire format:
// non-empty and valid UTF-8. Whether the id collides with a session
// delimiter can only be known per session; adaptors are expected to pick
// delimiters that cannot occur in their ids.
func IsValidDocID(id string) bool {
	return len(id) > 0 && utf8.ValidString(id)
}
