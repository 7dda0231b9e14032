package protocol

// Error types for adaptor stream parsing. All of them are fatal: the
// session is aborted and no partial result is returned. They are kept
// distinct so that callers can tell a broken stream (HeaderError,
// SequenceError, DecodeError) from a repository that reported itself
// unusable (UnavailableError).

// HeaderError reports a malformed session header: bad prefix, bad
// version number, or an illegal delimiter.
type HeaderError struct {
	Message string
}

func (e *HeaderError) Error() string {
	return "adaptordata: invalid header: " + e.Message
}

// SequenceError reports a command stream that violates the active
// protocol grammar, such as a lister session not starting with a
// document ID or a meta-name without a following meta-value.
type SequenceError struct {
	Message string
}

func (e *SequenceError) Error() string {
	return "adaptordata: " + e.Message
}

// DecodeError reports bytes that are not valid UTF-8 in a text-bearing
// token. Malformed sequences are never silently replaced.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return "adaptordata: " + e.Message
}

// UnavailableError is returned when the stream carries the
// "repository-unavailable" signal. The repository is temporarily
// unusable; the stream itself was well formed up to that point.
type UnavailableError struct {
	Detail string
}

func (e *UnavailableError) Error() string {
	if e.Detail == "" {
		return "adaptordata: repository unavailable"
	}
	return "adaptordata: repository unavailable: " + e.Detail
}
