package protocol

// Operation identifies a body command. The value of each constant is the
// wire keyword itself.
type Operation string

const (
	OpID               Operation = "id"
	OpLastModified     Operation = "last-modified"
	OpCrawlImmediately Operation = "crawl-immediately"
	OpCrawlOnce        Operation = "crawl-once"
	OpLock             Operation = "lock"
	OpDelete           Operation = "delete"
	OpUpToDate         Operation = "up-to-date"
	OpNotFound         Operation = "not-found"
	OpMimeType         Operation = "mime-type"
	OpMetaName         Operation = "meta-name"
	OpMetaValue        Operation = "meta-value"
	OpContent          Operation = "content"
)

// Reserved keywords that are not operations: "id-list" switches the
// tokenizer into ID-list mode, "repository-unavailable" aborts the
// session.
const (
	keywordIDList      = "id-list"
	keywordUnavailable = "repository-unavailable"
)

// Operations lists every operation, in wire-documentation order.
// Tests assert that lookupOperation covers exactly this set.
func Operations() []Operation {
	return []Operation{
		OpID,
		OpLastModified,
		OpCrawlImmediately,
		OpCrawlOnce,
		OpLock,
		OpDelete,
		OpUpToDate,
		OpNotFound,
		OpMimeType,
		OpMetaName,
		OpMetaValue,
		OpContent,
	}
}

// lookupOperation maps a wire keyword to its operation.
func lookupOperation(keyword string) (Operation, bool) {
	switch op := Operation(keyword); op {
	case OpID, OpLastModified, OpCrawlImmediately, OpCrawlOnce, OpLock,
		OpDelete, OpUpToDate, OpNotFound, OpMimeType, OpMetaName,
		OpMetaValue, OpContent:
		return op, true
	}
	return "", false
}

// Command is one decoded body command. Content is set only for OpContent,
// which always ends the session; every other operation carries at most an
// argument.
type Command struct {
	Op       Operation
	Argument string
	Content  []byte
}
