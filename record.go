package adaptordata

import "github.com/pior/adaptordata/protocol"

// Record is one crawl directive for a document, as produced by a lister
// session.
type Record struct {
	DocID            DocID
	LastModified     string
	CrawlImmediately bool
	CrawlOnce        bool
	Lock             bool
	Delete           bool
}

// NewRecord creates a record for a document with all flags at their
// defaults.
func NewRecord(id DocID) *Record {
	return &Record{DocID: id}
}

// WithLastModified sets the last-modified stamp.
func (r *Record) WithLastModified(stamp string) *Record {
	r.LastModified = stamp
	return r
}

// WithCrawlImmediately marks the document for priority crawling. This is
// advisory: the external scheduler decides what to do with it.
func (r *Record) WithCrawlImmediately() *Record {
	r.CrawlImmediately = true
	return r
}

// WithCrawlOnce marks the document to be crawled once and never
// re-crawled.
func (r *Record) WithCrawlOnce() *Record {
	r.CrawlOnce = true
	return r
}

// WithLock keeps the document in the index unless explicitly removed.
func (r *Record) WithLock() *Record {
	r.Lock = true
	return r
}

// WithDelete marks the document for removal from the index.
func (r *Record) WithDelete() *Record {
	r.Delete = true
	return r
}

// recordFromEntry converts a wire-level lister entry into a Record.
func recordFromEntry(entry protocol.Entry) *Record {
	return &Record{
		DocID:            DocID(entry.DocID),
		LastModified:     entry.LastModified,
		CrawlImmediately: entry.CrawlImmediately,
		CrawlOnce:        entry.CrawlOnce,
		Lock:             entry.Lock,
		Delete:           entry.Delete,
	}
}
