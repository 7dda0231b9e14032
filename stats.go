package adaptordata

import "sync/atomic"

// ClientStats contains statistics about client operations.
// All fields are safe for concurrent access.
//
// For Prometheus integration, expose these as:
//   - Counters: Listings, ListedRecords, Retrievals, Errors
//   - Counters: NotFounds, UpToDates (subsets of Retrievals)
//   - Counter: Unavailables (subset of Errors)
type ClientStats struct {
	Listings      uint64 // completed lister sessions
	ListedRecords uint64 // records produced across all lister sessions
	Retrievals    uint64 // completed retriever sessions
	NotFounds     uint64 // retrievals answered not-found
	UpToDates     uint64 // retrievals answered up-to-date
	Errors        uint64 // failed sessions of either kind
	Unavailables  uint64 // failures caused by repository-unavailable
}

// clientStatsCollector provides internal methods for updating client
// stats. Not exported - the client updates its own stats.
type clientStatsCollector struct {
	stats *ClientStats
}

func newClientStatsCollector() *clientStatsCollector {
	return &clientStatsCollector{
		stats: &ClientStats{},
	}
}

func (c *clientStatsCollector) recordListing(records int) {
	atomic.AddUint64(&c.stats.Listings, 1)
	atomic.AddUint64(&c.stats.ListedRecords, uint64(records))
}

func (c *clientStatsCollector) recordRetrieval(doc *Document) {
	atomic.AddUint64(&c.stats.Retrievals, 1)
	if doc.NotFound {
		atomic.AddUint64(&c.stats.NotFounds, 1)
	}
	if doc.UpToDate {
		atomic.AddUint64(&c.stats.UpToDates, 1)
	}
}

func (c *clientStatsCollector) recordError() {
	atomic.AddUint64(&c.stats.Errors, 1)
}

func (c *clientStatsCollector) recordUnavailable() {
	atomic.AddUint64(&c.stats.Unavailables, 1)
}

func (c *clientStatsCollector) snapshot() ClientStats {
	return ClientStats{
		Listings:      atomic.LoadUint64(&c.stats.Listings),
		ListedRecords: atomic.LoadUint64(&c.stats.ListedRecords),
		Retrievals:    atomic.LoadUint64(&c.stats.Retrievals),
		NotFounds:     atomic.LoadUint64(&c.stats.NotFounds),
		UpToDates:     atomic.LoadUint64(&c.stats.UpToDates),
		Errors:        atomic.LoadUint64(&c.stats.Errors),
		Unavailables:  atomic.LoadUint64(&c.stats.Unavailables),
	}
}
