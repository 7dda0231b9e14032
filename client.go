package adaptordata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sony/gobreaker/v2"

	"github.com/pior/adaptordata/protocol"
)

// Config holds configuration for the adaptor client.
type Config struct {
	// MaxSessions is the maximum number of adaptor sessions running at
	// the same time. For command sources this bounds the number of live
	// subprocesses. Required: must be > 0.
	MaxSessions int32

	// SelectSource routes a document ID to the source shard responsible
	// for it. If nil, uses DefaultSelectSource (xxh3 + jump hash).
	SelectSource SelectSourceFunc

	// NewCircuitBreaker creates a circuit breaker for a source.
	// Called once per source name on first use.
	// If nil, no circuit breaker is used.
	NewCircuitBreaker func(sourceName string) *gobreaker.CircuitBreaker[any]
}

// Client runs lister and retriever sessions against a set of adaptor
// sources. It is safe for concurrent use.
type Client struct {
	sources      Sources
	selectSource SelectSourceFunc
	runners      *runnerPool

	mu         sync.RWMutex
	breakers   map[string]*gobreaker.CircuitBreaker[any]
	newBreaker func(sourceName string) *gobreaker.CircuitBreaker[any]

	stats *clientStatsCollector
}

// NewClient creates a client over the given sources.
// For a single repository, use: NewClient(StaticSources(source), config)
func NewClient(sources Sources, config Config) (*Client, error) {
	if len(sources.List()) == 0 {
		return nil, ErrNoSources
	}
	if config.MaxSessions <= 0 {
		return nil, fmt.Errorf("adaptordata: MaxSessions must be positive")
	}

	selectSource := config.SelectSource
	if selectSource == nil {
		selectSource = DefaultSelectSource
	}

	runners, err := newRunnerPool(config.MaxSessions)
	if err != nil {
		return nil, err
	}

	return &Client{
		sources:      sources,
		selectSource: selectSource,
		runners:      runners,
		breakers:     make(map[string]*gobreaker.CircuitBreaker[any]),
		newBreaker:   config.NewCircuitBreaker,
		stats:        newClientStatsCollector(),
	}, nil
}

// Close releases the client's session slots. Sessions already running
// are allowed to finish.
func (c *Client) Close() {
	c.runners.close()
}

// ListDocIDs runs one lister session per source and returns the crawl
// records of all sources, in source then encounter order. Any failing
// source fails the whole listing; the caller owns retry policy.
func (c *Client) ListDocIDs(ctx context.Context) ([]*Record, error) {
	var records []*Record

	for _, source := range c.sources.List() {
		result, err := c.runSession(ctx, source.Name(),
			source.OpenLister,
			func(p *protocol.Parser) (any, error) { return p.ReadFromLister() },
		)
		if err != nil {
			c.recordFailure(err)
			return nil, fmt.Errorf("lister session on source %q: %w", source.Name(), err)
		}

		entries := result.([]protocol.Entry)
		for _, entry := range entries {
			records = append(records, recordFromEntry(entry))
		}
		c.stats.recordListing(len(entries))
	}

	return records, nil
}

// RetrieveDoc runs one retriever session for the document against the
// source responsible for it.
func (c *Client) RetrieveDoc(ctx context.Context, id DocID) (*Document, error) {
	source, err := c.sourceFor(id)
	if err != nil {
		c.stats.recordError()
		return nil, err
	}

	result, err := c.runSession(ctx, source.Name(),
		func(ctx context.Context) (io.ReadCloser, error) {
			return source.OpenRetriever(ctx, id)
		},
		func(p *protocol.Parser) (any, error) { return p.ReadFromRetriever() },
	)
	if err != nil {
		c.recordFailure(err)
		return nil, fmt.Errorf("retriever session for %q on source %q: %w", id, source.Name(), err)
	}

	doc := documentFromResult(result.(*protocol.Result))
	c.stats.recordRetrieval(doc)
	return doc, nil
}

// RetrieveInto retrieves the document and serves the result into the
// response sink.
func (c *Client) RetrieveInto(ctx context.Context, id DocID, resp Response) error {
	doc, err := c.RetrieveDoc(ctx, id)
	if err != nil {
		return err
	}
	return ApplyResult(doc, resp)
}

// Stats returns a snapshot of client statistics.
func (c *Client) Stats() ClientStats {
	return c.stats.snapshot()
}

// RunnerStats returns a snapshot of session concurrency.
func (c *Client) RunnerStats() RunnerStats {
	return c.runners.stats()
}

// BreakerStates returns the circuit breaker state per source, for the
// sources that have been used so far. Empty when no breaker is
// configured.
func (c *Client) BreakerStates() map[string]gobreaker.State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	states := make(map[string]gobreaker.State, len(c.breakers))
	for name, cb := range c.breakers {
		states[name] = cb.State()
	}
	return states
}

// sourceFor picks the source shard responsible for a document id.
func (c *Client) sourceFor(id DocID) (Source, error) {
	list := c.sources.List()
	if len(list) == 0 {
		return nil, ErrNoSources
	}

	index := c.selectSource(id, len(list))
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("adaptordata: source selector returned index %d for %d sources", index, len(list))
	}
	return list[index], nil
}

// runSession runs one complete session: acquire a runner slot, open the
// byte stream, parse it to the end, close the stream. The breaker, when
// configured, wraps the whole session.
func (c *Client) runSession(
	ctx context.Context,
	sourceName string,
	open func(context.Context) (io.ReadCloser, error),
	parse func(*protocol.Parser) (any, error),
) (any, error) {
	slot, err := c.runners.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer slot.Release()

	run := func() (any, error) {
		stream, err := open(ctx)
		if err != nil {
			return nil, err
		}

		result, parseErr := parse(protocol.NewParser(stream))
		closeErr := stream.Close()
		if parseErr != nil {
			return nil, parseErr
		}
		if closeErr != nil {
			return nil, closeErr
		}
		return result, nil
	}

	if cb := c.breakerFor(sourceName); cb != nil {
		return cb.Execute(run)
	}
	return run()
}

// breakerFor returns the breaker for a source, creating it lazily.
// Returns nil when breakers are not configured.
func (c *Client) breakerFor(sourceName string) *gobreaker.CircuitBreaker[any] {
	if c.newBreaker == nil {
		return nil
	}

	c.mu.RLock()
	cb, exists := c.breakers[sourceName]
	c.mu.RUnlock()
	if exists {
		return cb
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, exists := c.breakers[sourceName]; exists {
		return cb
	}
	cb = c.newBreaker(sourceName)
	c.breakers[sourceName] = cb
	return cb
}

func (c *Client) recordFailure(err error) {
	c.stats.recordError()

	var unavailable *protocol.UnavailableError
	if errors.As(err, &unavailable) {
		c.stats.recordUnavailable()
	}
}
