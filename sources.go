package adaptordata

import (
	"errors"

	"github.com/pior/adaptordata/internal"
	"github.com/zeebo/xxh3"
)

var ErrNoSources = errors.New("adaptordata: no sources configured")

// Sources is the set of adaptor sources a client can talk to. A
// repository split across several adaptor commands registers one source
// per shard.
type Sources interface {
	List() []Source
}

type staticSources struct {
	sources []Source
}

// StaticSources returns a fixed set of sources.
func StaticSources(sources ...Source) Sources {
	return &staticSources{sources: sources}
}

func (s *staticSources) List() []Source {
	return s.sources
}

// SelectSourceFunc picks which source is responsible for a document id,
// as an index into the current source list.
type SelectSourceFunc func(id DocID, sourceCount int) int

// DefaultSelectSource routes a document id with Jump consistent hashing
// over xxh3, so ids keep their source when shards are added or removed.
func DefaultSelectSource(id DocID, sourceCount int) int {
	return internal.JumpHash(xxh3.HashString(string(id)), sourceCount)
}
