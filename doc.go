// Package adaptordata connects a document indexer to repository adaptor
// processes speaking the adaptor data stream format.
//
// The wire format itself lives in the protocol subpackage. This package
// adds the consuming side: value types for document ids, metadata and
// crawl records, sources that open one byte stream per session (usually
// by spawning an adaptor executable), and a Client that routes document
// ids across source shards, bounds session concurrency, and optionally
// guards each source with a circuit breaker.
//
// Typical use:
//
//	source := adaptordata.NewCommandSource("docs",
//		[]string{"/opt/adaptor/lister"},
//		[]string{"/opt/adaptor/retriever"},
//	)
//	client, err := adaptordata.NewClient(adaptordata.StaticSources(source), adaptordata.Config{
//		MaxSessions: 4,
//	})
//	if err != nil {
//		...
//	}
//	defer client.Close()
//
//	records, err := client.ListDocIDs(ctx)
//	doc, err := client.RetrieveDoc(ctx, records[0].DocID)
package adaptordata
