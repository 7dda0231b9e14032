// Package protocol implements the adaptor data stream format used to
// exchange crawl directives and document payloads between a repository
// adaptor process and the consuming library.
//
// A session is one byte stream (file or pipe). It starts with a header:
//
//	GSA Adaptor Data Version 1 [<delimiter>]
//
// The string between the square brackets becomes the delimiter for the
// rest of the session. A delimiter may be several bytes long (for example
// CR LF, or a GUID-like string) but may not contain alphanumerics, ':',
// '/', '-', '_', ' ', '=', '+', '[' or ']'. The null byte is a safe
// default.
//
// The body is a sequence of delimiter-separated lines of the form
// "keyword" or "keyword=argument". The first command must name a document
// ID, either "id=<docid>" or "id-list". Inside an id-list every non-empty
// line is a document ID; two consecutive delimiters or end-of-stream
// close the list. The "content" command switches the remainder of the
// stream to raw binary which is read to end-of-stream, so document
// content may freely contain the delimiter. All character data is strict
// UTF-8.
//
// The same command stream is interpreted under one of two grammars chosen
// by the caller: ReadFromLister folds it into an ordered batch of crawl
// directives, ReadFromRetriever into a single document retrieval result.
package protocol
