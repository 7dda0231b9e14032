package adaptordata

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// Source supplies the byte stream for adaptor data sessions. Every
// session is one stream: the protocol ends at end-of-stream, so streams
// are never reused. Open is called once per lister or retriever session;
// for retrievals the document id is passed so command-backed sources can
// hand it to the adaptor executable.
type Source interface {
	// Name identifies the source for routing, stats and circuit
	// breaking. Names must be unique within a Sources set.
	Name() string

	// OpenLister opens the byte stream of one lister session.
	OpenLister(ctx context.Context) (io.ReadCloser, error)

	// OpenRetriever opens the byte stream of one retriever session for
	// the given document.
	OpenRetriever(ctx context.Context, id DocID) (io.ReadCloser, error)
}

// CommandSource runs external adaptor executables and streams their
// stdout, one process per session. Cancelling the context kills the
// process.
type CommandSource struct {
	name         string
	listerCmd    []string
	retrieverCmd []string // the document id is appended as the last argument
}

// NewCommandSource creates a source backed by two executables: one
// invoked for lister sessions, one for retriever sessions. Each command
// is the argv to run, program first.
func NewCommandSource(name string, listerCmd, retrieverCmd []string) *CommandSource {
	if len(listerCmd) == 0 || len(retrieverCmd) == 0 {
		panic("adaptordata: NewCommandSource requires both commands")
	}
	return &CommandSource{
		name:         name,
		listerCmd:    listerCmd,
		retrieverCmd: retrieverCmd,
	}
}

func (s *CommandSource) Name() string {
	return s.name
}

func (s *CommandSource) OpenLister(ctx context.Context) (io.ReadCloser, error) {
	return startProcess(ctx, s.listerCmd)
}

func (s *CommandSource) OpenRetriever(ctx context.Context, id DocID) (io.ReadCloser, error) {
	argv := make([]string, 0, len(s.retrieverCmd)+1)
	argv = append(argv, s.retrieverCmd...)
	argv = append(argv, string(id))
	return startProcess(ctx, argv)
}

func startProcess(ctx context.Context, argv []string) (io.ReadCloser, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &processStream{stdout: stdout, cmd: cmd}, nil
}

// processStream ties a process's stdout to its lifetime: closing the
// stream reaps the process.
type processStream struct {
	stdout io.ReadCloser
	cmd    *exec.Cmd
}

func (p *processStream) Read(buf []byte) (int, error) {
	return p.stdout.Read(buf)
}

func (p *processStream) Close() error {
	p.stdout.Close()
	return p.cmd.Wait()
}

// StaticSource serves fixed payloads, a fresh stream per session. Used
// in tests and for replaying captured sessions from files.
type StaticSource struct {
	name      string
	lister    []byte
	retriever func(id DocID) []byte
}

// NewStaticSource creates a source that serves listerPayload for lister
// sessions and retriever(id) for retriever sessions.
func NewStaticSource(name string, listerPayload []byte, retriever func(id DocID) []byte) *StaticSource {
	return &StaticSource{name: name, lister: listerPayload, retriever: retriever}
}

func (s *StaticSource) Name() string {
	return s.name
}

func (s *StaticSource) OpenLister(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.lister)), nil
}

func (s *StaticSource) OpenRetriever(ctx context.Context, id DocID) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.retriever(id))), nil
}
