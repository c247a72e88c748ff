package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/tools/imports"
)

// Sink receives rendered Go source files.
// Write may be called concurrently.
type Sink interface {
	Write(ctx context.Context, name string, src []byte) error
}

// DirSink formats files with goimports and writes them to a directory.
type DirSink struct {
	Dir string
}

// NewDirSink returns a sink writing to dir.
func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

// Write implements Sink.
func (s *DirSink) Write(ctx context.Context, name string, src []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fullPath := filepath.Join(s.Dir, name)
	formatted, err := imports.Process(fullPath, src, nil)
	if err != nil {
		// Keep the unformatted source next to the target for debugging.
		debugPath := fullPath + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, src, 0o644)
		return fmt.Errorf("format %s: %w (unformatted written to %s)", name, err, debugPath)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// MemSink keeps rendered files in memory.
type MemSink struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemSink returns an empty in-memory sink.
func NewMemSink() *MemSink {
	return &MemSink{files: make(map[string][]byte)}
}

// Write implements Sink.
func (s *MemSink) Write(_ context.Context, name string, src []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[name] = append([]byte(nil), src...)
	return nil
}

// File returns the content of a written file.
func (s *MemSink) File(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.files[name]
	return string(src), ok
}

// Names returns the sorted names of the written files.
func (s *MemSink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
