// Package filestore implements the repository interfaces on top of
// line-delimited JSON files: one file per entity, one record per line,
// human-readable, overwritten wholesale on every save. There is no append
// log and no schema versioning; this mirrors the original stores exactly.
//
// Writes go through a temp file in the same directory followed by a
// rename, so a failed save never leaves a half-written store behind. A
// per-store mutex keeps individual loads and saves from interleaving
// inside one process; the read-modify-write cycle as a whole still assumes
// a single logical writer, and cross-process overlap is last-writer-wins.
package filestore

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/edutrack/ledger-service/internal/repositories"
)

// maxLineSize bounds a single record line; attendance records grow with
// the curriculum, not with session counts, so this is generous.
const maxLineSize = 4 * 1024 * 1024

type lineStore[T any] struct {
	name string
	path string
	mu   sync.Mutex
}

func newLineStore[T any](dir, name string) *lineStore[T] {
	return &lineStore[T]{name: name, path: filepath.Join(dir, name)}
}

// Load reads every record line. A missing file is the empty store; a
// malformed line surfaces as *repositories.LoadError so the caller can
// apply its substitute-default recovery policy.
func (s *lineStore[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", s.name, err)
	}
	defer f.Close()

	var records []T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &repositories.LoadError{
				Store: s.name,
				Err:   fmt.Errorf("line %d: %w", line, err),
			}
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read store %s: %w", s.name, err)
	}
	return records, nil
}

// Save overwrites the store with the given records via temp file + rename.
func (s *lineStore[T]) Save(ctx context.Context, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + "." + uuid.NewString() + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create temp for store %s: %w", s.name, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("encode store %s: %w", s.name, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("flush store %s: %w", s.name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close store %s: %w", s.name, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace store %s: %w", s.name, err)
	}
	return nil
}
