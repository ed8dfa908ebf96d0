package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File keeps every slot in a single JSON object on disk. The file is read on
// every access so edits made by another process are picked up, and it is
// replaced atomically on every write.
type File struct {
	mu   sync.Mutex
	path string
}

// OpenFile creates the parent directory of path and returns a File store.
// The file itself is created on the first write.
func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &File{path: path}, nil
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	if err != nil {
		return "", false, err
	}
	value, ok := slots[key]
	return value, ok, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	return f.SetAll(ctx, map[string]string{key: value})
}

// SetAll replaces the given slots in one write.
func (f *File) SetAll(_ context.Context, values map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	if err != nil {
		return err
	}
	for k, v := range values {
		slots[k] = v
	}
	return f.write(slots)
}

func (f *File) Close() error {
	return nil
}

func (f *File) read() (map[string]string, error) {
	slots := make(map[string]string)

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return slots, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return slots, nil
	}

	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.path, err)
	}
	return slots, nil
}

func (f *File) write(slots map[string]string) error {
	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding slots: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".capita-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}

	logger().Debug("wrote slots", "path", f.path, "count", len(slots))
	return nil
}
