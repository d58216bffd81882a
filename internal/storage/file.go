package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const fileVersion = "1.0.0"

type fileDoc struct {
	Values     map[string]string `json:"values"`
	LastUpdate time.Time         `json:"last_update"`
	Version    string            `json:"version"`
}

// FileStore keeps every key in one JSON document and rewrites it on each Set.
type FileStore struct {
	path string
	doc  fileDoc
}

// OpenFile loads the JSON document at path, starting empty if it is missing.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		doc:  fileDoc{Values: map[string]string{}, Version: fileVersion},
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("decode store %s: %w", path, err)
	}
	if s.doc.Values == nil {
		s.doc.Values = map[string]string{}
	}
	return s, nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.doc.Values[key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.doc.Values[key] = value
	return s.save()
}

func (s *FileStore) Clear(_ context.Context) error {
	s.doc.Values = map[string]string{}
	return s.save()
}

func (s *FileStore) Close() error { return nil }

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) save() error {
	s.doc.LastUpdate = time.Now()
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
