package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
)

// Load - reads the data file at path, regenerating defaults when the file is missing,
// unparseable, or lacks any of the three required top-level keys. The defaults are
// written back to disk immediately so the file exists for the next startup.
func Load(path string) (*DataStore, error) {
	s := &DataStore{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, s.resetToDefaults()
	}
	if err != nil {
		return nil, err
	}

	doc := &document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		log.Printf("Error loading data file %s: %s - creating a new one", path, err)
		return s, s.resetToDefaults()
	}
	if doc.Settings == nil || doc.Users == nil || doc.Stats == nil {
		log.Printf("Data file %s is missing required keys - creating a new one", path)
		return s, s.resetToDefaults()
	}

	s.doc = doc
	return s, nil
}

func (s *DataStore) resetToDefaults() error {
	s.doc = defaultDocument()
	if err := s.Save(); err != nil {
		return err
	}
	log.Println("Created new data file with default settings")
	return nil
}

// Save - rewrites the whole document synchronously. There's no batching and no partial
// write handling: a failure leaves in-memory state authoritative for this process and
// is reported to the caller to log.
func (s *DataStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0644)
}
