package storage

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/glabrego/connoisseur/internal/journal"
)

// exportFile is the root YAML document written by export.
type exportFile struct {
	Version int              `yaml:"version"`
	Journal journal.Snapshot `yaml:"journal"`
}

const exportVersion = 1

func WriteYAML(w io.Writer, snap journal.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(exportFile{Version: exportVersion, Journal: snap}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}
	return nil
}

func ReadYAML(r io.Reader) (journal.Snapshot, error) {
	var file exportFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return journal.Snapshot{}, fmt.Errorf("decode yaml: %w", err)
	}
	if file.Version != exportVersion {
		return journal.Snapshot{}, fmt.Errorf("unsupported export version %d", file.Version)
	}
	return file.Journal, nil
}
