package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"ardata/internal/logger"
)

// Artifact describes one written file for the manifest.
type Artifact struct {
	File   string `json:"file"`
	Rows   int    `json:"rows"`
	SHA256 string `json:"sha256"`
}

// EncodeCSV renders a table to CSV bytes: header row first, then one row per
// record. Fields containing the delimiter or quotes are quote-escaped so
// comma-bearing values like street addresses survive a standard CSV reader.
func EncodeCSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("encode %s header: %w", t.FileName(), err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return nil, fmt.Errorf("encode %s: row %d has %d fields, header has %d",
				t.FileName(), i+1, len(row), len(t.Header))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("encode %s row %d: %w", t.FileName(), i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode %s: %w", t.FileName(), err)
	}
	return buf.Bytes(), nil
}

// WriteCSVFiles writes every table into dir, creating it if absent. Write
// failures are fatal to the run: there is no retry path and a partial dataset
// must not pass silently.
func WriteCSVFiles(dir string, tables []Table) ([]Artifact, error) {
	log := logger.WithComponent("export")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	artifacts := make([]Artifact, 0, len(tables))
	for _, t := range tables {
		data, err := EncodeCSV(t)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, t.FileName())
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Error().Err(err).Str("file", path).Msg("Failed to write artifact")
			return nil, fmt.Errorf("write %s: %w", path, err)
		}

		sum := sha256.Sum256(data)
		artifacts = append(artifacts, Artifact{
			File:   t.FileName(),
			Rows:   len(t.Rows),
			SHA256: hex.EncodeToString(sum[:]),
		})

		log.Info().
			Str("file", t.FileName()).
			Int("rows", len(t.Rows)).
			Msg("Artifact written")
	}

	return artifacts, nil
}
