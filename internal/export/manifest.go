package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ManifestFileName is written alongside the CSV artifacts.
const ManifestFileName = "manifest.json"

// Manifest records the inputs and outputs of one generation run. The CSV
// artifacts themselves are deterministic for a given seed and as-of date; the
// run ID and timestamp identify the particular invocation.
type Manifest struct {
	RunID       string     `json:"run_id"`
	Seed        int64      `json:"seed"`
	AsOf        string     `json:"as_of"`
	GeneratedAt time.Time  `json:"generated_at"`
	Artifacts   []Artifact `json:"artifacts"`
}

// NewManifest builds a manifest with a fresh run ID.
func NewManifest(seed int64, asOf time.Time, artifacts []Artifact) Manifest {
	return Manifest{
		RunID:       uuid.NewString(),
		Seed:        seed,
		AsOf:        asOf.Format(dateLayout),
		GeneratedAt: time.Now().UTC(),
		Artifacts:   artifacts,
	}
}

// WriteManifest writes the manifest into dir as indented JSON.
func WriteManifest(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
