package export_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ardata/internal/export"
	"ardata/internal/gen"
)

func testTables(t *testing.T) []export.Table {
	t.Helper()
	ds := gen.New(gen.Config{Seed: 42, Customers: 80}).Generate()
	return export.Tables(ds)
}

func TestTablesCoverEveryEntity(t *testing.T) {
	tables := testTables(t)
	require.Len(t, tables, 14)

	names := make([]string, 0, len(tables))
	for _, table := range tables {
		names = append(names, table.Name)
		assert.NotEmpty(t, table.Header, table.Name)
		assert.NotEmpty(t, table.Rows, table.Name)
		for _, row := range table.Rows {
			require.Len(t, row, len(table.Header), table.Name)
		}
	}

	assert.Equal(t, []string{
		"customer_master", "invoices", "invoice_line_items", "payments",
		"gl_entries", "orders", "customer_interactions", "collection_cases",
		"disputes", "payment_plans", "risk_scores", "dso_analytics",
		"collection_performance", "strategy_effectiveness",
	}, names)
}

func TestEncodeCSVQuotesDelimiters(t *testing.T) {
	data, err := export.EncodeCSV(export.Table{
		Name:   "sample",
		Header: []string{"id", "address"},
		Rows:   [][]string{{"1", "42, MG Road"}},
	})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"42, MG Road"`)

	// The encoding must round-trip through a standard CSV reader.
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "42, MG Road", records[1][1])
}

func TestEncodeCSVRejectsRaggedRows(t *testing.T) {
	_, err := export.EncodeCSV(export.Table{
		Name:   "sample",
		Header: []string{"a", "b"},
		Rows:   [][]string{{"only-one-field"}},
	})
	assert.Error(t, err)
}

func TestEncodeCSVIsDeterministic(t *testing.T) {
	a := testTables(t)
	b := testTables(t)

	for i := range a {
		dataA, err := export.EncodeCSV(a[i])
		require.NoError(t, err)
		dataB, err := export.EncodeCSV(b[i])
		require.NoError(t, err)
		assert.Equal(t, dataA, dataB, a[i].Name)
	}
}

func TestWriteCSVFiles(t *testing.T) {
	dir := t.TempDir()
	tables := testTables(t)

	artifacts, err := export.WriteCSVFiles(dir, tables)
	require.NoError(t, err)
	require.Len(t, artifacts, len(tables))

	for i, artifact := range artifacts {
		assert.Equal(t, tables[i].FileName(), artifact.File)
		assert.Equal(t, len(tables[i].Rows), artifact.Rows)
		assert.Len(t, artifact.SHA256, 64)

		data, err := os.ReadFile(filepath.Join(dir, artifact.File))
		require.NoError(t, err)
		assert.Equal(t, strings.Join(tables[i].Header, ","), strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	tables := testTables(t)

	artifacts, err := export.WriteCSVFiles(dir, tables)
	require.NoError(t, err)

	manifest := export.NewManifest(42, gen.DefaultAsOf, artifacts)
	assert.NotEmpty(t, manifest.RunID)
	assert.Equal(t, "2025-04-18", manifest.AsOf)

	require.NoError(t, export.WriteManifest(dir, manifest))

	data, err := os.ReadFile(filepath.Join(dir, export.ManifestFileName))
	require.NoError(t, err)

	var parsed export.Manifest
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, manifest.RunID, parsed.RunID)
	assert.Equal(t, int64(42), parsed.Seed)
	assert.Len(t, parsed.Artifacts, len(tables))
}
