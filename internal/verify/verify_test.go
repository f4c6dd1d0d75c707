package verify_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ardata/internal/export"
	"ardata/internal/gen"
	"ardata/internal/verify"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	ds := gen.New(gen.Config{Seed: 42, Customers: 80}).Generate()
	_, err := export.WriteCSVFiles(dir, export.Tables(ds))
	require.NoError(t, err)
	return dir
}

func TestRunPassesOnGeneratedDataset(t *testing.T) {
	dir := writeDataset(t)

	report, err := verify.New(dir).Run()
	require.NoError(t, err)

	assert.True(t, report.OK(), "violations: %v", report.Violations)
	assert.Greater(t, report.RecordsChecked, 80)
}

func TestRunFlagsTamperedAmounts(t *testing.T) {
	dir := writeDataset(t)

	// Corrupt the first invoice's total so the amount identity breaks.
	path := filepath.Join(dir, "invoices.csv")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Greater(t, len(lines), 2)
	header := strings.Split(lines[0], ",")
	totalIdx := -1
	for i, col := range header {
		if col == "total_amount" {
			totalIdx = i
		}
	}
	require.GreaterOrEqual(t, totalIdx, 0)

	fields := strings.Split(lines[1], ",")
	fields[totalIdx] = "1.00"
	lines[1] = strings.Join(fields, ",")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644))

	report, err := verify.New(dir).Run()
	require.NoError(t, err)

	assert.False(t, report.OK())
	found := false
	for _, v := range report.Violations {
		if strings.Contains(v.Rule, "total_amount") {
			found = true
		}
	}
	assert.True(t, found, "expected a total_amount violation, got %v", report.Violations)
}

func TestRunFailsOnMissingArtifact(t *testing.T) {
	dir := writeDataset(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "payments.csv")))

	_, err := verify.New(dir).Run()
	assert.Error(t, err)
}
