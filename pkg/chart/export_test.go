package chart

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, data []byte) [][]string {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteMemoryTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMemoryTable(&buf, testFigure(t)))

	rows := readCSV(t, buf.Bytes())
	require.Len(t, rows, 1+6*10)
	assert.Equal(t, []string{"jumps", "chunk_size", "memory", "bottom", "top"}, rows[0])
	assert.Equal(t, []string{"0", "1", "500000", "0", "500000"}, rows[1])
	// jumps=1 at chunk size 1 sits on top of jumps=0
	assert.Equal(t, []string{"1", "1", "1000000", "500000", "1500000"}, rows[11])
}

func TestWriteRuntimeTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRuntimeTable(&buf, testFigure(t)))

	rows := readCSV(t, buf.Bytes())
	require.Len(t, rows, 1+2*10)
	assert.Equal(t, []string{"benchmark", "chunk_size", "runtime_ms", "runtime_error_ms"}, rows[0])
	assert.Equal(t, "A", rows[1][0])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, "B", rows[20][0])
	assert.Equal(t, "512", rows[20][1])
}

func TestExportTables(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "plot")
	require.NoError(t, ExportTables(testFigure(t), prefix))

	for _, suffix := range []string{"_memory.csv", "_runtime.csv"} {
		data, err := os.ReadFile(prefix + suffix)
		require.NoError(t, err)
		assert.NotEmpty(t, readCSV(t, data))
	}
}
