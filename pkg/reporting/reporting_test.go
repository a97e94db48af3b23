package reporting

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/optimizer"
	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

func testResult() *optimizer.Result {
	archive := []planning.Solution{
		{
			Chromosome:  planning.NewChromosome([][]int{{10, 5, 8}}, []int{2, 3, 1}),
			Cost:        732,
			Instability: 3,
		},
		{
			Chromosome:  planning.NewChromosome([][]int{{10, 5, 8}}, []int{2, 2, 2}),
			Cost:        810,
			Instability: 0,
		},
	}
	points := make([]planning.ObjectivePoint, len(archive))
	for i, s := range archive {
		points[i] = s.Point()
	}
	return &optimizer.Result{
		Archive:     archive,
		Points:      points,
		History:     [][]planning.ObjectivePoint{points},
		Generations: 1,
		Evaluations: 20,
	}
}

func TestWriteFrontCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "front.csv")
	require.NoError(t, WriteFrontCSV(testResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"index", "cost", "instability"}, records[0])
	assert.Equal(t, []string{"1", "732", "3"}, records[1])
	assert.Equal(t, []string{"2", "810", "0"}, records[2])
}

func TestWriteResultJSON(t *testing.T) {
	res := testResult()
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, WriteResultJSON(res, path, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Generations int `json:"generations"`
		Evaluations int `json:"evaluations"`
		Archive     []struct {
			Cost        float64 `json:"cost"`
			Instability float64 `json:"instability"`
			Production  [][]int `json:"production"`
			Workforce   []int   `json:"workforce"`
		} `json:"archive"`
		History [][]planning.ObjectivePoint `json:"history"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 1, decoded.Generations)
	assert.Equal(t, 20, decoded.Evaluations)
	require.Len(t, decoded.Archive, 2)
	assert.Equal(t, 732.0, decoded.Archive[0].Cost)
	assert.Equal(t, []int{2, 3, 1}, decoded.Archive[0].Workforce)
	require.Len(t, decoded.History, 1)
}

func TestWriteResultJSON_OmitsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, WriteResultJSON(testResult(), path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"history"`)
}

func TestConsoleReporter_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleReporter(&buf).PrintSummary(testResult())

	out := buf.String()
	assert.Contains(t, out, "732")
	assert.Contains(t, out, "810")
}
