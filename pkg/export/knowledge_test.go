package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/analyzer"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/export"
)

func sampleModules() []analyzer.ModuleInfo {
	return []analyzer.ModuleInfo{
		{
			Name:        "ActorController",
			Type:        "Controller",
			Description: "Handles actor endpoints",
			FilePath:    "src/ActorController.java",
			Methods: []analyzer.MethodInfo{
				{Name: "listActors", Signature: "public String listActors()", Description: "Lists actors", Complexity: "Low"},
			},
			Dependencies: []string{"com.sakilaproject.service.ActorService"},
		},
		{Name: "ActorService", Type: "Service"},
		{Name: "FilmService", Type: "Service"},
	}
}

func TestBuild(t *testing.T) {
	k := export.Build("A film rental app.", sampleModules())

	assert.NotEmpty(t, k.RunID)
	assert.False(t, k.GeneratedAt.IsZero())
	assert.Equal(t, "A film rental app.", k.ProjectOverview)
	assert.Equal(t, 3, k.Statistics.TotalModules)
	assert.Equal(t, map[string]int{"Controller": 1, "Service": 2}, k.Statistics.ByType)

	// Each run gets its own id.
	assert.NotEqual(t, k.RunID, export.Build("", nil).RunID)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codebase_analysis.json")
	require.NoError(t, export.Write(export.Build("overview", sampleModules()), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "overview", decoded["projectOverview"])
	assert.Len(t, decoded["modules"], 3)

	stats, ok := decoded["statistics"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 3, stats["totalModules"])

	// Module fields keep their wire names.
	modules := decoded["modules"].([]any)
	first := modules[0].(map[string]any)
	assert.Equal(t, "src/ActorController.java", first["file_path"])
	methods := first["methods"].([]any)
	assert.Equal(t, "listActors", methods[0].(map[string]any)["name"])
}

func TestWriteBadPath(t *testing.T) {
	err := export.Write(export.Build("", nil), filepath.Join(t.TempDir(), "missing", "out.json"))
	assert.Error(t, err)
}
