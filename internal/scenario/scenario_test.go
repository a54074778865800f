package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/cinematool/internal/cinema"
	"github.com/ivlev/cinematool/internal/ident"
)

func sampleRecord(name string) *cinema.Cinema {
	c := cinema.New(&ident.Sequence{Prefix: "ID-"}, name)
	c.Participants = []string{"NPC-01", "PLAYER"}
	c.Actions = []cinema.Action{
		{Name: "Pan", Duration: 4, Variant: &cinema.Camera{Target: "NPC-01", FOVStart: 60, FOVEnd: 45.5}},
		{Index: 1, Name: "Say", Offset: 0.25, Variant: &cinema.Dialog{Speaker: "NPC-01", Sample: "Who goes there?"}},
		{Index: 2, Name: "Black", Variant: &cinema.Fade{Effect: 1, Magnitude: 1, Color: [4]int{0, 0, 0, 255}, Target: 1}},
	}
	c.CameraPaths[0].Keyframes = append(c.CameraPaths[0].Keyframes, cinema.Keyframe{
		Position:    [3]int{16383, 0, -16383},
		Orientation: [4]int{0, 0, 0, 32766},
	})
	return c
}

func TestScenarioWriteRead(t *testing.T) {
	s := New(sampleRecord("Gate"), sampleRecord("Hall"))
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	require.NoError(t, WriteScenario(s, path))

	got, err := ReadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestReadScenarioVersion(t *testing.T) {
	dir := t.TempDir()

	unversioned := filepath.Join(dir, "unversioned.yaml")
	require.NoError(t, os.WriteFile(unversioned, []byte("cinemas:\n  - name: Bare\n"), 0644))
	s, err := ReadScenario(unversioned)
	require.NoError(t, err)
	assert.Equal(t, Version, s.Version)
	require.Len(t, s.Cinemas, 1)
	assert.Equal(t, "Bare", s.Cinemas[0].Name)

	future := filepath.Join(dir, "future.yaml")
	require.NoError(t, os.WriteFile(future, []byte("version: \"9.0\"\n"), 0644))
	_, err = ReadScenario(future)
	assert.ErrorContains(t, err, "unsupported scenario version")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("cinemas:\n  - \n"), 0644))
	_, err = ReadScenario(empty)
	assert.ErrorContains(t, err, "cinema 0 is empty")

	_, err = ReadScenario(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		name string
		cs   []*cinema.Cinema
		want string
	}{
		{"single", []*cinema.Cinema{{Name: "Intro Scene"}}, "Intro_Scene.EXPORT.TXT"},
		{"unsafe characters", []*cinema.Cinema{{Name: "a/b:c"}}, "a_b_c.EXPORT.TXT"},
		{"guid fallback", []*cinema.Cinema{{GUID: "ABC-1"}}, "ABC-1.EXPORT.TXT"},
		{"anonymous", []*cinema.Cinema{{}}, "CINEMA.EXPORT.TXT"},
		{"several", []*cinema.Cinema{{Name: "A"}, {Name: "B"}}, MultiExportName},
		{"none", nil, MultiExportName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportFileName(tt.cs))
		})
	}
}

func TestScenarioFileName(t *testing.T) {
	assert.Equal(t, "Intro.yaml", ScenarioFileName("in/Intro.EXPORT.TXT"))
	assert.Equal(t, "Intro.yaml", ScenarioFileName("Intro.export.txt"))
	assert.Equal(t, "boss_fight.yaml", ScenarioFileName("/tmp/boss fight.txt"))
}

func TestExportFileNameFor(t *testing.T) {
	two := []*cinema.Cinema{{Name: "A1"}, {Name: "A2"}}
	assert.Equal(t, "Intro_Scene.EXPORT.TXT", ExportFileNameFor("in/a.yaml", []*cinema.Cinema{{Name: "Intro Scene"}}))
	assert.Equal(t, "act_one.EXPORT.TXT", ExportFileNameFor("in/act one.yaml", two))
	assert.Equal(t, "b.EXPORT.TXT", ExportFileNameFor("/tmp/b.yml", two))
	assert.Equal(t, MultiExportName, ExportFileNameFor("", two))
}
