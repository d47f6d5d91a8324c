package filesystem

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvbuilder/internal/domain"
)

const seedYAML = `personalInfo:
  name: Ada Lovelace
  title: Analyst
summary: Writes programs for engines.
experience:
  - id: e1
    title: Engineer
    company: Analytical Engines
skills:
  - name: Mathematics
sectionsOrder: [courses, experience, education]
`

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRepository_LoadYAML(t *testing.T) {
	path := writeSeed(t, "cv.yaml", seedYAML)

	r, err := NewRepository().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", r.PersonalInfo.Name)
	assert.Equal(t, "Writes programs for engines.", r.Summary)
	require.Len(t, r.Experience, 1)
	assert.Equal(t, "e1", r.Experience[0].ID)
	require.Len(t, r.Skills, 1)
	assert.NotEmpty(t, r.Skills[0].ID, "missing IDs are generated")
	assert.Equal(t, domain.SectionOrder{domain.SectionCourses, domain.SectionExperience, domain.SectionEducation}, r.Order)
}

func TestRepository_LoadJSON(t *testing.T) {
	path := writeSeed(t, "cv.json", `{"personalInfo": {"name": "Grace"}, "languages": [{"name": "English", "level": "Native"}]}`)

	r, err := NewRepository().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Grace", r.PersonalInfo.Name)
	assert.Equal(t, domain.DefaultSectionOrder(), r.Order)
	require.Len(t, r.Languages, 1)
	assert.Equal(t, "Native", r.Languages[0].Level)
}

func TestRepository_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errMsg  string
	}{
		{"unknown field", "cv.yaml", "hobbies: [chess]\n", "hobbies"},
		{"bad order", "cv.yaml", "sectionsOrder: [courses, courses, education]\n", "invalid section order"},
		{"bad json", "cv.json", `{"summary": `, "cv.json"},
		{"unknown json field", "cv.json", `{"age": 3}`, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSeed(t, tt.file, tt.content)

			_, err := NewRepository().Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := NewRepository().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRepository_LoadEmptyFile(t *testing.T) {
	r, err := NewRepository().Load(writeSeed(t, "cv.yml", ""))
	require.NoError(t, err)
	assert.True(t, r.Equal(domain.NewResume()))
}

func TestEncodeDecode(t *testing.T) {
	seed, err := Decode(strings.NewReader(seedYAML), FormatYAML)
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, seed, format))

			back, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.True(t, seed.Equal(back))
		})
	}

	assert.Error(t, Encode(&bytes.Buffer{}, seed, Format("toml")))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("a/b/CV.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("cv.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("cv"))
}

func TestWatcher_ReportsWrites(t *testing.T) {
	path := writeSeed(t, "cv.yaml", seedYAML)

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan struct{}, 1)
	go func() { _ = w.Run(ctx, changed) }()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(seedYAML+"summary: changed\n"), 0o644))

	select {
	case <-changed:
	case <-ctx.Done():
		t.Fatal("no change reported")
	}
}
