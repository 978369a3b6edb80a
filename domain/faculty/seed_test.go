package faculty_test

import (
	"facultydesk/domain/faculty"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeed(t *testing.T) {
	entries, err := faculty.ParseSeed([]byte(`
faculty:
  - name: Dr. Ramesh Kumar
    cabin: C-101
    department: Computer Science
  - name: Dr. New Person
    cabin: Z-999
`))
	assert.Nil(t, err)
	assert.Equal(t, []faculty.Entry{
		{Name: "Dr. Ramesh Kumar", Cabin: "C-101", Department: "Computer Science"},
		{Name: "Dr. New Person", Cabin: "Z-999"},
	}, entries)

	entries, err = faculty.ParseSeed([]byte(`faculty: []`))
	assert.Nil(t, err)
	assert.Empty(t, entries)

	entries, err = faculty.ParseSeed([]byte(``))
	assert.Nil(t, err)
	assert.Empty(t, entries)

	_, err = faculty.ParseSeed([]byte("faculty:\n  - cabin: C-1\n"))
	assert.EqualError(t, err, "parse seed: entry 0 has no name")

	_, err = faculty.ParseSeed([]byte("faculty: [\n"))
	assert.NotNil(t, err)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	assert.Nil(t, os.WriteFile(path, []byte("faculty:\n  - name: Dr. A\n    cabin: A-1\n    department: Physics\n"), 0o600))

	entries, err := faculty.LoadSeedFile(path)
	assert.Nil(t, err)
	assert.Equal(t, []faculty.Entry{{Name: "Dr. A", Cabin: "A-1", Department: "Physics"}}, entries)

	_, err = faculty.LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}
