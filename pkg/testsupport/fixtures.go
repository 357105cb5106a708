package testsupport

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// FixturePath returns filename under the package's testdata directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}

// LoadFixture reads a fixture file, failing the test when it is missing.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}
	return data
}

// LoadFixtureJSON decodes a JSON fixture into dest. Unknown fields fail the
// test so a misspelled scenario key is not silently ignored.
func LoadFixtureJSON(t *testing.T, path string, dest any) {
	t.Helper()

	dec := json.NewDecoder(bytes.NewReader(LoadFixture(t, path)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		t.Fatalf("failed to decode JSON fixture from %s: %v", path, err)
	}
}
