package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFixturePath(t *testing.T) {
	if got, want := FixturePath("keys.json"), filepath.Join("testdata", "keys.json"); got != want {
		t.Errorf("FixturePath() = %q, want %q", got, want)
	}
}

func TestLoadFixtureJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	if err := os.WriteFile(path, []byte(`{"name":"paged","page":2}`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var got struct {
		Name string `json:"name"`
		Page int    `json:"page"`
	}
	LoadFixtureJSON(t, path, &got)

	if got.Name != "paged" || got.Page != 2 {
		t.Errorf("unexpected fixture contents: %+v", got)
	}
}

func TestClock_Advance(t *testing.T) {
	clock := NewClock()
	start := clock.Now()

	clock.Advance(4 * time.Minute)

	if got := clock.Now().Sub(start); got != 4*time.Minute {
		t.Errorf("expected clock to advance 4m, advanced %v", got)
	}
}

func TestNewDB_SchemaCreated(t *testing.T) {
	db := NewDB(t)
	created := NewClock().Now()

	admin := SeedAdmin(t, db, "ada", created)
	category := SeedCategory(t, db, "Go", created)
	post := SeedPost(t, db, "Hello", admin, category, created)

	if post.AdminID == nil || *post.AdminID != admin.ID {
		t.Errorf("expected post to reference admin %s", admin.ID)
	}
}
