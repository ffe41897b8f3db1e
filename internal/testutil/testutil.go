// Package testutil holds fixtures shared by command and tool tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leaguekit/leaguesettings/internal/bioinfo"
	"github.com/leaguekit/leaguesettings/internal/rows"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

// WriteLeague writes body to a fresh league file named name and returns its path.
// t is the active test; the extension of name picks the format.
func WriteLeague(t *testing.T, name string, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write league: %v", err)
	}
	return path
}

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// StubWorker returns a worker with one injury, one tragic death and a
// single-country bio info table.
func StubWorker() *worker.Stub {
	return &worker.Stub{
		Injuries: func(context.Context) ([]rows.Injury, error) {
			return []rows.Injury{{Name: "Sprained Ankle", Frequency: 10, Games: 3}}, nil
		},
		TragicDeaths: func(context.Context) ([]rows.TragicDeath, error) {
			return []rows.TragicDeath{{Reason: "Lightning", Frequency: 1}}, nil
		},
		BioDefaults: func(context.Context, worker.Gender) (bioinfo.Defaults, error) {
			return bioinfo.Defaults{
				Frequencies:  bioinfo.Weights{"USA": 10},
				Names:        map[string]bioinfo.Names{"USA": {First: bioinfo.Weights{"John": 1}, Last: bioinfo.Weights{"Smith": 1}}},
				DefaultRaces: bioinfo.Weights{"white": 1},
				Colleges:     bioinfo.Weights{"State": 1},
			}, nil
		},
	}
}
