package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/minstohours/internal/config"
	"github.com/javiermolinar/minstohours/internal/db"
	"github.com/javiermolinar/minstohours/internal/reading"
	"github.com/javiermolinar/minstohours/internal/ui"
	"github.com/javiermolinar/minstohours/internal/uptime"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// recordReading is a helper to create and insert a reading.
func recordReading(t *testing.T, repo *db.SQLite, source, input string) *reading.Reading {
	t.Helper()
	r, err := reading.New(source, input)
	if err != nil {
		t.Fatalf("failed to create reading: %v", err)
	}
	if err := repo.RecordReading(context.Background(), r); err != nil {
		t.Fatalf("failed to insert reading: %v", err)
	}
	return r
}

func TestRecordAndList(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	inputs := []struct {
		input string
		want  string
	}{
		{"2365", "1 day 15 hours 25 minutes"},
		{"NULL", "NULL"},
		{"-", "Undefined"},
		{"0", ""},
		{"abc", ""},
	}
	for _, in := range inputs {
		recordReading(t, repo, "stdin", in.input)
	}

	readings, err := repo.ListReadings(ctx, 0)
	if err != nil {
		t.Fatalf("ListReadings failed: %v", err)
	}
	if len(readings) != len(inputs) {
		t.Fatalf("expected %d readings, got %d", len(inputs), len(readings))
	}

	// Newest first: the last recorded input comes back first.
	for i, r := range readings {
		want := inputs[len(inputs)-1-i]
		if r.Input != want.input {
			t.Errorf("reading %d: Input got %q, want %q", i, r.Input, want.input)
		}
		if r.Output != want.want {
			t.Errorf("reading %d: Output got %q, want %q", i, r.Output, want.want)
		}
		if r.Source != reading.SourceStdin {
			t.Errorf("reading %d: Source got %q, want stdin", i, r.Source)
		}
	}
}

func TestUptimeToLatest(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "uptime")
	if err := os.WriteFile(path, []byte("3661.00 1000.00\n"), 0o644); err != nil {
		t.Fatalf("failed to write uptime file: %v", err)
	}

	var src uptime.Source = uptime.NewProcSource(path)
	minutes, err := src.Minutes(ctx)
	if err != nil {
		t.Fatalf("Minutes failed: %v", err)
	}
	recordReading(t, repo, "uptime", minutes)
	recordReading(t, repo, "cli", "5")

	latest, err := repo.LatestReading(ctx, reading.SourceUptime)
	if err != nil {
		t.Fatalf("LatestReading failed: %v", err)
	}
	if latest == nil {
		t.Fatal("expected an uptime reading")
	}
	if latest.Input != "61" || latest.Output != "1 hour 1 minute" {
		t.Errorf("unexpected latest reading: %+v", latest)
	}

	none, err := repo.LatestReading(ctx, reading.SourceWatch)
	if err != nil {
		t.Fatalf("LatestReading failed: %v", err)
	}
	if none != nil {
		t.Errorf("expected no watch reading, got %+v", none)
	}
}

func TestPruneKeepsRecent(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	old, err := reading.New("cli", "1")
	if err != nil {
		t.Fatalf("failed to create reading: %v", err)
	}
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	if err := repo.RecordReading(ctx, old); err != nil {
		t.Fatalf("RecordReading failed: %v", err)
	}
	recordReading(t, repo, "cli", "2")

	n, err := repo.PruneReadings(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("PruneReadings failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 pruned reading, got %d", n)
	}

	readings, err := repo.ListReadings(ctx, 0)
	if err != nil {
		t.Fatalf("ListReadings failed: %v", err)
	}
	if len(readings) != 1 {
		t.Fatalf("expected 1 remaining reading, got %d", len(readings))
	}
}

func TestAppPipeMode(t *testing.T) {
	ui.DisableColor()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(dir, "history.db")
	cfg.Storage.Record = true

	app := ui.NewApp(nil, cfg)
	t.Cleanup(func() { _ = app.Close() })

	var out bytes.Buffer
	cmd := app.Command()
	cmd.SetArgs([]string{"format"})
	cmd.SetIn(strings.NewReader("2365\nNULL\n-\n0\n"))
	cmd.SetOut(&out)

	if err := app.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := "1 day 15 hours 25 minutes\nNULL\nUndefined\n\n"
	if out.String() != want {
		t.Errorf("output:\ngot  %q\nwant %q", out.String(), want)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Recording was on in config, so the database holds every line.
	repo, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		t.Fatalf("failed to reopen repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	readings, err := repo.ListReadings(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListReadings failed: %v", err)
	}
	if len(readings) != 4 {
		t.Errorf("expected 4 readings, got %d", len(readings))
	}
}
