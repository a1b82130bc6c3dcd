package migration

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDir_OrdersAndSkipsUnknownFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V2__missions.sql", "CREATE TABLE missions (id uuid);")
	writeFile(t, dir, "V1__init.sql", "CREATE TABLE users (id uuid);")
	writeFile(t, dir, "README.md", "not a migration")

	migs, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 {
		t.Fatalf("unexpected order: %d, %d", migs[0].Version, migs[1].Version)
	}
	if migs[0].Name != "init" || migs[0].Checksum == "" {
		t.Fatalf("unexpected first migration: %+v", migs[0])
	}
}

func TestLoadDir_RejectsDuplicatesAndEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__a.sql", "SELECT 1;")
	writeFile(t, dir, "V01__b.sql", "SELECT 2;")
	if _, err := LoadDir(dir); err == nil {
		t.Fatalf("expected duplicate version error")
	}

	dir = t.TempDir()
	writeFile(t, dir, "V1__empty.sql", "   \n")
	if _, err := LoadDir(dir); err == nil {
		t.Fatalf("expected empty migration error")
	}
}

func TestLoadDir_MissingDir(t *testing.T) {
	migs, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected no migrations")
	}
}
