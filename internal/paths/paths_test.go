package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirHonorsXDGDataHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	dir, err := DataDir()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(base, AppDirName)
	if dir != want {
		t.Fatalf("data dir: got %q, want %q", dir, want)
	}
}

func TestDataDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)

	dir, err := DataDir()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(home, ".local", "share", AppDirName)
	if dir != want {
		t.Fatalf("data dir: got %q, want %q", dir, want)
	}
}

func TestLegacyDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := LegacyDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(home, ".qlauncher") {
		t.Fatalf("unexpected legacy dir %q", dir)
	}
}

func TestIsNewUser(t *testing.T) {
	dir := t.TempDir()
	if !IsNewUser(dir) {
		t.Fatal("empty data dir should be a first run")
	}
	if !IsNewUser("") {
		t.Fatal("unresolvable data dir should be a first run")
	}

	if err := os.WriteFile(ConfigFile(dir), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if IsNewUser(dir) {
		t.Fatal("config.json present should not be a first run")
	}
}

func TestEnsureCreatesLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), AppDirName)
	if err := Ensure(dir); err != nil {
		t.Fatal(err)
	}
	for _, sub := range []string{LogsDir(dir), DownloadCacheDir(dir), InstancesDir(dir)} {
		info, err := os.Stat(sub)
		if err != nil {
			t.Fatal(err)
		}
		if !info.IsDir() {
			t.Fatalf("%q is not a directory", sub)
		}
	}
}
