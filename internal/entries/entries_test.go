package entries

import (
	"os"
	"path/filepath"
	"testing"
)

func makeEntry(t *testing.T, root, name, metadata string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if metadata != "" {
		if err := os.WriteFile(filepath.Join(dir, MetadataFileName), []byte(metadata), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListReadsMetadataAndSorts(t *testing.T) {
	root := t.TempDir()
	makeEntry(t, root, "zombie-farm", "version = \"1.20.4\"\nloader = \"fabric\"\n")
	makeEntry(t, root, "Alpha", "version = \"1.21\"\n")
	makeEntry(t, root, "beta", "")
	// Stray regular file must be ignored.
	if err := os.WriteFile(filepath.Join(root, "README.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := List(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("entries: got %d, want 3", len(list))
	}

	// Collated order is case-tolerant: Alpha, beta, zombie-farm.
	names := []string{list[0].Name, list[1].Name, list[2].Name}
	want := []string{"Alpha", "beta", "zombie-farm"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order: got %v, want %v", names, want)
		}
	}

	if list[0].Version != "1.21" {
		t.Fatalf("Alpha version: got %q", list[0].Version)
	}
	if list[2].Loader != "fabric" {
		t.Fatalf("zombie-farm loader: got %q", list[2].Loader)
	}
	if list[1].Version != "" {
		t.Fatalf("beta should have empty metadata, got %q", list[1].Version)
	}
}

func TestListMalformedMetadataTolerated(t *testing.T) {
	root := t.TempDir()
	makeEntry(t, root, "broken", "version = [not toml")

	list, err := List(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Name != "broken" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestListMissingDirectory(t *testing.T) {
	list, err := List(filepath.Join(t.TempDir(), "absent"), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestListCacheAndRefresh(t *testing.T) {
	root := t.TempDir()
	makeEntry(t, root, "one", "")

	first, err := List(root, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 {
		t.Fatalf("first load: got %d entries", len(first))
	}

	makeEntry(t, root, "two", "")

	cached, err := List(root, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(cached) != 1 {
		t.Fatalf("cached load should not see new entry, got %d", len(cached))
	}

	refreshed, err := List(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(refreshed) != 2 {
		t.Fatalf("refresh should rescan, got %d", len(refreshed))
	}
}
