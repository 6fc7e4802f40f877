package state

import (
	"context"
	"errors"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCustomJarRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.AddCustomJar(ctx, "optifine", "/jars/optifine.jar"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddCustomJar(ctx, "beta-client", "/jars/beta.jar"); err != nil {
		t.Fatal(err)
	}

	jars, err := store.CustomJars(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(jars) != 2 {
		t.Fatalf("jars: got %d, want 2", len(jars))
	}
	if jars[0].Name != "beta-client" || jars[1].Name != "optifine" {
		t.Fatalf("order mismatch: %+v", jars)
	}
}

func TestAddCustomJarReplacesPath(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.AddCustomJar(ctx, "optifine", "/old.jar"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddCustomJar(ctx, "optifine", "/new.jar"); err != nil {
		t.Fatal(err)
	}

	jars, err := store.CustomJars(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(jars) != 1 {
		t.Fatalf("duplicate name should replace, got %d rows", len(jars))
	}
	if jars[0].Path != "/new.jar" {
		t.Fatalf("path: got %q", jars[0].Path)
	}
}

func TestRemoveCustomJar(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.AddCustomJar(ctx, "x", "/x.jar"); err != nil {
		t.Fatal(err)
	}
	if err := store.RemoveCustomJar(ctx, "x"); err != nil {
		t.Fatal(err)
	}
	if err := store.RemoveCustomJar(ctx, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayTimes(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.LastPlayed(ctx, "vanilla"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.TouchPlayed(ctx, "vanilla"); err != nil {
		t.Fatal(err)
	}
	first, err := store.LastPlayed(ctx, "vanilla")
	if err != nil {
		t.Fatal(err)
	}
	if first.IsZero() {
		t.Fatal("expected a timestamp")
	}

	if err := store.TouchPlayed(ctx, "vanilla"); err != nil {
		t.Fatal(err)
	}
	second, err := store.LastPlayed(ctx, "vanilla")
	if err != nil {
		t.Fatal(err)
	}
	if second.Before(first) {
		t.Fatalf("second play %v before first %v", second, first)
	}
}

func TestOpenRequiresDataDir(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty data dir")
	}
}
