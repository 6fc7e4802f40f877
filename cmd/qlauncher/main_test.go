package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCommand()

	want := map[string]bool{
		"run":     false,
		"entries": false,
		"config":  false,
		"migrate": false,
		"version": false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "qlauncher v") {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}

func TestEntriesCommandEmptyDataDir(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"entries", "--data-dir", t.TempDir()})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "no entries") {
		t.Fatalf("expected empty listing, got %q", out.String())
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dataDir := t.TempDir()

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"config", "init", "--data-dir", dataDir})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	// Re-initializing without --force must fail.
	again := newRootCommand()
	again.SetOut(&out)
	again.SetErr(&out)
	again.SetArgs([]string{"config", "init", "--data-dir", dataDir})
	if err := again.Execute(); err == nil {
		t.Fatal("expected error when config already exists")
	}

	show := newRootCommand()
	var showOut bytes.Buffer
	show.SetOut(&showOut)
	show.SetErr(&showOut)
	show.SetArgs([]string{"config", "show", "--data-dir", dataDir})
	if err := show.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(showOut.String(), `"version"`) {
		t.Fatalf("config show output: %q", showOut.String())
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"NAME", "VERSION"},
		[][]string{{"alpha", "1.21"}, {"beta", ""}},
	)
	for _, want := range []string{"NAME", "VERSION", "alpha", "1.21", "beta"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}
