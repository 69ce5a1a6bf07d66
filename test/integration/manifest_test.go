//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meta-dds/meta-dds/internal/manifest"
)

// writeManifest writes manifest text into an isolated temp tree and returns
// the file path.
func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// TestKnownGoodManifests pins the full load pipeline (file → relaxed-JSON
// decode → walk → grammars) against manifests shaped like real packages,
// including the routing of meta_dds entries to the meta sequences.
func TestKnownGoodManifests(t *testing.T) {
	dir := t.TempDir()

	path := writeManifest(t, dir, "widget/meta_package.json5", `{
	name: "widget",
	version: "1.4.0",

	// Upstream libraries built by dds.
	depends: [
		"fmt@^6.0.0",
		"range-v3@0.9.0..0.11.0",
	],
	test_depends: ["catch2@^2.13.0"],

	meta_dds: {
		depends: [
			{ "protobuf": "3.11.0..3.20.0" },
			"cmake-helpers",
		],
		test_depends: [
			{ "gtest": "^1.10.0" },
		],
	},
}`)

	m, err := manifest.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if got := len(m.Depends); got != 2 {
		t.Errorf("Depends count = %d, want 2", got)
	}
	if got := len(m.TestDepends); got != 1 {
		t.Errorf("TestDepends count = %d, want 1", got)
	}

	// meta_dds entries — including the object form — belong to the meta
	// sequences.
	if got := len(m.MetaDepends); got != 2 {
		t.Fatalf("MetaDepends count = %d, want 2", got)
	}
	if m.MetaDepends[0].Name != "protobuf" {
		t.Errorf("MetaDepends[0] = %q, want protobuf", m.MetaDepends[0].Name)
	}
	if !m.MetaDepends[1].Range.IsAny() {
		t.Errorf("bare meta name parsed to %s, want the any-version interval", m.MetaDepends[1].Range)
	}
	if got := len(m.MetaTestDepends); got != 1 {
		t.Fatalf("MetaTestDepends count = %d, want 1", got)
	}
	if m.MetaTestDepends[0].Range.High.String() != "2.0.0" {
		t.Errorf("gtest caret upper bound = %s, want 2.0.0", m.MetaTestDepends[0].Range.High)
	}

	// The advisory schema report agrees.
	result, err := manifest.ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !result.Valid {
		t.Errorf("schema report disagrees with the parser: %+v", result.Issues)
	}
}

// TestFirstErrorWinsAcrossSections checks error precedence over a whole
// document: the depends section is walked before meta_dds, so its failure
// is the one surfaced.
func TestFirstErrorWinsAcrossSections(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "broken/meta_package.json5", `{
	depends: ["not a name!"],
	meta_dds: { depends: ["also@bad..range"] },
}`)

	_, err := manifest.LoadFile(path)
	if err == nil {
		t.Fatal("expected load failure")
	}
	// The first error, in traversal order, names the depends entry.
	if want := "not a name!"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not reference the first failing entry %q", err, want)
	}
}
