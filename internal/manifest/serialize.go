package manifest

import "github.com/meta-dds/meta-dds/internal/deps"

// Serialize renders m as a plain document value that Load accepts and that
// parses back to equal dependency sequences. Caret-declared ranges come back
// as their explicit interval; the interval is equal, only the spelling
// differs.
func (m *PackageManifest) Serialize() map[string]any {
	doc := map[string]any{}
	if entries := serializeDeps(m.Depends); len(entries) > 0 {
		doc["depends"] = entries
	}
	if entries := serializeDeps(m.TestDepends); len(entries) > 0 {
		doc["test_depends"] = entries
	}

	meta := map[string]any{}
	if entries := serializeMetaDeps(m.MetaDepends); len(entries) > 0 {
		meta["depends"] = entries
	}
	if entries := serializeMetaDeps(m.MetaTestDepends); len(entries) > 0 {
		meta["test_depends"] = entries
	}
	doc["meta_dds"] = meta
	return doc
}

func serializeDeps(list []deps.Dependency) []any {
	entries := make([]any, 0, len(list))
	for _, d := range list {
		entries = append(entries, d.String())
	}
	return entries
}

func serializeMetaDeps(list []MetaDependency) []any {
	entries := make([]any, 0, len(list))
	for _, d := range list {
		entries = append(entries, d.Dependency.String())
	}
	return entries
}
