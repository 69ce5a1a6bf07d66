package manifest

import "github.com/meta-dds/meta-dds/internal/deps"

// CMakeSetting is one key/value cache setting forwarded to a meta
// dependency's CMake build.
type CMakeSetting struct {
	Key   string
	Value string
}

// MetaDependency is a dependency declared inside the meta_dds block,
// carrying CMake settings for the dependency's build. No manifest syntax
// populates CMakeConfig yet; the field is reserved and stays empty after
// a load.
type MetaDependency struct {
	deps.Dependency
	CMakeConfig []CMakeSetting
}

// PackageManifest is the parsed form of a meta_package.json5 file. It is
// assembled by a single load call and never mutated afterward; sequence
// order follows document order for array-sourced entries.
type PackageManifest struct {
	// Depends and TestDepends come from the top-level `depends` and
	// `test_depends` arrays.
	Depends     []deps.Dependency
	TestDepends []deps.Dependency

	// MetaDepends and MetaTestDepends come from the arrays nested in the
	// required `meta_dds` block.
	MetaDepends     []MetaDependency
	MetaTestDepends []MetaDependency
}
