package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/acorn-io/aml"

	"github.com/meta-dds/meta-dds/internal/deps"
	"github.com/meta-dds/meta-dds/internal/docwalk"
)

// missingMetaDDS is the failure message for manifests without a meta_dds
// block. Plain dds users have no business here, so the message steers them
// back before explaining the escape hatch.
const missingMetaDDS = "Do you really need meta-dds? Consider using dds proper. " +
	"If you need the build script, add an empty meta_dds: {} object in your meta_package.json5"

// Load validates an already-decoded manifest document and assembles the
// PackageManifest. origin labels error messages and plays no part in
// parsing. The first schema or grammar violation aborts the load.
func Load(doc any, origin string) (*PackageManifest, error) {
	var m PackageManifest

	err := docwalk.Walk(doc,
		docwalk.RequireObject("Root of package manifest should be a JSON object"),
		docwalk.Object(
			docwalk.IfKey("depends",
				docwalk.RequireArray("`depends' should be an array of dependencies"),
				docwalk.ForEach(dependencyEntry(&m.Depends, "depends"))),
			docwalk.IfKey("test_depends",
				docwalk.RequireArray("`test_depends' should be an array of dependencies"),
				docwalk.ForEach(dependencyEntry(&m.TestDepends, "test_depends"))),
			docwalk.RequiredKey("meta_dds", missingMetaDDS,
				docwalk.RequireObject("`meta_dds' should be an object"),
				docwalk.Object(
					docwalk.IfKey("depends",
						docwalk.RequireArray("`meta_dds.depends' should be an array of dependencies"),
						docwalk.ForEach(metaDependencyEntry(&m.MetaDepends, "meta_dds.depends"))),
					docwalk.IfKey("test_depends",
						docwalk.RequireArray("`meta_dds.test_depends' should be an array of dependencies"),
						docwalk.ForEach(metaDependencyEntry(&m.MetaTestDepends, "meta_dds.test_depends"))),
				)),
		),
	)
	if err != nil {
		return nil, loadError(origin, err)
	}
	return &m, nil
}

// LoadString decodes relaxed-JSON manifest text and loads it. The decoder
// accepts comments and trailing commas; decode failures are wrapped with
// the origin label and surfaced as a manifest-load failure.
func LoadString(text, origin string) (*PackageManifest, error) {
	if origin == "" {
		origin = "<memory>"
	}
	var doc any
	dec := aml.NewDecoder(strings.NewReader(text), aml.DecoderOption{SourceName: origin})
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: invalid package manifest document: %w", origin, err)
	}
	return Load(doc, origin)
}

// LoadFile reads and loads the manifest at path.
func LoadFile(path string) (*PackageManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return LoadString(string(data), path)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}

// loadError wraps any walk or grammar error into the single "invalid
// package manifest" failure surfaced to callers.
func loadError(origin string, err error) error {
	if origin == "" {
		return fmt.Errorf("invalid package manifest: %w", err)
	}
	return fmt.Errorf("%s: invalid package manifest: %w", origin, err)
}

// dependencyEntry handles one element of a `depends`-shaped array. Strings
// go through the dependency reference grammar; objects contribute one
// dependency per name→range pair; anything else is rejected naming the key.
// Parsed entries land in dst, the sequence being walked.
func dependencyEntry(dst *[]deps.Dependency, keyName string) docwalk.Rule {
	return func(node any) error {
		switch docwalk.KindOf(node) {
		case docwalk.KindObject:
			return docwalk.EachKey(func(name string, value any) error {
				dep, err := objectEntry(name, value)
				if err != nil {
					return err
				}
				*dst = append(*dst, dep)
				return nil
			})(node)
		case docwalk.KindString:
			return docwalk.PutInto(dst, stringEntry)(node)
		default:
			return docwalk.Rejectf("`%s' should be an array of strings or objects", keyName)
		}
	}
}

// metaDependencyEntry mirrors dependencyEntry for the meta_dds block,
// wrapping each parsed dependency as a MetaDependency with an empty CMake
// configuration. Entries are routed to the meta sequence being walked, never
// to the top-level ones.
func metaDependencyEntry(dst *[]MetaDependency, keyName string) docwalk.Rule {
	return func(node any) error {
		switch docwalk.KindOf(node) {
		case docwalk.KindObject:
			return docwalk.EachKey(func(name string, value any) error {
				dep, err := objectEntry(name, value)
				if err != nil {
					return err
				}
				*dst = append(*dst, MetaDependency{Dependency: dep})
				return nil
			})(node)
		case docwalk.KindString:
			return docwalk.PutInto(dst, metaStringEntry)(node)
		default:
			return docwalk.Rejectf("`%s' should be an array of strings or objects", keyName)
		}
	}
}

func stringEntry(node any) (deps.Dependency, error) {
	return deps.ParseDependency(node.(string))
}

func metaStringEntry(node any) (MetaDependency, error) {
	dep, err := deps.ParseDependency(node.(string))
	if err != nil {
		return MetaDependency{}, err
	}
	return MetaDependency{Dependency: dep}, nil
}

// objectEntry converts one name→range pair from an object-form declaration.
func objectEntry(name string, value any) (deps.Dependency, error) {
	expr, ok := value.(string)
	if !ok {
		return deps.Dependency{}, docwalk.Reject("Dependency object values should be strings")
	}
	return deps.ParseDependencyPair(name, expr)
}
