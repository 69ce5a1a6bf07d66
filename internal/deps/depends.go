package deps

import (
	"fmt"
	"strings"
)

// Dependency names a package and the version interval acceptable to the
// declaring manifest. Entries with the same name stay distinct; merging, if
// wanted, is the resolver's concern.
type Dependency struct {
	Name  string
	Range Range
}

// String renders d in the syntax accepted by ParseDependency.
func (d Dependency) String() string {
	if d.Range.IsAny() {
		return d.Name
	}
	return d.Name + "@" + d.Range.String()
}

// InvalidDependencyError reports a dependency declaration that does not
// parse. Err holds the underlying range error when the range portion failed.
type InvalidDependencyError struct {
	Input  string
	Reason string
	Err    error
}

func (e *InvalidDependencyError) Error() string {
	return fmt.Sprintf("invalid dependency %q: %s", e.Input, e.Reason)
}

func (e *InvalidDependencyError) Unwrap() error { return e.Err }

// ParseDependency parses a compact "name@range" declaration. A bare name
// accepts any version.
func ParseDependency(s string) (Dependency, error) {
	name, rangeExpr, hasRange := strings.Cut(s, "@")
	if err := ValidateName(name); err != nil {
		return Dependency{}, &InvalidDependencyError{Input: s, Reason: err.Error()}
	}
	if !hasRange {
		return Dependency{Name: name, Range: AnyVersion()}, nil
	}
	rng, err := ParseRange(rangeExpr)
	if err != nil {
		return Dependency{}, &InvalidDependencyError{Input: s, Reason: err.Error(), Err: err}
	}
	return Dependency{Name: name, Range: rng}, nil
}

// ParseDependencyPair converts one name→range object entry into a
// Dependency. Unlike the string form, the range expression is mandatory
// here: there is no "any version" shorthand for object entries.
func ParseDependencyPair(name, rangeExpr string) (Dependency, error) {
	if err := ValidateName(name); err != nil {
		return Dependency{}, &InvalidDependencyError{Input: name, Reason: err.Error()}
	}
	rng, err := ParseRange(rangeExpr)
	if err != nil {
		return Dependency{}, &InvalidDependencyError{
			Input:  name,
			Reason: fmt.Sprintf("invalid version range string %q in dependency declaration for %q", rangeExpr, name),
			Err:    err,
		}
	}
	return Dependency{Name: name, Range: rng}, nil
}

// ParseDependencyObject converts a single-entry {"name": "range"} mapping
// into a Dependency. Multi-key objects are rejected; callers walking a
// mapping of several dependencies should hand each pair to
// ParseDependencyPair instead.
func ParseDependencyObject(obj map[string]any) (Dependency, error) {
	if len(obj) != 1 {
		return Dependency{}, &InvalidDependencyError{
			Input:  fmt.Sprintf("%v", obj),
			Reason: fmt.Sprintf("dependency object should have exactly one entry, got %d", len(obj)),
		}
	}
	for name, value := range obj {
		expr, ok := value.(string)
		if !ok {
			return Dependency{}, &InvalidDependencyError{
				Input:  name,
				Reason: "dependency object values should be strings",
			}
		}
		return ParseDependencyPair(name, expr)
	}
	panic("unreachable")
}

// ValidateName checks that name is a usable package identifier: non-empty
// and limited to letters, digits, '.', '_', and '-'.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("package name is empty")
	}
	for _, r := range name {
		if !isNameRune(r) {
			return fmt.Errorf("package name %q contains invalid character %q", name, r)
		}
	}
	return nil
}

func isNameRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	case r == '.' || r == '_' || r == '-':
		return true
	}
	return false
}
