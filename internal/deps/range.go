package deps

import (
	"fmt"
	"math"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinVersion and MaxVersion bound the representable version space. A range
// with no declared upper bound carries MaxVersion rather than a nil High.
var (
	MinVersion = semver.New(0, 0, 0, "", "")
	MaxVersion = semver.New(math.MaxUint64, math.MaxUint64, math.MaxUint64, "", "")
)

// Range is a closed version interval. Low <= High holds for every Range
// produced by this package.
type Range struct {
	Low  *semver.Version
	High *semver.Version
}

// AnyVersion returns the interval accepting every version.
func AnyVersion() Range {
	return Range{Low: MinVersion, High: MaxVersion}
}

// IsAny reports whether r is the unconstrained interval.
func (r Range) IsAny() bool {
	return r.Low.Equal(MinVersion) && r.High.Equal(MaxVersion)
}

// Contains reports whether v lies within r. Manifest parsing never consults
// it; it is for consumers of a parsed manifest (the resolver) deciding
// whether a concrete version satisfies a declaration.
func (r Range) Contains(v *semver.Version) bool {
	return r.Low.Compare(v) <= 0 && r.High.Compare(v) >= 0
}

// String renders r in a form ParseRange accepts: a bare version when the
// bounds coincide, low..high otherwise.
func (r Range) String() string {
	if r.Low.Equal(r.High) {
		return r.Low.String()
	}
	return r.Low.String() + ".." + r.High.String()
}

// InvalidRangeError reports a version range expression that does not parse,
// or whose lower bound exceeds its upper bound.
type InvalidRangeError struct {
	Expr   string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid version range %q: %s", e.Expr, e.Reason)
}

// ParseRange parses the restricted range grammar:
//
//	1.2.3         exactly version 1.2.3
//	1.2.3..2.0.0  the closed interval [1.2.3, 2.0.0]
//	^1.2.3        1.2.3 up to (excluding) the next breaking change, 2.0.0
//
// Every string either parses to a unique interval or fails with an
// *InvalidRangeError; there is no partial parse.
func ParseRange(expr string) (Range, error) {
	switch {
	case strings.HasPrefix(expr, "^"):
		low, err := parseVersion(expr[1:])
		if err != nil {
			return Range{}, &InvalidRangeError{Expr: expr, Reason: err.Error()}
		}
		return Range{Low: low, High: nextBreaking(low)}, nil

	case strings.Contains(expr, ".."):
		lowStr, highStr, _ := strings.Cut(expr, "..")
		low, err := parseVersion(lowStr)
		if err != nil {
			return Range{}, &InvalidRangeError{Expr: expr, Reason: err.Error()}
		}
		high, err := parseVersion(highStr)
		if err != nil {
			return Range{}, &InvalidRangeError{Expr: expr, Reason: err.Error()}
		}
		if low.GreaterThan(high) {
			return Range{}, &InvalidRangeError{
				Expr:   expr,
				Reason: fmt.Sprintf("lower bound %s is greater than upper bound %s", low, high),
			}
		}
		return Range{Low: low, High: high}, nil

	default:
		v, err := parseVersion(expr)
		if err != nil {
			return Range{}, &InvalidRangeError{Expr: expr, Reason: err.Error()}
		}
		return Range{Low: v, High: v}, nil
	}
}

// parseVersion parses a strict major.minor.patch version with an optional
// prerelease component. Missing components, extra components, and
// non-numeric components are all errors.
func parseVersion(s string) (*semver.Version, error) {
	if s == "" {
		return nil, fmt.Errorf("empty version")
	}
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid version: %w", s, err)
	}
	return v, nil
}

// nextBreaking returns the boundary a caret range on v must stay below:
// the leftmost non-zero component bumped by one with everything after it
// zeroed, matching common compatible-range semantics.
func nextBreaking(v *semver.Version) *semver.Version {
	switch {
	case v.Major() > 0:
		return semver.New(v.Major()+1, 0, 0, "", "")
	case v.Minor() > 0:
		return semver.New(0, v.Minor()+1, 0, "", "")
	default:
		return semver.New(0, 0, v.Patch()+1, "", "")
	}
}
