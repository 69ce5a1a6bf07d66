package docwalk

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind classifies a document node.
type Kind int

const (
	KindUnknown Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// String returns the lowercase name of the kind, for error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// KindOf reports the kind of a decoded document node. Numbers cover the
// representations produced by encoding/json and YAML decoders.
func KindOf(node any) Kind {
	switch node.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64, float32, int, int64, uint64, json.Number:
		return KindNumber
	case string:
		return KindString
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindUnknown
	}
}

// Violation reports a node that a rule rejected. The message is authored at
// the rule site and propagates unchanged through nested object and array
// contexts.
type Violation struct {
	Message string
}

func (v *Violation) Error() string { return v.Message }

// Reject returns a Violation with the given message.
func Reject(msg string) error {
	return &Violation{Message: msg}
}

// Rejectf returns a Violation with a formatted message.
func Rejectf(format string, args ...any) error {
	return &Violation{Message: fmt.Sprintf(format, args...)}
}

// Rule validates one document node. A nil return accepts the node. A rule may
// extract data as a side effect before accepting. Any error aborts the
// surrounding walk immediately; no later rule runs.
type Rule func(node any) error

// Walk applies rules to node in order, stopping at the first rejection.
func Walk(node any, rules ...Rule) error {
	for _, r := range rules {
		if err := r(node); err != nil {
			return err
		}
	}
	return nil
}

// RequireKind accepts nodes of the given kind and rejects everything else
// with msg.
func RequireKind(kind Kind, msg string) Rule {
	return func(node any) error {
		if KindOf(node) != kind {
			return Reject(msg)
		}
		return nil
	}
}

// RequireObject rejects non-object nodes with msg.
func RequireObject(msg string) Rule { return RequireKind(KindObject, msg) }

// RequireArray rejects non-array nodes with msg.
func RequireArray(msg string) Rule { return RequireKind(KindArray, msg) }

// RequireString rejects non-string nodes with msg.
func RequireString(msg string) Rule { return RequireKind(KindString, msg) }

// KeyRule binds rules to a single key of an object node.
type KeyRule struct {
	key      string
	required bool
	missing  string
	rules    []Rule
}

// IfKey applies rules to the key's value when the key is present. An absent
// key is not an error.
func IfKey(key string, rules ...Rule) KeyRule {
	return KeyRule{key: key, rules: rules}
}

// RequiredKey fails the walk with missingMsg when the key is absent, and
// otherwise behaves like IfKey.
func RequiredKey(key, missingMsg string, rules ...Rule) KeyRule {
	return KeyRule{key: key, required: true, missing: missingMsg, rules: rules}
}

// Object requires the node to be an object and applies each key rule in
// order. Keys not named by any rule are ignored.
func Object(entries ...KeyRule) Rule {
	return func(node any) error {
		obj, ok := node.(map[string]any)
		if !ok {
			return Reject("expected an object")
		}
		for _, e := range entries {
			value, present := obj[e.key]
			if !present {
				if e.required {
					return Reject(e.missing)
				}
				continue
			}
			for _, r := range e.rules {
				if err := r(value); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// EachKey requires an object node and applies fn to every key/value pair,
// stopping at the first rejection. Pairs are visited in sorted key order so
// the surfaced error is deterministic.
func EachKey(fn func(key string, value any) error) Rule {
	return func(node any) error {
		obj, ok := node.(map[string]any)
		if !ok {
			return Reject("expected an object")
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := fn(k, obj[k]); err != nil {
				return err
			}
		}
		return nil
	}
}

// ForEach requires an array node and applies rule to every element in
// document order, stopping at the first rejection.
func ForEach(rule Rule) Rule {
	return func(node any) error {
		arr, ok := node.([]any)
		if !ok {
			return Reject("expected an array")
		}
		for _, elem := range arr {
			if err := rule(elem); err != nil {
				return err
			}
		}
		return nil
	}
}

// PutInto appends transform(node) to dst. Errors from the transform abort
// the walk unchanged, so grammar errors keep their identity. Combine with
// ForEach to collect array elements in document order.
func PutInto[T any](dst *[]T, transform func(node any) (T, error)) Rule {
	return func(node any) error {
		v, err := transform(node)
		if err != nil {
			return err
		}
		*dst = append(*dst, v)
		return nil
	}
}
