package docwalk

import (
	"errors"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		node any
		want Kind
	}{
		{"null", nil, KindNull},
		{"bool", true, KindBool},
		{"float64", 1.5, KindNumber},
		{"int", 3, KindNumber},
		{"string", "x", KindString},
		{"object", map[string]any{}, KindObject},
		{"array", []any{}, KindArray},
		{"unknown", struct{}{}, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.node); got != tt.want {
				t.Errorf("KindOf(%v) = %v, want %v", tt.node, got, tt.want)
			}
		})
	}
}

func TestRequireKind(t *testing.T) {
	rule := RequireObject("root should be an object")

	if err := rule(map[string]any{}); err != nil {
		t.Errorf("object node rejected: %v", err)
	}

	err := rule([]any{})
	if err == nil {
		t.Fatal("array node accepted by RequireObject")
	}
	var v *Violation
	if !errors.As(err, &v) {
		t.Fatalf("error type = %T, want *Violation", err)
	}
	if v.Message != "root should be an object" {
		t.Errorf("message = %q, want the rule-site message", v.Message)
	}
}

func TestObject_IfKeyAbsentIsNoOp(t *testing.T) {
	called := false
	rule := Object(
		IfKey("missing", func(any) error {
			called = true
			return nil
		}),
	)

	if err := rule(map[string]any{"other": 1.0}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if called {
		t.Error("rule ran for an absent key")
	}
}

func TestObject_RequiredKeyMissing(t *testing.T) {
	rule := Object(
		RequiredKey("needed", "key `needed' is required"),
	)

	err := rule(map[string]any{})
	if err == nil {
		t.Fatal("missing required key accepted")
	}
	if err.Error() != "key `needed' is required" {
		t.Errorf("error = %q, want the missing-key message", err)
	}
}

func TestObject_UnknownKeysIgnored(t *testing.T) {
	rule := Object(IfKey("known", RequireString("known should be a string")))

	doc := map[string]any{
		"known":   "ok",
		"unknown": []any{1.0, 2.0},
	}
	if err := rule(doc); err != nil {
		t.Errorf("unknown key rejected: %v", err)
	}
}

func TestForEach_OrderAndShortCircuit(t *testing.T) {
	var seen []string
	rule := ForEach(func(node any) error {
		s, ok := node.(string)
		if !ok {
			return Reject("elements should be strings")
		}
		seen = append(seen, s)
		return nil
	})

	err := rule([]any{"a", "b", 3.0, "d"})
	if err == nil {
		t.Fatal("non-string element accepted")
	}
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Errorf("elements before the failure = %v, want [a b]", seen)
	}
}

func TestForEach_RejectsNonArray(t *testing.T) {
	rule := ForEach(func(any) error { return nil })
	if err := rule("not an array"); err == nil {
		t.Fatal("non-array node accepted by ForEach")
	}
}

func TestPutInto_CollectsInDocumentOrder(t *testing.T) {
	var out []string
	rule := ForEach(PutInto(&out, func(node any) (string, error) {
		return node.(string), nil
	}))

	if err := rule([]any{"x", "y", "z"}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	want := []string{"x", "y", "z"}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out = %v, want %v", out, want)
		}
	}
}

func TestPutInto_TransformErrorKeepsIdentity(t *testing.T) {
	sentinel := errors.New("boom")
	var out []int
	rule := PutInto(&out, func(any) (int, error) { return 0, sentinel })

	if err := rule(1.0); !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want the transform's own error", err)
	}
	if len(out) != 0 {
		t.Errorf("out = %v, want empty after a failed transform", out)
	}
}

func TestEachKey_DeterministicOrder(t *testing.T) {
	var keys []string
	rule := EachKey(func(key string, _ any) error {
		keys = append(keys, key)
		return nil
	})

	doc := map[string]any{"b": 1.0, "a": 2.0, "c": 3.0}
	if err := rule(doc); err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func TestWalk_FirstErrorWins(t *testing.T) {
	first := Reject("first")
	rule1 := func(any) error { return first }
	rule2 := func(any) error { t.Error("second rule ran after a rejection"); return nil }

	err := Walk(nil, rule1, rule2)
	if !errors.Is(err, first) {
		t.Errorf("error = %v, want the first rejection", err)
	}
}

func TestNestedRejectionPropagatesUnchanged(t *testing.T) {
	rule := Object(
		IfKey("outer",
			RequireArray("`outer' should be an array"),
			ForEach(Object(
				RequiredKey("inner", "missing inner"),
			)),
		),
	)

	doc := map[string]any{
		"outer": []any{map[string]any{}},
	}
	err := rule(doc)
	if err == nil {
		t.Fatal("missing nested key accepted")
	}
	if err.Error() != "missing inner" {
		t.Errorf("error = %q, want the inner rule's message unchanged", err)
	}
}
