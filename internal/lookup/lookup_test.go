package lookup

import (
	"errors"
	"strings"
	"testing"
)

type widget struct {
	Label  string
	hidden string
}

func (w *widget) Describe() string            { return "widget " + w.Label }
func (w *widget) Fail() error                 { return errors.New("broken") }
func (w *widget) Pair() (string, int)         { return w.Label, 2 }
func (w *widget) Join(parts ...string) string { return strings.Join(parts, "-") }
func (w *widget) Add(a, b int) (int, error)   { return a + b, nil }
func (w *widget) Touch()                      {}

func mustThunk(t *testing.T, owner any, name string) Thunk {
	t.Helper()
	v, ok := Attr(owner, name)
	if !ok {
		t.Fatalf("%s not found", name)
	}
	th, ok := v.(Thunk)
	if !ok {
		t.Fatalf("%s resolved to %T, want Thunk", name, v)
	}
	return th
}

func TestAttr_MethodBoundToReceiver(t *testing.T) {
	w := &widget{Label: "a"}
	out, err := mustThunk(t, w, "Describe")()
	if err != nil || out != "widget a" {
		t.Fatalf("got %v %v", out, err)
	}
}

func TestAttr_Field(t *testing.T) {
	w := &widget{Label: "a"}
	v, ok := Attr(w, "Label")
	if !ok || v != "a" {
		t.Fatalf("got %v %v", v, ok)
	}
}

func TestAttr_UnexportedFieldInvisible(t *testing.T) {
	w := &widget{hidden: "x"}
	if _, ok := Attr(w, "hidden"); ok {
		t.Fatalf("unexported field must not resolve")
	}
}

func TestAttr_Miss(t *testing.T) {
	if _, ok := Attr(&widget{}, "Nope"); ok {
		t.Fatalf("unexpected hit")
	}
}

func TestAttr_NilOwnerAndEmptyName(t *testing.T) {
	if _, ok := Attr(nil, "X"); ok {
		t.Fatalf("nil owner resolved")
	}
	if _, ok := Attr(&widget{}, ""); ok {
		t.Fatalf("empty name resolved")
	}
	var w *widget
	if _, ok := Attr(w, "Label"); ok {
		t.Fatalf("nil pointer field access resolved")
	}
}

func TestThunk_ErrorResultSplitOff(t *testing.T) {
	out, err := mustThunk(t, &widget{}, "Fail")()
	if out != nil || err == nil || err.Error() != "broken" {
		t.Fatalf("got %v %v", out, err)
	}
}

func TestThunk_ValueAndErrorPair(t *testing.T) {
	out, err := mustThunk(t, &widget{}, "Add")(2, 3)
	if err != nil || out != 5 {
		t.Fatalf("got %v %v", out, err)
	}
}

func TestThunk_MultipleResultsAsSlice(t *testing.T) {
	out, err := mustThunk(t, &widget{Label: "a"}, "Pair")()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	vals, ok := out.([]any)
	if !ok || len(vals) != 2 || vals[0] != "a" || vals[1] != 2 {
		t.Fatalf("got %#v", out)
	}
}

func TestThunk_NoResults(t *testing.T) {
	out, err := mustThunk(t, &widget{}, "Touch")()
	if out != nil || err != nil {
		t.Fatalf("got %v %v", out, err)
	}
}

func TestThunk_Variadic(t *testing.T) {
	join := mustThunk(t, &widget{}, "Join")
	out, err := join("a", "b", "c")
	if err != nil || out != "a-b-c" {
		t.Fatalf("got %v %v", out, err)
	}
	out, err = join()
	if err != nil || out != "" {
		t.Fatalf("got %v %v", out, err)
	}
}

func TestThunk_ArgumentMismatch(t *testing.T) {
	add := mustThunk(t, &widget{}, "Add")
	if _, err := add(1); err == nil {
		t.Fatalf("expected arity error")
	}
	if _, err := add("x", "y"); err == nil {
		t.Fatalf("expected type error")
	}
	if _, err := add(nil, 2); err == nil {
		t.Fatalf("expected nil rejection for int parameter")
	}
}
