package extras

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formextras/pkg/model"
	"github.com/goliatone/go-formextras/pkg/policy"
)

func TestSplitClasses(t *testing.T) {
	cases := map[string][]string{
		"":              nil,
		"   ":           nil,
		"  foo   bar  ": {"foo", "bar"},
		"a\tb\nc":       {"a", "b", "c"},
		"a\vb\fc":       {"a", "b", "c"},
		"single":        {"single"},
		"foo\u00a0bar":  {"foo\u00a0bar"},
		"foo\u0085bar":  {"foo\u0085bar"},
	}
	for raw, want := range cases {
		if diff := cmp.Diff(want, SplitClasses(raw)); diff != "" {
			t.Fatalf("SplitClasses(%q) mismatch (-want +got):\n%s", raw, diff)
		}
	}
}

func TestParseAttrLines(t *testing.T) {
	raw := "aria-label|Hello\nonclick|bad()\nid|hacked\nmax|10\njusttext\ndata-x|a|b\n inputmode | numeric "
	got := ParseAttrLines(raw, policy.Default())
	want := []Attr{
		{Key: "aria-label", Value: "Hello"},
		{Key: "max", Value: "10"},
		{Key: "data-x", Value: "a|b"},
		{Key: "inputmode", Value: "numeric"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseAttrLines mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAttrLines_EmptyValueKept(t *testing.T) {
	got := ParseAttrLines("required|", policy.Default())
	want := []Attr{{Key: "required", Value: ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseAttrLines mismatch (-want +got):\n%s", diff)
	}
}

func TestElementKindFor(t *testing.T) {
	if kind, ok := ElementKindFor(model.FieldTypeRadio); !ok || kind != KindFieldGroup {
		t.Fatalf("expected radio to map to field-group, got %q (ok=%v)", kind, ok)
	}
	if _, ok := ElementKindFor("html"); ok {
		t.Fatalf("expected html to have no element kind")
	}
	if got := Handle(KindTextarea, 12); got != "textarea12" {
		t.Fatalf("unexpected handle %q", got)
	}
}

func TestParseAttrLines_TrimsNulAndVerticalTab(t *testing.T) {
	got := ParseAttrLines("id\x00|evil\nmax|10\x00\n\x0Bstep\x0B|\x002\x0B", policy.Default())
	want := []Attr{
		{Key: "max", Value: "10"},
		{Key: "step", Value: "2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseAttrLines mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAttrLines_RejectsInvalidAttributeNames(t *testing.T) {
	raw := "x onclick=alert(1) y|v\na=b|c\n\"quoted\"|v\n<b|v\naria-label|ok"
	got := ParseAttrLines(raw, policy.Default())
	want := []Attr{{Key: "aria-label", Value: "ok"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseAttrLines mismatch (-want +got):\n%s", diff)
	}
}
