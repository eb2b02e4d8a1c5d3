package controls

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formextras/pkg/model"
)

func names(ctrls []Control) []string {
	out := make([]string, 0, len(ctrls))
	for _, c := range ctrls {
		out = append(out, c.Name)
	}
	return out
}

func TestDefaults(t *testing.T) {
	ctrls := Defaults()
	want := []string{
		model.SettingInputCustomClasses,
		model.SettingInputCustomAttrs,
		model.SettingWrapperCustomClasses,
	}
	if diff := cmp.Diff(want, names(ctrls)); diff != "" {
		t.Fatalf("control names mismatch (-want +got):\n%s", diff)
	}
	for _, c := range ctrls {
		if !c.Dynamic || c.Tab != TabAdvanced || c.InnerTab != InnerTabAdvanced || c.TabsWrapper != TabsWrapperDefaults {
			t.Fatalf("control %s missing placement defaults: %+v", c.Name, c)
		}
	}
	if ctrls[1].Type != TypeTextarea || ctrls[1].Placeholder == "" {
		t.Fatalf("attributes control should be a textarea with a placeholder: %+v", ctrls[1])
	}

	ctrls[0].Condition.Values[0] = "mutated"
	if Defaults()[0].Condition.Values[0] != model.FieldTypeCheckbox {
		t.Fatalf("Defaults returned shared condition values")
	}
}

func TestForFieldType(t *testing.T) {
	cases := map[string][]string{
		model.FieldTypeText:     {model.SettingInputCustomClasses, model.SettingInputCustomAttrs},
		model.FieldTypeSelect:   {model.SettingInputCustomClasses, model.SettingInputCustomAttrs},
		model.FieldTypeCheckbox: {model.SettingWrapperCustomClasses},
		model.FieldTypeRadio:    {model.SettingWrapperCustomClasses},
	}
	for fieldType, want := range cases {
		if diff := cmp.Diff(want, names(ForFieldType(Defaults(), fieldType))); diff != "" {
			t.Fatalf("%s controls mismatch (-want +got):\n%s", fieldType, diff)
		}
	}
}

func TestConditionWithoutValuesMatches(t *testing.T) {
	if !(Condition{}).Matches("anything") {
		t.Fatalf("empty condition should match")
	}
}

func TestMerge(t *testing.T) {
	existing := []Control{
		{Name: "field_label", Label: "Label"},
		{Name: model.SettingInputCustomClasses, Label: "Old"},
		{Name: "placeholder", Label: "Placeholder"},
	}

	merged := Merge(existing, Defaults())

	want := []string{
		"field_label",
		model.SettingInputCustomClasses,
		"placeholder",
		model.SettingInputCustomAttrs,
		model.SettingWrapperCustomClasses,
	}
	if diff := cmp.Diff(want, names(merged)); diff != "" {
		t.Fatalf("merged names mismatch (-want +got):\n%s", diff)
	}
	if merged[1].Label != "Input CSS classes" {
		t.Fatalf("expected replacement in place, got %+v", merged[1])
	}
	if existing[1].Label != "Old" {
		t.Fatalf("Merge modified its input")
	}
}

func TestRegister(t *testing.T) {
	widget := []Control{
		{Name: FormNameControl, Label: "Form name", Type: TypeText},
		{Name: model.SettingInputCustomAttrs, Label: "Old attributes"},
	}

	got := Register(widget)

	want := []string{
		FormNameControl,
		model.SettingInputCustomAttrs,
		model.SettingInputCustomClasses,
		model.SettingWrapperCustomClasses,
	}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Fatalf("registered names mismatch (-want +got):\n%s", diff)
	}
	if !got[0].Dynamic {
		t.Fatalf("expected %s to be dynamic after registration", FormNameControl)
	}
	if got[1].Label != "Input attributes" {
		t.Fatalf("expected extras control to replace the existing one, got %+v", got[1])
	}
	if widget[0].Dynamic {
		t.Fatalf("Register modified its input")
	}

	if diff := cmp.Diff(names(Defaults()), names(Register(nil))); diff != "" {
		t.Fatalf("Register(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestEnableDynamic(t *testing.T) {
	ctrls := []Control{{Name: "form_name"}}
	if !EnableDynamic(ctrls, "form_name") || !ctrls[0].Dynamic {
		t.Fatalf("expected form_name to become dynamic")
	}
	if EnableDynamic(ctrls, "missing") {
		t.Fatalf("expected no update for missing control")
	}
}
