package preview

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formextras/pkg/extras"
	"github.com/goliatone/go-formextras/pkg/model"
	"github.com/goliatone/go-formextras/pkg/pipeline"
	"github.com/goliatone/go-formextras/pkg/render"
)

func contactForm() model.Form {
	return model.Form{
		Name: "contact",
		Fields: []model.FieldDescriptor{
			{
				FieldType:       model.FieldTypeEmail,
				ID:              "email",
				CustomClasses:   "wide",
				CustomAttrLines: "aria-label|Your email\nid|hijack",
			},
			{
				FieldType:            model.FieldTypeCheckbox,
				WrapperCustomClasses: "inline",
			},
			{FieldType: "html"},
			{FieldType: model.FieldTypeUpload, ID: "cv"},
		},
	}
}

func applied(form model.Form) (model.Form, *render.Attributes) {
	attrs := render.NewAttributes()
	out := pipeline.New(extras.New().Apply).Run(form, attrs)
	return out, attrs
}

func TestRender_WithoutSanitizer(t *testing.T) {
	form, attrs := applied(contactForm())

	got, err := New(WithoutSanitizer()).Render(form, attrs)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		`<input type="email" id="form-field-email" name="form_fields[email]" class="wide" aria-label="Your email">`,
		`<div class="elementor-field-subgroup inline"></div>`,
		`<input type="file" id="form-field-cv" name="form_fields[cv]">`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Sanitized(t *testing.T) {
	form, attrs := applied(contactForm())
	attrs.SetAttribute("input0", "onclick", "alert(1)")
	attrs.SetAttribute("input0", "data-note", `"><script>alert(1)</script>`)

	got, err := New().Render(form, attrs)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, fragment := range []string{
		`class="wide"`,
		`aria-label="Your email"`,
		`id="form-field-email"`,
		`class="elementor-field-subgroup inline"`,
		`data-note=`,
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, got)
		}
	}
	for _, fragment := range []string{"onclick", "<script", "hijack"} {
		if strings.Contains(got, fragment) {
			t.Fatalf("unexpected %q in output:\n%s", fragment, got)
		}
	}
}

func TestRender_KeyInjectionWithoutSanitizer(t *testing.T) {
	form, attrs := applied(model.Form{Fields: []model.FieldDescriptor{
		{FieldType: model.FieldTypeText, CustomAttrLines: "x onclick=alert(1) y|v\naria-label|ok"},
	}})
	attrs.SetAttribute("input0", "z onmouseover=alert(2)", "v")

	got, err := New(WithoutSanitizer()).Render(form, attrs)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<input type="text" id="form-field-field_0" name="form_fields[field_0]" aria-label="ok">` + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_FallbackIDAndEmptyBag(t *testing.T) {
	form := model.Form{Fields: []model.FieldDescriptor{
		{FieldType: model.FieldTypeTextarea, Index: 2},
		{FieldType: model.FieldTypeSelect, ID: "topic", Index: 3},
	}}

	got, err := New(WithSanitize(false)).Render(form, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<textarea id="form-field-field_2" name="form_fields[field_2]"></textarea>` + "\n" +
		`<select id="form-field-topic" name="form_fields[topic]"></select>` + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_NoElements(t *testing.T) {
	got, err := New().Render(model.Form{Fields: []model.FieldDescriptor{{FieldType: "html"}}}, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
