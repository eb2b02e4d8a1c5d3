package formfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formextras/pkg/model"
)

const jsonDoc = `{
  "name": "contact",
  "fields": [
    {"field_type": "email", "custom_id": "email", "extends_input_custom_classes": "wide", "extends_input_custom_attrs": "aria-label|Your email\nmaxlength|120"},
    {"field_type": "radio", "extends_wrapper_custom_classes": "inline"}
  ]
}`

const yamlDoc = `
name: contact
fields:
  - field_type: email
    custom_id: email
    extends_input_custom_classes: wide
    extends_input_custom_attrs: |-
      aria-label|Your email
      maxlength|120
  - field_type: radio
    extends_wrapper_custom_classes: inline
`

func TestParse_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := Parse([]byte(jsonDoc), "form.json")
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	fromYAML, err := Parse([]byte(yamlDoc), "form.yaml")
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}

	want := model.Form{
		Name: "contact",
		Fields: []model.FieldDescriptor{
			{
				FieldType:       model.FieldTypeEmail,
				ID:              "email",
				Index:           0,
				CustomClasses:   "wide",
				CustomAttrLines: "aria-label|Your email\nmaxlength|120",
			},
			{
				FieldType:            model.FieldTypeRadio,
				Index:                1,
				WrapperCustomClasses: "inline",
			},
		},
	}
	ignoreSettings := cmpopts.IgnoreFields(model.FieldDescriptor{}, "Settings")
	if diff := cmp.Diff(want, fromJSON, ignoreSettings); diff != "" {
		t.Fatalf("json form mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, fromYAML, ignoreSettings); diff != "" {
		t.Fatalf("yaml form mismatch (-want +got):\n%s", diff)
	}
	if fromYAML.Fields[1].Settings["field_type"] != "radio" {
		t.Fatalf("expected raw settings to be kept, got %v", fromYAML.Fields[1].Settings)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte("   "), "empty.yaml"); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}
	_, err := Parse([]byte("fields: [unterminated"), "bad.yaml")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if errors.Unwrap(err) == nil || !strings.Contains(err.Error(), "yaml:") {
		t.Fatalf("expected the YAML cause to be wrapped, got %v", err)
	}
	if _, err := Parse([]byte(`{"fields":[{"extends_input_custom_classes":{"a":1}}]}`), "nested.json"); err == nil {
		t.Fatalf("expected decode error for nested value")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/contact.yaml": {Data: []byte(yamlDoc)},
	}
	form, err := LoadFS(fsys, "forms/contact.yaml")
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if len(form.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(form.Fields))
	}

	if _, err := LoadFS(fsys, "forms/missing.yaml"); err == nil {
		t.Fatalf("expected missing file error")
	}
	if _, err := LoadFS(nil, "x"); err == nil {
		t.Fatalf("expected nil filesystem error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")
	if err := os.WriteFile(path, []byte(jsonDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	form, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if form.Name != "contact" {
		t.Fatalf("unexpected name %q", form.Name)
	}
}
