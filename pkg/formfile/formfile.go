// Package formfile loads form documents: a form name plus the raw settings
// of each field, written as JSON or YAML.
//
//	name: contact
//	fields:
//	  - field_type: email
//	    extends_input_custom_classes: "wide muted"
//	    extends_input_custom_attrs: |
//	      aria-label|Your email
//	      autocomplete|email
package formfile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formextras/pkg/model"
)

type document struct {
	Name   string           `json:"name" yaml:"name"`
	Fields []map[string]any `json:"fields" yaml:"fields"`
}

// Parse decodes data as JSON, falling back to YAML, and builds a form whose
// fields are indexed by position. source only labels errors.
func Parse(data []byte, source string) (model.Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return model.Form{}, fmt.Errorf("formfile: file %s is empty", source)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = document{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return model.Form{}, fmt.Errorf("formfile: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}

	form, err := model.FormFromSettings(strings.TrimSpace(doc.Name), doc.Fields)
	if err != nil {
		return model.Form{}, fmt.Errorf("formfile: %s: %w", source, err)
	}
	return form, nil
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (model.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses the document at path within fsys.
func LoadFS(fsys fs.FS, path string) (model.Form, error) {
	if fsys == nil {
		return model.Form{}, fmt.Errorf("formfile: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return model.Form{}, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	return Parse(data, path)
}
