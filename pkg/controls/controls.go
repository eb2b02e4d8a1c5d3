// Package controls describes the editor controls that collect field extras
// and the conditions under which the editor shows them. Definitions are
// plain data; hosting UIs translate them into their own widgets.
package controls

import (
	"slices"

	"github.com/goliatone/go-formextras/pkg/model"
)

// ControlType is the editor widget used for a control.
type ControlType string

const (
	TypeText     ControlType = "text"
	TypeTextarea ControlType = "textarea"
)

// Placement defaults shared by every extras control.
const (
	TabAdvanced         = "advanced"
	InnerTabAdvanced    = "form_fields_advanced_tab"
	TabsWrapperDefaults = "form_fields_tabs"
)

// Condition restricts a control to field types. Negate inverts the match so
// a control can target "every type except checkbox and radio".
type Condition struct {
	Field  string   `json:"field" yaml:"field"`
	Values []string `json:"values" yaml:"values"`
	Negate bool     `json:"negate,omitempty" yaml:"negate,omitempty"`
}

// Matches reports whether fieldType satisfies the condition. A condition with
// no values always matches.
func (c Condition) Matches(fieldType model.FieldType) bool {
	if len(c.Values) == 0 {
		return true
	}
	return slices.Contains(c.Values, fieldType) != c.Negate
}

// Control is one editor input bound to a field setting.
type Control struct {
	Name        string      `json:"name" yaml:"name"`
	Label       string      `json:"label" yaml:"label"`
	Type        ControlType `json:"type" yaml:"type"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder string      `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Tab         string      `json:"tab,omitempty" yaml:"tab,omitempty"`
	InnerTab    string      `json:"inner_tab,omitempty" yaml:"inner_tab,omitempty"`
	TabsWrapper string      `json:"tabs_wrapper,omitempty" yaml:"tabs_wrapper,omitempty"`
	Condition   Condition   `json:"condition" yaml:"condition"`
	Dynamic     bool        `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`
}

var groupTypes = []string{model.FieldTypeCheckbox, model.FieldTypeRadio}

// Defaults returns fresh copies of the three extras controls.
func Defaults() []Control {
	forInputs := Condition{Field: model.SettingFieldType, Values: slices.Clone(groupTypes), Negate: true}
	forGroups := Condition{Field: model.SettingFieldType, Values: slices.Clone(groupTypes)}

	return []Control{
		placed(Control{
			Name:        model.SettingInputCustomClasses,
			Label:       "Input CSS classes",
			Type:        TypeText,
			Description: "Space-separated classes to append to the input element classlist.",
			Condition:   forInputs,
			Dynamic:     true,
		}),
		placed(Control{
			Name:        model.SettingInputCustomAttrs,
			Label:       "Input attributes",
			Type:        TypeTextarea,
			Placeholder: "aria-label|Your label\nmax|10\ninputmode|numeric",
			Description: "Each line: key|value. Existing keys on the input are overwritten. Protected keys (id, type, name, etc) and event handlers are ignored.",
			Condition:   forInputs,
			Dynamic:     true,
		}),
		placed(Control{
			Name:        model.SettingWrapperCustomClasses,
			Label:       "Wrapper CSS classes",
			Type:        TypeText,
			Description: "For checkbox/radio fields, these classes are appended to the field wrapper, not the individual inputs.",
			Condition:   forGroups,
			Dynamic:     true,
		}),
	}
}

func placed(c Control) Control {
	c.Tab = TabAdvanced
	c.InnerTab = InnerTabAdvanced
	c.TabsWrapper = TabsWrapperDefaults
	return c
}

// Merge returns existing with additions applied: a control whose name is
// already present replaces it in place, new names are appended in order.
func Merge(existing, additions []Control) []Control {
	out := slices.Clone(existing)
	for _, add := range additions {
		idx := slices.IndexFunc(out, func(c Control) bool { return c.Name == add.Name })
		if idx >= 0 {
			out[idx] = add
			continue
		}
		out = append(out, add)
	}
	return out
}

// ForFieldType filters ctrls down to the controls shown for fieldType.
func ForFieldType(ctrls []Control, fieldType model.FieldType) []Control {
	var out []Control
	for _, c := range ctrls {
		if c.Condition.Matches(fieldType) {
			out = append(out, c)
		}
	}
	return out
}

// FormNameControl is the form widget's name setting.
const FormNameControl = "form_name"

// Register merges the extras controls into a widget's existing controls and
// enables dynamic values on FormNameControl when the widget has one.
func Register(existing []Control) []Control {
	out := Merge(existing, Defaults())
	EnableDynamic(out, FormNameControl)
	return out
}

// EnableDynamic switches on dynamic values for the named control, leaving
// the slice untouched when no control matches. It reports whether a control
// was updated.
func EnableDynamic(ctrls []Control, name string) bool {
	for i := range ctrls {
		if ctrls[i].Name == name {
			ctrls[i].Dynamic = true
			return true
		}
	}
	return false
}
