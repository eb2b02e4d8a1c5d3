package model

// FieldType names the kind of form field as configured in the editor.
type FieldType = string

const (
	FieldTypeText          FieldType = "text"
	FieldTypeEmail         FieldType = "email"
	FieldTypeURL           FieldType = "url"
	FieldTypeTel           FieldType = "tel"
	FieldTypeNumber        FieldType = "number"
	FieldTypePassword      FieldType = "password"
	FieldTypeSearch        FieldType = "search"
	FieldTypeDate          FieldType = "date"
	FieldTypeTime          FieldType = "time"
	FieldTypeDateTimeLocal FieldType = "datetime-local"
	FieldTypeHidden        FieldType = "hidden"
	FieldTypeUpload        FieldType = "upload"
	FieldTypeTextarea      FieldType = "textarea"
	FieldTypeSelect        FieldType = "select"
	FieldTypeCheckbox      FieldType = "checkbox"
	FieldTypeRadio         FieldType = "radio"
)

// Setting keys recognised in a field's raw settings map.
const (
	SettingFieldType            = "field_type"
	SettingCustomID             = "custom_id"
	SettingInputCustomClasses   = "extends_input_custom_classes"
	SettingInputCustomAttrs     = "extends_input_custom_attrs"
	SettingWrapperCustomClasses = "extends_wrapper_custom_classes"
)

// FieldDescriptor carries the untrusted per-field extras for one render pass.
type FieldDescriptor struct {
	FieldType            FieldType      `json:"field_type" mapstructure:"field_type"`
	ID                   string         `json:"custom_id,omitempty" mapstructure:"custom_id"`
	Index                int            `json:"index" mapstructure:"-"`
	CustomClasses        string         `json:"extends_input_custom_classes,omitempty" mapstructure:"extends_input_custom_classes"`
	CustomAttrLines      string         `json:"extends_input_custom_attrs,omitempty" mapstructure:"extends_input_custom_attrs"`
	WrapperCustomClasses string         `json:"extends_wrapper_custom_classes,omitempty" mapstructure:"extends_wrapper_custom_classes"`
	Settings             map[string]any `json:"-" mapstructure:"-"`
}

// IsGroup reports whether the field renders as a wrapper around several
// inputs (checkbox and radio lists).
func (d FieldDescriptor) IsGroup() bool {
	return IsGroupType(d.FieldType)
}

// IsGroupType reports whether fieldType renders as a wrapper group.
func IsGroupType(fieldType FieldType) bool {
	switch fieldType {
	case FieldTypeCheckbox, FieldTypeRadio:
		return true
	default:
		return false
	}
}

// Form is an ordered list of field descriptors rendered together.
type Form struct {
	Name   string            `json:"name,omitempty"`
	Fields []FieldDescriptor `json:"fields"`
}
