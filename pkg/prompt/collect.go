// Package prompt collects a field's extras interactively, showing only the
// controls that apply to the chosen field type.
package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formextras/pkg/controls"
	"github.com/goliatone/go-formextras/pkg/model"
)

// FieldTypes lists the choices offered by Collect, in display order.
var FieldTypes = []model.FieldType{
	model.FieldTypeText,
	model.FieldTypeEmail,
	model.FieldTypeURL,
	model.FieldTypeTel,
	model.FieldTypeNumber,
	model.FieldTypePassword,
	model.FieldTypeSearch,
	model.FieldTypeDate,
	model.FieldTypeTime,
	model.FieldTypeDateTimeLocal,
	model.FieldTypeHidden,
	model.FieldTypeUpload,
	model.FieldTypeTextarea,
	model.FieldTypeSelect,
	model.FieldTypeCheckbox,
	model.FieldTypeRadio,
}

// Collect asks for a field type and then each control shown for it,
// returning the resulting descriptor at the given index.
func Collect(ctx context.Context, driver Driver, index int) (model.FieldDescriptor, error) {
	if driver == nil {
		return model.FieldDescriptor{}, fmt.Errorf("prompt: driver is required")
	}

	choice, err := driver.Select(ctx, SelectConfig{
		Message:  fmt.Sprintf("Field %d type", index+1),
		Options:  FieldTypes,
		PageSize: 8,
	})
	if err != nil {
		return model.FieldDescriptor{}, err
	}
	if choice < 0 || choice >= len(FieldTypes) {
		return model.FieldDescriptor{}, fmt.Errorf("prompt: invalid field type choice %d", choice)
	}

	fieldType := FieldTypes[choice]
	settings := map[string]any{model.SettingFieldType: fieldType}

	for _, control := range controls.ForFieldType(controls.Defaults(), fieldType) {
		var value string
		switch control.Type {
		case controls.TypeTextarea:
			value, err = driver.TextArea(ctx, TextAreaConfig{
				Message: control.Label,
				Help:    control.Description + "\n" + control.Placeholder,
			})
		default:
			value, err = driver.Input(ctx, InputConfig{
				Message: control.Label,
				Help:    control.Description,
			})
		}
		if err != nil {
			return model.FieldDescriptor{}, fmt.Errorf("prompt: %s: %w", control.Name, err)
		}
		settings[control.Name] = value
	}

	return model.DescriptorFromSettings(settings, index)
}
