package model

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// DescriptorFromSettings decodes a raw settings map into a descriptor. Values
// are weakly typed so numeric or boolean settings become strings. The raw map
// is kept on the descriptor untouched.
func DescriptorFromSettings(settings map[string]any, index int) (FieldDescriptor, error) {
	descriptor := FieldDescriptor{Index: index, Settings: settings}
	if len(settings) == 0 {
		return descriptor, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &descriptor,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return FieldDescriptor{}, fmt.Errorf("model: configure settings decoder: %w", err)
	}
	if err := decoder.Decode(settings); err != nil {
		return FieldDescriptor{}, fmt.Errorf("model: decode field %d settings: %w", index, err)
	}
	return descriptor, nil
}

// FormFromSettings decodes each settings map in order, assigning indexes by
// position.
func FormFromSettings(name string, items []map[string]any) (Form, error) {
	form := Form{Name: name, Fields: make([]FieldDescriptor, 0, len(items))}
	for i, item := range items {
		descriptor, err := DescriptorFromSettings(item, i)
		if err != nil {
			return Form{}, err
		}
		form.Fields = append(form.Fields, descriptor)
	}
	return form, nil
}
