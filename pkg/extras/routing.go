package extras

import (
	"strconv"

	"github.com/goliatone/go-formextras/pkg/model"
)

// ElementKind is the handle prefix of a rendered element.
type ElementKind string

const (
	KindInput      ElementKind = "input"
	KindTextarea   ElementKind = "textarea"
	KindSelect     ElementKind = "select"
	KindFieldGroup ElementKind = "field-group"
)

var elementKinds = map[model.FieldType]ElementKind{
	model.FieldTypeText:          KindInput,
	model.FieldTypeEmail:         KindInput,
	model.FieldTypeURL:           KindInput,
	model.FieldTypeTel:           KindInput,
	model.FieldTypeNumber:        KindInput,
	model.FieldTypePassword:      KindInput,
	model.FieldTypeSearch:        KindInput,
	model.FieldTypeDate:          KindInput,
	model.FieldTypeTime:          KindInput,
	model.FieldTypeDateTimeLocal: KindInput,
	model.FieldTypeHidden:        KindInput,
	model.FieldTypeUpload:        KindInput,
	model.FieldTypeTextarea:      KindTextarea,
	model.FieldTypeSelect:        KindSelect,
	model.FieldTypeCheckbox:      KindFieldGroup,
	model.FieldTypeRadio:         KindFieldGroup,
}

// ElementKindFor maps a field type onto the element its extras target. The
// boolean is false for field types that receive no extras.
func ElementKindFor(fieldType model.FieldType) (ElementKind, bool) {
	kind, ok := elementKinds[fieldType]
	return kind, ok
}

// Handle builds the render handle for kind at the given field index.
func Handle(kind ElementKind, index int) string {
	return string(kind) + strconv.Itoa(index)
}
