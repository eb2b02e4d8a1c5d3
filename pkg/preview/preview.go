// Package preview renders a form's field elements together with the
// attributes collected in a render.Attributes bag, so configured extras can
// be inspected as HTML. Output is passed through a bluemonday policy built
// for the elements and attribute names actually emitted.
package preview

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formextras/pkg/extras"
	"github.com/goliatone/go-formextras/pkg/model"
	"github.com/goliatone/go-formextras/pkg/render"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithoutSanitizer skips the bluemonday pass.
func WithoutSanitizer() Option {
	return func(r *Renderer) {
		r.sanitize = false
	}
}

// WithSanitize toggles the bluemonday pass.
func WithSanitize(enabled bool) Option {
	return func(r *Renderer) {
		r.sanitize = enabled
	}
}

// Renderer emits one element per field.
type Renderer struct {
	sanitize bool
}

// New constructs a preview renderer with sanitising enabled.
func New(options ...Option) *Renderer {
	r := &Renderer{sanitize: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

var eventHandlerName = regexp.MustCompile(`^on[a-z]+$`)

var inputTypes = map[model.FieldType]string{
	model.FieldTypeUpload:        "file",
	model.FieldTypeDateTimeLocal: "datetime-local",
}

// Render writes markup for every field of form that maps onto an element.
// Fields without an element kind are skipped.
func (r *Renderer) Render(form model.Form, attrs *render.Attributes) (string, error) {
	if attrs == nil {
		attrs = render.NewAttributes()
	}

	var builder strings.Builder
	names := map[string]struct{}{"id": {}, "name": {}, "type": {}, "class": {}}
	for _, field := range form.Fields {
		kind, ok := extras.ElementKindFor(field.FieldType)
		if !ok {
			continue
		}
		handle := extras.Handle(kind, field.Index)
		for _, key := range attrs.Keys(handle) {
			names[strings.ToLower(key)] = struct{}{}
		}
		writeElement(&builder, field, kind, attrs.String(handle))
	}

	out := builder.String()
	if !r.sanitize || out == "" {
		return out, nil
	}

	cleaned := sanitizer(names).Sanitize(out)
	if strings.TrimSpace(cleaned) == "" {
		return "", fmt.Errorf("preview: sanitizer removed all markup")
	}
	return cleaned, nil
}

func writeElement(builder *strings.Builder, field model.FieldDescriptor, kind extras.ElementKind, extra string) {
	id := fieldID(field)
	base := ` id="form-field-` + html.EscapeString(id) + `" name="form_fields[` + html.EscapeString(id) + `]"`

	switch kind {
	case extras.KindInput:
		inputType := field.FieldType
		if mapped, ok := inputTypes[field.FieldType]; ok {
			inputType = mapped
		}
		builder.WriteString(`<input type="` + html.EscapeString(inputType) + `"` + base + extra + ">\n")
	case extras.KindTextarea:
		builder.WriteString(`<textarea` + base + extra + "></textarea>\n")
	case extras.KindSelect:
		builder.WriteString(`<select` + base + extra + "></select>\n")
	case extras.KindFieldGroup:
		builder.WriteString(`<div` + groupClass(extra) + "></div>\n")
	}
}

func fieldID(field model.FieldDescriptor) string {
	if id := strings.TrimSpace(field.ID); id != "" {
		return id
	}
	return "field_" + strconv.Itoa(field.Index)
}

// groupClass prepends the wrapper's base class to the bag's class attribute.
func groupClass(extra string) string {
	const base = "elementor-field-subgroup"
	if rest, ok := strings.CutPrefix(extra, ` class="`); ok {
		return ` class="` + base + " " + rest
	}
	return ` class="` + base + `"` + extra
}

func sanitizer(names map[string]struct{}) *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("input", "textarea", "select", "div")
	policy.AllowNoAttrs().OnElements("input", "textarea", "select", "div")

	allowed := make([]string, 0, len(names))
	for name := range names {
		if eventHandlerName.MatchString(name) {
			continue
		}
		allowed = append(allowed, name)
	}
	policy.AllowAttrs(allowed...).Globally()
	return policy
}
