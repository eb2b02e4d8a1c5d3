// Package pipeline runs item filters over every field of a form during a
// render pass, the way a form widget hands each field to registered render
// hooks before emitting markup.
package pipeline

import (
	"github.com/goliatone/go-formextras/pkg/extras"
	"github.com/goliatone/go-formextras/pkg/model"
)

// Filter receives one field and the render target for the current pass and
// returns the descriptor that later filters should see.
type Filter func(item model.FieldDescriptor, target extras.Target) model.FieldDescriptor

// Pipeline threads each field of a form through its filters in order.
type Pipeline struct {
	filters []Filter
}

// New builds a pipeline from filters, skipping nil entries.
func New(filters ...Filter) *Pipeline {
	p := &Pipeline{}
	for _, filter := range filters {
		p.Use(filter)
	}
	return p
}

// Use appends filter to the chain.
func (p *Pipeline) Use(filter Filter) *Pipeline {
	if filter != nil {
		p.filters = append(p.filters, filter)
	}
	return p
}

// Len reports the number of registered filters.
func (p *Pipeline) Len() int {
	return len(p.filters)
}

// Run assigns each field its position as Index, then passes it through every
// filter. The returned form holds the final descriptors; the input form is
// not modified.
func (p *Pipeline) Run(form model.Form, target extras.Target) model.Form {
	out := model.Form{Name: form.Name}
	if len(form.Fields) == 0 {
		return out
	}

	out.Fields = make([]model.FieldDescriptor, len(form.Fields))
	for i, item := range form.Fields {
		item.Index = i
		for _, filter := range p.filters {
			item = filter(item, target)
		}
		out.Fields[i] = item
	}
	return out
}
