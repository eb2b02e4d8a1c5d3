package extras

import (
	"github.com/goliatone/go-formextras/pkg/model"
	"github.com/goliatone/go-formextras/pkg/policy"
)

// Option configures an Applier.
type Option func(*Applier)

// WithPolicy overrides the attribute policy. A nil policy keeps the default.
func WithPolicy(p *policy.Policy) Option {
	return func(a *Applier) {
		if p != nil {
			a.policy = p
		}
	}
}

// Applier routes field extras to render targets. It holds no per-render
// state and may be shared.
type Applier struct {
	policy *policy.Policy
}

// New constructs an Applier using policy.Default unless overridden.
func New(options ...Option) *Applier {
	a := &Applier{policy: policy.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Policy returns the policy in use.
func (a *Applier) Policy() *policy.Policy {
	return a.policy
}

// Apply mutates target with the classes and attributes configured on
// descriptor and returns descriptor unchanged.
func (a *Applier) Apply(descriptor model.FieldDescriptor, target Target) model.FieldDescriptor {
	if target == nil {
		return descriptor
	}

	kind, ok := ElementKindFor(descriptor.FieldType)
	if !ok {
		return descriptor
	}
	handle := Handle(kind, descriptor.Index)

	if kind == KindFieldGroup {
		if tokens := SplitClasses(descriptor.WrapperCustomClasses); len(tokens) > 0 {
			target.AddClass(handle, tokens...)
		}
		return descriptor
	}

	if tokens := SplitClasses(descriptor.CustomClasses); len(tokens) > 0 {
		target.AddClass(handle, tokens...)
	}

	remover, canRemove := target.(AttributeRemover)
	for _, attr := range ParseAttrLines(descriptor.CustomAttrLines, a.policy) {
		if canRemove {
			remover.RemoveAttribute(handle, attr.Key)
		}
		target.SetAttribute(handle, attr.Key, attr.Value)
	}
	return descriptor
}

// Apply is a one-shot helper for callers without a long-lived Applier.
func Apply(descriptor model.FieldDescriptor, target Target, p *policy.Policy) model.FieldDescriptor {
	return New(WithPolicy(p)).Apply(descriptor, target)
}
