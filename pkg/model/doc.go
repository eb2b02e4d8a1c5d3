// Package model defines the per-field descriptors consumed by the extras
// applier and the render pipeline. Descriptors are decoded from the raw
// settings map an editor stores for each form field; the recognised keys are
// exported as Setting* constants so loaders and prompts agree on naming.
// Descriptors live for one render pass and are never persisted.
package model
