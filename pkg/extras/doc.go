// Package extras applies per-field custom classes and attributes onto the
// elements a form renderer emits. Each field is routed to exactly one element
// handle (input, textarea, select, or the checkbox/radio group wrapper) and
// its free-form attribute lines are filtered through a policy.Policy before
// reaching the render target.
//
// Apply never fails: malformed or denied configuration is dropped so a bad
// field setting cannot break rendering of the whole form.
package extras
