// Package render holds the render-attribute bag that form renderers fill
// while emitting field markup. Handles name rendered elements ("input3",
// "field-group3") and each handle carries an ordered set of attributes.
package render
