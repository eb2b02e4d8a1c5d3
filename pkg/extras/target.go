package extras

// Target is the render-attribute sink owned by the form renderer. Handles
// identify rendered elements, for example "input3" or "field-group3".
type Target interface {
	AddClass(handle string, tokens ...string)
	// SetAttribute sets key on handle. Some implementations accumulate values
	// per key; those should also implement AttributeRemover.
	SetAttribute(handle, key, value string)
}

// AttributeRemover is implemented by targets able to drop an attribute. The
// applier removes before setting so repeated keys overwrite.
type AttributeRemover interface {
	RemoveAttribute(handle, key string)
}
