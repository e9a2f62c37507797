package model

// Template is an immutable source skeleton.
type Template struct {
	// Kind is the skeleton kind.
	Kind Kind
	// Format is the source layout of Text.
	Format Format
	// Text is the template body with LF line breaks.
	Text string
}

// Name returns "<kind>/<format>", e.g. "module/free".
func (t Template) Name() string {
	return t.Kind.String() + "/" + t.Format.String()
}

// IsEmpty reports whether the template produces no content.
func (t Template) IsEmpty() bool {
	return t.Text == ""
}
