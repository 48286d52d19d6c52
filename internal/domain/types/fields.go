package types

// Fields is transient form state keyed by field name.
type Fields map[string]string

// Get returns the value for name, or "" when unset.
func (f Fields) Get(name string) string { return f[name] }

// With returns a copy of f with name set to value. f is never modified.
func (f Fields) With(name, value string) Fields {
	out := make(Fields, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[name] = value
	return out
}
