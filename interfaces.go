package envspec

// Provider is a read-only source of raw environment values.
type Provider interface {
	// Lookup returns the value for key and whether it is present.
	// A present empty string is distinct from an absent key.
	Lookup(key string) (string, bool)
}

// Validator checks a cast value. A non-nil error rejects the value.
type Validator interface {
	Validate(value any) error
}

// Setter is an injection target that accepts attributes by name.
type Setter interface {
	SetAttr(name string, value any) error
}
