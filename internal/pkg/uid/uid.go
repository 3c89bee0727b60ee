package uid

// NumberID generates numeric identifiers (row IDs).
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers (session tokens, correlation IDs).
type StringID interface {
	Generate() string
}
