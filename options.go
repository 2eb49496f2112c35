package rangesum

type config struct {
	finiteOnly bool
}

type indexOption func(*config)

// RejectNonFinite makes New fail with ErrInvalidInput when any element
// is NaN or infinite.
//
// A single NaN turns every cumulative entry after it into NaN, so every
// query whose range ends at or past it answers NaN. Integer sequences
// are always finite and are unaffected by this option.
func RejectNonFinite() indexOption {
	return func(c *config) {
		c.finiteOnly = true
	}
}
