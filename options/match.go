package options

// MatchEnum selects which strategies resolve a requested name to a struct field.
// Strategies are tried in declaration order, the first one that finds a field wins.
type MatchEnum int

const (
	MatchTag        MatchEnum = 1 << iota // `field:"name"` struct tag
	MatchJSON                             // `json:"name"` struct tag
	MatchExact                            // exact Go field name
	MatchFold                             // case-insensitive Go field name
	MatchNormalized                       // separators and case ignored: some_key matches SomeKey

	MatchAll  MatchEnum = (1 << iota) - 1 // all strategies combined
	MatchNone MatchEnum = 0               // no strategies selected
)

// Has reports whether every strategy of other is enabled in m.
func (m MatchEnum) Has(other MatchEnum) bool {
	return other != MatchNone && m&other == other
}

// RenderEnum selects how output values are converted to text.
type RenderEnum int

const (
	RenderPlain RenderEnum = iota // fmt.Stringer aware, pointers are dereferenced
	RenderDump                    // go-spew dump of the value
)
