package token

// CharacterValue computes the UTF-16 code units a single lexical character
// construct denotes: one unit normally, two for a surrogate pair.
//
// Grounded on original_source/src/lexing/tokens/string.rs's
// CharacterValue trait; the Rust signature threads a caller-owned [u16; 2]
// buffer through to avoid allocation; Go has no borrow checker forcing that
// discipline, and a []uint16 return is the idiomatic shape here.
type CharacterValue interface {
	CV() []uint16
}

// StringValue computes the full UTF-16 encoding of a composite
// string-like construct by concatenating its parts' CVs.
//
// Grounded on string.rs's StringValue trait.
type StringValue interface {
	SV() []uint16
}

// MathematicalValue computes the numeric value that a digit or
// digit-sequence construct denotes.
//
// Grounded on original_source/src/lexing/tokens/number.rs's
// MathematicalValue trait.
type MathematicalValue interface {
	MV() float64
}
