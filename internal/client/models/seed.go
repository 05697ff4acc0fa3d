package models

// WordGroup is one mnemonic word with its 1-based position in the mnemonic.
type WordGroup struct {
	Index int
	Word  string
}

// SeedPage is the run of words shown together on one screen.
type SeedPage []WordGroup
