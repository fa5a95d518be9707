package sky

// Constellation is one constellation folder of the catalog.
type Constellation struct {
	// Abbreviation is the record's identity, e.g. "ORI".
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`

	// FullName in the selected language, or the abbreviation when no
	// translation exists for that language.
	FullName string `json:"full_name" yaml:"full_name"`
}

// IsZero reports whether c is empty.
func (c Constellation) IsZero() bool {
	return c == Constellation{}
}

// Translated reports whether FullName came from a translation file.
// A translation equal to the abbreviation is indistinguishable from the fallback.
func (c Constellation) Translated() bool {
	return c.FullName != "" && c.FullName != c.Abbreviation
}
