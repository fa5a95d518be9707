package sky

import (
	"strings"

	"golang.org/x/text/language"
)

// Language selects which translation file names a constellation.
type Language int

// Languages. English is the zero value and the fallback.
const (
	English Language = iota
	Latin
	French
)

// Languages lists the supported languages.
var Languages = []Language{English, Latin, French}

// languageTags is indexed by Language.
var languageTags = []language.Tag{
	English: language.English,
	Latin:   language.Make("la"),
	French:  language.French,
}

var languageMatcher = language.NewMatcher(languageTags)

// Token returns the file-name token of the translation file ("eng", "lat", "fra").
func (l Language) Token() string {
	switch l {
	case Latin:
		return "lat"
	case French:
		return "fra"
	default:
		return "eng"
	}
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l < English || l > French {
		return language.English
	}
	return languageTags[l]
}

// String implements fmt.Stringer.
func (l Language) String() string {
	switch l {
	case Latin:
		return "latin"
	case French:
		return "french"
	default:
		return "english"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Language) UnmarshalText(text []byte) error {
	*l = ParseLanguage(string(text))
	return nil
}

// ParseLanguage accepts a file token ("fra"), a name ("french") or any
// BCP 47 tag ("fr-CA", "la"). Input that matches nothing yields English.
func ParseLanguage(s string) Language {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range Languages {
		if s == l.Token() || s == l.String() {
			return l
		}
	}
	if s == "" {
		return English
	}

	tag, err := language.Parse(s)
	if err != nil {
		return English
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return English
	}
	return Language(index)
}
