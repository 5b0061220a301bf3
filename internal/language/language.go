package language

import "strings"

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	code3   string // ISO 639-2 primary (3-letter)
	display string // Human-readable name
	word    string // Full word form (e.g. "english")
}

var languages = []entry{
	{"en", "eng", "English", "english"},
	{"es", "spa", "Spanish", "spanish"},
	{"fr", "fra", "French", "french"},
	{"de", "deu", "German", "german"},
	{"it", "ita", "Italian", "italian"},
	{"pt", "por", "Portuguese", "portuguese"},
	{"ja", "jpn", "Japanese", "japanese"},
	{"ko", "kor", "Korean", "korean"},
	{"zh", "zho", "Chinese", "chinese"},
	{"ru", "rus", "Russian", "russian"},
	{"ar", "ara", "Arabic", "arabic"},
	{"hi", "hin", "Hindi", "hindi"},
	{"nl", "nld", "Dutch", "dutch"},
	{"pl", "pol", "Polish", "polish"},
	{"sv", "swe", "Swedish", "swedish"},
	{"da", "dan", "Danish", "danish"},
	{"no", "nor", "Norwegian", "norwegian"},
	{"fi", "fin", "Finnish", "finnish"},
}

var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages))
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		byWord[e.word] = e
	}
}

func lookup(value string) *entry {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return nil
	}
	if e, ok := byCode2[value]; ok {
		return e
	}
	if e, ok := byCode3[value]; ok {
		return e
	}
	if e, ok := byWord[value]; ok {
		return e
	}
	return nil
}

// ToISO2 normalizes a language name or code to its 2-letter ISO 639-1 form.
// Unknown values return "" so callers can let the engine auto-detect.
func ToISO2(value string) string {
	if e := lookup(value); e != nil {
		return e.code2
	}
	return ""
}

// Display returns the human-readable name for a language value, or "" when
// the value is not recognized.
func Display(value string) string {
	if e := lookup(value); e != nil {
		return e.display
	}
	return ""
}

// Known reports whether value resolves to a recognized language.
func Known(value string) bool {
	return lookup(value) != nil
}
