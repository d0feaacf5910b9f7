package entity

// Language identifies a report language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTamil   Language = "ta"
)

// Recommendation is a narrative hint paired in both report languages.
type Recommendation struct {
	Key     string `json:"key"`
	English string `json:"english"`
	Tamil   string `json:"tamil"`
}

// Text returns the recommendation in the requested language.
func (r Recommendation) Text(lang Language) string {
	if lang == LanguageTamil {
		return r.Tamil
	}
	return r.English
}

// Report holds the rendered narrative in both languages.
type Report struct {
	English         string           `json:"english"`
	Tamil           string           `json:"tamil"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Text returns the rendered report in the requested language.
func (r Report) Text(lang Language) string {
	if lang == LanguageTamil {
		return r.Tamil
	}
	return r.English
}
