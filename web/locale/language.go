package locale

// Language is a code from the fixed set of languages a session may select.
type Language string

const (
	English   Language = "en"
	Telugu    Language = "te"
	Hindi     Language = "hi"
	Tamil     Language = "ta"
	Malayalam Language = "ml"
	Kannada   Language = "kn"
)

// DefaultLanguage is used when a session has no language set.
const DefaultLanguage = English

var supportedLanguages = []Language{English, Telugu, Hindi, Tamil, Malayalam, Kannada}

var languageNames = map[Language]string{
	English:   "English",
	Telugu:    "తెలుగు",
	Hindi:     "हिन्दी",
	Tamil:     "தமிழ்",
	Malayalam: "മലയാളം",
	Kannada:   "ಕನ್ನಡ",
}

// SupportedLanguages returns the selectable languages in display order.
func SupportedLanguages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// ParseLanguage reports whether code is an exact member of the supported set.
func ParseLanguage(code string) (Language, bool) {
	lang := Language(code)
	if _, ok := languageNames[lang]; ok {
		return lang, true
	}
	return "", false
}

// DisplayName is the language's name written in that language.
func (l Language) DisplayName() string {
	return languageNames[l]
}

func (l Language) String() string {
	return string(l)
}
