// internal/model/preferences.go
package model

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultStudyLanguages is used when nothing was stored yet.
var DefaultStudyLanguages = []string{"en", "es"}

// DefaultNativeLanguage is used when nothing was stored yet.
const DefaultNativeLanguage = "en"

// LanguagePreferences holds the study languages (an ordered set that is never
// empty) and the learner's native language.
type LanguagePreferences struct {
	StudyLanguages []string `json:"study_languages"`
	NativeLanguage string   `json:"native_language"`
}

// DefaultPreferences returns a fresh copy of the defaults.
func DefaultPreferences() LanguagePreferences {
	return LanguagePreferences{
		StudyLanguages: slices.Clone(DefaultStudyLanguages),
		NativeLanguage: DefaultNativeLanguage,
	}
}

// NormalizeLanguageCode lowercases code and checks it against the supported list.
func NormalizeLanguageCode(code string) (string, error) {
	l, ok := LookupLanguage(code)
	if !ok {
		return "", fmt.Errorf("unsupported language %q: %w", strings.TrimSpace(code), ErrInvalidInput)
	}
	return l.Code, nil
}

// Toggle removes code from the study languages if present, unless it is the
// last one left; otherwise it appends code. The receiver is not modified.
func (p LanguagePreferences) Toggle(code string) (LanguagePreferences, error) {
	code, err := NormalizeLanguageCode(code)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	if i := slices.Index(out.StudyLanguages, code); i >= 0 {
		if len(out.StudyLanguages) == 1 {
			return out, nil
		}
		out.StudyLanguages = slices.Delete(out.StudyLanguages, i, i+1)
		return out, nil
	}
	out.StudyLanguages = append(out.StudyLanguages, code)
	return out, nil
}

// SetNative replaces the native language.
func (p LanguagePreferences) SetNative(code string) (LanguagePreferences, error) {
	code, err := NormalizeLanguageCode(code)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	out.NativeLanguage = code
	return out, nil
}

// Studies reports whether code is one of the study languages.
func (p LanguagePreferences) Studies(code string) bool {
	return slices.Contains(p.StudyLanguages, code)
}

// TranslationLanguages are the study languages minus the base language.
func (p LanguagePreferences) TranslationLanguages() []string {
	return ExcludeBase(p.StudyLanguages)
}

func (p LanguagePreferences) Clone() LanguagePreferences {
	p.StudyLanguages = slices.Clone(p.StudyLanguages)
	return p
}

// Sanitize drops unknown and duplicate study codes and falls back to the
// defaults for anything left empty. Used on data read back from storage.
func (p LanguagePreferences) Sanitize() LanguagePreferences {
	seen := make(map[string]bool, len(p.StudyLanguages))
	study := make([]string, 0, len(p.StudyLanguages))
	for _, c := range p.StudyLanguages {
		code, err := NormalizeLanguageCode(c)
		if err != nil || seen[code] {
			continue
		}
		seen[code] = true
		study = append(study, code)
	}
	if len(study) == 0 {
		study = slices.Clone(DefaultStudyLanguages)
	}
	native, err := NormalizeLanguageCode(p.NativeLanguage)
	if err != nil {
		native = DefaultNativeLanguage
	}
	return LanguagePreferences{StudyLanguages: study, NativeLanguage: native}
}
