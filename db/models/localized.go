package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// LocaleCode selects a display language for bilingual content.
type LocaleCode string

const (
	LocaleEnglish LocaleCode = "en"
	LocaleTamil   LocaleCode = "ta" // reserved, not yet enabled on the site
)

// SupportedLocales lists every locale the content model accepts.
var SupportedLocales = []LocaleCode{LocaleEnglish, LocaleTamil}

// IsSupportedLocale reports whether code is one of the known locale codes.
func IsSupportedLocale(code LocaleCode) bool {
	for _, c := range SupportedLocales {
		if c == code {
			return true
		}
	}
	return false
}

// LocalizedText is a bilingual string field. It is an explicit tagged
// variant: either a plain string, or a locale map with English as the
// mandatory fallback entry. The tag lives in the type (Localized nil vs
// non-nil), so a plain value can never be mistaken for a locale map.
type LocalizedText struct {
	Plain     string
	Localized map[LocaleCode]string
}

// PlainText wraps a locale-invariant string.
func PlainText(s string) LocalizedText {
	return LocalizedText{Plain: s}
}

// LocalizedString wraps an explicit locale map.
func LocalizedString(values map[LocaleCode]string) LocalizedText {
	return LocalizedText{Localized: values}
}

// Resolve returns the display string for the requested locale. Plain values
// are returned as-is for any locale. For locale maps the requested entry
// wins when non-empty, then the English entry, then "". Missing keys are an
// empty-value condition, never an error.
func (t LocalizedText) Resolve(locale LocaleCode) string {
	if t.Localized == nil {
		return t.Plain
	}
	if v := t.Localized[locale]; v != "" {
		return v
	}
	return t.Localized[LocaleEnglish]
}

// IsZero reports whether the value carries no text in any locale.
func (t LocalizedText) IsZero() bool {
	if t.Localized == nil {
		return t.Plain == ""
	}
	for _, v := range t.Localized {
		if v != "" {
			return false
		}
	}
	return true
}

// MarshalJSON writes the CMS wire shape: a bare string for plain values, a
// locale object for localized ones.
func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.Localized != nil {
		return json.Marshal(t.Localized)
	}
	return json.Marshal(t.Plain)
}

// UnmarshalJSON accepts either wire shape. The variant tag is fixed here,
// at the decode boundary, so the rest of the code never shape-sniffs.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = LocalizedText{Plain: s}
		return nil
	}

	var m map[LocaleCode]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("localized text must be a string or a locale map: %w", err)
	}
	*t = LocalizedText{Localized: m}
	return nil
}

// Value implements driver.Valuer so the field persists as JSONB.
func (t LocalizedText) Value() (driver.Value, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*t = LocalizedText{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return t.UnmarshalJSON(v)
	case string:
		return t.UnmarshalJSON([]byte(v))
	default:
		return errors.New("unsupported column type for localized text")
	}
}

// GormDataType tells GORM which column type to migrate to.
func (LocalizedText) GormDataType() string {
	return "jsonb"
}

// LocalizedList is the list-shaped counterpart of LocalizedText, used for
// tag lists. Same tagged-variant rule, same fallback rule.
type LocalizedList struct {
	Plain     []string
	Localized map[LocaleCode][]string
}

// PlainList wraps a locale-invariant tag list.
func PlainList(values []string) LocalizedList {
	return LocalizedList{Plain: values}
}

// LocalizedStrings wraps an explicit locale map of lists.
func LocalizedStrings(values map[LocaleCode][]string) LocalizedList {
	return LocalizedList{Localized: values}
}

// Resolve returns the list for the requested locale, falling back to
// English and then to an empty list.
func (l LocalizedList) Resolve(locale LocaleCode) []string {
	if l.Localized == nil {
		return l.Plain
	}
	if v := l.Localized[locale]; len(v) > 0 {
		return v
	}
	if v := l.Localized[LocaleEnglish]; len(v) > 0 {
		return v
	}
	return []string{}
}

func (l LocalizedList) MarshalJSON() ([]byte, error) {
	if l.Localized != nil {
		return json.Marshal(l.Localized)
	}
	if l.Plain == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l.Plain)
}

func (l *LocalizedList) UnmarshalJSON(data []byte) error {
	var plain []string
	if err := json.Unmarshal(data, &plain); err == nil {
		*l = LocalizedList{Plain: plain}
		return nil
	}

	var m map[LocaleCode][]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("localized list must be an array or a locale map: %w", err)
	}
	*l = LocalizedList{Localized: m}
	return nil
}

func (l LocalizedList) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LocalizedList) Scan(value interface{}) error {
	if value == nil {
		*l = LocalizedList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return l.UnmarshalJSON(v)
	case string:
		return l.UnmarshalJSON([]byte(v))
	default:
		return errors.New("unsupported column type for localized list")
	}
}

func (LocalizedList) GormDataType() string {
	return "jsonb"
}
