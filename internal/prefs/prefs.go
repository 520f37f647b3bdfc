package prefs

import (
	"vacation-front/internal/storage"
)

// Claves persistidas, las mismas que usaba el cliente original.
const (
	KeyLanguage = "ui_language"
	KeyTheme    = "ui_mode"
	KeyCurrency = "ui_currency"
)

const (
	DefaultLanguage = "he"
	DefaultTheme    = "light"
	DefaultCurrency = "ILS"
)

var (
	validLanguages  = map[string]bool{"he": true, "en": true}
	validThemes     = map[string]bool{"light": true, "dark": true}
	validCurrencies = map[string]bool{"ILS": true, "USD": true, "EUR": true}
)

// Preferences es el snapshot que consume la capa de vistas.
type Preferences struct {
	Language  string
	Direction string
	Theme     string
	Currency  string
}

// Store persiste idioma, tema y moneda. Todo es best-effort: valores
// inválidos o ranuras ilegibles caen al default sin fallar.
type Store struct {
	storage storage.Storage
}

func NewStore(st storage.Storage) *Store {
	return &Store{storage: st}
}

func (s *Store) Language() string {
	return s.read(KeyLanguage, validLanguages, DefaultLanguage)
}

func (s *Store) SetLanguage(lang string) {
	if validLanguages[lang] {
		s.storage.Set(KeyLanguage, lang)
	}
}

func (s *Store) ToggleLanguage() {
	if s.Language() == "he" {
		s.storage.Set(KeyLanguage, "en")
	} else {
		s.storage.Set(KeyLanguage, "he")
	}
}

// Direction deriva la dirección de escritura del idioma.
func (s *Store) Direction() string {
	if s.Language() == "he" {
		return "rtl"
	}
	return "ltr"
}

func (s *Store) Theme() string {
	return s.read(KeyTheme, validThemes, DefaultTheme)
}

func (s *Store) SetTheme(theme string) {
	if validThemes[theme] {
		s.storage.Set(KeyTheme, theme)
	}
}

func (s *Store) ToggleTheme() {
	if s.Theme() == "light" {
		s.storage.Set(KeyTheme, "dark")
	} else {
		s.storage.Set(KeyTheme, "light")
	}
}

func (s *Store) Currency() string {
	return s.read(KeyCurrency, validCurrencies, DefaultCurrency)
}

func (s *Store) SetCurrency(currency string) {
	if validCurrencies[currency] {
		s.storage.Set(KeyCurrency, currency)
	}
}

func (s *Store) Snapshot() Preferences {
	return Preferences{
		Language:  s.Language(),
		Direction: s.Direction(),
		Theme:     s.Theme(),
		Currency:  s.Currency(),
	}
}

func (s *Store) read(key string, valid map[string]bool, fallback string) string {
	v, ok := s.storage.Get(key)
	if !ok || !valid[v] {
		return fallback
	}
	return v
}
