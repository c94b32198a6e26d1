package locale

// Entry is one advertised locale.
type Entry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Catalog is the fixed set of locales a deployment advertises as
// translatable. It is built once at startup and read-only afterwards.
type Catalog []Entry

// DefaultCatalog returns the locales this deployment advertises.
func DefaultCatalog() Catalog {
	return Catalog{
		{Code: "en-US", Label: "English (United States)"},
		{Code: "en-GB", Label: "English (United Kingdom)"},
		{Code: "de-DE", Label: "German (Germany)"},
		{Code: "fr-FR", Label: "French (France)"},
		{Code: "es-ES", Label: "Spanish (Spain)"},
		{Code: "es-MX", Label: "Spanish (Mexico)"},
		{Code: "it-IT", Label: "Italian (Italy)"},
		{Code: "pt-BR", Label: "Portuguese (Brazil)"},
		{Code: "pt-PT", Label: "Portuguese (Portugal)"},
		{Code: "nl-NL", Label: "Dutch (Netherlands)"},
		{Code: "pl-PL", Label: "Polish (Poland)"},
		{Code: "sv-SE", Label: "Swedish (Sweden)"},
		{Code: "da-DK", Label: "Danish (Denmark)"},
		{Code: "fi-FI", Label: "Finnish (Finland)"},
		{Code: "cs-CZ", Label: "Czech (Czechia)"},
		{Code: "ro-RO", Label: "Romanian (Romania)"},
		{Code: "ja-JP", Label: "Japanese (Japan)"},
		{Code: "ko-KR", Label: "Korean (South Korea)"},
		{Code: "zh-CN", Label: "Chinese (Simplified)"},
		{Code: "th-TH", Label: "Thai (Thailand)"},
		{Code: "tr-TR", Label: "Turkish (Türkiye)"},
		{Code: "uk-UA", Label: "Ukrainian (Ukraine)"},
	}
}
