package enums

import "golang.org/x/exp/slices"

type Language string

const (
	LanguageRussian   Language = "ru_RU"
	LanguageUkrainian Language = "uk_UA"
)

var languages = []Language{LanguageRussian, LanguageUkrainian}

func Languages() []Language {
	return slices.Clone(languages)
}

func ParseLanguage(value string) (Language, error) {
	return parse("language", languages, value)
}

func (l Language) String() string {
	return string(l)
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}

	*l = parsed
	return nil
}

// Format is the response document format. Only JSON responses can be decoded
// into typed results, XML is available through the raw execute calls.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

var formats = []Format{FormatJSON, FormatXML}

func Formats() []Format {
	return slices.Clone(formats)
}

func ParseFormat(value string) (Format, error) {
	return parse("format", formats, value)
}

func (f Format) String() string {
	return string(f)
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}
