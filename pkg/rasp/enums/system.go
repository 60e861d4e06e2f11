package enums

import "golang.org/x/exp/slices"

// System is a station coding system. Station codes passed to the API are
// interpreted in the selected system (yandex when unset).
type System string

const (
	SystemYandex  System = "yandex"
	SystemIATA    System = "iata"
	SystemSirena  System = "sirena"
	SystemExpress System = "express"
	SystemESR     System = "esr"
)

var systems = []System{SystemYandex, SystemIATA, SystemSirena, SystemExpress, SystemESR}

func Systems() []System {
	return slices.Clone(systems)
}

func ParseSystem(value string) (System, error) {
	return parse("system", systems, value)
}

func (s System) String() string {
	return string(s)
}

func (s System) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s *System) UnmarshalText(text []byte) error {
	parsed, err := ParseSystem(string(text))
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

// ShowSystems selects which coding systems are echoed back in responses.
type ShowSystems string

const (
	ShowSystemsYandex ShowSystems = "yandex"
	ShowSystemsESR    ShowSystems = "esr"
	ShowSystemsAll    ShowSystems = "all"
)

var showSystems = []ShowSystems{ShowSystemsYandex, ShowSystemsESR, ShowSystemsAll}

func ShowSystemsValues() []ShowSystems {
	return slices.Clone(showSystems)
}

func ParseShowSystems(value string) (ShowSystems, error) {
	return parse("show systems", showSystems, value)
}

func (s ShowSystems) String() string {
	return string(s)
}

func (s ShowSystems) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s *ShowSystems) UnmarshalText(text []byte) error {
	parsed, err := ParseShowSystems(string(text))
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
