package rasp

import (
	"strings"

	"golang.org/x/exp/slices"
)

// StationsList is the full country > region > settlement > station tree.
type StationsList struct {
	Countries []Country `json:"countries" groups:"basic,detailed"`
}

type Codes struct {
	YandexCode string `json:"yandex_code" groups:"basic,detailed"`
	ESRCode    string `json:"esr_code,omitempty" groups:"detailed"`
}

type Country struct {
	Title   string   `json:"title" groups:"basic,detailed"`
	Codes   Codes    `json:"codes" groups:"basic,detailed"`
	Regions []Region `json:"regions" groups:"basic,detailed"`
}

type Region struct {
	Title       string       `json:"title" groups:"basic,detailed"`
	Codes       Codes        `json:"codes" groups:"basic,detailed"`
	Settlements []Settlement `json:"settlements" groups:"basic,detailed"`
}

type Settlement struct {
	Title    string        `json:"title" groups:"basic,detailed"`
	Codes    Codes         `json:"codes" groups:"basic,detailed"`
	Stations []StationNode `json:"stations" groups:"basic,detailed"`
}

type StationNode struct {
	Title         string     `json:"title" groups:"basic,detailed"`
	Codes         Codes      `json:"codes" groups:"basic,detailed"`
	Direction     string     `json:"direction" groups:"detailed"`
	StationType   string     `json:"station_type" groups:"detailed"`
	TransportType string     `json:"transport_type" groups:"basic,detailed"`
	Latitude      Coordinate `json:"latitude" groups:"detailed"`
	Longitude     Coordinate `json:"longitude" groups:"detailed"`
}

// FlatStation is a station with the titles of the nodes above it.
type FlatStation struct {
	StationNode

	Settlement string `json:"settlement" groups:"basic,detailed"`
	Region     string `json:"region" groups:"basic,detailed"`
	Country    string `json:"country" groups:"basic,detailed"`
}

func (l StationsList) missingField() string {
	if l.Countries == nil {
		return "countries"
	}
	return ""
}

// Stations walks the tree depth first and returns every station in document
// order.
func (l StationsList) Stations() []FlatStation {
	var stations []FlatStation

	for _, country := range l.Countries {
		for _, region := range country.Regions {
			for _, settlement := range region.Settlements {
				for _, station := range settlement.Stations {
					stations = append(stations, FlatStation{
						StationNode: station,
						Settlement:  settlement.Title,
						Region:      region.Title,
						Country:     country.Title,
					})
				}
			}
		}
	}

	return stations
}

func (l StationsList) CountStations() int {
	count := 0
	for _, country := range l.Countries {
		for _, region := range country.Regions {
			for _, settlement := range region.Settlements {
				count += len(settlement.Stations)
			}
		}
	}
	return count
}

// FindStations returns the stations whose title contains query, ignoring
// case. Exact title matches come first.
func (l StationsList) FindStations(query string) []FlatStation {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []FlatStation
	for _, station := range l.Stations() {
		if strings.Contains(strings.ToLower(station.Title), query) {
			matches = append(matches, station)
		}
	}

	slices.SortStableFunc(matches, func(a, b FlatStation) int {
		aExact := strings.ToLower(a.Title) == query
		bExact := strings.ToLower(b.Title) == query
		switch {
		case aExact && !bExact:
			return -1
		case bExact && !aExact:
			return 1
		}
		return 0
	})

	return matches
}

// FindByCode looks a station up by its yandex or ESR code.
func (l StationsList) FindByCode(code string) (FlatStation, bool) {
	stations := l.Stations()
	index := slices.IndexFunc(stations, func(s FlatStation) bool {
		return s.Codes.YandexCode == code || (s.Codes.ESRCode != "" && s.Codes.ESRCode == code)
	})
	if index < 0 {
		return FlatStation{}, false
	}
	return stations[index], true
}
