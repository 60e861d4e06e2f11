package enums

import "golang.org/x/exp/slices"

type TransportType string

const (
	TransportTypePlane      TransportType = "plane"
	TransportTypeTrain      TransportType = "train"
	TransportTypeSuburban   TransportType = "suburban"
	TransportTypeBus        TransportType = "bus"
	TransportTypeWater      TransportType = "water"
	TransportTypeHelicopter TransportType = "helicopter"
)

var transportTypes = []TransportType{
	TransportTypePlane,
	TransportTypeTrain,
	TransportTypeSuburban,
	TransportTypeBus,
	TransportTypeWater,
	TransportTypeHelicopter,
}

func TransportTypes() []TransportType {
	return slices.Clone(transportTypes)
}

func ParseTransportType(value string) (TransportType, error) {
	return parse("transport type", transportTypes, value)
}

func (t TransportType) String() string {
	return string(t)
}

func (t TransportType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

func (t *TransportType) UnmarshalText(text []byte) error {
	parsed, err := ParseTransportType(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
