package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// FarmType – closed enumeration of farm operating models
// ---------------------------------------------------------------------------

// FarmType categorises how the farm is operated.
type FarmType string

const (
	FarmTypeSmallholder FarmType = "smallholder"
	FarmTypeCommercial  FarmType = "commercial"
	FarmTypeCooperative FarmType = "cooperative"
)

var validFarmTypes = map[FarmType]struct{}{
	FarmTypeSmallholder: {},
	FarmTypeCommercial:  {},
	FarmTypeCooperative: {},
}

// ParseFarmType validates a raw string against the closed farm type set.
func ParseFarmType(s string) (FarmType, error) {
	f := FarmType(s)
	if _, ok := validFarmTypes[f]; !ok {
		return "", fmt.Errorf("invalid farm type: %q", s)
	}
	return f, nil
}

// String returns the string representation of the farm type.
func (f FarmType) String() string { return string(f) }

// IsValid reports whether the farm type belongs to the closed set.
func (f FarmType) IsValid() bool {
	_, ok := validFarmTypes[f]
	return ok
}
