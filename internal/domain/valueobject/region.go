package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Region – closed enumeration of operating zones
// ---------------------------------------------------------------------------

// Region identifies the geographic zone an applicant farms in.
type Region string

const (
	RegionNorth   Region = "North"
	RegionSouth   Region = "South"
	RegionEast    Region = "East"
	RegionWest    Region = "West"
	RegionCentral Region = "Central"
)

var validRegions = map[Region]struct{}{
	RegionNorth:   {},
	RegionSouth:   {},
	RegionEast:    {},
	RegionWest:    {},
	RegionCentral: {},
}

// ParseRegion validates a raw string against the closed region set.
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if _, ok := validRegions[r]; !ok {
		return "", fmt.Errorf("invalid region: %q", s)
	}
	return r, nil
}

// String returns the string representation of the region.
func (r Region) String() string { return string(r) }

// IsValid reports whether the region belongs to the closed set.
func (r Region) IsValid() bool {
	_, ok := validRegions[r]
	return ok
}
