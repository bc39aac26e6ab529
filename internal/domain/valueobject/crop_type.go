package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// CropType – closed enumeration of primary crops
// ---------------------------------------------------------------------------

// CropType identifies the applicant's primary crop. It drives both product
// eligibility and the repayment tenor cap (harvest cycle alignment).
type CropType string

const (
	CropTypeMaize        CropType = "maize"
	CropTypeRice         CropType = "rice"
	CropTypeVegetables   CropType = "vegetables"
	CropTypeLivestock    CropType = "livestock"
	CropTypeMixed        CropType = "mixed"
	CropTypeHorticulture CropType = "horticulture"
)

var validCropTypes = map[CropType]struct{}{
	CropTypeMaize:        {},
	CropTypeRice:         {},
	CropTypeVegetables:   {},
	CropTypeLivestock:    {},
	CropTypeMixed:        {},
	CropTypeHorticulture: {},
}

// ParseCropType validates a raw string against the closed crop set.
func ParseCropType(s string) (CropType, error) {
	c := CropType(s)
	if _, ok := validCropTypes[c]; !ok {
		return "", fmt.Errorf("invalid crop type: %q", s)
	}
	return c, nil
}

// String returns the string representation of the crop type.
func (c CropType) String() string { return string(c) }

// IsValid reports whether the crop type belongs to the closed set.
func (c CropType) IsValid() bool {
	_, ok := validCropTypes[c]
	return ok
}

// IsGrain reports whether the crop follows the ~4 month grain harvest cycle.
func (c CropType) IsGrain() bool {
	return c == CropTypeMaize || c == CropTypeRice
}
