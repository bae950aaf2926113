package enums

import "fmt"

// ShippingRegion enumerates the delivery destinations the store quotes a flat
// fee for. RegionOther has no fixed fee and is negotiated over chat; the empty
// value means the customer has not picked a region yet.
type ShippingRegion string

const (
	RegionJakartaPusat   ShippingRegion = "jakarta_pusat"
	RegionJakartaBarat   ShippingRegion = "jakarta_barat"
	RegionJakartaTimur   ShippingRegion = "jakarta_timur"
	RegionJakartaSelatan ShippingRegion = "jakarta_selatan"
	RegionJakartaUtara   ShippingRegion = "jakarta_utara"
	RegionTangerang      ShippingRegion = "tangerang"
	RegionBekasi         ShippingRegion = "bekasi"
	RegionDepok          ShippingRegion = "depok"
	RegionBogor          ShippingRegion = "bogor"
	RegionOther          ShippingRegion = "other"
	RegionUnselected     ShippingRegion = ""
)

var validShippingRegions = []ShippingRegion{
	RegionJakartaPusat,
	RegionJakartaBarat,
	RegionJakartaTimur,
	RegionJakartaSelatan,
	RegionJakartaUtara,
	RegionTangerang,
	RegionBekasi,
	RegionDepok,
	RegionBogor,
	RegionOther,
}

// String implements fmt.Stringer.
func (s ShippingRegion) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ShippingRegion. The empty
// (unselected) value is not considered valid input.
func (s ShippingRegion) IsValid() bool {
	for _, candidate := range validShippingRegions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShippingRegion converts raw input into a ShippingRegion.
func ParseShippingRegion(value string) (ShippingRegion, error) {
	if value == "" {
		return RegionUnselected, nil
	}
	for _, candidate := range validShippingRegions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping region %q", value)
}

// ShippingRegions returns every region a flat fee can be configured for.
func ShippingRegions() []ShippingRegion {
	return append([]ShippingRegion{}, validShippingRegions...)
}
