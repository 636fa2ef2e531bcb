package domain

// AccommodationClass is the lodging quality class a traveller asks for.
type AccommodationClass string

const (
	ClassLuxury  AccommodationClass = "luxury"
	ClassMid     AccommodationClass = "mid"
	ClassEconomy AccommodationClass = "economy"
)

// AccommodationCycle is the fixed rotation used when falling back from the
// requested class.
var AccommodationCycle = []AccommodationClass{ClassLuxury, ClassMid, ClassEconomy}

// Valid reports whether c is one of the known classes.
func (c AccommodationClass) Valid() bool {
	switch c {
	case ClassLuxury, ClassMid, ClassEconomy:
		return true
	}
	return false
}

// Accommodation is read-only reference data. PriceRange is free text as
// entered by administrators, e.g. "1200-2500", "1,000 – 1,400" or "800".
type Accommodation struct {
	ID            int64              `json:"id" yaml:"id"`
	DestinationID int64              `json:"destinationId" yaml:"destinationId"`
	Name          string             `json:"name" yaml:"name"`
	Class         AccommodationClass `json:"type" yaml:"class"`
	PriceRange    string             `json:"priceRange" yaml:"priceRange"`
	Active        bool               `json:"-" yaml:"active"`
}
