package domain

import "fmt"

// SectionKind is a catalog section served by the remote API.
type SectionKind int

const (
	SectionWorkouts SectionKind = iota
	SectionNutrition
	SectionProducts
)

// SectionKinds lists every catalog section in navigation order.
var SectionKinds = []SectionKind{SectionWorkouts, SectionNutrition, SectionProducts}

// String returns the API path segment for the section.
func (k SectionKind) String() string {
	switch k {
	case SectionWorkouts:
		return "workouts"
	case SectionNutrition:
		return "nutrition"
	case SectionProducts:
		return "products"
	}
	return fmt.Sprintf("SectionKind(%d)", int(k))
}

// Valid reports whether k is one of the known sections.
func (k SectionKind) Valid() bool {
	return k >= SectionWorkouts && k <= SectionProducts
}

// ParseSectionKind maps an API path segment back to its section.
func ParseSectionKind(name string) (SectionKind, error) {
	for _, k := range SectionKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("domain.ParseSectionKind: unknown section %q", name)
}
