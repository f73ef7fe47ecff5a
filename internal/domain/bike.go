package domain

// BikeClass tags a bike as electric or mechanic. The empty value means
// "any class" in the places that take a preference.
type BikeClass string

const (
	BikeAny      BikeClass = ""
	BikeElectric BikeClass = "electric"
	BikeMechanic BikeClass = "mechanic"
)

// ParseBikeClass maps a user-supplied type name to a BikeClass.
func ParseBikeClass(s string) (BikeClass, error) {
	switch BikeClass(s) {
	case BikeElectric:
		return BikeElectric, nil
	case BikeMechanic:
		return BikeMechanic, nil
	default:
		return "", ErrUnknownBikeType
	}
}

// Bike is never destroyed, only moved between slots. At most one slot
// references a given bike at a time.
type Bike struct {
	id    int
	class BikeClass
}

func NewBike(id int, class BikeClass) *Bike {
	return &Bike{id: id, class: class}
}

func (b *Bike) ID() int          { return b.id }
func (b *Bike) Class() BikeClass { return b.class }
