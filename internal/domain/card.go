package domain

// CardClass selects the fare plan of a card.
type CardClass string

const (
	CardVlibre CardClass = "vlibre"
	CardVmax   CardClass = "vmax"
	CardCredit CardClass = "credit"
)

// ParseCardClass maps a user-supplied type name to a CardClass.
func ParseCardClass(s string) (CardClass, error) {
	switch CardClass(s) {
	case CardVlibre:
		return CardVlibre, nil
	case CardVmax:
		return CardVmax, nil
	case CardCredit:
		return CardCredit, nil
	default:
		return "", ErrUnknownCardType
	}
}

// Card is the means of payment of one user. Vlibre and Vmax cards carry
// a time-credit balance in minutes that discounts the part of a ride
// beyond the first hour. A credit card has no balance: earned credit is
// still recorded on the user's statistics but never reduces a fare.
type Card struct {
	id         int
	class      CardClass
	timeCredit int
	user       *User
}

func NewCard(id int, class CardClass, user *User) *Card {
	return &Card{id: id, class: class, user: user}
}

func (c *Card) ID() int          { return c.id }
func (c *Card) Class() CardClass { return c.class }
func (c *Card) User() *User      { return c.user }

// TimeCredit returns the balance in minutes. Always 0 for a credit card.
func (c *Card) TimeCredit() int {
	if c.class == CardCredit {
		return 0
	}
	return c.timeCredit
}

// AddCredit grants minutes of time credit and records them on the
// owner's statistics. A credit card keeps no balance.
func (c *Card) AddCredit(minutes int) {
	if c.class != CardCredit {
		c.timeCredit += minutes
	}
	c.user.stats.CreditEarned += minutes
}

// UseCredit consumes minutes from the balance.
func (c *Card) UseCredit(minutes int) error {
	if c.TimeCredit() < minutes {
		return ErrInsufficientCredit
	}
	c.timeCredit -= minutes
	return nil
}

// ComputeFare returns the price in euros of a ride of the given
// duration, consuming time credit where the plan allows it.
//
// Credit plan: flat rate, 1 euro per hour for a mechanic bike and 2 for
// an electric one. Vlibre: first hour at 1 euro (electric) or free
// (mechanic), the exceeding time is covered by credit first and billed
// at double rate (electric) or normal rate (mechanic). Vmax: first hour
// free on both classes, exceeding time covered by credit first.
func (c *Card) ComputeFare(class BikeClass, minutes int) float64 {
	t := float64(minutes)
	switch c.class {
	case CardCredit:
		if class == BikeElectric {
			return 2 * t / 60
		}
		return t / 60
	case CardVlibre:
		if class == BikeElectric {
			if minutes <= 60 {
				return t / 60
			}
			return 1 + 2*c.consumeExceeding(minutes-60)/60
		}
		if minutes <= 60 {
			return 0
		}
		return c.consumeExceeding(minutes-60) / 60
	case CardVmax:
		if minutes <= 60 {
			return 0
		}
		return c.consumeExceeding(minutes-60) / 60
	}
	return 0
}

// consumeExceeding covers as much of the exceeding time as the balance
// allows and returns the minutes left to bill.
func (c *Card) consumeExceeding(exceeding int) float64 {
	if c.timeCredit >= exceeding {
		c.timeCredit -= exceeding
		return 0
	}
	remaining := exceeding - c.timeCredit
	c.timeCredit = 0
	return float64(remaining)
}
