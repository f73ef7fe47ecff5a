package path

import (
	"fmt"

	"github.com/pietrodll/school-projects/internal/domain"
)

// Strategy names accepted by ForName.
const (
	NameMinimalWalking = "minimal-walking"
	NameFastestPath    = "fastest-path"
	NameAvoidPlus      = "avoid-plus"
	NamePreferPlus     = "prefer-plus"
	NameUniformity     = "uniformity"
)

// Options carries the tunables the strategies need.
type Options struct {
	Speeds           Speeds
	PreferPlusDetour float64
	UniformityDetour float64
}

func DefaultOptions() Options {
	return Options{
		Speeds:           DefaultSpeeds(),
		PreferPlusDetour: 1.10,
		UniformityDetour: 1.05,
	}
}

// ForName builds the strategy behind a user-facing name.
func ForName(name string, net *domain.Network, opts Options) (domain.PathStrategy, error) {
	switch name {
	case NameMinimalWalking:
		return NewMinimalWalking(net), nil
	case NameFastestPath:
		return NewFastestPath(net, opts.Speeds), nil
	case NameAvoidPlus:
		return NewAvoidPlus(net), nil
	case NamePreferPlus:
		return NewPreferPlus(net, opts.PreferPlusDetour), nil
	case NameUniformity:
		return NewUniformity(net, opts.UniformityDetour), nil
	default:
		return nil, fmt.Errorf("unknown path strategy %q", name)
	}
}
