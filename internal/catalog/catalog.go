// Package catalog holds the read-only set of tour packages quotes are priced from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/tour-service/internal/domain/model"
)

var (
	// ErrInvalidPackageSelection is returned when a tier name has no backing package.
	ErrInvalidPackageSelection = errors.New("invalid package selection")
	// ErrEmptyCatalog is returned when a catalog is built without packages.
	ErrEmptyCatalog = errors.New("catalog has no packages")
	// ErrDuplicatePackage is returned when two packages share a name.
	ErrDuplicatePackage = errors.New("duplicate package name")
	// ErrInvalidPackage is returned when a package cannot be priced.
	ErrInvalidPackage = errors.New("invalid package")
)

// Catalog is an immutable name-indexed set of tour packages.
// It is built once at startup and safe for concurrent reads.
type Catalog struct {
	byName map[string]model.TourPackage
	order  []string
}

// New validates the packages and builds a catalog preserving their order.
func New(packages []model.TourPackage) (*Catalog, error) {
	if len(packages) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		byName: make(map[string]model.TourPackage, len(packages)),
		order:  make([]string, 0, len(packages)),
	}

	for _, p := range packages {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, exists := c.byName[p.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePackage, p.Name)
		}
		c.byName[p.Name] = p
		c.order = append(c.order, p.Name)
	}

	return c, nil
}

func validate(p model.TourPackage) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidPackage)
	case p.BaseGroupSize <= 0:
		return fmt.Errorf("%w: %q base group size must be positive", ErrInvalidPackage, p.Name)
	case p.TotalCostAtBaseGroupSize < 0:
		return fmt.Errorf("%w: %q total cost must not be negative", ErrInvalidPackage, p.Name)
	}
	return nil
}

// Lookup returns the package with exactly the given name.
func (c *Catalog) Lookup(name string) (model.TourPackage, error) {
	p, ok := c.byName[name]
	if !ok {
		return model.TourPackage{}, fmt.Errorf("%w: %q", ErrInvalidPackageSelection, name)
	}
	return p, nil
}

// Packages returns a copy of all packages in declaration order.
func (c *Catalog) Packages() []model.TourPackage {
	out := make([]model.TourPackage, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Names returns the package names in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of packages.
func (c *Catalog) Len() int {
	return len(c.order)
}
