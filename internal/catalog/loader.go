package catalog

import (
	"fmt"
	"os"

	"github.com/guttosm/tour-service/internal/domain/model"
	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk layout of a catalog seed.
type seedFile struct {
	Packages []model.TourPackage `yaml:"packages"`
}

// LoadFile reads and validates a YAML catalog seed.
//
//	packages:
//	  - name: Budget
//	    base_group_size: 10
//	    total_cost_at_base_group_size: 21700
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog seed.
func Parse(data []byte) (*Catalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(seed.Packages)
}
