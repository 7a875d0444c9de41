package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/tour-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		packages    []model.TourPackage
		expectedErr error
	}{
		{
			name:     "default packages",
			packages: DefaultPackages(),
		},
		{
			name:        "empty catalog",
			packages:    nil,
			expectedErr: ErrEmptyCatalog,
		},
		{
			name: "duplicate names",
			packages: []model.TourPackage{
				{Name: "Budget", BaseGroupSize: 10, TotalCostAtBaseGroupSize: 100},
				{Name: "Budget", BaseGroupSize: 10, TotalCostAtBaseGroupSize: 200},
			},
			expectedErr: ErrDuplicatePackage,
		},
		{
			name:        "blank name",
			packages:    []model.TourPackage{{Name: "  ", BaseGroupSize: 10}},
			expectedErr: ErrInvalidPackage,
		},
		{
			name:        "zero base group size",
			packages:    []model.TourPackage{{Name: "Budget", BaseGroupSize: 0, TotalCostAtBaseGroupSize: 100}},
			expectedErr: ErrInvalidPackage,
		},
		{
			name:        "negative cost",
			packages:    []model.TourPackage{{Name: "Budget", BaseGroupSize: 10, TotalCostAtBaseGroupSize: -1}},
			expectedErr: ErrInvalidPackage,
		},
		{
			name:     "zero cost is allowed",
			packages: []model.TourPackage{{Name: "Free", BaseGroupSize: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.packages)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.packages), c.Len())
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	t.Run("exact match", func(t *testing.T) {
		p, err := c.Lookup("Luxury")
		require.NoError(t, err)
		assert.Equal(t, int64(32900), p.TotalCostAtBaseGroupSize)
		assert.Equal(t, 10, p.BaseGroupSize)
	})

	for _, name := range []string{"NoSuchTier", "luxury", "Luxury Package", "Lux", ""} {
		t.Run("miss "+name, func(t *testing.T) {
			p, err := c.Lookup(name)
			assert.ErrorIs(t, err, ErrInvalidPackageSelection)
			assert.Equal(t, model.TourPackage{}, p)
		})
	}
}

func TestCatalog_PackagesAreCopies(t *testing.T) {
	c := Default()

	pkgs := c.Packages()
	require.Len(t, pkgs, 2)
	assert.Equal(t, []string{"Luxury", "Budget"}, c.Names())

	pkgs[0].TotalCostAtBaseGroupSize = 1
	names := c.Names()
	names[0] = "Mutated"

	p, err := c.Lookup("Luxury")
	require.NoError(t, err)
	assert.Equal(t, int64(32900), p.TotalCostAtBaseGroupSize)
	assert.Equal(t, "Luxury", c.Names()[0])
}

func TestParse(t *testing.T) {
	t.Run("third tier", func(t *testing.T) {
		c, err := Parse([]byte(`
packages:
  - name: Luxury
    base_group_size: 10
    total_cost_at_base_group_size: 32900
  - name: Budget
    base_group_size: 10
    total_cost_at_base_group_size: 21700
  - name: Premium
    title: Premium Package
    base_group_size: 8
    total_cost_at_base_group_size: 40000
    guide: Private guide
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Luxury", "Budget", "Premium"}, c.Names())

		p, err := c.Lookup("Premium")
		require.NoError(t, err)
		assert.Equal(t, "Private guide", p.Guide)
		assert.Equal(t, "5000", p.CostPerPerson().String())
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("packages: [:"))
		assert.Error(t, err)
	})

	t.Run("no packages", func(t *testing.T) {
		_, err := Parse([]byte("packages: []"))
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages:\n  - name: Solo\n    base_group_size: 1\n    total_cost_at_base_group_size: 999\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultItinerary(t *testing.T) {
	days := DefaultItinerary()
	require.Len(t, days, 2)
	assert.Equal(t, "Day 1", days[0].Day)
	assert.Equal(t, "Day 2", days[1].Day)
	for _, d := range days {
		assert.NotEmpty(t, d.Blocks)
		for _, b := range d.Blocks {
			assert.NotEmpty(t, b.Time)
			assert.NotEmpty(t, b.Items)
		}
	}
}
