package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DEFAULT_GROUP_SIZE", "")
	t.Setenv("DEFAULT_MARGIN_PERCENT", "")
	t.Setenv("CATALOG_FILE", "")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "budget defaults",
			args: []string{"quote", "--package", "Budget"},
			want: []string{"Sell price per person  2710", "Total profit           5400"},
		},
		{
			name: "luxury zero margin",
			args: []string{"quote", "-p", "Luxury", "-m", "0"},
			want: []string{"Sell price per person  3290", "Total profit           0"},
		},
		{
			name: "negative margin loses money",
			args: []string{"quote", "-p", "Budget", "-g", "10", "-m", "-10"},
			want: []string{"Sell price per person  1950", "Total profit           -2200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestQuote_JSON(t *testing.T) {
	out, err := run(t, "quote", "-p", "Luxury", "-g", "10", "-m", "25", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Package            string  `json:"package"`
		SellPricePerPerson float64 `json:"sell_price_per_person"`
		TotalProfit        float64 `json:"total_profit"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Luxury", resp.Package)
	assert.Equal(t, 4110.0, resp.SellPricePerPerson)
	assert.Equal(t, 8200.0, resp.TotalProfit)
}

func TestQuote_Errors(t *testing.T) {
	t.Run("unknown package", func(t *testing.T) {
		out, err := run(t, "quote", "-p", "Gold")
		assert.ErrorIs(t, err, catalog.ErrInvalidPackageSelection)
		assert.Empty(t, out)
	})

	t.Run("missing package flag", func(t *testing.T) {
		_, err := run(t, "quote")
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := run(t, "quote", "-p", "Budget", "--format", "xml")
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("non-integer group size", func(t *testing.T) {
		_, err := run(t, "quote", "-p", "Budget", "-g", "ten")
		assert.Error(t, err)
	})
}

func TestPackages(t *testing.T) {
	out, err := run(t, "packages")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Luxury"))
	assert.True(t, strings.HasPrefix(lines[2], "Budget"))
	assert.Contains(t, lines[2], "2170")
}

func TestPackages_CatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
packages:
  - name: Premium
    base_group_size: 8
    total_cost_at_base_group_size: 40000
`), 0o600))

	out, err := run(t, "--catalog", path, "packages", "--format", "json")
	require.NoError(t, err)

	var pkgs []struct {
		Name          string  `json:"name"`
		CostPerPerson float64 `json:"cost_per_person"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &pkgs))
	require.Len(t, pkgs, 1)
	assert.Equal(t, "Premium", pkgs[0].Name)
	assert.Equal(t, 5000.0, pkgs[0].CostPerPerson)

	_, err = run(t, "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "packages")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "--margin", "25")
	require.NoError(t, err)

	assert.Contains(t, out, "SELL/PERSON @25%")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "4110")
	assert.Contains(t, lines[2], "5400")

	out, err = run(t, "compare", "-m", "0", "-f", "json")
	require.NoError(t, err)
	var rows []struct {
		GroupProfit float64 `json:"group_profit"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Zero(t, r.GroupProfit)
	}
}

func TestQuote_NonDividingCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
packages:
  - name: Third
    base_group_size: 3
    total_cost_at_base_group_size: 1000
`), 0o600))

	out, err := run(t, "--catalog", path, "quote", "-p", "Third", "-g", "3", "-m", "25")
	require.NoError(t, err)

	assert.Contains(t, out, "Cost per person        333.33\n")
	assert.Contains(t, out, "Total cost             1000\n")
	assert.Contains(t, out, "Total profit           260\n")
}
