package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const threeTierCatalog = `
packages:
  - name: Luxury
    base_group_size: 10
    total_cost_at_base_group_size: 32900
  - name: Budget
    base_group_size: 10
    total_cost_at_base_group_size: 21700
  - name: Premium
    base_group_size: 8
    total_cost_at_base_group_size: 40000
`

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
