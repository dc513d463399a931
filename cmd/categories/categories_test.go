package categories_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/finance-tracker/cmd/categories"
	"fjacquet/finance-tracker/cmd/root/roottest"
	"fjacquet/finance-tracker/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_Defaults(t *testing.T) {
	roottest.Setup(t)

	out, err := roottest.Run(t, categories.Cmd)
	require.NoError(t, err)
	for _, preset := range store.DefaultCategories {
		assert.Contains(t, out, preset.Name)
	}
}

func TestCategories_FromFile(t *testing.T) {
	env := roottest.Setup(t)

	content := `categories:
  - name: groceries
    description: Supermarket and market
  - name: travel
`
	require.NoError(t, os.WriteFile(filepath.Join(env.Dir, store.DefaultCategoriesFile), []byte(content), 0644))

	out, err := roottest.Run(t, categories.Cmd)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "groceries")
	assert.Contains(t, lines[0], "Supermarket and market")
	assert.Equal(t, "travel", strings.TrimSpace(lines[1]))
}
