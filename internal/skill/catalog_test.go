package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogHasNoDuplicates(t *testing.T) {
	seen := make(map[string]string)
	for _, cat := range Categories() {
		assert.NotEmpty(t, cat.Name)
		assert.NotEmpty(t, cat.Skills)
		for _, s := range cat.Skills {
			if prev, ok := seen[s]; ok {
				t.Errorf("skill %q appears in both %q and %q", s, prev, cat.Name)
			}
			seen[s] = cat.Name
		}
	}
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("Python"))
	assert.True(t, IsKnown("Guitar"))
	assert.True(t, IsKnown("UI/UX Design"))
	assert.False(t, IsKnown("Underwater Basket Weaving"))
	assert.False(t, IsKnown(""))
	assert.False(t, IsKnown("python")) // catalog names are case sensitive
}

func TestAllMatchesCategories(t *testing.T) {
	all := All()
	total := 0
	for _, cat := range Categories() {
		total += len(cat.Skills)
	}
	assert.Len(t, all, total)
	for _, s := range all {
		assert.True(t, IsKnown(s), "skill %q from All() should be known", s)
	}
}
