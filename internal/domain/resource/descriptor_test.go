//go:build unit

package resource_test

import (
	"testing"

	"campus-reassign/internal/domain/resource"

	"github.com/stretchr/testify/assert"
)

func TestFeatureSet(t *testing.T) {
	t.Run("normalizes tags on insert", func(t *testing.T) {
		fs := resource.NewFeatureSet(" Projector ", "WHITEBOARD", "", "   ")

		assert.True(t, fs.Contains("projector"))
		assert.True(t, fs.Contains("Whiteboard"))
		assert.False(t, fs.Contains("av_system"))
		assert.Len(t, fs.Slice(), 2, "empty tags are dropped")
	})

	t.Run("ContainsAll", func(t *testing.T) {
		fs := resource.NewFeatureSet("projector", "whiteboard", "av_system")

		assert.True(t, fs.ContainsAll(resource.NewFeatureSet("projector", "whiteboard")))
		assert.True(t, fs.ContainsAll(resource.NewFeatureSet()), "empty requirement always satisfied")
		assert.False(t, fs.ContainsAll(resource.NewFeatureSet("projector", "wheelchair_access")))
	})

	t.Run("intersection and union sizes", func(t *testing.T) {
		a := resource.NewFeatureSet("projector", "whiteboard")
		b := resource.NewFeatureSet("whiteboard", "av_system", "wifi")

		assert.Equal(t, 1, a.IntersectionSize(b))
		assert.Equal(t, 1, b.IntersectionSize(a))
		assert.Equal(t, 4, a.UnionSize(b))
		assert.Equal(t, 4, b.UnionSize(a))
	})

	t.Run("empty set", func(t *testing.T) {
		assert.True(t, resource.NewFeatureSet().IsEmpty())
		assert.False(t, resource.NewFeatureSet("projector").IsEmpty())
	})
}

func TestLocation(t *testing.T) {
	assert.True(t, resource.Location{Building: "A"}.HasBuilding())
	assert.False(t, resource.Location{Building: "  "}.HasBuilding())
	assert.False(t, resource.Location{FreeText: "somewhere"}.HasBuilding())
}

func TestDescriptorHasCapacity(t *testing.T) {
	assert.True(t, resource.Descriptor{Capacity: 1}.HasCapacity())
	assert.False(t, resource.Descriptor{Capacity: 0}.HasCapacity())
	assert.False(t, resource.Descriptor{Capacity: -5}.HasCapacity())
}
