//go:build unit || e2e

package builder

import (
	"campus-reassign/internal/domain/resource"

	"github.com/google/uuid"
)

type DescriptorBuilder struct {
	ID       uuid.UUID
	Name     string
	Type     resource.Type
	Capacity int
	Features []string
	Building string
	Floor    int
	HasFloor bool
	FreeText string
}

func NewDescriptorBuilder() *DescriptorBuilder {
	return &DescriptorBuilder{
		ID:       uuid.New(),
		Name:     "Room A-101",
		Type:     resource.TypeClassroom,
		Capacity: 30,
		Features: []string{"projector", "whiteboard"},
		Building: "A",
		Floor:    1,
		HasFloor: true,
		FreeText: "Building A, Floor 1",
	}
}

func (b *DescriptorBuilder) With(mutate func(*DescriptorBuilder)) *DescriptorBuilder {
	mutate(b)
	return b
}

func (b *DescriptorBuilder) Build() resource.Descriptor {
	return resource.Descriptor{
		ID:       b.ID,
		Name:     b.Name,
		Type:     b.Type,
		Capacity: b.Capacity,
		Features: resource.NewFeatureSet(b.Features...),
		Location: resource.Location{
			Building: b.Building,
			Floor:    b.Floor,
			HasFloor: b.HasFloor,
			FreeText: b.FreeText,
		},
	}
}
