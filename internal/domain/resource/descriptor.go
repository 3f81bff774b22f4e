package resource

import (
	"strings"

	"github.com/google/uuid"
)

// Type classifies resources for candidate search. Only resources of the same
// type are ever considered as substitutes for each other.
type Type string

const (
	TypeClassroom Type = "classroom"
	TypeLab       Type = "lab"
	TypeStudyRoom Type = "study_room"
	TypeSportsHall Type = "sports_hall"
	TypeEquipment Type = "equipment"
	TypeVehicle   Type = "vehicle"
)

// Location places a resource. Building and Floor are structured; FreeText is
// whatever the directory stores when structure is missing.
type Location struct {
	Building string
	Floor    int
	HasFloor bool
	FreeText string
}

func (l Location) HasBuilding() bool {
	return strings.TrimSpace(l.Building) != ""
}

// Descriptor is an immutable snapshot of a resource used for similarity
// scoring. The resource directory owns the system of record; this carries
// only what the engine reads.
type Descriptor struct {
	ID       uuid.UUID
	Name     string
	Type     Type
	Capacity int
	Features FeatureSet
	Location Location
}

// HasCapacity reports whether the directory knows this resource's capacity.
// Zero means unknown, not "fits nobody".
func (d Descriptor) HasCapacity() bool {
	return d.Capacity > 0
}

// FeatureSet is an unordered set of feature tags ("projector", "whiteboard",
// "wheelchair_access", ...). Tags are normalized to lowercase on insert.
type FeatureSet map[string]struct{}

func NewFeatureSet(tags ...string) FeatureSet {
	fs := make(FeatureSet, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			fs[t] = struct{}{}
		}
	}
	return fs
}

func (fs FeatureSet) Contains(tag string) bool {
	_, ok := fs[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}

func (fs FeatureSet) IsEmpty() bool {
	return len(fs) == 0
}

// ContainsAll reports whether every tag in other is present in fs.
func (fs FeatureSet) ContainsAll(other FeatureSet) bool {
	for tag := range other {
		if _, ok := fs[tag]; !ok {
			return false
		}
	}
	return true
}

// IntersectionSize returns |fs ∩ other|.
func (fs FeatureSet) IntersectionSize(other FeatureSet) int {
	small, large := fs, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for tag := range small {
		if _, ok := large[tag]; ok {
			n++
		}
	}
	return n
}

// UnionSize returns |fs ∪ other|.
func (fs FeatureSet) UnionSize(other FeatureSet) int {
	return len(fs) + len(other) - fs.IntersectionSize(other)
}

// Slice returns the tags in unspecified order.
func (fs FeatureSet) Slice() []string {
	out := make([]string, 0, len(fs))
	for tag := range fs {
		out = append(out, tag)
	}
	return out
}
