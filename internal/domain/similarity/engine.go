package similarity

import (
	"fmt"
	"math"
	"sort"

	"campus-reassign/internal/domain/resource"

	"github.com/google/uuid"
)

// Weights distributes the aggregate score across the four sub-scores. The
// engine trusts the caller to hand in a set that sums to 1.0; policy
// validation enforces that upstream.
type Weights struct {
	Capacity     float64 `json:"capacity"`
	Features     float64 `json:"features"`
	Location     float64 `json:"location"`
	Availability float64 `json:"availability"`
}

func DefaultWeights() Weights {
	return Weights{
		Capacity:     0.30,
		Features:     0.35,
		Location:     0.20,
		Availability: 0.15,
	}
}

func (w Weights) Sum() float64 {
	return w.Capacity + w.Features + w.Location + w.Availability
}

// MatchType buckets an aggregate score for downstream policy decisions
// (auto-approval only trusts EXACT_MATCH and TYPE_MATCH candidates).
type MatchType string

const (
	ExactMatch     MatchType = "EXACT_MATCH"
	TypeMatch      MatchType = "TYPE_MATCH"
	ManualOverride MatchType = "MANUAL_OVERRIDE"
)

// Thresholds are the bucket boundaries for MatchType. They are configurable
// rather than hard-coded; product has not pinned finer semantics down.
type Thresholds struct {
	ExactMatch float64 `json:"exactMatch"`
	TypeMatch  float64 `json:"typeMatch"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{ExactMatch: 75, TypeMatch: 50}
}

func (t Thresholds) Classify(score float64) MatchType {
	switch {
	case score >= t.ExactMatch:
		return ExactMatch
	case score >= t.TypeMatch:
		return TypeMatch
	default:
		return ManualOverride
	}
}

// Breakdown holds the four sub-scores, each 0-100.
type Breakdown struct {
	Capacity     float64 `json:"capacity"`
	Features     float64 `json:"features"`
	Location     float64 `json:"location"`
	Availability float64 `json:"availability"`
}

// Result scores one candidate against the original resource. Produced fresh
// per scoring call and only ever embedded into a request or history record.
type Result struct {
	CandidateID uuid.UUID `json:"candidateId"`
	Score       float64   `json:"score"`
	Breakdown   Breakdown `json:"breakdown"`
	MatchType   MatchType `json:"matchType"`
	Pros        []string  `json:"pros,omitempty"`
	Cons        []string  `json:"cons,omitempty"`
}

// Engine computes multi-criteria similarity between resource descriptors.
// It is stateless and safe to share; availability facts are supplied by the
// caller so scoring never blocks on I/O.
type Engine struct {
	thresholds Thresholds
}

func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Score ranks candidates against the original, descending by aggregate
// score. The sort is stable so ties keep candidate insertion order.
func (e *Engine) Score(
	original resource.Descriptor,
	candidates []resource.Descriptor,
	weights Weights,
	availability map[uuid.UUID]bool,
) []Result {
	results := make([]Result, 0, len(candidates))
	for _, cand := range candidates {
		results = append(results, e.scoreOne(original, cand, weights, availability[cand.ID]))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func (e *Engine) scoreOne(original, cand resource.Descriptor, w Weights, available bool) Result {
	breakdown := Breakdown{
		Capacity:     capacityScore(original, cand),
		Features:     featureScore(original.Features, cand.Features),
		Location:     locationScore(original.Location, cand.Location),
		Availability: availabilityScore(available),
	}

	aggregate := breakdown.Capacity*w.Capacity +
		breakdown.Features*w.Features +
		breakdown.Location*w.Location +
		breakdown.Availability*w.Availability
	aggregate = round2(aggregate)

	r := Result{
		CandidateID: cand.ID,
		Score:       aggregate,
		Breakdown:   breakdown,
		MatchType:   e.thresholds.Classify(aggregate),
	}
	r.Pros, r.Cons = annotate(original, cand, breakdown, available)
	return r
}

// capacityScore is deliberately asymmetric: extra capacity is fine (capped by
// the inverse ratio, floor 85), missing capacity carries a flat 25% penalty
// on the ratio so an undersized room never scores as well as an oversized one.
func capacityScore(original, cand resource.Descriptor) float64 {
	if !original.HasCapacity() || !cand.HasCapacity() {
		return 50
	}
	oc, cc := float64(original.Capacity), float64(cand.Capacity)
	switch {
	case original.Capacity == cand.Capacity:
		return 100
	case cc > oc:
		return math.Max(85, oc/cc*100)
	default:
		return cc / oc * 75
	}
}

// featureScore is Jaccard similarity scaled to 0-100 with a +10 bonus for a
// candidate that carries every original feature, capped at 100.
func featureScore(original, cand resource.FeatureSet) float64 {
	if original.IsEmpty() && cand.IsEmpty() {
		return 100
	}
	if original.IsEmpty() != cand.IsEmpty() {
		return 0
	}

	union := original.UnionSize(cand)
	score := float64(original.IntersectionSize(cand)) / float64(union) * 100
	if cand.ContainsAll(original) {
		score += 10
	}
	return math.Min(100, score)
}

// locationScore prefers structured building/floor data: same building is
// worth 60, same floor tops it up to 100, each floor of distance costs 10 of
// the 40-point floor bonus. Without building data on either side it falls
// back to edit-distance similarity of the free-text locations.
func locationScore(original, cand resource.Location) float64 {
	if original.HasBuilding() && cand.HasBuilding() {
		if original.Building != cand.Building {
			return textSimilarity(original.FreeText, cand.FreeText)
		}
		score := 60.0
		if original.HasFloor && cand.HasFloor {
			delta := math.Abs(float64(original.Floor - cand.Floor))
			score += math.Max(0, 40-10*delta)
		}
		return score
	}

	if original.FreeText == "" && cand.FreeText == "" {
		return 0
	}
	return textSimilarity(original.FreeText, cand.FreeText)
}

func availabilityScore(available bool) float64 {
	if available {
		return 100
	}
	return 0
}

// textSimilarity is a Levenshtein-based similarity normalized to 0-100.
func textSimilarity(a, b string) float64 {
	if a == "" && b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	maxLen := math.Max(float64(len([]rune(a))), float64(len([]rune(b))))
	dist := float64(levenshtein(a, b))
	return math.Max(0, (1-dist/maxLen)*100)
}

func annotate(original, cand resource.Descriptor, b Breakdown, available bool) (pros, cons []string) {
	if b.Capacity == 100 && b.Features == 100 && b.Location == 100 && b.Availability == 100 {
		pros = append(pros, "Exact match")
	}
	switch {
	case !original.HasCapacity() || !cand.HasCapacity():
		cons = append(cons, "Capacity unknown")
	case cand.Capacity > original.Capacity:
		pros = append(pros, fmt.Sprintf("Larger capacity (%d vs %d)", cand.Capacity, original.Capacity))
	case cand.Capacity < original.Capacity:
		cons = append(cons, fmt.Sprintf("Smaller capacity (%d vs %d)", cand.Capacity, original.Capacity))
	}
	if !original.Features.IsEmpty() && cand.Features.ContainsAll(original.Features) {
		pros = append(pros, "Has all original features")
	} else if b.Features == 0 && !original.Features.IsEmpty() {
		cons = append(cons, "No shared features")
	}
	if original.Location.HasBuilding() && cand.Location.HasBuilding() {
		if original.Location.Building == cand.Location.Building {
			pros = append(pros, "Same building")
		} else {
			cons = append(cons, "Different building")
		}
	}
	if !available {
		cons = append(cons, "Not available for the requested slot")
	}
	return pros, cons
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
