package rides

import (
	"github.com/amp-labs/amp-witness/set"
	"github.com/amp-labs/amp-witness/witness"
)

// Filter narrows a list of rides.
type Filter func([]Ride) []Ride

// Names lists ride names in the order given.
func Names(rides []Ride) []string {
	names := make([]string, 0, len(rides))

	for _, r := range rides {
		names = append(names, r.Name)
	}

	return names
}

// SortedNames lists ride names in collated order. rides is not modified.
func SortedNames(rides []Ride) []string {
	return Names(witness.Sorted(rides, ByName))
}

// ForCategory returns a Filter keeping the rides in c.
func ForCategory(c Category) Filter {
	return func(rides []Ride) []Ride {
		return keep(rides, func(r Ride) bool {
			return r.HasCategory(c)
		})
	}
}

// WithWaitTimeUnder keeps the rides whose wait is strictly below limit.
func WithWaitTimeUnder(limit Minutes, rides []Ride) []Ride {
	return keep(rides, func(r Ride) bool {
		return r.WaitTime < limit
	})
}

// TotalWaitTime adds up every ride's wait.
func TotalWaitTime(rides []Ride) Minutes {
	sum := witness.SumMonoid[Minutes]()

	return witness.FoldMap(rides, sum.Empty, sum.Combining, rideWaitTime)
}

// OfInterest picks the family rides with a wait under 20 minutes and
// quicksorts them by wait.
func OfInterest(rides []Ride) []Ride {
	family := ForCategory(Family)(rides)

	return witness.QuickSorted(WithWaitTimeUnder(20, family), ByWaitTime) //nolint:mnd
}

func keep(rides []Ride, pred func(Ride) bool) []Ride {
	out := make([]Ride, 0, len(rides))

	for _, r := range rides {
		if pred(r) {
			out = append(out, r)
		}
	}

	return out
}

// Categories lists every category at least one ride belongs to, in
// alphabetical order.
func Categories(rides []Ride) []Category {
	seen := set.New(
		witness.ContramapHashing(witness.XXH3(), Category.String),
		witness.Equal[Category](),
	)

	for _, r := range rides {
		seen.AddAll(r.Categories...)
	}

	return seen.Sorted(witness.Natural[Category]())
}
