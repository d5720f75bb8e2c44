package rides

import (
	"github.com/amp-labs/amp-witness/witness"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

var (
	// ByName orders rides by name the way an English reader expects.
	ByName = witness.ContramapOrdering(witness.Collated(language.English), rideName) //nolint:gochecknoglobals

	// ByWaitTime orders rides by wait, shortest first.
	ByWaitTime = witness.ContramapOrdering(witness.Natural[Minutes](), rideWaitTime) //nolint:gochecknoglobals

	// ByCategoryCount orders rides by how many categories they belong to.
	ByCategoryCount = witness.ContramapOrdering(witness.Natural[int](), func(r Ride) int { //nolint:gochecknoglobals
		return len(r.Categories)
	})

	// SameRide treats rides with the same ID as one ride, whatever their
	// current wait.
	SameRide = witness.ContramapEquating(witness.Equal[uuid.UUID](), Ride.ID) //nolint:gochecknoglobals

	// Describe renders a ride the way Ride.String does.
	Describe = witness.Stringer[Ride]() //nolint:gochecknoglobals

	// Name describes a ride by name alone.
	Name = witness.Contramap(witness.NewDescribing(witness.Identity[string]()), rideName) //nolint:gochecknoglobals
)

func rideName(r Ride) string {
	return r.Name
}

func rideWaitTime(r Ride) Minutes {
	return r.WaitTime
}
