// Package rides models an amusement park's rides and shows the witness
// package at work on them: sorting by name or wait time, filtering by
// category and totalling wait times.
package rides

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// namespace scopes ride IDs so they never collide with name-based UUIDs
// minted elsewhere.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:amp-witness:rides")) //nolint:gochecknoglobals

// Category classifies a ride.
type Category string

const (
	Family   Category = "family"
	Kids     Category = "kids"
	Thrill   Category = "thrill"
	Scary    Category = "scary"
	Relaxing Category = "relaxing"
	Water    Category = "water"
)

func (c Category) String() string {
	return string(c)
}

// Minutes is a wait time.
type Minutes float64

// String prints whole minutes with one decimal place ("10.0") and anything
// else in its shortest form ("12.5").
func (m Minutes) String() string {
	f := float64(m)
	if f == math.Trunc(f) && math.Abs(f) < 1e16 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Ride is one attraction and its current wait.
type Ride struct {
	Name       string
	Categories []Category
	WaitTime   Minutes
}

// HasCategory reports whether the ride belongs to c.
func (r Ride) HasCategory(c Category) bool {
	return slices.Contains(r.Categories, c)
}

// ID is a stable identifier derived from the ride's name.
func (r Ride) ID() uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(r.Name))
}

// String renders the ride as
//
//	Ride -"Raging Rapids", wait: 10.0 mins, categories: [family, thrill, water]
//
// The name is printed as-is between the quotes.
func (r Ride) String() string {
	names := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		names = append(names, c.String())
	}

	return fmt.Sprintf(`Ride -"%s", wait: %s mins, categories: [%s]`, r.Name, r.WaitTime, strings.Join(names, ", "))
}

// Park returns the park's rides in their listed order. Each call returns a
// fresh slice.
func Park() []Ride {
	return []Ride{
		{Name: "Raging Rapids", Categories: []Category{Family, Thrill, Water}, WaitTime: 10},
		{Name: "Crazy Funhouse", Categories: []Category{Family}, WaitTime: 15},
		{Name: "Spinning Tea Cups", Categories: []Category{Kids}, WaitTime: 15},
		{Name: "Spooky Hollow", Categories: []Category{Scary}, WaitTime: 30},
		{Name: "Thunder Coaster", Categories: []Category{Family, Thrill}, WaitTime: 15},
		{Name: "Grand Carousel", Categories: []Category{Family, Kids}, WaitTime: 15},
		{Name: "Bumper Boats", Categories: []Category{Family, Water}, WaitTime: 25},
		{Name: "Mountain Railroad", Categories: []Category{Family, Relaxing}, WaitTime: 0},
	}
}
