package store

import (
	"context"
	"fmt"

	"golf-match-api/internal/model"
)

func rating(n int) *int { return &n }

// DefaultVenues is the reference course catalog.
var DefaultVenues = []model.Venue{
	{
		Name:        "Pebble Beach Golf Links",
		Location:    "Pebble Beach, CA",
		Description: "One of the most beautiful courses in the world along the Monterey Peninsula.",
		ImageURL:    "https://images.unsplash.com/photo-1587174486073-ae5e5cff23aa",
		PriceRange:  "$$$$",
		Rating:      rating(5),
	},
	{
		Name:        "Torrey Pines Golf Course",
		Location:    "La Jolla, CA",
		Description: "A coastal municipal course that hosts the Farmers Insurance Open.",
		ImageURL:    "https://images.unsplash.com/photo-1600166898405-da9535204843",
		PriceRange:  "$$$",
		Rating:      rating(4),
	},
	{
		Name:        "Augusta National",
		Location:    "Augusta, GA",
		Description: "Home of the Masters Tournament.",
		ImageURL:    "https://images.unsplash.com/photo-1610148354090-c0c759100c6a",
		PriceRange:  "$$$$$",
		Rating:      rating(5),
	},
	{
		Name:        "Pinehurst No. 2",
		Location:    "Pinehurst, NC",
		Description: "A historic championship course that has hosted multiple U.S. Opens.",
		ImageURL:    "https://images.unsplash.com/photo-1599460546755-ec4920c20cf9",
		PriceRange:  "$$$$",
		Rating:      rating(5),
	},
}

// SeedVenues fills an empty catalog and reports how many venues it added.
func SeedVenues(ctx context.Context, vs VenueStore) (int, error) {
	existing, err := vs.ListVenues(ctx)
	if err != nil {
		return 0, fmt.Errorf("list venues: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i := range DefaultVenues {
		v := DefaultVenues[i]
		if err := vs.CreateVenue(ctx, &v); err != nil {
			return i, fmt.Errorf("seed %q: %w", v.Name, err)
		}
	}
	return len(DefaultVenues), nil
}
