// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

package gumwall

// DefaultPalette returns the built-in gum list, for use when no palette
// directory is reachable.  Each call returns a fresh slice.
func DefaultPalette() []Entry {
	return []Entry{
		{ID: "dubble_bubble_pink", Name: "Dubble Bubble Original", Color: "#FF69B4", Price: 0.05, Brand: "Dubble Bubble", Flavor: "Original", Available: true},
		{ID: "hubba_bubba_strawberry", Name: "Hubba Bubba Strawberry", Color: "#FF1493", Price: 0.08, Brand: "Hubba Bubba", Flavor: "Strawberry", Available: true},
		{ID: "bazooka_classic", Name: "Bazooka Original", Color: "#FFB6C1", Price: 0.06, Brand: "Bazooka", Flavor: "Classic", Available: true},
		{ID: "juicy_fruit_yellow", Name: "Juicy Fruit", Color: "#FFD700", Price: 0.07, Brand: "Wrigley's", Flavor: "Juicy Fruit", Available: true},
		{ID: "big_league_green", Name: "Big League Chew Green Apple", Color: "#32CD32", Price: 0.09, Brand: "Big League Chew", Flavor: "Green Apple", Available: true},
		{ID: "trident_spearmint", Name: "Trident Spearmint", Color: "#98FB98", Price: 0.10, Brand: "Trident", Flavor: "Spearmint", Available: true},
		{ID: "orbit_blue", Name: "Orbit Bubblemint", Color: "#87CEEB", Price: 0.12, Brand: "Orbit", Flavor: "Bubblemint", Available: true},
		{ID: "extra_white", Name: "Extra Polar Ice", Color: "#F5F5F5", Price: 0.11, Brand: "Extra", Flavor: "Polar Ice", Available: true},
		{ID: "big_red", Name: "Big Red", Color: "#DC143C", Price: 0.08, Brand: "Wrigley's", Flavor: "Cinnamon", Available: true},
		{ID: "eclipse_mint", Name: "Eclipse Winterfrost", Color: "#E0FFFF", Price: 0.15, Brand: "Eclipse", Flavor: "Winterfrost", Available: true},
		{ID: "grape_hubba", Name: "Hubba Bubba Grape", Color: "#8B008B", Price: 0.08, Brand: "Hubba Bubba", Flavor: "Grape", Available: true},
		{ID: "orange_trident", Name: "Trident Orange", Color: "#FFA500", Price: 0.10, Brand: "Trident", Flavor: "Orange", Available: true},
	}
}
