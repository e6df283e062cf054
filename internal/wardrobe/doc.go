// Package wardrobe implements the recommendation engine: age calculation,
// size label parsing, outgrowth detection and weather-based outfit
// selection.
//
// Every function is pure. The current date and the random source are
// parameters so callers (and tests) control them.
package wardrobe
