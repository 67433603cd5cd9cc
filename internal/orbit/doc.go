// Package orbit converts fixed Keplerian elements into positions.
//
// The package works in two layers:
//
//   - [Elements]: the element set as a catalog supplies it, with optional
//     fields and explicit length units
//   - [Orbit]: the canonical, validated form in radians and AU that every
//     computation runs on
//
// A [Calculator] evaluates a single element set at a time offset in days
// since the reference epoch. A [Resolver] walks parent links through a
// [BodySource] so that a moon's position is its parent's position plus its
// own relative displacement, evaluated at the same time.
//
// All positions are heliocentric ecliptic coordinates in AU.
//
// # Thread Safety
//
// Calculator and Resolver hold no mutable state and may be shared between
// goroutines as long as the BodySource is not mutated concurrently.
package orbit
