// Package providers declares external boundary contracts this engine
// deliberately excludes from its own scope: time-scale conversion,
// ephemeris kernel I/O, and planetary-orientation series. points holds an
// EphemerisProvider in each Ephemeris node, so a caller can wire in a
// SPICE-backed ephemeris reader or a fake for testing without this module
// importing any of that machinery. TimeProvider and PlanetaryOrientation
// are declared here only; no other package of this module uses them.
package providers
