// Package photo provides the typed photographic values shared by every
// logbook schema: exact rationals for exposure settings, film speed with
// arithmetic and logarithmic scales, timezone-aware capture instants, and
// geographic positions with DMS formatting.
//
// All parsing entry points normalize heterogeneous literal forms into one
// canonical representation so that logically-equivalent records from any
// source compare equal.
package photo
