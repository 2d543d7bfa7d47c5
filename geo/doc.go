// Package geo resolves listing addresses to coordinates.
//
// Geocoding is strictly best-effort. A record with no coordinates is a
// valid record, so every failure mode here degrades to a miss rather
// than an error: a missing API key, a network failure, a non-OK status,
// a malformed body, and an empty result all look the same to callers.
package geo
