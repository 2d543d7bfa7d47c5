// Package extract turns free-form listing text into structured fields.
//
// Extraction is heuristic by design: an ordered table of (label, matcher)
// rules is evaluated first-match-wins per field, and a field with no match
// is reported as unknown, never as an error. Extract is pure and
// deterministic, safe for any printable input.
package extract
