// Package source defines where listing messages come from.
//
// The ingestion pipeline is deliberately ignorant of any concrete
// messaging platform; it only needs history paging, a live feed, and
// album sibling lookup, which this package's Source interface captures.
package source
