// Package media downloads and stores listing attachments.
//
// Attachments are fetched concurrently through a worker pool, named by a
// hash of their content so repeated downloads land on the same file, and
// oversized JPEG photos are re-encoded to keep the media directory small.
// A failing asset is skipped and logged; it never fails the whole batch.
package media
