// Package reembed regenerates embedding vectors for stored property
// records, typically after switching embedding models.
//
// Records are walked in date order and processed in batches with retry
// and exponential backoff. Vectors are normalized before storage so
// similarity scans can use a plain dot product. Records whose fields
// yield no embedding text keep an empty vector.
package reembed
