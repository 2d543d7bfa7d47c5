// Package jsonfile reads listing messages from a JSON channel export,
// letting the ingestion pipeline run against archived data without a
// live messaging connection.
package jsonfile
