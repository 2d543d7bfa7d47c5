package badger

import (
	"encoding/binary"
	"time"
)

// Key prefixes for different data types
const (
	propertyPrefix     = "proprec"
	propertyDatePrefix = "proprecd"
)

// makePropertyKey generates the primary key for a property.
// Format: prefix:channelID:messageID, both BigEndian so iteration within a
// channel walks message ids in ascending order.
func makePropertyKey(channelID, messageID int64) []byte {
	prefix := propertyPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for channelID + 8 bytes for messageID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(channelID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(messageID))
	return buf
}

// makePartialPropertyKey generates the channel-scoped prefix for range scans.
// Format: prefix:channelID
func makePartialPropertyKey(channelID int64) []byte {
	prefix := propertyPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for channelID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(channelID))
	return buf
}

// makePropertyDateKey generates a composite key for the posting-date index.
// Format: prefix:timestamp:channelID:messageID. The value stored under it is
// the property's primary key, so index hits resolve with a single Get.
func makePropertyDateKey(timestamp time.Time, channelID, messageID int64) []byte {
	prefix := propertyDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 24 // 8 bytes each for timestamp, channelID, messageID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(channelID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(messageID))
	return buf
}

// makePartialPropertyDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialPropertyDateKey(timestamp time.Time) []byte {
	prefix := propertyDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}
