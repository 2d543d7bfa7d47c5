package media

import (
	"bytes"
	"image/jpeg"
)

// maxPhotoBytes is the size above which a photo gets re-encoded.
const maxPhotoBytes = 2 << 20

// reencodeQuality is the JPEG quality used when shrinking oversized photos.
const reencodeQuality = 85

// shrinkPhoto re-encodes a JPEG photo at reduced quality when it exceeds
// maxPhotoBytes. Photos at or under the limit, and payloads that do not
// decode as JPEG, are returned unchanged.
func shrinkPhoto(data []byte) []byte {
	if len(data) <= maxPhotoBytes {
		return data
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: reencodeQuality}); err != nil {
		return data
	}
	return buf.Bytes()
}
