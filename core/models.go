package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier derived from content.
// It is used for stable, deduplicating names of downloaded media assets.
type ID uint64

// IDFromContent generates a deterministic ID from bytes using BLAKE2b hashing.
// Identical content always produces the identical ID.
func IDFromContent(data []byte) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// TransactionType identifies the kind of deal a listing offers.
type TransactionType int

const (
	// TransactionUnknown means no transaction keyword was recognized.
	TransactionUnknown TransactionType = iota
	// TransactionSell represents a sale listing.
	TransactionSell
	// TransactionRent represents a rental listing.
	TransactionRent
)

func (t TransactionType) String() string {
	switch t {
	case TransactionSell:
		return "sell"
	case TransactionRent:
		return "rent"
	default:
		return ""
	}
}

// PropertyKind identifies the category of real estate a listing describes.
type PropertyKind int

const (
	// PropertyKindUnknown means no property keyword was recognized.
	PropertyKindUnknown PropertyKind = iota
	// PropertyKindApartment represents an apartment listing.
	PropertyKindApartment
	// PropertyKindHouse represents a house or cottage listing.
	PropertyKindHouse
	// PropertyKindCommercial represents commercial real estate.
	PropertyKindCommercial
)

func (k PropertyKind) String() string {
	switch k {
	case PropertyKindApartment:
		return "apartment"
	case PropertyKindHouse:
		return "house"
	case PropertyKindCommercial:
		return "commercial"
	default:
		return ""
	}
}

// AttachmentKind identifies the media type of a message attachment.
type AttachmentKind int

const (
	// AttachmentPhoto is a photo attachment.
	AttachmentPhoto AttachmentKind = iota + 1
	// AttachmentVideo is a video attachment.
	AttachmentVideo
)

// Attachment is a media item carried by a listing message.
// Ref is the transport-specific handle used to download the payload.
type Attachment struct {
	Kind AttachmentKind
	Ref  string
}

// ListingMessage is a single message received from a broadcast channel.
// It is immutable input: the pipeline never modifies or persists it directly.
type ListingMessage struct {
	ID          int64
	ChannelID   int64
	PostedAt    time.Time
	Text        string
	GroupID     int64 // 0 when the message is not part of an album
	Attachments []Attachment
	Views       int
}

// HasText reports whether the message carries a text body.
// Messages without text are skipped by the pipeline.
func (m *ListingMessage) HasText() bool {
	return m.Text != ""
}

// HasMedia reports whether the message carries at least one attachment.
func (m *ListingMessage) HasMedia() bool {
	return len(m.Attachments) > 0
}

// RoomsUnknown marks an absent room count. 0 is a valid value (studio).
const RoomsUnknown = -1

// ExtractedFields holds the structured data recognized in a message text.
// Absent fields carry their zero value (RoomsUnknown for Rooms); the
// extractor never reports an error for a missed field.
type ExtractedFields struct {
	Transaction TransactionType
	Kind        PropertyKind
	Rooms       int     // RoomsUnknown when absent
	AreaSqm     float64 // square meters, 0 when absent
	Floor       string  // "floor/total" form, "" when absent
	PriceUSD    float64 // 0 when absent
	Address     string  // heuristic fragment, "" when absent
	Description string  // whitespace-trimmed raw text
}

// Property is the persisted, authoritative record produced for one message.
// MessageID is unique per channel; a second ingestion attempt for the same
// message must not create a second row.
type Property struct {
	MessageID   int64
	ChannelID   int64
	PostedAt    time.Time
	Transaction TransactionType
	Kind        PropertyKind
	Rooms       int
	AreaSqm     float64
	Floor       string
	PriceUSD    float64
	Address     string
	Latitude    float64
	Longitude   float64
	Geocoded    bool // true when Latitude/Longitude were resolved
	Description string
	RawText     string
	Vector      []float32 // embedding for semantic search, empty on soft failure
	MediaPaths  []string
	VideoPath   string // first video asset, "" when none
	Views       int
	Active      bool
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// NewProperty builds a Property from a message and its extracted fields.
// Enrichment results (media, coordinates, vector) are filled in by the
// pipeline afterwards and stay absent when the corresponding step soft-failed.
func NewProperty(msg *ListingMessage, fields ExtractedFields) *Property {
	return &Property{
		MessageID:   msg.ID,
		ChannelID:   msg.ChannelID,
		PostedAt:    msg.PostedAt,
		Transaction: fields.Transaction,
		Kind:        fields.Kind,
		Rooms:       fields.Rooms,
		AreaSqm:     fields.AreaSqm,
		Floor:       fields.Floor,
		PriceUSD:    fields.PriceUSD,
		Address:     fields.Address,
		Description: fields.Description,
		RawText:     msg.Text,
		Views:       msg.Views,
		Active:      true,
	}
}

// SimilarityMatch represents a property match from vector similarity search.
type SimilarityMatch struct {
	MessageID int64
	Score     float32
}

// SearchResult represents a search result with the full record and relevance score.
type SearchResult struct {
	Property *Property
	Score    float32
}
