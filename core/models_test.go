package core

import (
	"testing"
	"time"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"short content", "asset bytes"},
		{"empty content", ""},
		{"long content", "a much longer payload that should still hash to a stable identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent([]byte(tt.content))
			id2 := IDFromContent([]byte(tt.content))

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent([]byte("photo1"))
	id2 := IDFromContent([]byte("photo2"))

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestListingMessageHasText(t *testing.T) {
	msg := &ListingMessage{ID: 1, ChannelID: -100, Text: "Продам квартиру"}
	if !msg.HasText() {
		t.Error("expected HasText() to be true")
	}

	empty := &ListingMessage{ID: 2, ChannelID: -100}
	if empty.HasText() {
		t.Error("expected HasText() to be false for empty text")
	}
}

func TestNewProperty(t *testing.T) {
	postedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	msg := &ListingMessage{
		ID:        42,
		ChannelID: -1001234,
		PostedAt:  postedAt,
		Text:      "Продам 2-комн квартиру",
		Views:     315,
	}
	fields := ExtractedFields{
		Transaction: TransactionSell,
		Kind:        PropertyKindApartment,
		Rooms:       2,
		AreaSqm:     54.5,
		PriceUSD:    65000,
		Description: "Продам 2-комн квартиру",
	}

	p := NewProperty(msg, fields)

	if p.MessageID != 42 || p.ChannelID != -1001234 {
		t.Errorf("unexpected identity: %d/%d", p.ChannelID, p.MessageID)
	}
	if !p.PostedAt.Equal(postedAt) {
		t.Errorf("unexpected PostedAt: %v", p.PostedAt)
	}
	if p.Transaction != TransactionSell || p.Kind != PropertyKindApartment {
		t.Errorf("unexpected classification: %v %v", p.Transaction, p.Kind)
	}
	if p.Rooms != 2 || p.AreaSqm != 54.5 || p.PriceUSD != 65000 {
		t.Errorf("unexpected fields: rooms=%d area=%v price=%v", p.Rooms, p.AreaSqm, p.PriceUSD)
	}
	if p.RawText != msg.Text {
		t.Errorf("unexpected RawText: %q", p.RawText)
	}
	if !p.Active {
		t.Error("expected new property to be active")
	}
	if p.Geocoded || len(p.Vector) != 0 || len(p.MediaPaths) != 0 {
		t.Error("expected enrichment results to be absent on a fresh property")
	}
}

func TestTransactionTypeString(t *testing.T) {
	if TransactionSell.String() != "sell" || TransactionRent.String() != "rent" {
		t.Error("unexpected transaction labels")
	}
	if TransactionUnknown.String() != "" {
		t.Error("expected empty label for unknown transaction")
	}
}

func TestPropertyKindString(t *testing.T) {
	if PropertyKindApartment.String() != "apartment" ||
		PropertyKindHouse.String() != "house" ||
		PropertyKindCommercial.String() != "commercial" {
		t.Error("unexpected property kind labels")
	}
	if PropertyKindUnknown.String() != "" {
		t.Error("expected empty label for unknown kind")
	}
}
