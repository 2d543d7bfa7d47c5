package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateListingMessage(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	tests := []struct {
		name    string
		msg     *ListingMessage
		wantErr error
	}{
		{
			name: "valid message",
			msg: &ListingMessage{
				ID:        1,
				ChannelID: -1001234,
				PostedAt:  validTime,
				Text:      "Сдам квартиру",
			},
			wantErr: nil,
		},
		{
			name: "valid message without text",
			msg: &ListingMessage{
				ID:        2,
				ChannelID: -1001234,
				PostedAt:  validTime,
			},
			wantErr: nil,
		},
		{
			name:    "nil message",
			msg:     nil,
			wantErr: ErrInvalidMessage,
		},
		{
			name: "zero id",
			msg: &ListingMessage{
				ID:        0,
				ChannelID: -1001234,
				PostedAt:  validTime,
			},
			wantErr: ErrInvalidMessageID,
		},
		{
			name: "negative id",
			msg: &ListingMessage{
				ID:        -5,
				ChannelID: -1001234,
				PostedAt:  validTime,
			},
			wantErr: ErrInvalidMessageID,
		},
		{
			name: "zero channel",
			msg: &ListingMessage{
				ID:       3,
				PostedAt: validTime,
			},
			wantErr: ErrInvalidChannelID,
		},
		{
			name: "zero timestamp",
			msg: &ListingMessage{
				ID:        4,
				ChannelID: -1001234,
			},
			wantErr: ErrInvalidTimestamp,
		},
		{
			name: "future timestamp",
			msg: &ListingMessage{
				ID:        5,
				ChannelID: -1001234,
				PostedAt:  futureTime,
			},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListingMessage(tt.msg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateListingMessage() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateListingMessage() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProperty(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)

	valid := func() *Property {
		return &Property{
			MessageID: 10,
			ChannelID: -1001234,
			PostedAt:  validTime,
			Rooms:     2,
			Active:    true,
		}
	}

	t.Run("valid property", func(t *testing.T) {
		if err := ValidateProperty(valid()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown rooms is valid", func(t *testing.T) {
		p := valid()
		p.Rooms = RoomsUnknown
		if err := ValidateProperty(p); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("studio is valid", func(t *testing.T) {
		p := valid()
		p.Rooms = 0
		if err := ValidateProperty(p); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rooms above maximum", func(t *testing.T) {
		p := valid()
		p.Rooms = MaxRooms + 1
		if err := ValidateProperty(p); !errors.Is(err, ErrInvalidRooms) {
			t.Errorf("error = %v, want %v", err, ErrInvalidRooms)
		}
	})

	t.Run("nil property", func(t *testing.T) {
		if err := ValidateProperty(nil); !errors.Is(err, ErrInvalidProperty) {
			t.Errorf("error = %v, want %v", err, ErrInvalidProperty)
		}
	})

	t.Run("zero message id", func(t *testing.T) {
		p := valid()
		p.MessageID = 0
		if err := ValidateProperty(p); !errors.Is(err, ErrInvalidMessageID) {
			t.Errorf("error = %v, want %v", err, ErrInvalidMessageID)
		}
	})
}

func TestValidateRooms(t *testing.T) {
	tests := []struct {
		name    string
		rooms   int
		wantErr bool
	}{
		{"unknown", RoomsUnknown, false},
		{"studio", 0, false},
		{"typical", 3, false},
		{"maximum", MaxRooms, false},
		{"above maximum", MaxRooms + 1, true},
		{"absurd", 123, true},
		{"negative but not unknown", -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRooms(tt.rooms)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRooms(%d) error = %v, wantErr %v", tt.rooms, err, tt.wantErr)
			}
		})
	}
}
