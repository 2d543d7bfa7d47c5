package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donestate/estated/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent([]byte("asset bytes"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalProperty(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	property := &core.Property{
		MessageID:   4711,
		ChannelID:   -1001234,
		PostedAt:    now.Add(-time.Hour),
		Transaction: core.TransactionSell,
		Kind:        core.PropertyKindApartment,
		Rooms:       2,
		AreaSqm:     54.5,
		Floor:       "3/9",
		PriceUSD:    65000,
		Address:     "ул. Киевская 120",
		Latitude:    42.8746,
		Longitude:   74.5698,
		Geocoded:    true,
		Description: "Продам 2-комн квартиру",
		RawText:     "Продам 2-комн квартиру\nул. Киевская 120",
		Vector:      []float32{0.1, -0.2, 0.3},
		MediaPaths:  []string{"/media/a.jpg", "/media/b.jpg"},
		VideoPath:   "/media/tour.mp4",
		Views:       315,
		Active:      true,
		InsertedAt:  now,
		UpdatedAt:   now,
	}

	data := MarshalProperty(property)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalProperty(data)
	require.NoError(t, err)

	assert.Equal(t, property.MessageID, decoded.MessageID)
	assert.Equal(t, property.ChannelID, decoded.ChannelID)
	assert.True(t, property.PostedAt.Equal(decoded.PostedAt))
	assert.Equal(t, property.Transaction, decoded.Transaction)
	assert.Equal(t, property.Kind, decoded.Kind)
	assert.Equal(t, property.Rooms, decoded.Rooms)
	assert.Equal(t, property.AreaSqm, decoded.AreaSqm)
	assert.Equal(t, property.Floor, decoded.Floor)
	assert.Equal(t, property.PriceUSD, decoded.PriceUSD)
	assert.Equal(t, property.Address, decoded.Address)
	assert.Equal(t, property.Latitude, decoded.Latitude)
	assert.Equal(t, property.Longitude, decoded.Longitude)
	assert.Equal(t, property.Geocoded, decoded.Geocoded)
	assert.Equal(t, property.Description, decoded.Description)
	assert.Equal(t, property.RawText, decoded.RawText)
	assert.Equal(t, property.Vector, decoded.Vector)
	assert.Equal(t, property.MediaPaths, decoded.MediaPaths)
	assert.Equal(t, property.VideoPath, decoded.VideoPath)
	assert.Equal(t, property.Views, decoded.Views)
	assert.Equal(t, property.Active, decoded.Active)
	assert.True(t, property.InsertedAt.Equal(decoded.InsertedAt))
	assert.True(t, property.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestMarshalUnmarshalProperty_Minimal(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	// Absent enrichment stays absent across the codec
	property := &core.Property{
		MessageID: 1,
		ChannelID: -1,
		PostedAt:  now,
		Rooms:     core.RoomsUnknown,
		RawText:   "no structure here",
		Active:    true,
	}

	decoded, err := UnmarshalProperty(MarshalProperty(property))
	require.NoError(t, err)
	assert.Equal(t, core.RoomsUnknown, decoded.Rooms)
	assert.False(t, decoded.Geocoded)
	assert.Empty(t, decoded.Vector)
	assert.Empty(t, decoded.MediaPaths)
}

func TestUnmarshalProperty_Invalid(t *testing.T) {
	_, err := UnmarshalProperty([]byte{0xff})
	assert.Error(t, err)
}
