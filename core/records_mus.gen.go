// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceXLXWyvgEnz4LW0qq64O7jwΞΞ = ord.NewSliceSer[float32](varint.Float32)
	slicesK1D2KvI9cKOvtpVXxJbgAΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var TransactionTypeMUS = transactionTypeMUS{}

type transactionTypeMUS struct{}

func (s transactionTypeMUS) Marshal(v TransactionType, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s transactionTypeMUS) Unmarshal(bs []byte) (v TransactionType, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = TransactionType(tmp)
	return
}

func (s transactionTypeMUS) Size(v TransactionType) (size int) {
	return varint.Int.Size(int(v))
}

func (s transactionTypeMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var PropertyKindMUS = propertyKindMUS{}

type propertyKindMUS struct{}

func (s propertyKindMUS) Marshal(v PropertyKind, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s propertyKindMUS) Unmarshal(bs []byte) (v PropertyKind, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = PropertyKind(tmp)
	return
}

func (s propertyKindMUS) Size(v PropertyKind) (size int) {
	return varint.Int.Size(int(v))
}

func (s propertyKindMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var PropertyMUS = propertyMUS{}

type propertyMUS struct{}

func (s propertyMUS) Marshal(v Property, bs []byte) (n int) {
	n = varint.Int64.Marshal(v.MessageID, bs)
	n += varint.Int64.Marshal(v.ChannelID, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.PostedAt, bs[n:])
	n += TransactionTypeMUS.Marshal(v.Transaction, bs[n:])
	n += PropertyKindMUS.Marshal(v.Kind, bs[n:])
	n += varint.Int.Marshal(v.Rooms, bs[n:])
	n += varint.Float64.Marshal(v.AreaSqm, bs[n:])
	n += ord.String.Marshal(v.Floor, bs[n:])
	n += varint.Float64.Marshal(v.PriceUSD, bs[n:])
	n += ord.String.Marshal(v.Address, bs[n:])
	n += varint.Float64.Marshal(v.Latitude, bs[n:])
	n += varint.Float64.Marshal(v.Longitude, bs[n:])
	n += ord.Bool.Marshal(v.Geocoded, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += ord.String.Marshal(v.RawText, bs[n:])
	n += sliceXLXWyvgEnz4LW0qq64O7jwΞΞ.Marshal(v.Vector, bs[n:])
	n += slicesK1D2KvI9cKOvtpVXxJbgAΞΞ.Marshal(v.MediaPaths, bs[n:])
	n += ord.String.Marshal(v.VideoPath, bs[n:])
	n += varint.Int.Marshal(v.Views, bs[n:])
	n += ord.Bool.Marshal(v.Active, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s propertyMUS) Unmarshal(bs []byte) (v Property, n int, err error) {
	v.MessageID, n, err = varint.Int64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ChannelID, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PostedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Transaction, n1, err = TransactionTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Kind, n1, err = PropertyKindMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Rooms, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AreaSqm, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Floor, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PriceUSD, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Address, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Latitude, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Longitude, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Geocoded, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RawText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceXLXWyvgEnz4LW0qq64O7jwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MediaPaths, n1, err = slicesK1D2KvI9cKOvtpVXxJbgAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.VideoPath, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Views, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Active, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s propertyMUS) Size(v Property) (size int) {
	size = varint.Int64.Size(v.MessageID)
	size += varint.Int64.Size(v.ChannelID)
	size += raw.TimeUnixMicro.Size(v.PostedAt)
	size += TransactionTypeMUS.Size(v.Transaction)
	size += PropertyKindMUS.Size(v.Kind)
	size += varint.Int.Size(v.Rooms)
	size += varint.Float64.Size(v.AreaSqm)
	size += ord.String.Size(v.Floor)
	size += varint.Float64.Size(v.PriceUSD)
	size += ord.String.Size(v.Address)
	size += varint.Float64.Size(v.Latitude)
	size += varint.Float64.Size(v.Longitude)
	size += ord.Bool.Size(v.Geocoded)
	size += ord.String.Size(v.Description)
	size += ord.String.Size(v.RawText)
	size += sliceXLXWyvgEnz4LW0qq64O7jwΞΞ.Size(v.Vector)
	size += slicesK1D2KvI9cKOvtpVXxJbgAΞΞ.Size(v.MediaPaths)
	size += ord.String.Size(v.VideoPath)
	size += varint.Int.Size(v.Views)
	size += ord.Bool.Size(v.Active)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s propertyMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Int64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = TransactionTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = PropertyKindMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceXLXWyvgEnz4LW0qq64O7jwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicesK1D2KvI9cKOvtpVXxJbgAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
