package location

import (
	"github.com/tinylib/msgp/msgp"
)

var (
	_ msgp.Marshaler   = Location{}
	_ msgp.Unmarshaler = (*Location)(nil)
	_ msgp.Sizer       = Location{}
)

// MarshalMsg appends the MessagePack encoding of the location to b.
// The location is written as a map with four entries.
func (l Location) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, l.Msgsize())
	o = msgp.AppendMapHeader(o, 4)
	o = msgp.AppendString(o, fieldLatitude)
	o = msgp.AppendFloat64(o, l.Latitude)
	o = msgp.AppendString(o, fieldLongitude)
	o = msgp.AppendFloat64(o, l.Longitude)
	o = msgp.AppendString(o, fieldAccuracy)
	o = msgp.AppendFloat64(o, l.Accuracy)
	o = msgp.AppendString(o, fieldTimestamp)
	o = msgp.AppendTime(o, l.Timestamp)
	return o, nil
}

// UnmarshalMsg decodes a location from bts and returns the remaining bytes.
// Unknown keys are skipped; all four known keys are required.
func (l *Location) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var sz uint32
	sz, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return nil, &MalformedDataError{Err: err}
	}

	var d decodedLocation
	for ; sz > 0; sz-- {
		var field []byte
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return nil, &MalformedDataError{Err: err}
		}

		name := string(field)
		switch name {
		case fieldLatitude, fieldLongitude, fieldAccuracy:
			var f float64
			f, bts, err = msgp.ReadFloat64Bytes(bts)
			if err != nil {
				return nil, &MalformedDataError{Field: name, Err: err}
			}
			switch name {
			case fieldLatitude:
				d.Latitude = &f
			case fieldLongitude:
				d.Longitude = &f
			default:
				d.Accuracy = &f
			}
		case fieldTimestamp:
			ts, rest, err := msgp.ReadTimeBytes(bts)
			if err != nil {
				return nil, &MalformedDataError{Field: name, Err: err}
			}
			d.Timestamp, bts = &ts, rest
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				return nil, &MalformedDataError{Field: name, Err: err}
			}
		}
	}

	decoded, err := d.location()
	if err != nil {
		return nil, err
	}
	*l = decoded
	return bts, nil
}

// Msgsize returns an upper bound of the encoded size of the location.
func (l Location) Msgsize() int {
	return msgp.MapHeaderSize +
		msgp.StringPrefixSize + len(fieldLatitude) + msgp.Float64Size +
		msgp.StringPrefixSize + len(fieldLongitude) + msgp.Float64Size +
		msgp.StringPrefixSize + len(fieldAccuracy) + msgp.Float64Size +
		msgp.StringPrefixSize + len(fieldTimestamp) + msgp.TimeSize
}
