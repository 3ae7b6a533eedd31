package isocal

import (
	"encoding/binary"
	"fmt"

	"github.com/helixml/isocal/temporal"
)

// Type tags of the binary form. The full set of tags is shared with the
// time-of-day, zone and period types; only the calendar types below are
// produced by this package.
const (
	TagDuration       byte = 1
	TagInstant        byte = 2
	TagLocalDate      byte = 3
	TagLocalTime      byte = 4
	TagLocalDateTime  byte = 5
	TagZonedDateTime  byte = 6
	TagZoneRegion     byte = 7
	TagZoneOffset     byte = 8
	TagOffsetTime     byte = 9
	TagOffsetDateTime byte = 10
	TagYear           byte = 11
	TagYearMonth      byte = 12
	TagMonthDay       byte = 13
	TagPeriod         byte = 14
)

var tagNames = map[byte]string{
	TagDuration:       "Duration",
	TagInstant:        "Instant",
	TagLocalDate:      "LocalDate",
	TagLocalTime:      "LocalTime",
	TagLocalDateTime:  "LocalDateTime",
	TagZonedDateTime:  "ZonedDateTime",
	TagZoneRegion:     "ZoneRegion",
	TagZoneOffset:     "ZoneOffset",
	TagOffsetTime:     "OffsetTime",
	TagOffsetDateTime: "OffsetDateTime",
	TagYear:           "Year",
	TagYearMonth:      "YearMonth",
	TagMonthDay:       "MonthDay",
	TagPeriod:         "Period",
}

// payload sizes, excluding the tag byte
var payloadSizes = map[byte]int{
	TagLocalDate: 6,
	TagYear:      4,
	TagYearMonth: 5,
	TagMonthDay:  2,
}

// MarshalBinary writes tag 3, the year as a big-endian int32, then month and day bytes.
func (d LocalDate) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 7)
	b = append(b, TagLocalDate)
	b = binary.BigEndian.AppendUint32(b, uint32(int32(d.year)))
	return append(b, byte(d.month), byte(d.day)), nil
}

// UnmarshalBinary reads the form written by MarshalBinary.
func (d *LocalDate) UnmarshalBinary(data []byte) error {
	return unmarshalInto(data, TagLocalDate, d)
}

// MarshalBinary writes tag 11 then the year as a big-endian int32.
func (y Year) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 5)
	b = append(b, TagYear)
	return binary.BigEndian.AppendUint32(b, uint32(int32(y.year))), nil
}

// UnmarshalBinary reads the form written by MarshalBinary.
func (y *Year) UnmarshalBinary(data []byte) error {
	return unmarshalInto(data, TagYear, y)
}

// MarshalBinary writes tag 12, the year as a big-endian int32, then the month byte.
func (ym YearMonth) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 6)
	b = append(b, TagYearMonth)
	b = binary.BigEndian.AppendUint32(b, uint32(int32(ym.year)))
	return append(b, byte(ym.month)), nil
}

// UnmarshalBinary reads the form written by MarshalBinary.
func (ym *YearMonth) UnmarshalBinary(data []byte) error {
	return unmarshalInto(data, TagYearMonth, ym)
}

// MarshalBinary writes tag 13 then month and day bytes.
func (md MonthDay) MarshalBinary() ([]byte, error) {
	return []byte{TagMonthDay, byte(md.month), byte(md.day)}, nil
}

// UnmarshalBinary reads the form written by MarshalBinary.
func (md *MonthDay) UnmarshalBinary(data []byte) error {
	return unmarshalInto(data, TagMonthDay, md)
}

// DecodeBinary decodes any of the calendar types from its binary form. The
// result is a LocalDate, Year, YearMonth or MonthDay.
func DecodeBinary(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidBinary)
	}
	tag := data[0]
	size, ok := payloadSizes[tag]
	if !ok {
		if name, known := tagNames[tag]; known {
			return nil, fmt.Errorf("%w: %s (tag %d)", ErrUnsupportedType, name, tag)
		}
		return nil, fmt.Errorf("%w: unknown tag %d", ErrUnsupportedType, tag)
	}
	payload := data[1:]
	if len(payload) != size {
		return nil, fmt.Errorf("%w: %s needs %d payload bytes, got %d", ErrInvalidBinary, tagNames[tag], size, len(payload))
	}
	switch tag {
	case TagLocalDate:
		year := int32(binary.BigEndian.Uint32(payload))
		return OfDate(int(year), temporal.Month(payload[4]), int(payload[5]))
	case TagYear:
		return YearOf(int(int32(binary.BigEndian.Uint32(payload))))
	case TagYearMonth:
		year := int32(binary.BigEndian.Uint32(payload))
		return YearMonthOf(int(year), temporal.Month(payload[4]))
	}
	return MonthDayOf(temporal.Month(payload[0]), int(payload[1]))
}

func unmarshalInto[T LocalDate | Year | YearMonth | MonthDay](data []byte, want byte, dst *T) error {
	if len(data) > 0 && data[0] != want {
		return fmt.Errorf("%w: expected %s (tag %d), got tag %d", ErrUnsupportedType, tagNames[want], want, data[0])
	}
	v, err := DecodeBinary(data)
	if err != nil {
		return err
	}
	*dst = v.(T)
	return nil
}
