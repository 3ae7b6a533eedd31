package isocal

import (
	"encoding"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/isocal/temporal"
)

func TestMarshalBinary(t *testing.T) {
	tests := []struct {
		name     string
		value    encoding.BinaryMarshaler
		expected []byte
	}{
		{"local date", MustDate(2007, temporal.December, 3), []byte{3, 0, 0, 0x07, 0xD7, 12, 3}},
		{"negative local date", MustDate(-1, temporal.January, 31), []byte{3, 0xFF, 0xFF, 0xFF, 0xFF, 1, 31}},
		{"year", Year{2012}, []byte{11, 0, 0, 0x07, 0xDC}},
		{"negative year", Year{-1}, []byte{11, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"year month", YearMonth{2012, temporal.February}, []byte{12, 0, 0, 0x07, 0xDC, 2}},
		{"month day", MonthDay{temporal.February, 29}, []byte{13, 2, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.value.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b)

			got, err := DecodeBinary(b)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestUnmarshalBinary(t *testing.T) {
	d := MustDate(2011, temporal.December, 15)
	b, err := d.MarshalBinary()
	require.NoError(t, err)

	var got LocalDate
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, d, got)

	var ym YearMonth
	require.NoError(t, ym.UnmarshalBinary([]byte{12, 0xFF, 0xFF, 0xFF, 0xFE, 6}))
	assert.Equal(t, YearMonth{-2, temporal.June}, ym)

	var y Year
	assert.ErrorIs(t, y.UnmarshalBinary(b), ErrUnsupportedType)
	assert.ErrorIs(t, y.UnmarshalBinary(nil), ErrInvalidBinary)

	var md MonthDay
	require.NoError(t, md.UnmarshalBinary([]byte{13, 12, 3}))
	assert.Equal(t, MonthDay{temporal.December, 3}, md)
}

func TestDecodeBinary_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"empty", nil, ErrInvalidBinary},
		{"duration", []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, ErrUnsupportedType},
		{"zone offset", []byte{8, 0}, ErrUnsupportedType},
		{"unknown tag", []byte{99}, ErrUnsupportedType},
		{"short local date", []byte{3, 0, 0, 0x07}, ErrInvalidBinary},
		{"long month day", []byte{13, 2, 29, 0}, ErrInvalidBinary},
		{"invalid month day", []byte{13, 2, 30}, temporal.ErrDateTime},
		{"invalid month", []byte{12, 0, 0, 0x07, 0xDC, 13}, temporal.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBinary(tt.data)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecodeBinary_NamesKnownTags(t *testing.T) {
	_, err := DecodeBinary([]byte{TagPeriod})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Period")
}
