package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeekPosition(t *testing.T) {
	t.Parallel()

	const maxIndex = DefaultMaxIndex

	tests := []struct {
		name   string
		cursor int64
		offset int64
		whence Whence
		want   int64
	}{
		{name: "set", offset: 42, whence: SeekSet, want: 42},
		{name: "set below zero clamps", offset: -5, whence: SeekSet, want: 0},
		{name: "set above max clamps", offset: maxIndex + 100, whence: SeekSet, want: maxIndex},
		{name: "cur forward", cursor: 10, offset: 5, whence: SeekCur, want: 15},
		{name: "cur backward past zero", cursor: 10, offset: -20, whence: SeekCur, want: 0},
		{name: "cur past max", cursor: 490, offset: 20, whence: SeekCur, want: maxIndex},
		{name: "end subtracts offset", offset: 10, whence: SeekEnd, want: maxIndex - 10},
		{name: "end with negative offset clamps", offset: -10, whence: SeekEnd, want: maxIndex},
		{name: "end beyond start clamps", offset: maxIndex + 1, whence: SeekEnd, want: 0},
		{name: "cur saturates at max for huge offset", cursor: maxIndex, offset: math.MaxInt64, whence: SeekCur, want: maxIndex},
		{name: "cur saturates at zero for huge negative offset", cursor: 3, offset: math.MinInt64, whence: SeekCur, want: 0},
		{name: "end with min int64 offset clamps to max", offset: math.MinInt64, whence: SeekEnd, want: maxIndex},
		{name: "end with max int64 offset clamps to zero", offset: math.MaxInt64, whence: SeekEnd, want: 0},
		{name: "set with extreme offsets", offset: math.MinInt64, whence: SeekSet, want: 0},
		{name: "unknown whence resolves to zero", cursor: 77, offset: 12, whence: Whence(9), want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SeekPosition(tc.cursor, tc.offset, maxIndex, tc.whence))
		})
	}
}

func TestParseWhence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Whence
		wantErr bool
	}{
		{raw: "", want: SeekSet},
		{raw: "set", want: SeekSet},
		{raw: "SET", want: SeekSet},
		{raw: "cur", want: SeekCur},
		{raw: " current ", want: SeekCur},
		{raw: "end", want: SeekEnd},
		{raw: "middle", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseWhence(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWhence)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWhenceString(t *testing.T) {
	assert.Equal(t, "set", SeekSet.String())
	assert.Equal(t, "cur", SeekCur.String())
	assert.Equal(t, "end", SeekEnd.String())
	assert.Equal(t, "whence(7)", Whence(7).String())
}
