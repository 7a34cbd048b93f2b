package lnglat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLngLatAccessors(t *testing.T) {
	c := New(12.23, 14.42)
	assert.Equal(t, 12.23, c.Longitude())
	assert.Equal(t, 14.42, c.Latitude())
	assert.Equal(t, [2]float64{12.23, 14.42}, c.ToArray())
	assert.Equal(t, c, FromArray(c.ToArray()))

	c.SetLng(1.2)
	assert.Equal(t, New(1.2, 14.42), c)

	c.SetLat(3.4)
	assert.Equal(t, New(1.2, 3.4), c)
}

func TestLngLatString(t *testing.T) {
	tests := []struct {
		in   LngLat
		want string
	}{
		{New(12.23, 14.42), "LngLat(12.23, 14.42)"},
		{New(-179, 0), "LngLat(-179, 0)"},
		{New(0.000009, -0.5), "LngLat(0.000009, -0.5)"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.String())
		})
	}
}

func TestLngLatWrap(t *testing.T) {
	assert.Equal(t, "LngLat(-179, 0)", New(181, 0).Wrap().String())
	assert.Equal(t, New(-179, 12.5), New(181, 12.5).Wrap())
}

func TestLngLatDistanceTo(t *testing.T) {
	a := New(0, 0)
	b := New(0.000009, 0)

	assert.InDelta(t, 1.0, math.Round(a.DistanceTo(b)), 0.01)
	assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
	assert.Zero(t, a.DistanceTo(a))
}

func TestNormalizeIdentity(t *testing.T) {
	for _, c := range []LngLat{
		New(0, 0),
		New(12.23, 14.42),
		New(-180, -90),
		New(540.5, 123.456), // out of range is not validated
		New(math.MaxFloat64, -math.SmallestNonzeroFloat64),
	} {
		got, err := Normalize(c)
		require.NoError(t, err)
		assert.Equal(t, c, got)

		got, err = Normalize(Embed(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
