package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2026-03-05", NewDate(2026, time.March, 5).String())
	assert.Equal(t, "", Date{}.String())
}

func TestSameMonth(t *testing.T) {
	a := NewDate(2026, time.March, 1)
	b := NewDate(2026, time.March, 31)
	c := NewDate(2025, time.March, 15)

	assert.True(t, a.SameMonth(b))
	assert.False(t, a.SameMonth(c))
	assert.False(t, a.SameMonth(NewDate(2026, time.April, 1)))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{"forward", NewDate(2026, time.January, 15), 2, NewDate(2026, time.March, 1)},
		{"backward across year", NewDate(2026, time.January, 15), -2, NewDate(2025, time.November, 1)},
		{"month-end does not skip February", NewDate(2026, time.January, 31), 1, NewDate(2026, time.February, 1)},
		{"zero", NewDate(2026, time.June, 10), 0, NewDate(2026, time.June, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.AddMonths(tt.n)
			assert.Equal(t, tt.want.Year(), got.Year())
			assert.Equal(t, tt.want.Month(), got.Month())
			assert.Equal(t, 1, got.Day())
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.March, 5)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-05"`, string(data))

	var zero Date
	data, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDateUnmarshalAcceptsTimestamps(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"plain date", `"2026-03-05"`},
		{"rfc3339 timestamp", `"2026-03-05T14:30:00Z"`},
		{"rfc3339 with offset", `"2026-03-05T23:59:59+07:00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.Equal(t, "2026-03-05", d.String())
		})
	}
}

func TestDateUnmarshalNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
}
