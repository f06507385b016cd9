package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Date
	}{
		{"calendar day", "2024-03-01", NewDate(2024, time.March, 1)},
		{"rfc3339 truncates to day", "2024-03-01T15:04:05Z", NewDate(2024, time.March, 1)},
		{"empty is zero", "", Date{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want.Time), "got %v want %v", got, tc.want)
		})
	}

	_, err := ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.March, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateUnmarshalTolerant(t *testing.T) {
	var d Date

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T12:00:00-03:00"`), &d))
	assert.Equal(t, "2024-03-01", d.String())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
}

func TestDateZeroMarshalsEmpty(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))
}

func TestDateArithmetic(t *testing.T) {
	start := NewDate(2024, time.March, 1)

	assert.Equal(t, "2024-03-08", start.AddDays(7).String())
	assert.Equal(t, 14, NewDate(2024, time.March, 15).DaysSince(start))
	assert.Equal(t, 0, start.DaysSince(start))
	assert.Equal(t, -1, NewDate(2024, time.February, 29).DaysSince(start))
}

func TestQuantityUnmarshalFlexible(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Quantity
	}{
		{"number", `12.5`, 12.5},
		{"quoted number", `"1500"`, 1500},
		{"quoted decimal", `"2.75"`, 2.75},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var q Quantity
			require.NoError(t, json.Unmarshal([]byte(tc.input), &q))
			assert.Equal(t, tc.want, q)
		})
	}

	var q Quantity
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &q))
}

func TestQuantityMarshalPlainNumber(t *testing.T) {
	data, err := json.Marshal(Quantity(2.5))
	require.NoError(t, err)
	assert.Equal(t, "2.5", string(data))

	data, err = json.Marshal(Quantity(0))
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}

func TestCountUnmarshalFlexible(t *testing.T) {
	var c Count

	require.NoError(t, json.Unmarshal([]byte(`1000`), &c))
	assert.Equal(t, Count(1000), c)

	require.NoError(t, json.Unmarshal([]byte(`"42"`), &c))
	assert.Equal(t, Count(42), c)

	require.NoError(t, json.Unmarshal([]byte(`""`), &c))
	assert.Equal(t, Count(0), c)

	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	assert.Equal(t, Count(0), c)
}
