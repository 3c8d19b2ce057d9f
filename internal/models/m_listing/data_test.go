package m_listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Timestamps arrive in several shapes depending on which client wrote the
// document: native timestamps from this service, {seconds} maps from older
// export tooling, and strings from the bulk-upload path's early versions.

func TestCoerceTime_Native(t *testing.T) {
	want := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	got, ok := CoerceTime(want)
	require.True(t, ok)
	assert.True(t, got.Equal(want))
}

func TestCoerceTime_SecondsMap(t *testing.T) {
	want := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	got, ok := CoerceTime(map[string]interface{}{"seconds": want.Unix()})
	require.True(t, ok)
	assert.True(t, got.Equal(want))

	got, ok = CoerceTime(map[string]interface{}{"_seconds": want.Unix()})
	require.True(t, ok)
	assert.True(t, got.Equal(want))

	_, ok = CoerceTime(map[string]interface{}{"nanos": 5})
	assert.False(t, ok)
}

func TestCoerceTime_Strings(t *testing.T) {
	got, ok := CoerceTime("2026-03-14T09:26:53Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC), got)

	got, ok = CoerceTime("2026-03-14")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)

	_, ok = CoerceTime("not a time")
	assert.False(t, ok)
}

func TestCoerceTime_UnknownShapes(t *testing.T) {
	_, ok := CoerceTime(nil)
	assert.False(t, ok)

	_, ok = CoerceTime(12345)
	assert.False(t, ok)
}

func TestBuildCreateMap_FieldSet(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	release := created.Add(48 * time.Hour)

	m := BuildCreateMap(
		"Air Jordan 1", "air jordan 1", []string{"air", "jordan", "1"},
		"sneakers", "basketball", "new", "42",
		199.99, 19999, 100, 1985,
		"seller-1", true, false, false, false,
		"draft", true, &release, created, created,
	)

	assert.Equal(t, "Air Jordan 1", m[FldTitle])
	assert.Equal(t, "air jordan 1", m[FldTitleLowercase])
	assert.Equal(t, []string{"air", "jordan", "1"}, m[FldKeywords])
	assert.Equal(t, 199.99, m[FldPrice])
	assert.Equal(t, int64(19999), m[FldPriceNum])
	assert.Equal(t, int64(100), m[FldPriceDen])
	assert.Equal(t, "draft", m[FldStatus])
	assert.Equal(t, true, m[FldDraft])
	assert.Equal(t, release, m[FldReleaseAt])
	assert.EqualValues(t, 0, m[FldViews])
}

func TestBuildCreateMap_NilRelease(t *testing.T) {
	now := time.Now().UTC()
	m := BuildCreateMap(
		"T", "t", []string{"t"},
		"c", "", "", "",
		1, 100, 100, 0,
		"s", false, false, false, false,
		"draft", true, nil, now, now,
	)

	v, present := m[FldReleaseAt]
	require.True(t, present)
	assert.Nil(t, v)
}
