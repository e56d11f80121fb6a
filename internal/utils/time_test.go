package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateRange(t *testing.T) {
	t.Run("both sides", func(t *testing.T) {
		dep, ret := ParseDateRange("2025-01-10 to 2025-01-20")
		require.NotNil(t, dep)
		require.NotNil(t, ret)
		assert.True(t, dep.Equal(date(2025, 1, 10)))
		assert.True(t, ret.Equal(date(2025, 1, 20)))
	})

	t.Run("depart only", func(t *testing.T) {
		dep, ret := ParseDateRange("2025-01-10")
		require.NotNil(t, dep)
		assert.True(t, dep.Equal(date(2025, 1, 10)))
		assert.Nil(t, ret)
	})

	t.Run("garbage", func(t *testing.T) {
		dep, ret := ParseDateRange("garbage")
		assert.Nil(t, dep)
		assert.Nil(t, ret)
	})

	t.Run("empty", func(t *testing.T) {
		dep, ret := ParseDateRange("")
		assert.Nil(t, dep)
		assert.Nil(t, ret)
		dep, ret = ParseDateRange("   ")
		assert.Nil(t, dep)
		assert.Nil(t, ret)
	})

	t.Run("bad return side", func(t *testing.T) {
		dep, ret := ParseDateRange("2025-03-01 to 2025-13-40")
		require.NotNil(t, dep)
		assert.True(t, dep.Equal(date(2025, 3, 1)))
		assert.Nil(t, ret)
	})

	t.Run("extra whitespace", func(t *testing.T) {
		dep, ret := ParseDateRange("  2025-06-01   to   2025-06-09 ")
		require.NotNil(t, dep)
		require.NotNil(t, ret)
		assert.True(t, ret.Equal(date(2025, 6, 9)))
	})
}

func TestParseOptionalDate(t *testing.T) {
	d, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseOptionalDate("2024-02-29")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2024-02-29", FormatOptionalDate(d))

	_, err = ParseOptionalDate("2023-02-29")
	assert.Error(t, err)
}
