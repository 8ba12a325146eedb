package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("dd/mm/yyyy", func(t *testing.T) {
		got := ParseDate("09/05/2025")
		assert.Equal(t, time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("empty is zero time", func(t *testing.T) {
		assert.True(t, ParseDate("").IsZero())
		assert.True(t, ParseDate("   ").IsZero())
	})

	t.Run("garbage is zero time", func(t *testing.T) {
		assert.True(t, ParseDate("2025-05-09").IsZero())
		assert.True(t, ParseDate("31/02/x").IsZero())
	})
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "09/05/2025", FormatDate(d))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestParseAmount(t *testing.T) {
	t.Run("comma decimal", func(t *testing.T) {
		assert.Equal(t, 23.45, ParseAmount("23,45"))
	})

	t.Run("dot thousands separator", func(t *testing.T) {
		assert.Equal(t, 1234567.89, ParseAmount("1.234.567,89"))
	})

	t.Run("integer amount", func(t *testing.T) {
		assert.Equal(t, 488.0, ParseAmount("488"))
	})

	t.Run("empty and garbage degrade to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ParseAmount(""))
		assert.Equal(t, 0.0, ParseAmount("N/A"))
	})
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 8, ParseInt("8"))
	assert.Equal(t, 0, ParseInt(""))
	assert.Equal(t, 0, ParseInt("ocho"))
}
