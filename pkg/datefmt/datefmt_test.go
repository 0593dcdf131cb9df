package datefmt_test

import (
	"testing"
	"time"

	"go-talenthub-backend/pkg/datefmt"

	"github.com/stretchr/testify/assert"
)

func TestMillis(t *testing.T) {
	// 2024-05-01T00:00:00Z
	assert.Equal(t, "01/05/2024", datefmt.Millis(1714521600000))
}

func TestDate(t *testing.T) {
	t.Run("Should zero-pad day and month", func(t *testing.T) {
		d := time.Date(2023, time.March, 7, 15, 4, 5, 0, time.UTC)
		assert.Equal(t, "07/03/2023", datefmt.Date(&d))
	})

	t.Run("Should format in UTC regardless of input zone", func(t *testing.T) {
		// 23:30 on Jan 31 in UTC+2 is 21:30 Jan 31 UTC
		loc := time.FixedZone("EET", 2*60*60)
		d := time.Date(2024, time.January, 31, 23, 30, 0, 0, loc)
		assert.Equal(t, "31/01/2024", datefmt.Date(&d))
	})

	t.Run("Should return placeholder for nil", func(t *testing.T) {
		assert.Equal(t, datefmt.Placeholder, datefmt.Date(nil))
	})
}
