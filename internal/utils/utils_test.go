package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockToday(t *testing.T) {
	kl, err := time.LoadLocation("Asia/Kuala_Lumpur")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 20:00 UTC is already the next day in Kuala Lumpur.
	utc := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC)
	c := Clock{loc: kl, now: func() time.Time { return utc }}
	assert.Equal(t, "2025-05-02", c.Today())
}

func TestNormalizeIC(t *testing.T) {
	assert.Equal(t, "900101145678", NormalizeIC(" 900101-14-5678 "))
}

func TestAppendUnique(t *testing.T) {
	list, added := AppendUnique([]string{"a", "b"}, "b", "c", "", "c")
	assert.Equal(t, []string{"a", "b", "c"}, list)
	assert.Equal(t, []string{"c"}, added)
}
