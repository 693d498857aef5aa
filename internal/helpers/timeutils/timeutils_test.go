package timeutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_BeginOfMonth_ShouldDropDayAndTime(t *testing.T) {
	moment := time.Date(2022, 10, 16, 15, 22, 30, 0, time.Local)

	assert.Equal(t, time.Date(2022, 10, 1, 0, 0, 0, 0, time.Local), BeginOfMonth(moment))
}

func Test_BeginOfNextMonth_ShouldRollOverYear(t *testing.T) {
	moment := time.Date(2022, 12, 5, 10, 0, 0, 0, time.Local)

	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local), BeginOfNextMonth(moment))
}

func Test_MonthInterval_ShouldReturnHalfOpenRange(t *testing.T) {
	from, to := MonthInterval(2025, time.November)

	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local), to)
}

func Test_MonthInterval_ShouldRollOverYear_ForDecember(t *testing.T) {
	from, to := MonthInterval(2025, time.December)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), to)
}
