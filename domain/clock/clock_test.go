package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"oss.indeed.com/go/libtime/libtimetest"
)

func TestMillis_UsesSource(t *testing.T) {
	now := time.Date(2022, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	clk := libtimetest.NewClockMock(t).NowMock.Return(now)
	require.Equal(t, now.UnixMilli(), Millis(clk))
}

func TestMillis_NilFallsBackToSystem(t *testing.T) {
	before := time.Now().UnixMilli()
	got := Millis(nil)
	require.GreaterOrEqual(t, got, before)
	require.LessOrEqual(t, got, time.Now().UnixMilli())
}
