package blend

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedClock(t *testing.T) {
	t.Parallel()

	ms, err := FixedClock(1234)()
	require.NoError(t, err)
	assert.Equal(t, int64(1234), ms)
}

func TestClockFromMock(t *testing.T) {
	t.Parallel()

	mock := quartz.NewMock(t)
	clock := ClockFrom(mock)

	before, err := clock()
	require.NoError(t, err)

	mock.Advance(1500 * time.Millisecond).MustWait(t.Context())
	after, err := clock()
	require.NoError(t, err)
	assert.Equal(t, before+1500, after)
}

func TestSystemClock(t *testing.T) {
	t.Parallel()

	ms, err := SystemClock()()
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), ms, float64(time.Minute.Milliseconds()))
}
