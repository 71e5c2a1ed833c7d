package timer_test

import (
	"testing"
	"time"

	"github.com/arcflux/arcflux/pkg/utils/timer"
	"github.com/stretchr/testify/assert"
)

func TestTimer_TotalCoversAllStages(t *testing.T) {
	t.Parallel()

	tmr := timer.New()

	time.Sleep(10 * time.Millisecond)
	tmr.NewStage()
	time.Sleep(10 * time.Millisecond)

	total, stage := tmr.GetTiming()

	assert.GreaterOrEqual(t, total, stage)
	assert.Positive(t, total)
}

func TestTimer_StartResets(t *testing.T) {
	t.Parallel()

	tmr := timer.New()

	time.Sleep(10 * time.Millisecond)
	tmr.Start()

	total, _ := tmr.GetTiming()

	assert.Less(t, total, 10*time.Millisecond)
}
