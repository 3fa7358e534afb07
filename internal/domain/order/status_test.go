package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TallerServices01/maintenance-tracker/internal/models"
)

func TestNextCyclesThroughAllStatuses(t *testing.T) {
	assert.Equal(t, StatusInProgress, Next(StatusPending))
	assert.Equal(t, StatusFinished, Next(StatusInProgress))
	assert.Equal(t, StatusPending, Next(StatusFinished))
}

func TestNextAlwaysReturnsValidStatus(t *testing.T) {
	s := StatusPending
	for i := 0; i < 10; i++ {
		s = Next(s)
		assert.True(t, IsValid(s), "status %q after %d advances", s, i+1)
	}
}

func TestNextUnknownStatusRestartsAtPending(t *testing.T) {
	assert.Equal(t, StatusPending, Next(Status("garbage")))
}

func TestAdvanceThreeTimesIsIdentity(t *testing.T) {
	for _, start := range All() {
		o := &models.Order{Status: string(start)}

		Advance(o)
		Advance(o)
		Advance(o)

		assert.Equal(t, string(start), o.Status)
	}
}

func TestAdvanceScenario(t *testing.T) {
	o := &models.Order{Status: string(InitialStatus())}

	Advance(o)
	Advance(o)
	assert.Equal(t, string(StatusFinished), o.Status)

	Advance(o)
	assert.Equal(t, string(StatusPending), o.Status)
}
