package clock_test

import (
	"testing"
	"time"

	"sourcing/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("IST", 5*3600+1800))

	c := clock.NewFixed(at)

	assert.Equal(t, at.UTC(), c.Now())
	assert.Equal(t, c.Now(), c.Now())
}

func TestSystem(t *testing.T) {
	before := time.Now().UTC()
	now := clock.NewSystem().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Add(-time.Second)))
}
