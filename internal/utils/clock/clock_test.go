package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed_Now(t *testing.T) {
	ts := time.Date(2022, 11, 21, 15, 22, 48, 123456789, time.Local)
	c := NewFixed(ts)

	assert.Equal(t, ts, c.Now())
	assert.Equal(t, c.Now(), c.Now())
}

func TestSystem_Now(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
