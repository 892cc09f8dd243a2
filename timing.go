package sllog

import (
	"math"
	"time"
)

// TimeSource returns the current time as seconds since the Unix epoch.
// Sources with sub-second resolution return fractional values; a source that
// only ever returns whole seconds is treated as having one-second resolution,
// in which case elapsed-time readings substitute the process monotonic clock
// for better intra-process precision.
type TimeSource func() float64

func wallClock() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// clock tracks process start and previous-emit times against a pluggable
// source. Installing a source resets both reference points to the source's
// current reading.
type clock struct {
	source    TimeSource
	start     float64
	prev      float64
	monoStart time.Time
	monoPrev  time.Time
}

func newClock(source TimeSource) *clock {
	c := &clock{}
	c.setSource(source)
	return c
}

func (c *clock) setSource(source TimeSource) {
	if source == nil {
		source = wallClock
	}
	c.source = source
	now := source()
	mono := time.Now()
	c.start, c.prev = now, now
	c.monoStart, c.monoPrev = mono, mono
}

func (c *clock) now() float64 {
	return c.source()
}

// wholeSeconds reports whether a source reading carries no sub-second part.
func wholeSeconds(v float64) bool {
	return v == math.Trunc(v)
}

func (c *clock) sinceStart() float64 {
	now := c.now()
	if wholeSeconds(now) {
		return time.Since(c.monoStart).Seconds()
	}
	return now - c.start
}

func (c *clock) sincePrev() float64 {
	now := c.now()
	if wholeSeconds(now) {
		return time.Since(c.monoPrev).Seconds()
	}
	return now - c.prev
}

// markEmit records a successful emission as the new previous-emit reference.
func (c *clock) markEmit() {
	c.prev = c.now()
	c.monoPrev = time.Now()
}
