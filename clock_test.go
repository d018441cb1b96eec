// Copyright (C) 2026 the monotime developers.
// This file is part of monotime
//
// monotime is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// monotime is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with monotime.  If not, see <https://www.gnu.org/licenses/>.

package monotime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeClock backs the monotonic source with a hand-advanced counter so tests
// are deterministic. install registers a cleanup that restores the previous
// source, keeping the override discipline in one place.
type fakeClock struct {
	now int64
}

func (c *fakeClock) install(t *testing.T) {
	t.Helper()
	prev := SetMonotonicSource(func() int64 { return c.now })
	t.Cleanup(func() { SetMonotonicSource(prev) })
}

func (c *fakeClock) advance(nanos int64) {
	c.now += nanos
}

// sleepRecorder replaces the sleep primitive, records every requested span
// and, when coupled to a fakeClock, advances it by exactly the requested
// amount, simulating a perfectly punctual sleeper.
type sleepRecorder struct {
	clock *fakeClock
	calls []float64
}

func (r *sleepRecorder) install(t *testing.T) {
	t.Helper()
	prev := SetSleepFunc(r.sleep)
	t.Cleanup(func() { SetSleepFunc(prev) })
}

func (r *sleepRecorder) sleep(seconds float64) float64 {
	r.calls = append(r.calls, seconds)
	if r.clock != nil {
		r.clock.advance(int64(seconds * float64(nanosPerSecond)))
	}
	return seconds
}

// spanMillis is a user-defined span type exposing the nanosecond-count
// capability, used to exercise cross-type arithmetic and comparison.
type spanMillis int64

func (s spanMillis) Nanoseconds() int64 {
	return int64(s) * nanosPerMilli
}

func sec(t *testing.T, v float64) Duration {
	t.Helper()
	d, err := FromSeconds(v)
	require.NoError(t, err)
	return d
}

func msec(t *testing.T, v float64) Duration {
	t.Helper()
	d, err := FromMillis(v)
	require.NoError(t, err)
	return d
}
