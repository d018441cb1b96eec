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
	"github.com/algorand/go-deadlock"
)

// DefaultPrecision is the number of decimal places String uses unless
// overridden with SetDefaultPrecision.
const DefaultPrecision = 9

// settings holds the process-wide configuration points. They are meant to
// be set once, during process init or at the top of a test; concurrent
// writers race for the last word. Tests overriding a setting must restore
// the returned previous value when they finish.
type settings struct {
	mu        deadlock.RWMutex
	source    func() int64
	sleep     func(seconds float64) float64
	precision int
}

var config = settings{
	source:    nanotime,
	sleep:     defaultSleep,
	precision: DefaultPrecision,
}

// SetMonotonicSource replaces the clock read backing Now and returns the
// previous source. The source must return a non-decreasing nanosecond count
// from an arbitrary epoch.
func SetMonotonicSource(source func() int64) func() int64 {
	config.mu.Lock()
	defer config.mu.Unlock()
	prev := config.source
	config.source = source
	return prev
}

// SetSleepFunc replaces the blocking sleep primitive behind Duration.Sleep
// and returns the previous one. The function receives a non-negative number
// of seconds, blocks for at least that long, and returns the actual seconds
// elapsed.
func SetSleepFunc(sleep func(seconds float64) float64) func(float64) float64 {
	config.mu.Lock()
	defer config.mu.Unlock()
	prev := config.sleep
	config.sleep = sleep
	return prev
}

// SetDefaultPrecision changes the decimal precision String uses and returns
// the previous value. Negative precisions clamp to zero.
func SetDefaultPrecision(precision int) int {
	if precision < 0 {
		precision = 0
	}
	config.mu.Lock()
	defer config.mu.Unlock()
	prev := config.precision
	config.precision = precision
	return prev
}

func monotonicNow() int64 {
	config.mu.RLock()
	source := config.source
	config.mu.RUnlock()
	return source()
}

func sleepFunc() func(float64) float64 {
	config.mu.RLock()
	defer config.mu.RUnlock()
	return config.sleep
}

func defaultPrecision() int {
	config.mu.RLock()
	defer config.mu.RUnlock()
	return config.precision
}
