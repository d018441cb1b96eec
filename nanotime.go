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
	"time"
	_ "unsafe"
)

// nanotime reads the runtime's monotonic clock directly, skipping the wall
// clock reading a time.Now call would also take.
//
//go:noescape
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// defaultSleep is the stock sleep primitive: time.Sleep bracketed by two
// monotonic reads, so the caller learns the real elapsed seconds rather
// than the requested ones.
func defaultSleep(seconds float64) float64 {
	start := nanotime()
	time.Sleep(time.Duration(seconds * float64(nanosPerSecond)))
	return float64(nanotime()-start) / float64(nanosPerSecond)
}
