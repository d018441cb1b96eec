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

// Package monotime provides two immutable value types over a monotonic clock
// source: Instant, a point-in-time measurement, and Duration, a span of time.
// Both store integer nanoseconds, which keeps arithmetic exact and avoids the
// unit confusion of raw floating-point clock reads.
//
// An Instant is only meaningful inside the process that captured it: its raw
// reading counts from an arbitrary epoch and carries no wall-clock meaning.
// Subtracting two Instants yields a Duration; adding a Duration to an Instant
// yields a deadline. Durations format themselves with automatic unit selection
// and can sleep out their own span.
//
// The clock source, the sleep primitive and the default formatting precision
// are process-wide settings that tests may override and restore.
package monotime

// Nanoseconds is the capability a value needs to take part in span arithmetic.
// Duration satisfies it, and so can any user-defined span type; no common base
// type is required. Instant intentionally does not satisfy it, since an
// Instant's raw reading is not a quantity of time on its own.
type Nanoseconds interface {
	// Nanoseconds returns the integer nanosecond count the value represents.
	Nanoseconds() int64
}
