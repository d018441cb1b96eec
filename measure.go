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

// Measure runs block to completion on the calling goroutine and returns the
// monotonic time it took. Time the block spends blocked or descheduled counts;
// this is elapsed time, not CPU time.
func Measure(block func()) Duration {
	start := Now()
	block()
	return start.Elapsed()
}

// MeasureResult is Measure for blocks that produce a value: it returns the
// block's result alongside the elapsed time.
func MeasureResult[T any](block func() T) (T, Duration) {
	start := Now()
	result := block()
	return result, start.Elapsed()
}
