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
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrInvalidArgument is returned by the unit constructors when the given
// value is NaN or infinite.
var ErrInvalidArgument = errors.New("monotime: value must be a finite number")

// ErrTimeTravel is returned by Duration.Sleep when the span is negative.
// Sleeping backwards is rejected rather than clamped to zero.
var ErrTimeTravel = errors.New("monotime: cannot sleep for a negative duration")

const (
	nanosPerMicro  = int64(1e3)
	nanosPerMilli  = int64(1e6)
	nanosPerSecond = int64(1e9)
)

// Duration is an immutable signed span of time, stored as an integer count of
// nanoseconds. Arithmetic never mutates a Duration; every operation returns a
// new value, so Durations are freely shared across goroutines.
//
// Arithmetic uses native int64 semantics and wraps on overflow.
type Duration struct {
	nanos int64
}

// Zero returns the zero-length Duration, the additive identity.
func Zero() Duration {
	return Duration{}
}

// FromNanoseconds constructs a Duration from an exact integer nanosecond count.
func FromNanoseconds(nanos int64) Duration {
	return Duration{nanos: nanos}
}

// FromSeconds converts a real number of seconds to a Duration, truncating
// toward zero at nanosecond resolution.
func FromSeconds(seconds float64) (Duration, error) {
	return fromUnit(seconds, nanosPerSecond)
}

// FromMillis converts a real number of milliseconds to a Duration.
func FromMillis(millis float64) (Duration, error) {
	return fromUnit(millis, nanosPerMilli)
}

// FromMicros converts a real number of microseconds to a Duration.
func FromMicros(micros float64) (Duration, error) {
	return fromUnit(micros, nanosPerMicro)
}

// FromNanos converts a real number of nanoseconds to a Duration, truncating
// any fractional nanoseconds.
func FromNanos(nanos float64) (Duration, error) {
	return fromUnit(nanos, 1)
}

func fromUnit(value float64, scale int64) (Duration, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Duration{}, fmt.Errorf("%w, got %v", ErrInvalidArgument, value)
	}
	return Duration{nanos: truncateToInt64(value * float64(scale))}, nil
}

// truncateToInt64 truncates toward zero, saturating values outside the int64
// range. NaN cannot reach it through the constructors but maps to zero for the
// scalar arithmetic paths.
func truncateToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// Nanoseconds returns the raw nanosecond count. This is the capability method
// that lets a Duration appear on the right-hand side of span arithmetic.
func (d Duration) Nanoseconds() int64 {
	return d.nanos
}

// Seconds returns the span as a real number of seconds.
func (d Duration) Seconds() float64 {
	return float64(d.nanos) / float64(nanosPerSecond)
}

// Millis returns the span as a real number of milliseconds.
func (d Duration) Millis() float64 {
	return float64(d.nanos) / float64(nanosPerMilli)
}

// Micros returns the span as a real number of microseconds.
func (d Duration) Micros() float64 {
	return float64(d.nanos) / float64(nanosPerMicro)
}

// Add returns the sum of d and any span exposing a nanosecond count.
func (d Duration) Add(other Nanoseconds) Duration {
	return Duration{nanos: d.nanos + other.Nanoseconds()}
}

// Sub returns the difference between d and any span exposing a nanosecond count.
func (d Duration) Sub(other Nanoseconds) Duration {
	return Duration{nanos: d.nanos - other.Nanoseconds()}
}

// Mul scales the span by a real factor, truncating toward zero. A non-finite
// product saturates to the int64 range.
func (d Duration) Mul(factor float64) Duration {
	return Duration{nanos: truncateToInt64(float64(d.nanos) * factor)}
}

// Div divides the span by a real divisor, truncating toward zero. Division by
// zero saturates rather than panicking.
func (d Duration) Div(divisor float64) Duration {
	return Duration{nanos: truncateToInt64(float64(d.nanos) / divisor)}
}

// Neg returns the span with its sign flipped.
func (d Duration) Neg() Duration {
	return Duration{nanos: -d.nanos}
}

// Abs returns d if zero or positive, otherwise its negation. The minimum
// int64 count has no positive counterpart and wraps onto itself.
func (d Duration) Abs() Duration {
	if d.nanos < 0 {
		return d.Neg()
	}
	return d
}

// IsPositive reports whether the span is strictly greater than zero.
func (d Duration) IsPositive() bool {
	return d.nanos > 0
}

// IsNegative reports whether the span is strictly less than zero.
func (d Duration) IsNegative() bool {
	return d.nanos < 0
}

// IsZero reports whether the span is exactly zero.
func (d Duration) IsZero() bool {
	return d.nanos == 0
}

// IsNonzero reports whether the span is anything but zero.
func (d Duration) IsNonzero() bool {
	return d.nanos != 0
}

// Compare orders d against any value exposing a nanosecond count, returning
// -1, 0 or +1 and true. When other lacks the capability it returns false
// instead of panicking, so heterogeneous collections can still be sorted.
func (d Duration) Compare(other any) (int, bool) {
	span, ok := other.(Nanoseconds)
	if !ok {
		return 0, false
	}
	theirs := span.Nanoseconds()
	switch {
	case d.nanos < theirs:
		return -1, true
	case d.nanos > theirs:
		return 1, true
	}
	return 0, true
}

// Equal reports value equality against any span exposing a nanosecond count.
// Values without the capability are never equal.
func (d Duration) Equal(other any) bool {
	span, ok := other.(Nanoseconds)
	return ok && d.nanos == span.Nanoseconds()
}

// StrictEqual reports equality of both value and concrete type: only another
// Duration with the same count matches.
func (d Duration) StrictEqual(other any) bool {
	theirs, ok := other.(Duration)
	return ok && d.nanos == theirs.nanos
}

// Hash returns a hash consistent with StrictEqual. The leading tag byte keeps
// Duration and Instant hashes apart.
func (d Duration) Hash() uint64 {
	var buf [9]byte
	buf[0] = 'D'
	binary.LittleEndian.PutUint64(buf[1:], uint64(d.nanos))
	return xxhash.Sum64(buf[:])
}

// Sleep blocks the calling goroutine for this span by delegating to the
// configured sleep function, and returns the actual seconds slept. A negative
// span fails with ErrTimeTravel before any blocking occurs.
func (d Duration) Sleep() (float64, error) {
	if d.nanos < 0 {
		return 0, fmt.Errorf("%w: %s", ErrTimeTravel, d)
	}
	return sleepFunc()(d.Seconds()), nil
}

// Format renders the span for humans. The largest unit whose threshold the
// absolute count meets is chosen (1e9 -> s, 1e6 -> ms, 1e3 -> μs); smaller
// counts print as a raw integer of nanoseconds. The scaled magnitude is
// printed with precision decimal places; when precision is nonzero, trailing
// zeros and a dangling decimal point are stripped.
func (d Duration) Format(precision int) string {
	if precision < 0 {
		precision = 0
	}

	neg := d.nanos < 0
	abs := uint64(d.nanos)
	if neg {
		abs = -abs
	}

	var scale float64
	var suffix string
	switch {
	case abs >= uint64(nanosPerSecond):
		scale, suffix = float64(nanosPerSecond), "s"
	case abs >= uint64(nanosPerMilli):
		scale, suffix = float64(nanosPerMilli), "ms"
	case abs >= uint64(nanosPerMicro):
		scale, suffix = float64(nanosPerMicro), "μs"
	default:
		return strconv.FormatInt(d.nanos, 10) + "ns"
	}

	s := strconv.FormatFloat(float64(abs)/scale, 'f', precision, 64)
	if precision > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if neg {
		s = "-" + s
	}
	return s + suffix
}

// String renders the span with the process-wide default precision.
func (d Duration) String() string {
	return d.Format(defaultPrecision())
}
