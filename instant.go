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

	"github.com/cespare/xxhash/v2"
)

// Instant is an immutable point-in-time measurement from the monotonic
// source. The raw reading counts from an arbitrary epoch, so an Instant is
// opaque: it must not be serialized or compared across process boundaries,
// and it carries no wall-clock meaning. Instants only become useful through
// their differences, which are Durations.
type Instant struct {
	nanos int64
}

// Now captures the current reading of the configured monotonic source.
func Now() Instant {
	return Instant{nanos: monotonicNow()}
}

// InstantAt constructs an Instant from an explicit source reading. It exists
// for deterministic tests; regular code should use Now.
func InstantAt(nanos int64) Instant {
	return Instant{nanos: nanos}
}

// DurationSince returns i minus earlier: positive when i is the later of the
// two, negative when it is the earlier.
func (i Instant) DurationSince(earlier Instant) Duration {
	return Duration{nanos: i.nanos - earlier.nanos}
}

// Elapsed returns the monotonic time that has passed since i was captured.
// The result is negative when i lies in the future.
func (i Instant) Elapsed() Duration {
	return Now().DurationSince(i)
}

// IsInPast reports whether the monotonic clock has moved past i.
func (i Instant) IsInPast() bool {
	return i.Elapsed().IsPositive()
}

// IsInFuture reports whether i has not been reached yet.
func (i Instant) IsInFuture() bool {
	return i.Elapsed().IsNegative()
}

// Add returns the Instant offset forward by the given span.
func (i Instant) Add(span Nanoseconds) Instant {
	return Instant{nanos: i.nanos + span.Nanoseconds()}
}

// Sub returns the Duration between i and another Instant, positive when i is
// later. It is DurationSince under the operator's usual name.
func (i Instant) Sub(other Instant) Duration {
	return i.DurationSince(other)
}

// SubSpan returns the Instant offset backward by the given span.
func (i Instant) SubSpan(span Nanoseconds) Instant {
	return Instant{nanos: i.nanos - span.Nanoseconds()}
}

// Compare orders i against another Instant, returning -1, 0 or +1 and true.
// Anything that is not an Instant is not comparable and yields false: a raw
// reading has no meaning outside Instant arithmetic, so there is no
// cross-type ordering the way Durations allow.
func (i Instant) Compare(other any) (int, bool) {
	theirs, ok := other.(Instant)
	if !ok {
		return 0, false
	}
	switch {
	case i.nanos < theirs.nanos:
		return -1, true
	case i.nanos > theirs.nanos:
		return 1, true
	}
	return 0, true
}

// Equal reports whether other is an Instant capturing the same reading.
func (i Instant) Equal(other any) bool {
	theirs, ok := other.(Instant)
	return ok && i.nanos == theirs.nanos
}

// StrictEqual is identical to Equal: Instants only ever compare against
// Instants, so value and strict equality coincide.
func (i Instant) StrictEqual(other any) bool {
	return i.Equal(other)
}

// Hash returns a hash consistent with StrictEqual.
func (i Instant) Hash() uint64 {
	var buf [9]byte
	buf[0] = 'I'
	binary.LittleEndian.PutUint64(buf[1:], uint64(i.nanos))
	return xxhash.Sum64(buf[:])
}

// SleepUntil sleeps out the remainder of target past i: it computes
// remaining = target - i.Elapsed(), blocks for remaining when positive, and
// always returns remaining. A zero or negative result means the deadline had
// already passed by that much; the caller detects a missed deadline from the
// sign, not from an error. A nil target stands for the zero span, which makes
// SleepUntil(nil) wait until i itself arrives.
//
// The usual pattern for a steady cadence captures an Instant, does the work
// for one tick, then calls SleepUntil(interval) to sleep only the part of the
// interval the work left over.
func (i Instant) SleepUntil(target Nanoseconds) Duration {
	var deadline int64
	if target != nil {
		deadline = target.Nanoseconds()
	}
	remaining := Duration{nanos: deadline - i.Elapsed().nanos}
	if remaining.IsPositive() {
		remaining.Sleep() //nolint:errcheck // remaining is positive, ErrTimeTravel cannot occur
	}
	return remaining
}

// SleepSeconds sleeps until the given number of seconds has passed since i.
func (i Instant) SleepSeconds(seconds float64) (Duration, error) {
	target, err := FromSeconds(seconds)
	if err != nil {
		return Duration{}, err
	}
	return i.SleepUntil(target), nil
}

// SleepMillis sleeps until the given number of milliseconds has passed since i.
func (i Instant) SleepMillis(millis float64) (Duration, error) {
	target, err := FromMillis(millis)
	if err != nil {
		return Duration{}, err
	}
	return i.SleepUntil(target), nil
}

// Format renders the elapsed time since i with the given precision.
func (i Instant) Format(precision int) string {
	return i.Elapsed().Format(precision)
}

// String renders the elapsed time since i with the default precision.
func (i Instant) String() string {
	return i.Elapsed().String()
}
