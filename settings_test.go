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

	"github.com/monotime-go/monotime/testpartitioning"
	"github.com/stretchr/testify/require"
)

func TestDefaultSourceIsMonotonic(t *testing.T) {
	testpartitioning.PartitionTest(t)

	first := monotonicNow()
	second := monotonicNow()
	require.GreaterOrEqual(t, second, first)
	require.Positive(t, first)
}

func TestDefaultSleepReportsElapsed(t *testing.T) {
	testpartitioning.PartitionTest(t)

	before := Now()
	actual := defaultSleep(0.001)
	elapsed := before.Elapsed()

	require.Greater(t, actual, 0.0)
	require.GreaterOrEqual(t, elapsed.Seconds(), actual*0.5)
	require.True(t, elapsed.IsPositive())
}

func TestSettersReturnPrevious(t *testing.T) {
	testpartitioning.PartitionTest(t)

	stub := func() int64 { return 42 }
	prev := SetMonotonicSource(stub)
	require.NotNil(t, prev)
	require.Equal(t, int64(42), monotonicNow())
	SetMonotonicSource(prev)
	require.NotEqual(t, int64(42), monotonicNow())

	prevSleep := SetSleepFunc(func(seconds float64) float64 { return seconds })
	require.NotNil(t, prevSleep)
	SetSleepFunc(prevSleep)

	prevPrecision := SetDefaultPrecision(3)
	require.Equal(t, DefaultPrecision, prevPrecision)
	require.Equal(t, 3, SetDefaultPrecision(prevPrecision))
}

func TestPrecisionClampsNegative(t *testing.T) {
	testpartitioning.PartitionTest(t)

	prev := SetDefaultPrecision(-7)
	defer SetDefaultPrecision(prev)

	require.Equal(t, 0, defaultPrecision())
	// precision 0 renders the rounded integer magnitude with no fraction
	require.Equal(t, "1s", sec(t, 1.4).String())
}
