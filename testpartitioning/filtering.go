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

// Package testpartitioning shards the test suite across CI workers. A test
// calls PartitionTest(t) first thing; when PARTITION_TOTAL and PARTITION_ID
// are set, only the worker whose id matches the test's assigned shard runs
// it, the rest skip.
package testpartitioning

import (
	"hash/fnv"
	"os"
	"runtime"
	"strconv"
	"testing"
)

// PartitionTest skips t unless it falls into the current worker's partition.
// Without the partition environment variables every test runs everywhere.
func PartitionTest(t *testing.T) {
	total, ok := envInt("PARTITION_TOTAL")
	if !ok || total <= 0 {
		return
	}
	id, ok := envInt("PARTITION_ID")
	if !ok {
		return
	}
	// The shard is derived from file and test name so renumbering tests in a
	// file does not reshuffle every other shard.
	_, file, _, _ := runtime.Caller(1)
	assigned := hashString(file+":"+t.Name()) % uint64(total)
	if assigned != uint64(id) {
		t.Skipf("skipping due to partitioning, assigned to partition %d", assigned)
	}
}

func envInt(name string) (int, bool) {
	raw, found := os.LookupEnv(name)
	if !found {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
