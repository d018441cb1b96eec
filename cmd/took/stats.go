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

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/monotime-go/monotime"
)

// runStats accumulates per-run durations and derives the aggregates the
// report shows. All aggregates return the zero span when nothing was recorded.
type runStats struct {
	durations []monotime.Duration
}

func (s *runStats) record(d monotime.Duration) {
	s.durations = append(s.durations, d)
}

func (s *runStats) min() monotime.Duration {
	if len(s.durations) == 0 {
		return monotime.Zero()
	}
	best := s.durations[0]
	for _, d := range s.durations[1:] {
		if ord, ok := d.Compare(best); ok && ord < 0 {
			best = d
		}
	}
	return best
}

func (s *runStats) max() monotime.Duration {
	if len(s.durations) == 0 {
		return monotime.Zero()
	}
	worst := s.durations[0]
	for _, d := range s.durations[1:] {
		if ord, ok := d.Compare(worst); ok && ord > 0 {
			worst = d
		}
	}
	return worst
}

func (s *runStats) mean() monotime.Duration {
	if len(s.durations) == 0 {
		return monotime.Zero()
	}
	sum := monotime.Zero()
	for _, d := range s.durations {
		sum = sum.Add(d)
	}
	return sum.Div(float64(len(s.durations)))
}

// relative renders d as a multiple of the fastest run, e.g. "1.27x".
func relative(d, fastest monotime.Duration) string {
	if fastest.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%.2fx", d.Seconds()/fastest.Seconds())
}

func renderTable(out io.Writer, stats *runStats) {
	fastest := stats.min()

	table := tablewriter.NewWriter(out)
	// keep duration strings as-is, tablewriter would uppercase them
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Run", "Took", "Vs Fastest"})
	for i, d := range stats.durations {
		table.Append([]string{strconv.Itoa(i + 1), d.Format(precision), relative(d, fastest)})
	}
	table.SetFooter([]string{
		"mean " + stats.mean().Format(precision),
		"min " + fastest.Format(precision),
		"max " + stats.max().Format(precision),
	})
	table.Render()
}
