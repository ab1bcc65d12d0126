package stopwatch

import "strconv"

// LapRow is one rendered entry of the lap list.
type LapRow struct {
	Number   int
	Duration int64
	Fastest  bool
	Slowest  bool
}

// Label returns the row caption, e.g. "Lap 3".
func (r LapRow) Label() string { return "Lap " + strconv.Itoa(r.Number) }

// LapRows projects laps (newest first) into display rows. live is the
// elapsed time of the running segment and is added to the in-progress lap at
// index 0.
//
// Only completed laps (index 1 onwards) compete for fastest and slowest, and
// only once there are at least two of them. Every lap equal to an extreme is
// flagged.
func LapRows(laps []int64, live int64) []LapRow {
	if len(laps) == 0 {
		return nil
	}
	var fastest, slowest int64
	ranked := len(laps) >= 3
	if ranked {
		fastest, slowest = laps[1], laps[1]
		for _, l := range laps[2:] {
			if l < fastest {
				fastest = l
			}
			if l > slowest {
				slowest = l
			}
		}
	}
	rows := make([]LapRow, len(laps))
	for i, l := range laps {
		row := LapRow{Number: len(laps) - i, Duration: l}
		if i == 0 {
			row.Duration = l + live
		} else if ranked {
			row.Fastest = l == fastest
			row.Slowest = l == slowest
		}
		rows[i] = row
	}
	return rows
}
