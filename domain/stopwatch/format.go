package stopwatch

import "fmt"

// Fields holds the zero-padded parts of a formatted duration.
type Fields struct {
	Minutes    string
	Seconds    string
	Hundredths string
}

// String renders the fields as MM:SS.hh.
func (f Fields) String() string {
	return f.Minutes + ":" + f.Seconds + "." + f.Hundredths
}

// Format splits a duration in milliseconds into display fields. Minutes do
// not roll over into hours. Negative input is treated as zero.
func Format(ms int64) Fields {
	if ms < 0 {
		ms = 0
	}
	return Fields{
		Minutes:    pad(ms / 60000),
		Seconds:    pad(ms / 1000 % 60),
		Hundredths: pad(ms % 1000 / 10),
	}
}

func pad(n int64) string { return fmt.Sprintf("%02d", n) }
