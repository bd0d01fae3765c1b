package summary

// Band is a range of Delta values with independently inclusive ends.
type Band struct {
	Label        string
	Lower, Upper float64
	UpperClosed  bool // Lower is always inclusive
}

// Contains reports whether delta lies in the band.
func (b Band) Contains(delta float64) bool {
	if delta < b.Lower {
		return false
	}
	if b.UpperClosed {
		return delta <= b.Upper
	}
	return delta < b.Upper
}

// The labels do not describe the ranges: BandA is [-2, -1] yet is titled
// "< -2%". Both labels are kept as published.
var (
	BandA = Band{Label: "Days with Change < -2%", Lower: -2, Upper: -1, UpperClosed: true}
	BandB = Band{Label: "Days with Change in [-10%, -2%]", Lower: -10, Upper: -2}
)
