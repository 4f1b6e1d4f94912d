package entity

// Band is a display classification of a 0-100 score.
type Band string

const (
	BandHigh   Band = "HIGH"
	BandMedium Band = "MEDIUM"
	BandLow    Band = "LOW"
	BandClean  Band = "CLEAN"
)

// SpamBandFor classifies a spam score. Thresholds are policy constants:
// >70 high, 41-70 medium, <=40 clean.
func SpamBandFor(score int) Band {
	switch {
	case score > 70:
		return BandHigh
	case score > 40:
		return BandMedium
	default:
		return BandClean
	}
}

// ConfidenceBandFor classifies a confidence score. Thresholds:
// >80 high, 61-80 medium, <=60 low.
func ConfidenceBandFor(score int) Band {
	switch {
	case score > 80:
		return BandHigh
	case score > 60:
		return BandMedium
	default:
		return BandLow
	}
}
