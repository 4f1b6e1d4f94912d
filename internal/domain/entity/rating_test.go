package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"xlookup/internal/domain/entity"
)

func TestSpamBandFor(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		score    int
		expected entity.Band
	}{
		{0, entity.BandClean},
		{40, entity.BandClean},
		{41, entity.BandMedium},
		{70, entity.BandMedium},
		{71, entity.BandHigh},
		{100, entity.BandHigh},
	}

	for _, tc := range testCases {
		rq.Equal(tc.expected, entity.SpamBandFor(tc.score), "score %d", tc.score)
	}
}

func TestConfidenceBandFor(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		score    int
		expected entity.Band
	}{
		{0, entity.BandLow},
		{60, entity.BandLow},
		{61, entity.BandMedium},
		{80, entity.BandMedium},
		{81, entity.BandHigh},
		{100, entity.BandHigh},
	}

	for _, tc := range testCases {
		rq.Equal(tc.expected, entity.ConfidenceBandFor(tc.score), "score %d", tc.score)
	}
}
