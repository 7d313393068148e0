package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRootID(t *testing.T) {
	tests := []struct {
		name         string
		maxRootID    uint
		maxVersionID uint
		want         uint
	}{
		{name: "empty dataset starts at 1", maxRootID: 0, maxVersionID: 0, want: 1},
		{name: "root maximum dominates", maxRootID: 10, maxVersionID: 3, want: 11},
		{name: "version maximum dominates", maxRootID: 10, maxVersionID: 25, want: 26},
		{name: "equal maxima", maxRootID: 7, maxVersionID: 7, want: 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextRootID(tc.maxRootID, tc.maxVersionID))
		})
	}
}

func TestNumberPrefix(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		want    int
		wantErr bool
	}{
		{name: "plain number", number: "1225", want: 12},
		{name: "single digit prefix", number: "125", want: 1},
		{name: "legacy slash suffix ignored", number: "4525/3", want: 45},
		{name: "too short", number: "25", wantErr: true},
		{name: "non numeric prefix", number: "ab25", wantErr: true},
		{name: "empty", number: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NumberPrefix(tc.number)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name    string
		numbers []string
		year    int
		want    string
	}{
		{name: "empty dataset", numbers: nil, year: 2025, want: "125"},
		{name: "increments maximum prefix", numbers: []string{"125", "225", "1025"}, year: 2025, want: "1125"},
		{name: "prefixes from earlier years count", numbers: []string{"5024"}, year: 2025, want: "5125"},
		{name: "unparseable numbers skipped", numbers: []string{"bad", "325"}, year: 2025, want: "425"},
		{name: "year suffix zero padded", numbers: []string{"104"}, year: 2005, want: "205"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextNumber(tc.numbers, tc.year))
		})
	}
}
