package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "upravdom/internal/domain/request/valueobjects"
)

func requestCreatedAt(t *testing.T, id uint, createdAt time.Time) *Request {
	t.Helper()
	r, err := ReconstructRequest(ReconstructParams{
		ID:          id,
		RootID:      id * 10,
		Number:      "125",
		Description: "desc",
		Urgency:     vo.UrgencyNormal,
		Status:      vo.StatusNew,
		AddressID:   3,
		ExecutorID:  2,
		DefectID:    5,
		UserID:      1,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	})
	require.NoError(t, err)
	return r
}

func TestCorrelate(t *testing.T) {
	now := time.Now()

	t.Run("no candidates", func(t *testing.T) {
		res := Correlate(nil, now)
		assert.Nil(t, res.Parent)
		assert.Empty(t, res.Flagged)
	})

	t.Run("term not yet elapsed", func(t *testing.T) {
		r := requestCreatedAt(t, 1, now.Add(-24*time.Hour))
		res := Correlate([]CorrelationCandidate{{Request: r, TermDays: 3}}, now)
		assert.Nil(t, res.Parent)
		assert.Empty(t, res.Flagged)
	})

	t.Run("elapsed candidate is flagged and becomes parent", func(t *testing.T) {
		r := requestCreatedAt(t, 1, now.Add(-4*24*time.Hour))
		res := Correlate([]CorrelationCandidate{{Request: r, TermDays: 3}}, now)
		require.Len(t, res.Flagged, 1)
		assert.Same(t, r, res.Parent)
	})

	t.Run("earliest created becomes parent, all elapsed flagged", func(t *testing.T) {
		older := requestCreatedAt(t, 1, now.Add(-10*24*time.Hour))
		newer := requestCreatedAt(t, 2, now.Add(-5*24*time.Hour))
		pending := requestCreatedAt(t, 3, now.Add(-time.Hour))

		res := Correlate([]CorrelationCandidate{
			{Request: newer, TermDays: 2},
			{Request: older, TermDays: 2},
			{Request: pending, TermDays: 2},
		}, now)

		require.Len(t, res.Flagged, 2)
		assert.Same(t, older, res.Parent)
	})

	t.Run("nil requests skipped", func(t *testing.T) {
		res := Correlate([]CorrelationCandidate{{Request: nil, TermDays: 1}}, now)
		assert.Nil(t, res.Parent)
	})
}

func TestIsIncidentMember(t *testing.T) {
	now := time.Now()
	child := requestCreatedAt(t, 1, now)

	sameAttrs := MembershipParams{
		ChildCategory:  "Сантехника",
		ParentCategory: "Сантехника",
		ChildAddress:   "ул. Ленина, 1",
		ParentAddress:  "ул. Ленина, 1",
	}

	tests := []struct {
		name      string
		parentAge time.Duration
		params    MembershipParams
		want      bool
	}{
		{name: "inside window", parentAge: 3 * 24 * time.Hour, params: sameAttrs, want: true},
		{name: "too recent, one day bound", parentAge: 12 * time.Hour, params: sameAttrs, want: false},
		{name: "exactly one day is excluded", parentAge: 24 * time.Hour, params: sameAttrs, want: false},
		{name: "too old, seven day bound", parentAge: 8 * 24 * time.Hour, params: sameAttrs, want: false},
		{
			name:      "category mismatch",
			parentAge: 3 * 24 * time.Hour,
			params: MembershipParams{
				ChildCategory: "Сантехника", ParentCategory: "Электрика",
				ChildAddress: "ул. Ленина, 1", ParentAddress: "ул. Ленина, 1",
			},
			want: false,
		},
		{
			name:      "address mismatch",
			parentAge: 3 * 24 * time.Hour,
			params: MembershipParams{
				ChildCategory: "Сантехника", ParentCategory: "Сантехника",
				ChildAddress: "ул. Ленина, 1", ParentAddress: "ул. Ленина, 2",
			},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parent := requestCreatedAt(t, 2, now.Add(-tc.parentAge))
			assert.Equal(t, tc.want, IsIncidentMember(child, parent, tc.params))
		})
	}

	t.Run("nil requests", func(t *testing.T) {
		assert.False(t, IsIncidentMember(nil, child, sameAttrs))
		assert.False(t, IsIncidentMember(child, nil, sameAttrs))
	})
}
