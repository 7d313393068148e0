package closing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClosingResult(t *testing.T) {
	c, err := NewClosingResult(NewClosingResultParams{
		RequestRootID: 10,
		Effectiveness: "Выполнено",
	})
	require.NoError(t, err)

	assert.Equal(t, SignNo, c.SecurityEventsSign(), "security events sign defaults to no")
	assert.Equal(t, SignNo, c.SignAlerted())
	assert.Equal(t, SignNo, c.BeingUnderRevision())
	assert.False(t, c.IsUnderRevision())
	assert.False(t, c.ClosingDate().IsZero())
}

func TestNewClosingResult_Invalid(t *testing.T) {
	_, err := NewClosingResult(NewClosingResultParams{Effectiveness: "Выполнено"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request root ID")

	_, err = NewClosingResult(NewClosingResultParams{RequestRootID: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "effectiveness")
}

func TestMarkUnderRevision(t *testing.T) {
	c, err := NewClosingResult(NewClosingResultParams{
		RequestRootID: 10,
		Effectiveness: "Выполнено",
	})
	require.NoError(t, err)

	c.MarkUnderRevision()
	assert.True(t, c.IsUnderRevision())
	assert.Equal(t, SignYes, c.BeingUnderRevision())
}

func TestRefinementIncrement(t *testing.T) {
	r, err := NewRefinement(5)
	require.NoError(t, err)
	assert.Zero(t, r.ReturnCount())
	assert.Nil(t, r.LastReturnDate())

	now := time.Now()
	r.Increment(now)
	r.Increment(now.Add(time.Hour))

	assert.Equal(t, uint(2), r.ReturnCount())
	require.NotNil(t, r.LastReturnDate())
	assert.Equal(t, now.Add(time.Hour), *r.LastReturnDate())
}

func TestNewReview(t *testing.T) {
	now := time.Now()

	r, err := NewReview(5, "Спасибо, всё починили", 5, now)
	require.NoError(t, err)
	assert.Equal(t, uint(5), r.AssessmentQualityWork())
	assert.Equal(t, now, r.Date())

	_, err = NewReview(5, "плохо", 0, now)
	assert.Error(t, err)

	_, err = NewReview(5, "слишком хорошо", 6, now)
	assert.Error(t, err)
}
