package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upravdom/internal/domain/closing"
	"upravdom/internal/domain/request"
	"upravdom/internal/shared/errors"
)

func submitReviewDeps(t *testing.T, req *request.Request) (*mockRequestRepository, *mockClosingResultRepository) {
	t.Helper()

	requestRepo := &mockRequestRepository{
		GetByRootIDFunc: func(ctx context.Context, rootID uint) (*request.Request, error) {
			return req, nil
		},
	}

	closingResult, err := closing.ReconstructClosingResult(
		3, req.RootID(), "", closing.SignNo, nil, "", "Выполнено", "", closing.SignNo, closing.SignNo, nil, nil, time.Now(),
	)
	require.NoError(t, err)
	closingRepo := &mockClosingResultRepository{
		GetByRequestRootIDFunc: func(ctx context.Context, rootID uint) (*closing.ClosingResult, error) {
			return closingResult, nil
		},
	}

	return requestRepo, closingRepo
}

func TestSubmitReview_Success(t *testing.T) {
	req := closedRequest(t, 24*time.Hour, nil)
	requestRepo, closingRepo := submitReviewDeps(t, req)

	var saved *closing.Review
	reviewRepo := &mockReviewRepository{
		SaveFunc: func(ctx context.Context, r *closing.Review) error {
			saved = r
			return r.SetID(11)
		},
	}

	uc := NewSubmitReviewUseCase(requestRepo, closingRepo, reviewRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), SubmitReviewCommand{
		RootID:     req.RootID(),
		Review:     "Быстро и аккуратно",
		Assessment: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(11), result.ReviewID)
	assert.Equal(t, uint(5), result.Assessment)
	require.NotNil(t, saved)
	assert.Equal(t, uint(3), saved.ClosingResultID())
	assert.Equal(t, "Быстро и аккуратно", saved.Text())
}

func TestSubmitReview_NotClosed(t *testing.T) {
	req, err := reconstructedRequest(1, 7, func(p *request.ReconstructParams) {
		p.Status = "in_progress"
	})
	require.NoError(t, err)

	requestRepo := &mockRequestRepository{
		GetByRootIDFunc: func(ctx context.Context, rootID uint) (*request.Request, error) {
			return req, nil
		},
	}

	uc := NewSubmitReviewUseCase(requestRepo, &mockClosingResultRepository{}, &mockReviewRepository{}, &mockLogger{})
	_, err = uc.Execute(context.Background(), SubmitReviewCommand{RootID: 7, Assessment: 4})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubmitReview_AlreadyReviewed(t *testing.T) {
	req := closedRequest(t, 24*time.Hour, nil)
	requestRepo, closingRepo := submitReviewDeps(t, req)

	existing, err := closing.ReconstructReview(9, 3, time.Now(), "Хорошо", 4)
	require.NoError(t, err)
	reviewRepo := &mockReviewRepository{
		ListByClosingResultIDFunc: func(ctx context.Context, closingResultID uint) ([]*closing.Review, error) {
			return []*closing.Review{existing}, nil
		},
	}

	uc := NewSubmitReviewUseCase(requestRepo, closingRepo, reviewRepo, &mockLogger{})
	_, err = uc.Execute(context.Background(), SubmitReviewCommand{RootID: req.RootID(), Assessment: 5})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestSubmitReview_AssessmentOutOfRange(t *testing.T) {
	req := closedRequest(t, 24*time.Hour, nil)
	requestRepo, closingRepo := submitReviewDeps(t, req)

	uc := NewSubmitReviewUseCase(requestRepo, closingRepo, &mockReviewRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), SubmitReviewCommand{RootID: req.RootID(), Assessment: 6})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
