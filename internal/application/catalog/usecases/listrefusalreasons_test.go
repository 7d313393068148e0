package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/shared/errors"
)

func TestListRefusalReasons_Success(t *testing.T) {
	refusalRepo := &mockRefusalReasonRepository{
		ListExecutorFunc: func(ctx context.Context) ([]*catalog.RefusalReason, error) {
			return []*catalog.RefusalReason{
				{ID: 1, Name: "Нет доступа в помещение", FailureReasonID: 10},
			}, nil
		},
		ListImplementingFunc: func(ctx context.Context) ([]*catalog.RefusalReason, error) {
			return []*catalog.RefusalReason{
				{ID: 2, Name: "Работы не относятся к компетенции", FailureReasonID: 20},
				{ID: 3, Name: "Отказ заявителя", FailureReasonID: 21},
			}, nil
		},
	}

	uc := NewListRefusalReasonsUseCase(refusalRepo, &mockLogger{})
	reasons, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, reasons.Executor, 1)
	assert.Equal(t, "Нет доступа в помещение", reasons.Executor[0].Name)
	require.Len(t, reasons.ImplementingOrganization, 2)
	assert.Equal(t, uint(21), reasons.ImplementingOrganization[1].FailureReasonID)
}

func TestListRefusalReasons_RepositoryError(t *testing.T) {
	refusalRepo := &mockRefusalReasonRepository{
		ListExecutorFunc: func(ctx context.Context) ([]*catalog.RefusalReason, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}

	uc := NewListRefusalReasonsUseCase(refusalRepo, &mockLogger{})
	_, err := uc.Execute(context.Background())
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
