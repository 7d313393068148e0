package request

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestdto "upravdom/internal/application/request/dto"
	"upravdom/internal/application/request/usecases"
	"upravdom/internal/interfaces/http/handlers/testutil"
	"upravdom/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateRequestUC struct {
	result *usecases.CreateRequestResult
	err    error
}

func (m *mockCreateRequestUC) Execute(_ context.Context, _ usecases.CreateRequestCommand) (*usecases.CreateRequestResult, error) {
	return m.result, m.err
}

type mockUpdateRequestUC struct {
	result *usecases.UpdateRequestResult
	err    error
}

func (m *mockUpdateRequestUC) Execute(_ context.Context, _ usecases.UpdateRequestCommand) (*usecases.UpdateRequestResult, error) {
	return m.result, m.err
}

type mockGetRequestUC struct {
	result *requestdto.RequestDTO
	err    error
}

func (m *mockGetRequestUC) Execute(_ context.Context, _ usecases.GetRequestQuery) (*requestdto.RequestDTO, error) {
	return m.result, m.err
}

type mockListRequestsUC struct {
	result []requestdto.RequestListItemDTO
	err    error

	gotBucket string
}

func (m *mockListRequestsUC) Execute(_ context.Context, query usecases.ListRequestsQuery) ([]requestdto.RequestListItemDTO, error) {
	m.gotBucket = query.Bucket
	return m.result, m.err
}

type mockReworkRequestUC struct {
	result *usecases.ReworkRequestResult
	err    error
}

func (m *mockReworkRequestUC) Execute(_ context.Context, _ usecases.ReworkRequestCommand) (*usecases.ReworkRequestResult, error) {
	return m.result, m.err
}

type mockCloseRequestUC struct {
	result *usecases.CloseRequestResult
	err    error
}

func (m *mockCloseRequestUC) Execute(_ context.Context, _ usecases.CloseRequestCommand) (*usecases.CloseRequestResult, error) {
	return m.result, m.err
}

type mockListIncidentsUC struct {
	result []requestdto.IncidentGroupDTO
	err    error
}

func (m *mockListIncidentsUC) Execute(_ context.Context, _ usecases.ListIncidentsQuery) ([]requestdto.IncidentGroupDTO, error) {
	return m.result, m.err
}

type mockSubmitReviewUC struct {
	result *usecases.SubmitReviewResult
	err    error
}

func (m *mockSubmitReviewUC) Execute(_ context.Context, _ usecases.SubmitReviewCommand) (*usecases.SubmitReviewResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createRequestUC usecases.CreateRequestExecutor
	updateRequestUC usecases.UpdateRequestExecutor
	getRequestUC    usecases.GetRequestExecutor
	listRequestsUC  usecases.ListRequestsExecutor
	reworkRequestUC usecases.ReworkRequestExecutor
	closeRequestUC  usecases.CloseRequestExecutor
	listIncidentsUC usecases.ListIncidentsExecutor
	submitReviewUC  usecases.SubmitReviewExecutor
}

func newTestRequestHandler(deps testDeps) *RequestHandler {
	return NewRequestHandler(
		deps.createRequestUC,
		deps.updateRequestUC,
		deps.getRequestUC,
		deps.listRequestsUC,
		deps.reworkRequestUC,
		deps.closeRequestUC,
		deps.listIncidentsUC,
		deps.submitReviewUC,
	)
}

// =====================================================================
// TestRequestHandler_CreateRequest
// =====================================================================

func TestRequestHandler_CreateRequest_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockCreateRequestUC{
		result: &usecases.CreateRequestResult{
			RequestID: 1,
			RootID:    1,
			Number:    "126",
			Status:    "new",
			CreatedAt: now,
		},
	}
	handler := newTestRequestHandler(testDeps{createRequestUC: mockUC})

	reqBody := CreateRequestRequest{
		Description: "Протечка в ванной",
		Urgency:     "normal",
		AddressID:   1,
		ExecutorID:  2,
		DefectID:    3,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateRequest(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestRequestHandler_CreateRequest_BindError(t *testing.T) {
	handler := newTestRequestHandler(testDeps{})

	// Missing required fields
	reqBody := map[string]string{"description": "only description"}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestRequestHandler_CreateRequest_UseCaseError(t *testing.T) {
	mockUC := &mockCreateRequestUC{
		err: errors.NewValidationError("invalid urgency"),
	}
	handler := newTestRequestHandler(testDeps{createRequestUC: mockUC})

	reqBody := CreateRequestRequest{
		Description: "Протечка в ванной",
		Urgency:     "urgent",
		AddressID:   1,
		ExecutorID:  2,
		DefectID:    3,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestRequestHandler_GetRequest
// =====================================================================

func TestRequestHandler_GetRequest_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockGetRequestUC{
		result: &requestdto.RequestDTO{
			ID:          1,
			RootID:      1,
			Number:      "126",
			Description: "Протечка в ванной",
			Urgency:     "normal",
			Status:      "new",
			AddressID:   1,
			ExecutorID:  2,
			DefectID:    3,
			UserID:      1,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	handler := newTestRequestHandler(testDeps{getRequestUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/requests/1", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.GetRequest(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestRequestHandler_GetRequest_InvalidID(t *testing.T) {
	handler := newTestRequestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/requests/abc", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "abc")

	handler.GetRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestRequestHandler_GetRequest_NotFound(t *testing.T) {
	mockUC := &mockGetRequestUC{
		err: errors.NewNotFoundError("request not found"),
	}
	handler := newTestRequestHandler(testDeps{getRequestUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/requests/999", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "999")

	handler.GetRequest(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestRequestHandler_ListRequests
// =====================================================================

func TestRequestHandler_ListRequests_Success(t *testing.T) {
	mockUC := &mockListRequestsUC{
		result: []requestdto.RequestListItemDTO{
			{
				ID:          1,
				RootID:      1,
				Number:      "126",
				Description: "Протечка в ванной",
				Status:      "new",
			},
		},
	}
	handler := newTestRequestHandler(testDeps{listRequestsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/requests", nil)
	testutil.SetAuthContext(c, 1)

	handler.ListRequests("")(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", mockUC.gotBucket)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestRequestHandler_ListRequests_Buckets(t *testing.T) {
	buckets := []string{"active", "new", "pending", "in_progress", "closed"}

	for _, bucket := range buckets {
		t.Run(bucket, func(t *testing.T) {
			mockUC := &mockListRequestsUC{result: []requestdto.RequestListItemDTO{}}
			handler := newTestRequestHandler(testDeps{listRequestsUC: mockUC})

			c, w := testutil.NewTestContext(http.MethodGet, "/requests/"+bucket, nil)
			testutil.SetAuthContext(c, 1)

			handler.ListRequests(bucket)(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, bucket, mockUC.gotBucket)
		})
	}
}

func TestRequestHandler_ListRequests_UseCaseError(t *testing.T) {
	mockUC := &mockListRequestsUC{
		err: errors.NewInternalError("database error"),
	}
	handler := newTestRequestHandler(testDeps{listRequestsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/requests", nil)
	testutil.SetAuthContext(c, 1)

	handler.ListRequests("")(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestRequestHandler_UpdateRequest
// =====================================================================

func TestRequestHandler_UpdateRequest_Success(t *testing.T) {
	mockUC := &mockUpdateRequestUC{
		result: &usecases.UpdateRequestResult{
			RootID:    1,
			VersionID: 5,
			Status:    "new",
			UpdatedAt: time.Now().UTC(),
		},
	}
	handler := newTestRequestHandler(testDeps{updateRequestUC: mockUC})

	reqBody := UpdateRequestRequest{
		Description: "Протечка в ванной, вода на полу",
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/requests/1", reqBody)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.UpdateRequest(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestRequestHandler_UpdateRequest_EditLocked(t *testing.T) {
	mockUC := &mockUpdateRequestUC{
		err: errors.NewForbiddenError("closed emergency request cannot be edited"),
	}
	handler := newTestRequestHandler(testDeps{updateRequestUC: mockUC})

	reqBody := UpdateRequestRequest{
		Description: "Новое описание",
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/requests/1", reqBody)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.UpdateRequest(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestRequestHandler_ReworkRequest
// =====================================================================

func TestRequestHandler_ReworkRequest_Success(t *testing.T) {
	mockUC := &mockReworkRequestUC{
		result: &usecases.ReworkRequestResult{
			RootID:      1,
			Status:      "new",
			ReturnCount: 1,
			ReworkedAt:  time.Now().UTC(),
		},
	}
	handler := newTestRequestHandler(testDeps{reworkRequestUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/requests/1/rework", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.ReworkRequest(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestRequestHandler_ReworkRequest_GateRefused(t *testing.T) {
	mockUC := &mockReworkRequestUC{
		err: errors.NewForbiddenError("rework window has expired"),
	}
	handler := newTestRequestHandler(testDeps{reworkRequestUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/requests/1/rework", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.ReworkRequest(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestRequestHandler_ReworkRequest_InvalidID(t *testing.T) {
	handler := newTestRequestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPatch, "/requests/abc/rework", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "abc")

	handler.ReworkRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestRequestHandler_CloseRequest
// =====================================================================

func TestRequestHandler_CloseRequest_Success(t *testing.T) {
	mockUC := &mockCloseRequestUC{
		result: &usecases.CloseRequestResult{
			RootID:          1,
			Status:          "closed",
			ClosingResultID: 7,
			ClosedAt:        time.Now().UTC(),
		},
	}
	handler := newTestRequestHandler(testDeps{closeRequestUC: mockUC})

	reqBody := CloseRequestRequest{
		Effectiveness: "Выполнено",
		ActionsTaken:  "Заменен стояк",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests/1/close", reqBody)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.CloseRequest(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestRequestHandler_CloseRequest_BindError(t *testing.T) {
	handler := newTestRequestHandler(testDeps{})

	// Missing required "effectiveness" field
	reqBody := map[string]string{"actions_taken": "Заменен стояк"}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests/1/close", reqBody)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.CloseRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestRequestHandler_CloseRequest_AlreadyClosed(t *testing.T) {
	mockUC := &mockCloseRequestUC{
		err: errors.NewConflictError("request is already closed"),
	}
	handler := newTestRequestHandler(testDeps{closeRequestUC: mockUC})

	reqBody := CloseRequestRequest{
		Effectiveness: "Выполнено",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests/1/close", reqBody)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.CloseRequest(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestRequestHandler_SubmitReview
// =====================================================================

func TestRequestHandler_SubmitReview_Success(t *testing.T) {
	mockUC := &mockSubmitReviewUC{
		result: &usecases.SubmitReviewResult{
			ReviewID:   1,
			RootID:     1,
			Assessment: 5,
			CreatedAt:  time.Now().UTC(),
		},
	}
	handler := newTestRequestHandler(testDeps{submitReviewUC: mockUC})

	reqBody := SubmitReviewRequest{
		Review:     "Быстро и аккуратно",
		Assessment: 5,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests/1/review", reqBody)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.SubmitReview(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestRequestHandler_SubmitReview_InvalidAssessment(t *testing.T) {
	handler := newTestRequestHandler(testDeps{})

	// Assessment outside the 1-5 range
	reqBody := map[string]interface{}{"assessment": 6}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests/1/review", reqBody)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.SubmitReview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestRequestHandler_SubmitReview_AlreadyReviewed(t *testing.T) {
	mockUC := &mockSubmitReviewUC{
		err: errors.NewConflictError("request already has a review"),
	}
	handler := newTestRequestHandler(testDeps{submitReviewUC: mockUC})

	reqBody := SubmitReviewRequest{Assessment: 4}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests/1/review", reqBody)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "rootId", "1")

	handler.SubmitReview(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestRequestHandler_ListIncidents
// =====================================================================

func TestRequestHandler_ListIncidents_Success(t *testing.T) {
	mockUC := &mockListIncidentsUC{
		result: []requestdto.IncidentGroupDTO{
			{
				Parent: requestdto.RequestListItemDTO{
					ID:           1,
					RootID:       1,
					Number:       "126",
					IncidentSign: "Да",
				},
				Members: []requestdto.RequestListItemDTO{
					{ID: 2, RootID: 2, Number: "226"},
				},
			},
		},
	}
	handler := newTestRequestHandler(testDeps{listIncidentsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/incidents", nil)
	testutil.SetAuthContext(c, 1)

	handler.ListIncidents(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestRequestHandler_ListIncidents_UseCaseError(t *testing.T) {
	mockUC := &mockListIncidentsUC{
		err: errors.NewInternalError("database error"),
	}
	handler := newTestRequestHandler(testDeps{listIncidentsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/incidents", nil)
	testutil.SetAuthContext(c, 1)

	handler.ListIncidents(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}
