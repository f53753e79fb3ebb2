package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveHandler_SubmitLeave_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	userID := registerUserWithFingerprint(t, router, "FP-2001")

	w := postJSON(t, router, "/leave/", map[string]string{
		"user":       userID,
		"leave_type": "Annual",
		"start_date": "2026-09-01",
		"end_date":   "2026-09-05",
		"reason":     "Family vacation",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Leave request submitted", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, userID, data["user"])
	assert.Equal(t, "Pending", data["status"])
	assert.Equal(t, "2026-09-01", data["start_date"])
}

func TestLeaveHandler_SubmitLeave_UnknownUser(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	w := postJSON(t, router, "/leave/", map[string]string{
		"user":       uuid.NewString(),
		"leave_type": "Annual",
		"start_date": "2026-09-01",
		"end_date":   "2026-09-05",
		"reason":     "Family vacation",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaveHandler_SubmitLeave_MissingFields(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	w := postJSON(t, router, "/leave/", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_ListUsers(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	registerUserWithFingerprint(t, router, "FP-2002")
	registerUserWithFingerprint(t, router, "FP-2003")

	req := httptest.NewRequest(http.MethodGet, "/reports/reports/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)

	for _, item := range data {
		userData := item.(map[string]interface{})
		assert.NotContains(t, userData, "password")
		assert.NotContains(t, userData, "password_hash")
	}
}

func TestReportHandler_ListLeaveRequests(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	userID := registerUserWithFingerprint(t, router, "FP-2004")
	submit := postJSON(t, router, "/leave/", map[string]string{
		"user":       userID,
		"leave_type": "Sick",
		"start_date": "2026-09-10",
		"end_date":   "2026-09-11",
		"reason":     "Flu",
	})
	require.Equal(t, http.StatusCreated, submit.Code)

	req := httptest.NewRequest(http.MethodGet, "/reports/leave-requests/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].([]interface{})
	require.Len(t, data, 1)

	leaveData := data[0].(map[string]interface{})
	assert.Equal(t, "Sick", leaveData["leave_type"])
	assert.Equal(t, "Pending", leaveData["status"])
}

func TestReportHandler_ListUsers_Empty(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/reports/reports/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].([]interface{})
	assert.Empty(t, data)
}
