package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUserWithFingerprint(t *testing.T, router http.Handler, fingerprintID string) string {
	username := uniqueTestUsername("fp")
	w := postJSON(t, router, "/accounts/signup/", map[string]string{
		"username":       username,
		"password":       "pw123",
		"fingerprint_id": fingerprintID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	userData := data["user"].(map[string]interface{})
	return userData["id"].(string)
}

func TestAttendanceHandler_CheckIn_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	registerUserWithFingerprint(t, router, "FP-1001")

	w := postJSON(t, router, "/attendance/check-in", map[string]string{
		"fingerprint_id": "FP-1001",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.True(t, resp["success"].(bool))
	assert.Contains(t, resp["message"], "Check-in successful at")

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Present", data["status"])
	assert.NotEmpty(t, data["check_in"])
}

func TestAttendanceHandler_CheckIn_UnknownFingerprint(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	w := postJSON(t, router, "/attendance/check-in", map[string]string{
		"fingerprint_id": "XYZ",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAttendanceHandler_CheckIn_Twice(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	registerUserWithFingerprint(t, router, "FP-1002")

	first := postJSON(t, router, "/attendance/check-in", map[string]string{
		"fingerprint_id": "FP-1002",
	})
	require.Equal(t, http.StatusOK, first.Code)

	second := postJSON(t, router, "/attendance/check-in", map[string]string{
		"fingerprint_id": "FP-1002",
	})

	assert.Equal(t, http.StatusBadRequest, second.Code)
	resp := decodeBody(t, second)
	errDetail := resp["error"].(map[string]interface{})
	assert.Equal(t, "Already checked in", errDetail["message"])
}

func TestAttendanceHandler_CheckIn_MissingFingerprint(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	w := postJSON(t, router, "/attendance/check-in", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandler_CheckOut_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	registerUserWithFingerprint(t, router, "FP-1003")

	checkIn := postJSON(t, router, "/attendance/check-in", map[string]string{
		"fingerprint_id": "FP-1003",
	})
	require.Equal(t, http.StatusOK, checkIn.Code)

	w := postJSON(t, router, "/attendance/check-out", map[string]string{
		"fingerprint_id": "FP-1003",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Contains(t, resp["message"], "Check-out successful at")

	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["check_out"])
}

func TestAttendanceHandler_CheckOut_WithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	router := createTestRouter()

	registerUserWithFingerprint(t, router, "FP-1004")

	w := postJSON(t, router, "/attendance/check-out", map[string]string{
		"fingerprint_id": "FP-1004",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
