package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-mgmt/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func TestAttendanceRepository_ClockIn_Success(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	testUser := createTestUser(t, ctx, uniqueUsername("clockin"), nil)
	date := testDate()
	checkIn := time.Now().UTC()

	att, err := attendanceRepo.ClockIn(ctx, testUser.ID, date, checkIn)

	assert.NoError(t, err)
	assert.NotEmpty(t, att.ID)
	assert.Equal(t, testUser.ID, att.UserID)
	assert.Equal(t, attendance.StatusPresent, att.Status)
	require.NotNil(t, att.CheckIn)
	assert.Nil(t, att.CheckOut)
}

func TestAttendanceRepository_ClockIn_Twice(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	testUser := createTestUser(t, ctx, uniqueUsername("twice"), nil)
	date := testDate()

	_, err := attendanceRepo.ClockIn(ctx, testUser.ID, date, time.Now().UTC())
	require.NoError(t, err)

	_, err = attendanceRepo.ClockIn(ctx, testUser.ID, date, time.Now().UTC())

	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceRepository_ClockIn_DifferentDays(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	testUser := createTestUser(t, ctx, uniqueUsername("days"), nil)
	today := testDate()
	yesterday := today.AddDate(0, 0, -1)

	_, err := attendanceRepo.ClockIn(ctx, testUser.ID, yesterday, time.Now().UTC().AddDate(0, 0, -1))
	require.NoError(t, err)

	_, err = attendanceRepo.ClockIn(ctx, testUser.ID, today, time.Now().UTC())

	assert.NoError(t, err)
}

func TestAttendanceRepository_ClockOut_ComputesWorkingHours(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	testUser := createTestUser(t, ctx, uniqueUsername("hours"), nil)
	date := testDate()
	checkIn := date.Add(9 * time.Hour)
	checkOut := date.Add(17 * time.Hour)

	_, err := attendanceRepo.ClockIn(ctx, testUser.ID, date, checkIn)
	require.NoError(t, err)

	att, err := attendanceRepo.ClockOut(ctx, testUser.ID, date, checkOut)

	assert.NoError(t, err)
	require.NotNil(t, att.CheckOut)
	assert.InDelta(t, 8.0, att.WorkingHours, 0.01)
}

func TestAttendanceRepository_ClockOut_WithoutClockIn(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	testUser := createTestUser(t, ctx, uniqueUsername("noin"), nil)

	_, err := attendanceRepo.ClockOut(ctx, testUser.ID, testDate(), time.Now().UTC())

	assert.Error(t, err)
}

func TestAttendanceRepository_GetByUserAndDate_NotFound(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(testDB)

	testUser := createTestUser(t, ctx, uniqueUsername("norecord"), nil)

	_, err := attendanceRepo.GetByUserAndDate(ctx, testUser.ID, testDate())

	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
