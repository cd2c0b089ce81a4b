package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/localnerve/workout-tracker/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logBody(userID string, exerciseID uint64, series int, completedAt string) map[string]any {
	body := map[string]any{
		"user_id":       userID,
		"exercise_id":   exerciseID,
		"series_number": series,
		"repetitions":   10,
		"weight":        42.5,
	}
	if completedAt != "" {
		body["completed_at"] = completedAt
	}
	return body
}

func TestCreateUserExerciseLog(t *testing.T) {
	env := setupTestApp(t)
	exercise := seedExercise(t, env.db)
	userID := newUserID()

	resp := env.do(t, http.MethodPost, "/api/logs", logBody(userID, exercise.ID, 1, "2026-05-01T18:30:00+02:00"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var log models.UserExerciseLog
	decode(t, resp, &log)
	assert.NotZero(t, log.ID)
	assert.Equal(t, userID, log.UserID)
	assert.Equal(t, exercise.ID, log.ExerciseID)
	assert.Equal(t, 42.5, log.Weight)
	assert.True(t, log.CompletedAt.Equal(time.Date(2026, 5, 1, 16, 30, 0, 0, time.UTC)))
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.CounterSetsLogged))

	t.Run("exercise id as string", func(t *testing.T) {
		body := logBody(userID, exercise.ID, 2, "")
		body["exercise_id"] = fmt.Sprintf("%d", exercise.ID)
		resp := env.do(t, http.MethodPost, "/api/logs", body)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("unknown exercise", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/logs", logBody(userID, 9999, 1, ""))
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		var body errorBody
		decode(t, resp, &body)
		assert.Equal(t, "not_found", body.Type)
	})

	t.Run("invalid fields", func(t *testing.T) {
		body := map[string]any{
			"user_id":       "",
			"exercise_id":   exercise.ID,
			"series_number": 5,
			"repetitions":   0,
			"weight":        -1,
			"completed_at":  "yesterday",
		}
		resp := env.do(t, http.MethodPost, "/api/logs", body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var eb errorBody
		decode(t, resp, &eb)
		assert.Equal(t, "validation", eb.Type)
		for _, field := range []string{"user_id", "series_number", "repetitions", "weight", "completed_at"} {
			assert.True(t, eb.hasField(field), field)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/logs", "{not json")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var eb errorBody
		decode(t, resp, &eb)
		assert.True(t, eb.hasField("body"))
	})
}

func TestGetUserExerciseLogs(t *testing.T) {
	env := setupTestApp(t)
	exercise := seedExercise(t, env.db)
	userID := newUserID()

	for i, ts := range []string{"2026-05-01T10:00:00Z", "2026-05-02T10:00:00Z", "2026-05-03T10:00:00Z"} {
		resp := env.do(t, http.MethodPost, "/api/logs", logBody(userID, exercise.ID, i+1, ts))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp := env.do(t, http.MethodPost, "/api/logs", logBody(newUserID(), exercise.ID, 1, ""))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/logs?user_id="+userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logs []models.UserExerciseLog
	decode(t, resp, &logs)
	require.Len(t, logs, 3)
	assert.Equal(t, 3, logs[0].SeriesNumber)
	assert.Equal(t, 1, logs[2].SeriesNumber)

	t.Run("paged", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/logs?user_id=%s&exercise_id=%d&limit=1&offset=1", userID, exercise.ID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var logs []models.UserExerciseLog
		decode(t, resp, &logs)
		require.Len(t, logs, 1)
		assert.Equal(t, 2, logs[0].SeriesNumber)
	})

	t.Run("missing user", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/logs", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var eb errorBody
		decode(t, resp, &eb)
		assert.True(t, eb.hasField("user_id"))
	})

	t.Run("bad paging", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/logs?user_id="+userID+"&limit=0&offset=-1", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var eb errorBody
		decode(t, resp, &eb)
		assert.True(t, eb.hasField("limit"))
		assert.True(t, eb.hasField("offset"))
	})
}

func TestGetLastExercisePerformance(t *testing.T) {
	env := setupTestApp(t)
	exercise := seedExercise(t, env.db)
	userID := newUserID()

	const earlier = "2026-05-01T10:00:00Z"
	const latest = "2026-05-08T10:00:00Z"
	for _, entry := range []struct {
		series int
		ts     string
	}{{1, earlier}, {2, latest}, {1, latest}} {
		resp := env.do(t, http.MethodPost, "/api/logs", logBody(userID, exercise.ID, entry.series, entry.ts))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/logs/last?user_id=%s&exercise_id=%d", userID, exercise.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logs []models.UserExerciseLog
	decode(t, resp, &logs)
	require.Len(t, logs, 2)
	assert.Equal(t, 1, logs[0].SeriesNumber)
	assert.Equal(t, 2, logs[1].SeriesNumber)

	t.Run("never performed", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/logs/last?user_id=%s&exercise_id=%d", newUserID(), exercise.ID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var logs []models.UserExerciseLog
		decode(t, resp, &logs)
		assert.Empty(t, logs)
	})

	t.Run("exercise id required", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/logs/last?user_id="+userID, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var eb errorBody
		decode(t, resp, &eb)
		assert.True(t, eb.hasField("exercise_id"))
	})
}
