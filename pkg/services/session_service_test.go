package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/ent/session"
	"github.com/assessflow/pipeline/pkg/models"
	testdb "github.com/assessflow/pipeline/test/database"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates session successfully", func(t *testing.T) {
		id := uuid.New().String()
		sess, err := svc.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:      id,
			UserID:         "user-1",
			Mode:           models.SessionModeProf,
			TotalQuestions: 12,
		})
		require.NoError(t, err)
		assert.Equal(t, id, sess.ID)
		assert.Equal(t, session.StatusInProgress, sess.Status)
		assert.Equal(t, 12, sess.TotalQuestions)
		assert.Equal(t, 0, sess.CurrentIndex)
		require.NotNil(t, sess.UserID)
		assert.Equal(t, "user-1", *sess.UserID)
	})

	t.Run("rejects duplicate session id", func(t *testing.T) {
		id := uuid.New().String()
		_, err := svc.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:      id,
			Mode:           models.SessionModeProf,
			TotalQuestions: 5,
		})
		require.NoError(t, err)

		_, err = svc.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:      id,
			Mode:           models.SessionModeProf,
			TotalQuestions: 5,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, models.CreateSessionRequest{
			Mode:           models.SessionModeProf,
			TotalQuestions: 5,
		})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:      uuid.New().String(),
			Mode:           "SHADOW",
			TotalQuestions: 5,
		})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:      uuid.New().String(),
			Mode:           models.SessionModeBigFive,
			TotalQuestions: 0,
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_RecordResponse(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	newSession := func(t *testing.T) string {
		t.Helper()
		sess, err := svc.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:      uuid.New().String(),
			Mode:           models.SessionModeProf,
			TotalQuestions: 3,
		})
		require.NoError(t, err)
		return sess.ID
	}

	t.Run("records answers and advances the cursor", func(t *testing.T) {
		id := newSession(t)
		spent := 42

		row, err := svc.RecordResponse(ctx, id, models.RecordResponseRequest{
			QuestionID:   0,
			QuestionText: "How do you plan your week?",
			Answer:       "carefully",
			TimeSpent:    &spent,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, row.QuestionID)
		assert.Equal(t, "carefully", row.Answer)
		require.NotNil(t, row.TimeSpent)
		assert.Equal(t, 42, *row.TimeSpent)

		_, err = svc.RecordResponse(ctx, id, models.RecordResponseRequest{
			QuestionID:   1,
			QuestionText: "What motivates you?",
			Answer:       "progress",
		})
		require.NoError(t, err)

		sess, err := svc.GetSession(ctx, id, false)
		require.NoError(t, err)
		assert.Equal(t, 2, sess.CurrentIndex)
	})

	t.Run("answering again replaces the earlier answer", func(t *testing.T) {
		id := newSession(t)
		_, err := svc.RecordResponse(ctx, id, models.RecordResponseRequest{
			QuestionID:   0,
			QuestionText: "How do you plan your week?",
			Answer:       "first draft",
		})
		require.NoError(t, err)

		_, err = svc.RecordResponse(ctx, id, models.RecordResponseRequest{
			QuestionID:   0,
			QuestionText: "How do you plan your week?",
			Answer:       "revised",
		})
		require.NoError(t, err)

		rows, err := svc.GetResponses(ctx, id)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "revised", rows[0].Answer)
	})

	t.Run("sealed sessions reject answers", func(t *testing.T) {
		id := newSession(t)
		_, err := svc.CompleteSession(ctx, id)
		require.NoError(t, err)

		_, err = svc.RecordResponse(ctx, id, models.RecordResponseRequest{
			QuestionID:   0,
			QuestionText: "Too late?",
			Answer:       "yes",
		})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.RecordResponse(ctx, uuid.New().String(), models.RecordResponseRequest{
			QuestionID:   0,
			QuestionText: "Anyone there?",
			Answer:       "no",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_Seal(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	newSession := func(t *testing.T) string {
		t.Helper()
		sess, err := svc.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:      uuid.New().String(),
			Mode:           models.SessionModeBigFive,
			TotalQuestions: 3,
		})
		require.NoError(t, err)
		return sess.ID
	}

	t.Run("complete seals and is idempotent", func(t *testing.T) {
		id := newSession(t)

		sealed, err := svc.CompleteSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, session.StatusCompleted, sealed.Status)
		assert.NotNil(t, sealed.CompletedAt)

		again, err := svc.CompleteSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, session.StatusCompleted, again.Status)
	})

	t.Run("abandoned sessions cannot complete", func(t *testing.T) {
		id := newSession(t)
		_, err := svc.AbandonSession(ctx, id)
		require.NoError(t, err)

		_, err = svc.CompleteSession(ctx, id)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("completed sessions cannot be abandoned", func(t *testing.T) {
		id := newSession(t)
		_, err := svc.CompleteSession(ctx, id)
		require.NoError(t, err)

		_, err = svc.AbandonSession(ctx, id)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestSessionService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	profID := uuid.New().String()
	_, err := svc.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:      profID,
		UserID:         "user-a",
		Mode:           models.SessionModeProf,
		TotalQuestions: 2,
	})
	require.NoError(t, err)
	for q := 0; q < 2; q++ {
		_, err = svc.RecordResponse(ctx, profID, models.RecordResponseRequest{
			QuestionID:   q,
			QuestionText: "Question",
			Answer:       "Answer",
		})
		require.NoError(t, err)
	}
	_, err = svc.CompleteSession(ctx, profID)
	require.NoError(t, err)

	_, err = svc.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:      uuid.New().String(),
		UserID:         "user-b",
		Mode:           models.SessionModeBigFive,
		TotalQuestions: 5,
	})
	require.NoError(t, err)

	t.Run("get with edges loads ordered responses", func(t *testing.T) {
		sess, err := svc.GetSession(ctx, profID, true)
		require.NoError(t, err)
		require.Len(t, sess.Edges.Responses, 2)
		assert.Equal(t, 0, sess.Edges.Responses[0].QuestionID)
		assert.Equal(t, 1, sess.Edges.Responses[1].QuestionID)
	})

	t.Run("get unknown session", func(t *testing.T) {
		_, err := svc.GetSession(ctx, uuid.New().String(), false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list filters by status and mode", func(t *testing.T) {
		rows, total, err := svc.ListSessions(ctx, models.SessionFilters{Status: models.SessionStatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, rows, 1)
		assert.Equal(t, profID, rows[0].ID)

		rows, total, err = svc.ListSessions(ctx, models.SessionFilters{Mode: models.SessionModeBigFive})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, rows, 1)
	})

	t.Run("list paginates with totals", func(t *testing.T) {
		rows, total, err := svc.ListSessions(ctx, models.SessionFilters{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, rows, 1)

		rows, _, err = svc.ListSessions(ctx, models.SessionFilters{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("list rejects unknown filters", func(t *testing.T) {
		_, _, err := svc.ListSessions(ctx, models.SessionFilters{Status: "SLEEPING"})
		assert.True(t, IsValidationError(err))
	})
}
