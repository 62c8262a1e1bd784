package services

import (
	"context"
	"fmt"
	"time"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/response"
	"github.com/assessflow/pipeline/ent/session"
	"github.com/assessflow/pipeline/pkg/models"
	"github.com/google/uuid"
)

// SessionService manages questionnaire session lifecycle: created on the
// first answer, answers recorded while IN_PROGRESS, sealed at COMPLETED.
// Sealing is what makes a session eligible for enqueueing.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new questionnaire session
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	// Validate input
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	mode := session.Mode(req.Mode)
	if err := session.ModeValidator(mode); err != nil {
		return nil, NewValidationError("mode", fmt.Sprintf("unknown mode %q", req.Mode))
	}
	if req.TotalQuestions <= 0 {
		return nil, NewValidationError("total_questions", "must be positive")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Session.Create().
		SetID(req.SessionID).
		SetMode(mode).
		SetTotalQuestions(req.TotalQuestions).
		SetStartedAt(time.Now())
	if req.UserID != "" {
		builder = builder.SetUserID(req.UserID)
	}

	sess, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sess, nil
}

// GetSession retrieves a session by ID with optional edge loading
func (s *SessionService) GetSession(ctx context.Context, sessionID string, withEdges bool) (*ent.Session, error) {
	query := s.client.Session.Query().Where(session.IDEQ(sessionID))

	if withEdges {
		query = query.
			WithResponses(func(q *ent.ResponseQuery) {
				q.Order(ent.Asc(response.FieldQuestionID))
			}).
			WithReports()
	}

	sess, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return sess, nil
}

// ListSessions lists sessions with filtering and pagination, newest
// first. It returns the page plus the unpaginated total.
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) ([]*ent.Session, int, error) {
	query := s.client.Session.Query()

	// Apply filters
	if filters.Status != "" {
		status := session.Status(filters.Status)
		if err := session.StatusValidator(status); err != nil {
			return nil, 0, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		query = query.Where(session.StatusEQ(status))
	}
	if filters.Mode != "" {
		mode := session.Mode(filters.Mode)
		if err := session.ModeValidator(mode); err != nil {
			return nil, 0, NewValidationError("mode", fmt.Sprintf("unknown mode %q", filters.Mode))
		}
		query = query.Where(session.ModeEQ(mode))
	}
	if filters.UserID != "" {
		query = query.Where(session.UserIDEQ(filters.UserID))
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(session.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, totalCount, nil
}

// RecordResponse stores one answer on an in-progress session. Answering
// the same question again replaces the earlier answer; sealed sessions
// reject further answers.
func (s *SessionService) RecordResponse(httpCtx context.Context, sessionID string, req models.RecordResponseRequest) (*ent.Response, error) {
	if req.QuestionID < 0 {
		return nil, NewValidationError("question_id", "must not be negative")
	}
	if req.QuestionText == "" {
		return nil, NewValidationError("question_text", "required")
	}

	sess, err := s.client.Session.Get(httpCtx, sessionID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess.Status != session.StatusInProgress {
		return nil, fmt.Errorf("%w: session %s is %s, answers are sealed", ErrConflict, sessionID, sess.Status)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.Response.Query().
		Where(
			response.SessionIDEQ(sessionID),
			response.QuestionIDEQ(req.QuestionID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query response: %w", err)
	}

	var row *ent.Response
	if existing != nil {
		update := existing.Update().
			SetQuestionText(req.QuestionText).
			SetAnswer(req.Answer).
			SetAnsweredAt(time.Now())
		if req.TimeSpent != nil {
			update = update.SetTimeSpent(*req.TimeSpent)
		}
		if req.TokenCount != nil {
			update = update.SetTokenCount(*req.TokenCount)
		}
		if req.CharCount != nil {
			update = update.SetCharCount(*req.CharCount)
		}
		row, err = update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update response: %w", err)
		}
	} else {
		create := s.client.Response.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetQuestionID(req.QuestionID).
			SetQuestionText(req.QuestionText).
			SetAnswer(req.Answer).
			SetAnsweredAt(time.Now())
		if req.TimeSpent != nil {
			create = create.SetTimeSpent(*req.TimeSpent)
		}
		if req.TokenCount != nil {
			create = create.SetTokenCount(*req.TokenCount)
		}
		if req.CharCount != nil {
			create = create.SetCharCount(*req.CharCount)
		}
		row, err = create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create response: %w", err)
		}
	}

	// Advance the next-unanswered cursor past this question.
	if req.QuestionID+1 > sess.CurrentIndex {
		if err := s.client.Session.UpdateOneID(sessionID).
			SetCurrentIndex(req.QuestionID + 1).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to advance session cursor: %w", err)
		}
	}

	return row, nil
}

// CompleteSession seals a session so it can be enqueued. Sealing twice
// is a no-op; an abandoned session cannot be completed.
func (s *SessionService) CompleteSession(httpCtx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Get(httpCtx, sessionID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	switch sess.Status {
	case session.StatusCompleted:
		return sess, nil
	case session.StatusAbandoned:
		return nil, fmt.Errorf("%w: session %s is abandoned", ErrConflict, sessionID)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sealed, err := s.client.Session.UpdateOneID(sessionID).
		SetStatus(session.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}
	return sealed, nil
}

// AbandonSession marks an in-progress session as abandoned.
func (s *SessionService) AbandonSession(httpCtx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Get(httpCtx, sessionID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	switch sess.Status {
	case session.StatusAbandoned:
		return sess, nil
	case session.StatusCompleted:
		return nil, fmt.Errorf("%w: session %s is completed", ErrConflict, sessionID)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	abandoned, err := s.client.Session.UpdateOneID(sessionID).
		SetStatus(session.StatusAbandoned).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to abandon session: %w", err)
	}
	return abandoned, nil
}

// GetResponses returns a session's answers in questionnaire order.
func (s *SessionService) GetResponses(ctx context.Context, sessionID string) ([]*ent.Response, error) {
	rows, err := s.client.Response.Query().
		Where(response.SessionIDEQ(sessionID)).
		Order(ent.Asc(response.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get responses: %w", err)
	}
	return rows, nil
}
