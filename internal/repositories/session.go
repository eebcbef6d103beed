package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/windgap/sensoryprofile/internal/db"
	"github.com/windgap/sensoryprofile/internal/errors"
	"github.com/windgap/sensoryprofile/internal/models"
)

// sessionID is the single persistence key. It matches the storage key of the
// original assessment app so migrated blobs land on the same row.
const sessionID = "sensoryAssessment"

// SessionRepository persists the assessment session as one serialised JSON blob.
type SessionRepository struct {
	dbs    *db.Database
	logger *slog.Logger
	now    func() time.Time
}

func NewSessionRepository(dbs *db.Database, logger *slog.Logger) *SessionRepository {
	return &SessionRepository{
		dbs:    dbs,
		logger: logger.With("source", "SessionRepository"),
		now:    time.Now,
	}
}

// Load returns the persisted session. A missing row or a corrupt blob yields a
// fresh empty session instead of an error; corruption is logged for diagnostics
// and never surfaced to the user.
func (r *SessionRepository) Load(ctx context.Context) (*models.Session, error) {
	var data string
	stmt := `SELECT data FROM assessments WHERE id = ?`
	err := r.dbs.ReadOnly.QueryRowxContext(ctx, stmt, sessionID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewSession(r.now()), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session blob")
	}

	var session models.Session
	if err = json.Unmarshal([]byte(data), &session); err != nil {
		r.logger.WarnContext(ctx, "discarding corrupt session blob", errors.SlogError(err))
		return models.NewSession(r.now()), nil
	}
	// Tolerate partially damaged blobs: invalid selections degrade to unanswered.
	session.Normalize()
	if session.AssessmentDate == "" {
		session.AssessmentDate = r.now().Format(time.DateOnly)
	}
	return &session, nil
}

// Save upserts the session blob.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "serialise session")
	}

	stmt := `INSERT INTO assessments (id, data, updated_at)
VALUES (@id, @data, @updated_at)
ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	params := []any{
		sql.Named("id", sessionID),
		sql.Named("data", string(data)),
		sql.Named("updated_at", r.now().UTC().Format(time.RFC3339Nano)),
	}
	if _, err = r.dbs.ReadWrite.ExecContext(ctx, stmt, params...); err != nil {
		return errors.Wrap(err, "upsert session blob")
	}
	return nil
}
