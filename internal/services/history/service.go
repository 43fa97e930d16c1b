// Package history maintains the exposure session journal and derives an
// adaptation factor suggestion from recent exposure habits.
//
// The journal is advisory: the synthesis engine never reads it. The
// suggestion only pre-fills the adaptation slider; whatever the user
// settles on is what enters the formula.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/arnaudbellemare/sunexposure/internal/database"
	"github.com/arnaudbellemare/sunexposure/internal/models"
	"github.com/arnaudbellemare/sunexposure/internal/util"
)

// Adaptation anchors from the exposure-history guidance: 0.8 with no
// recent sun, 1.0 for moderate recent exposure, 1.2 for regular daily
// exposure (upregulated synthesis pathways).
const (
	AdaptationNone     = 0.8
	AdaptationModerate = 1.0
	AdaptationRegular  = 1.2

	// lookbackDays is the exposure-history window the suggestion considers.
	lookbackDays = 14

	// moderateDayCount and regularDayCount are the distinct-day thresholds
	// within the lookback window for the moderate and regular anchors.
	moderateDayCount = 3
	regularDayCount  = 10
)

// Service provides journal access over the session store.
type Service struct {
	db *database.DB
}

// NewService creates a history service.
func NewService(db *database.DB) *Service {
	return &Service{db: db}
}

// RecordSession validates and persists a session. A missing ID is
// filled with a fresh UUIDv7.
func (s *Service) RecordSession(ctx context.Context, session *models.ExposureSession) error {
	if session.ID == "" {
		session.ID = util.NewID()
	}

	if err := session.Validate(); err != nil {
		return fmt.Errorf("validating session: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exposure_sessions (id, recorded_at, uv_index, clothing, adaptation, rate_iu_per_hour)
		VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.RecordedAt.UTC().Format(time.RFC3339),
		session.UVIndex,
		string(session.Clothing),
		session.Adaptation,
		session.RateIUPerHour,
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	return nil
}

// RecentSessions returns sessions recorded at or after since, newest first.
// A limit of 0 means no limit.
func (s *Service) RecentSessions(ctx context.Context, since time.Time, limit int) ([]*models.ExposureSession, error) {
	query := `
		SELECT id, recorded_at, uv_index, clothing, adaptation, rate_iu_per_hour
		FROM exposure_sessions
		WHERE recorded_at >= ?
		ORDER BY recorded_at DESC`

	args := []any{since.UTC().Format(time.RFC3339)}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.ExposureSession
	for rows.Next() {
		var (
			session    models.ExposureSession
			recordedAt string
			clothing   string
		)
		if err := rows.Scan(&session.ID, &recordedAt, &session.UVIndex, &clothing, &session.Adaptation, &session.RateIUPerHour); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}

		t, err := time.Parse(time.RFC3339, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing recorded_at %q: %w", recordedAt, err)
		}
		session.RecordedAt = t
		session.Clothing = models.ClothingLevel(clothing)

		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	return sessions, nil
}

// Suggestion is the adaptation factor derived from journaled habits.
type Suggestion struct {
	Adaptation  float64
	SessionDays int
	Note        string
}

// SuggestAdaptation derives the adaptation anchor from the number of
// distinct days with journaled sessions in the last 14 days.
func (s *Service) SuggestAdaptation(ctx context.Context, now time.Time) (*Suggestion, error) {
	since := now.AddDate(0, 0, -lookbackDays)

	sessions, err := s.RecentSessions(ctx, since, 0)
	if err != nil {
		return nil, err
	}

	days := make(map[string]bool)
	for _, session := range sessions {
		days[session.RecordedAt.UTC().Format(util.DateFormat)] = true
	}

	n := len(days)
	switch {
	case n >= regularDayCount:
		return &Suggestion{
			Adaptation:  AdaptationRegular,
			SessionDays: n,
			Note:        fmt.Sprintf("Regular exposure on %d of the last %d days: adaptation 1.2", n, lookbackDays),
		}, nil
	case n >= moderateDayCount:
		return &Suggestion{
			Adaptation:  AdaptationModerate,
			SessionDays: n,
			Note:        fmt.Sprintf("Moderate exposure on %d of the last %d days: adaptation 1.0", n, lookbackDays),
		}, nil
	default:
		return &Suggestion{
			Adaptation:  AdaptationNone,
			SessionDays: n,
			Note:        fmt.Sprintf("Little or no exposure in the last %d days: adaptation 0.8", lookbackDays),
		}, nil
	}
}

// Prune deletes sessions older than the retention window and returns
// the number removed.
func (s *Service) Prune(ctx context.Context, retentionDays int, now time.Time) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := now.AddDate(0, 0, -retentionDays)
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM exposure_sessions WHERE recorded_at < ?",
		cutoff.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("pruning sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned sessions: %w", err)
	}

	return n, nil
}
