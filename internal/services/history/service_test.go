package history

import (
	"context"
	"testing"
	"time"

	"github.com/arnaudbellemare/sunexposure/internal/database"
	"github.com/arnaudbellemare/sunexposure/internal/models"
)

// newTestService creates a history service over an in-memory database.
func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("creating test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewService(db)
}

// recordAt journals a valid session at the given time.
func recordAt(t *testing.T, svc *Service, at time.Time) {
	t.Helper()

	err := svc.RecordSession(context.Background(), &models.ExposureSession{
		RecordedAt:    at,
		UVIndex:       6.0,
		Clothing:      models.ClothingLight,
		Adaptation:    1.0,
		RateIUPerHour: 12000,
	})
	if err != nil {
		t.Fatalf("recording session: %v", err)
	}
}

func TestRecordSession_AssignsID(t *testing.T) {
	svc := newTestService(t)

	session := &models.ExposureSession{
		RecordedAt:    time.Now().UTC(),
		UVIndex:       9.0,
		Clothing:      models.ClothingNude,
		Adaptation:    0.8,
		RateIUPerHour: 33147.7,
	}

	if err := svc.RecordSession(context.Background(), session); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if session.ID == "" {
		t.Error("expected an ID to be assigned")
	}
}

func TestRecordSession_RejectsInvalid(t *testing.T) {
	svc := newTestService(t)

	session := &models.ExposureSession{
		RecordedAt:    time.Now().UTC(),
		UVIndex:       25.0, // out of range
		Clothing:      models.ClothingNude,
		Adaptation:    0.8,
		RateIUPerHour: 1,
	}

	if err := svc.RecordSession(context.Background(), session); err == nil {
		t.Error("expected validation error for UV index 25")
	}
}

func TestRecentSessions_OrderAndWindow(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2026, time.June, 20, 12, 0, 0, 0, time.UTC)

	recordAt(t, svc, now.AddDate(0, 0, -20)) // outside window
	recordAt(t, svc, now.AddDate(0, 0, -5))
	recordAt(t, svc, now.AddDate(0, 0, -1))

	sessions, err := svc.RecentSessions(context.Background(), now.AddDate(0, 0, -14), 0)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}

	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if !sessions[0].RecordedAt.After(sessions[1].RecordedAt) {
		t.Error("sessions should be ordered newest first")
	}
}

func TestRecentSessions_Limit(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2026, time.June, 20, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		recordAt(t, svc, now.Add(-time.Duration(i)*time.Hour))
	}

	sessions, err := svc.RecentSessions(context.Background(), now.AddDate(0, 0, -1), 3)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("got %d sessions, want 3 with limit", len(sessions))
	}
}

func TestSuggestAdaptation_Tiers(t *testing.T) {
	now := time.Date(2026, time.June, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
		want float64
	}{
		{"no recent exposure", 0, AdaptationNone},
		{"two days is still none", 2, AdaptationNone},
		{"three days is moderate", 3, AdaptationModerate},
		{"nine days is moderate", 9, AdaptationModerate},
		{"ten days is regular", 10, AdaptationRegular},
		{"near-daily is regular", 13, AdaptationRegular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			for i := 0; i < tt.days; i++ {
				recordAt(t, svc, now.AddDate(0, 0, -(i+1)))
			}

			got, err := svc.SuggestAdaptation(context.Background(), now)
			if err != nil {
				t.Fatalf("SuggestAdaptation: %v", err)
			}
			if got.Adaptation != tt.want {
				t.Errorf("Adaptation = %v, want %v (%d session days)", got.Adaptation, tt.want, got.SessionDays)
			}
		})
	}
}

func TestSuggestAdaptation_CountsDistinctDays(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2026, time.June, 20, 12, 0, 0, 0, time.UTC)

	// Many sessions on a single day must count as one exposure day.
	for i := 0; i < 6; i++ {
		recordAt(t, svc, now.AddDate(0, 0, -2).Add(time.Duration(i)*time.Hour))
	}

	got, err := svc.SuggestAdaptation(context.Background(), now)
	if err != nil {
		t.Fatalf("SuggestAdaptation: %v", err)
	}
	if got.SessionDays != 1 {
		t.Errorf("SessionDays = %d, want 1", got.SessionDays)
	}
	if got.Adaptation != AdaptationNone {
		t.Errorf("Adaptation = %v, want %v", got.Adaptation, AdaptationNone)
	}
}

func TestPrune(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2026, time.June, 20, 12, 0, 0, 0, time.UTC)

	recordAt(t, svc, now.AddDate(0, 0, -100))
	recordAt(t, svc, now.AddDate(0, 0, -95))
	recordAt(t, svc, now.AddDate(0, 0, -5))

	n, err := svc.Prune(context.Background(), 90, now)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 2 {
		t.Errorf("pruned %d sessions, want 2", n)
	}

	remaining, err := svc.RecentSessions(context.Background(), time.Time{}, 0)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("got %d remaining sessions, want 1", len(remaining))
	}
}

func TestPrune_DisabledRetention(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2026, time.June, 20, 12, 0, 0, 0, time.UTC)
	recordAt(t, svc, now.AddDate(0, 0, -300))

	n, err := svc.Prune(context.Background(), 0, now)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 0 {
		t.Errorf("pruned %d sessions, want 0 when retention is disabled", n)
	}
}
