package util

import (
	"errors"
	"testing"
	"time"
)

func TestNewLocalClock_ValidTimezone(t *testing.T) {
	clock, err := NewLocalClock("America/New_York")
	if err != nil {
		t.Fatalf("NewLocalClock: %v", err)
	}

	if clock.Location().String() != "America/New_York" {
		t.Errorf("Location = %s, want America/New_York", clock.Location())
	}

	now := clock.Now()
	if now.Location().String() != "America/New_York" {
		t.Errorf("Now() location = %s, want America/New_York", now.Location())
	}
}

func TestNewLocalClock_UnknownTimezone(t *testing.T) {
	_, err := NewLocalClock("Atlantis/Lost_City")
	if err == nil {
		t.Fatal("expected error for unknown timezone")
	}

	if !errors.Is(err, ErrTimeSourceUnavailable) {
		t.Errorf("error should wrap ErrTimeSourceUnavailable, got: %v", err)
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, time.January, 15, 11, 30, 0, 0, time.UTC)
	clock := NewFixedClock(at)

	if !clock.Now().Equal(at) {
		t.Errorf("Now() = %v, want %v", clock.Now(), at)
	}

	later := at.Add(2 * time.Hour)
	clock.Set(later)
	if !clock.Now().Equal(later) {
		t.Errorf("Now() after Set = %v, want %v", clock.Now(), later)
	}
}

func TestFormatting(t *testing.T) {
	at := time.Date(2026, time.January, 15, 14, 5, 0, 0, time.UTC)

	if got := FormatDateTime(at); got != "2026-01-15 02:05 PM" {
		t.Errorf("FormatDateTime = %q", got)
	}
	if got := FormatClock(at); got != "02:05 PM" {
		t.Errorf("FormatClock = %q", got)
	}
}
