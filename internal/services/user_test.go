package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/errs"
	"github.com/mthorsell/cashlens-backend/internal/models"
	"github.com/mthorsell/cashlens-backend/pkg/helpers"
)

type stubUserStore struct {
	created *models.User
	updated *models.User
	stored  *models.User
	err     error
}

func (s *stubUserStore) CreateUser(_ context.Context, user *models.User) error {
	s.created = user
	return s.err
}

func (s *stubUserStore) UpdateUser(_ context.Context, user *models.User) error {
	s.updated = user
	return s.err
}

func (s *stubUserStore) GetUser(_ context.Context, _ string) (*models.User, error) {
	if s.stored == nil {
		return nil, &errs.NotFoundError{ErrorMessage: errs.ErrorMessage{Message: "user not found"}}
	}
	return s.stored, nil
}

func TestRegisterAppliesDefaults(t *testing.T) {
	store := &stubUserStore{}
	svc := NewUserService(store)

	if err := svc.Register(helpers.TestCtx(), "uid-123", "jane@example.com", "Jane", "Doe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := store.created
	if u == nil {
		t.Fatalf("expected a user to be created")
	}
	if u.UID != "uid-123" || u.Email != "jane@example.com" {
		t.Fatalf("unexpected identity: %+v", u)
	}
	if u.CashFlowMode != string(dto.CashFlowModeTotal) {
		t.Fatalf("default mode should be total: %q", u.CashFlowMode)
	}
	if u.DefaultTimeframe != string(dto.TimeframeThisMonth) {
		t.Fatalf("default timeframe should be thisMonth: %q", u.DefaultTimeframe)
	}
	if u.ForecastHorizon != 12 {
		t.Fatalf("default horizon should be 12: %d", u.ForecastHorizon)
	}
}

func TestRegisterStoreError(t *testing.T) {
	wantErr := errors.New("duplicate")
	svc := NewUserService(&stubUserStore{err: wantErr})

	if err := svc.Register(helpers.TestCtx(), "uid-123", "jane@example.com", "Jane", "Doe"); !errors.Is(err, wantErr) {
		t.Fatalf("store error should propagate, got %v", err)
	}
}

func TestGetPreferences(t *testing.T) {
	svc := NewUserService(&stubUserStore{stored: &models.User{
		UID:              "uid-123",
		CashFlowMode:     "operating",
		DefaultTimeframe: "ttm",
		ForecastHorizon:  24,
	}})

	prefs, err := svc.GetPreferences(helpers.TestCtx(), "uid-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs.CashFlowMode != "operating" || prefs.DefaultTimeframe != "ttm" || prefs.ForecastHorizon != 24 {
		t.Fatalf("unexpected preferences: %+v", prefs)
	}
}

func TestGetPreferencesUnknownUser(t *testing.T) {
	svc := NewUserService(&stubUserStore{})
	_, err := svc.GetPreferences(helpers.TestCtx(), "nobody")
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUpdatePreferences(t *testing.T) {
	store := &stubUserStore{stored: &models.User{
		UID:              "uid-123",
		CashFlowMode:     "total",
		DefaultTimeframe: "thisMonth",
		ForecastHorizon:  12,
	}}
	svc := NewUserService(store)

	prefs, err := svc.UpdatePreferences(helpers.TestCtx(), "uid-123", dto.UpdatePreferencesRequest{
		CashFlowMode:     helpers.Ptr("operating"),
		DefaultTimeframe: helpers.Ptr("last3Months"),
		ForecastHorizon:  helpers.Ptr(120),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.updated == nil {
		t.Fatalf("expected the user to be persisted")
	}
	if prefs.CashFlowMode != "operating" || prefs.DefaultTimeframe != "last3Months" {
		t.Fatalf("unexpected preferences: %+v", prefs)
	}
	if prefs.ForecastHorizon != ForecastHorizonMax {
		t.Fatalf("horizon should clamp to %d: %d", ForecastHorizonMax, prefs.ForecastHorizon)
	}
}

func TestUpdatePreferencesPartial(t *testing.T) {
	store := &stubUserStore{stored: &models.User{
		CashFlowMode:     "total",
		DefaultTimeframe: "ytd",
		ForecastHorizon:  6,
	}}
	svc := NewUserService(store)

	prefs, err := svc.UpdatePreferences(helpers.TestCtx(), "uid-123", dto.UpdatePreferencesRequest{
		ForecastHorizon: helpers.Ptr(0), // below minimum, clamps up
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs.CashFlowMode != "total" || prefs.DefaultTimeframe != "ytd" {
		t.Fatalf("nil fields must be left unchanged: %+v", prefs)
	}
	if prefs.ForecastHorizon != 1 {
		t.Fatalf("horizon should clamp to 1: %d", prefs.ForecastHorizon)
	}
}

func TestUpdatePreferencesIgnoresUnknownTimeframe(t *testing.T) {
	store := &stubUserStore{stored: &models.User{DefaultTimeframe: "ytd", ForecastHorizon: 12}}
	svc := NewUserService(store)

	prefs, err := svc.UpdatePreferences(helpers.TestCtx(), "uid-123", dto.UpdatePreferencesRequest{
		DefaultTimeframe: helpers.Ptr("fortnightly"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs.DefaultTimeframe != "ytd" {
		t.Fatalf("unknown timeframe should be ignored: %q", prefs.DefaultTimeframe)
	}
}
