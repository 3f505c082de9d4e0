package services

import (
	"context"
	"time"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/models"
	"github.com/mthorsell/cashlens-backend/pkg/logger"
)

type userUSStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type userService struct {
	Store userUSStore
}

func NewUserService(store userUSStore) *userService {
	return &userService{
		Store: store,
	}
}

func (s *userService) Register(ctx context.Context, uid, email, first, last string) error {
	// Logger from context already carries uid, request_id, method, path
	log := logger.FromContext(ctx)

	user := &models.User{
		UID:              uid,
		Email:            email,
		FirstName:        first,
		LastName:         last,
		CashFlowMode:     string(dto.CashFlowModeTotal),
		DefaultTimeframe: string(dto.TimeframeThisMonth),
		ForecastHorizon:  12,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.Store.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user in store", "error", err)
		return err
	}

	log.Info("user created successfully", "first_name", first, "last_name", last)
	return nil
}

func (s *userService) GetPreferences(ctx context.Context, uid string) (dto.PreferencesResponse, error) {
	user, err := s.Store.GetUser(ctx, uid)
	if err != nil {
		return dto.PreferencesResponse{}, err
	}
	return preferencesOf(user), nil
}

func (s *userService) UpdatePreferences(ctx context.Context, uid string, req dto.UpdatePreferencesRequest) (dto.PreferencesResponse, error) {
	user, err := s.Store.GetUser(ctx, uid)
	if err != nil {
		return dto.PreferencesResponse{}, err
	}

	if req.CashFlowMode != nil {
		user.CashFlowMode = string(dto.ParseCashFlowMode(*req.CashFlowMode))
	}
	if req.DefaultTimeframe != nil {
		if tf, ok := dto.ParseTimeframe(*req.DefaultTimeframe); ok {
			user.DefaultTimeframe = string(tf)
		}
	}
	if req.ForecastHorizon != nil {
		horizon := *req.ForecastHorizon
		if horizon < 1 {
			horizon = 1
		}
		if horizon > ForecastHorizonMax {
			horizon = ForecastHorizonMax
		}
		user.ForecastHorizon = horizon
	}
	user.UpdatedAt = time.Now()

	if err := s.Store.UpdateUser(ctx, user); err != nil {
		return dto.PreferencesResponse{}, err
	}
	return preferencesOf(user), nil
}

func preferencesOf(user *models.User) dto.PreferencesResponse {
	return dto.PreferencesResponse{
		CashFlowMode:     user.CashFlowMode,
		DefaultTimeframe: user.DefaultTimeframe,
		ForecastHorizon:  user.ForecastHorizon,
	}
}
