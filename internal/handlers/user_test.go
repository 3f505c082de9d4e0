package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/middleware"
)

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

func authedRequest(r *http.Request, uid, email string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UIDKey, uid)
	if email != "" {
		ctx = context.WithValue(ctx, middleware.EmailKey, email)
	}
	return r.WithContext(ctx)
}

type stubUserService struct {
	called          bool
	uid, email      string
	first, lastName string
	prefs           dto.PreferencesResponse
	updateReq       dto.UpdatePreferencesRequest
	err             error
}

func (s *stubUserService) Register(_ context.Context, uid, email, first, last string) error {
	s.called = true
	s.uid = uid
	s.email = email
	s.first = first
	s.lastName = last
	return s.err
}

func (s *stubUserService) GetPreferences(_ context.Context, uid string) (dto.PreferencesResponse, error) {
	s.uid = uid
	return s.prefs, s.err
}

func (s *stubUserService) UpdatePreferences(_ context.Context, uid string, req dto.UpdatePreferencesRequest) (dto.PreferencesResponse, error) {
	s.uid = uid
	s.updateReq = req
	return s.prefs, s.err
}

func TestRegisterSuccess(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: userSvc})

	body := `{"firstName":"Jane","lastName":"Doe"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req = authedRequest(req, "uid-123", "jane@example.com")

	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if !userSvc.called {
		t.Fatalf("expected Register to be called on service")
	}
	if userSvc.uid != "uid-123" || userSvc.email != "jane@example.com" {
		t.Fatalf("service received wrong identifiers: uid=%s email=%s", userSvc.uid, userSvc.email)
	}
	if userSvc.first != "Jane" || userSvc.lastName != "Doe" {
		t.Fatalf("service received wrong name: %s %s", userSvc.first, userSvc.lastName)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
}

func TestRegisterBodyEmailWins(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: userSvc})

	body := `{"email":"billing@example.com","firstName":"Jane","lastName":"Doe"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req = authedRequest(req, "uid-123", "jane@example.com")

	h.Register(httptest.NewRecorder(), req)

	if userSvc.email != "billing@example.com" {
		t.Fatalf("explicit body email should win: %s", userSvc.email)
	}
}

func TestRegisterInvalidJSON(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: userSvc})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("not-json"))
	h.Register(httptest.NewRecorder(), req)

	if userSvc.called {
		t.Fatalf("Register should not reach the service when JSON is invalid")
	}
	if !resp.handleErrorCalled || resp.handleError == nil {
		t.Fatalf("HandleError should receive the decode error")
	}
}

func TestRegisterServiceError(t *testing.T) {
	userSvc := &stubUserService{err: errors.New("service failure")}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: userSvc})

	body := `{"firstName":"Jane","lastName":"Doe"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	h.Register(httptest.NewRecorder(), req)

	if !resp.handleErrorCalled {
		t.Fatalf("expected handler to delegate error to ResponseHandler.HandleError")
	}
	if !errors.Is(resp.handleError, userSvc.err) {
		t.Fatalf("unexpected error passed to HandleError: %v", resp.handleError)
	}
	if resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess should not be called on service error")
	}
}

func TestGetPreferences(t *testing.T) {
	userSvc := &stubUserService{prefs: dto.PreferencesResponse{
		CashFlowMode:     "operating",
		DefaultTimeframe: "ttm",
		ForecastHorizon:  24,
	}}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: userSvc})

	req := httptest.NewRequest(http.MethodGet, "/users/preferences", nil)
	req = authedRequest(req, "uid-123", "")
	h.GetPreferences(httptest.NewRecorder(), req)

	if userSvc.uid != "uid-123" {
		t.Fatalf("service queried with wrong uid: %s", userSvc.uid)
	}
	prefs, ok := resp.writeSuccessData.(dto.PreferencesResponse)
	if !ok || prefs.DefaultTimeframe != "ttm" {
		t.Fatalf("unexpected response payload: %+v", resp.writeSuccessData)
	}
}

func TestUpdatePreferences(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: userSvc})

	body := `{"cashFlowMode":"operating","forecastHorizon":18}`
	req := httptest.NewRequest(http.MethodPut, "/users/preferences", strings.NewReader(body))
	req = authedRequest(req, "uid-123", "")
	h.UpdatePreferences(httptest.NewRecorder(), req)

	if userSvc.updateReq.CashFlowMode == nil || *userSvc.updateReq.CashFlowMode != "operating" {
		t.Fatalf("mode not forwarded: %+v", userSvc.updateReq)
	}
	if userSvc.updateReq.ForecastHorizon == nil || *userSvc.updateReq.ForecastHorizon != 18 {
		t.Fatalf("horizon not forwarded: %+v", userSvc.updateReq)
	}
	if userSvc.updateReq.DefaultTimeframe != nil {
		t.Fatalf("absent field should stay nil: %+v", userSvc.updateReq)
	}
	if !resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess not called")
	}
}
