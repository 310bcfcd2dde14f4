package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// fakeAttendeeService implements domain.AttendeeService for handler tests.
type fakeAttendeeService struct {
	reg         *domain.Registration
	created     bool
	registerErr error
	cancelErr   error
	tickets     []*domain.Ticket
	ticketsErr  error
	lastEventID string
}

func (f *fakeAttendeeService) RegisterForEvent(ctx context.Context, eventID string, user *domain.User) (*domain.Registration, bool, error) {
	f.lastEventID = eventID
	if f.registerErr != nil {
		return nil, false, f.registerErr
	}
	return f.reg, f.created, nil
}

func (f *fakeAttendeeService) CancelRegistration(ctx context.Context, eventID string, user *domain.User) error {
	f.lastEventID = eventID
	return f.cancelErr
}

func (f *fakeAttendeeService) ListMyTickets(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	return f.tickets, f.ticketsErr
}

func serveAttendee(ctrl *AttendeeController, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /events/{eventID}/registrations", ctrl.Register)
	mux.HandleFunc("DELETE /events/{eventID}/registrations", ctrl.Cancel)
	mux.HandleFunc("GET /users/me/tickets", ctrl.MyTickets)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestAttendeeController_Register(t *testing.T) {
	user := &domain.User{ID: "u1", Name: "Asha"}

	tests := []struct {
		name         string
		created      bool
		registerErr  error
		wantStatus   int
		wantBodyCode string
	}{
		{name: "new registration", created: true, wantStatus: http.StatusCreated},
		{name: "already registered", created: false, wantStatus: http.StatusOK},
		{name: "missing event", registerErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantBodyCode: helpers.ErrCodeNotFound},
		{
			name:         "event already started",
			registerErr:  fmt.Errorf("%w: event has already started", domain.ErrInvalidInput),
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attendees := &fakeAttendeeService{
				reg:         &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1"},
				created:     tt.created,
				registerErr: tt.registerErr,
			}
			users := &fakeUserService{user: user}
			ctrl := NewAttendeeController(eventLogger(), attendees, users)

			req := authedRequest(http.MethodPost, "http://test/events/e1/registrations", nil)
			rr := serveAttendee(ctrl, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "e1", attendees.lastEventID)
			if tt.wantBodyCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}

func TestAttendeeController_Register_Unauthenticated(t *testing.T) {
	ctrl := NewAttendeeController(eventLogger(), &fakeAttendeeService{}, &fakeUserService{})

	req := httptest.NewRequest(http.MethodPost, "http://test/events/e1/registrations", nil)
	rr := serveAttendee(ctrl, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAttendeeController_Cancel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		attendees := &fakeAttendeeService{}
		ctrl := NewAttendeeController(eventLogger(), attendees, &fakeUserService{user: &domain.User{ID: "u1"}})

		req := authedRequest(http.MethodDelete, "http://test/events/e1/registrations", nil)
		rr := serveAttendee(ctrl, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "e1", attendees.lastEventID)
	})

	t.Run("not registered", func(t *testing.T) {
		attendees := &fakeAttendeeService{cancelErr: domain.ErrNotFound}
		ctrl := NewAttendeeController(eventLogger(), attendees, &fakeUserService{user: &domain.User{ID: "u1"}})

		req := authedRequest(http.MethodDelete, "http://test/events/e1/registrations", nil)
		rr := serveAttendee(ctrl, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAttendeeController_MyTickets(t *testing.T) {
	tickets := []*domain.Ticket{
		{Registration: &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1"}, Event: sampleEvent("e1", "A")},
	}
	attendees := &fakeAttendeeService{tickets: tickets}
	ctrl := NewAttendeeController(eventLogger(), attendees, &fakeUserService{user: &domain.User{ID: "u1"}})

	req := authedRequest(http.MethodGet, "http://test/users/me/tickets", nil)
	rr := serveAttendee(ctrl, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope struct {
		Data  []*domain.Ticket  `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "r1", envelope.Data[0].Registration.ID)
	assert.Equal(t, "e1", envelope.Data[0].Event.ID)
}
