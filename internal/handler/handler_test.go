package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
	"github.com/JamilPr1/whatsapp-booking-system/internal/handler/dto"
	hmocks "github.com/JamilPr1/whatsapp-booking-system/internal/handler/mocks"
	"github.com/JamilPr1/whatsapp-booking-system/internal/middleware"
	"github.com/JamilPr1/whatsapp-booking-system/internal/router"
)

type handlerFixture struct {
	bookingSvc      *hmocks.MockBookingSvc
	availabilitySvc *hmocks.MockAvailabilitySvc
	scheduleSvc     *hmocks.MockScheduleSvc
	catalogSvc      *hmocks.MockCatalogSvc
	userSvc         *hmocks.MockUserSvc
	router          http.Handler
}

func setupRouter(t *testing.T) *handlerFixture {
	t.Helper()
	f := &handlerFixture{
		bookingSvc:      hmocks.NewMockBookingSvc(t),
		availabilitySvc: hmocks.NewMockAvailabilitySvc(t),
		scheduleSvc:     hmocks.NewMockScheduleSvc(t),
		catalogSvc:      hmocks.NewMockCatalogSvc(t),
		userSvc:         hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(f.bookingSvc, f.availabilitySvc, f.scheduleSvc, f.catalogSvc, f.userSvc)
	f.router = router.InitRouter("test", h, middleware.Identity())

	return f
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func asClient(id string) map[string]string {
	return map[string]string{
		middleware.UserIDHeader:   id,
		middleware.UserRoleHeader: "client",
	}
}

func asAdmin() map[string]string {
	return map[string]string{
		middleware.UserIDHeader:   "admin-1",
		middleware.UserRoleHeader: "admin",
	}
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New().String(),
		ClientID:    "c1",
		ServiceID:   uuid.New().String(),
		BookingDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		BookingTime: "10:00",
		Location:    domain.Location{Latitude: 24.7, Longitude: 46.7, District: "Olaya"},
		Status:      domain.BookingStatusPending,
		Payment: domain.Payment{
			Method: domain.PaymentMethodOnline,
			Status: domain.PaymentStatusPending,
			Amount: 250,
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func createBookingBody(serviceID string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ServiceID:   serviceID,
		BookingDate: "2026-09-10",
		BookingTime: "10:00",
		Location: dto.LocationRequest{
			Latitude:  24.7,
			Longitude: 46.7,
			District:  "Olaya",
		},
		Payment: dto.PaymentRequest{Method: "online"},
	}
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	f := setupRouter(t)

	booking := sampleBooking()
	f.bookingSvc.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings", createBookingBody(booking.ServiceID), asClient("c1"))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "2026-09-10", resp.BookingDate)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateBooking_UsesRequesterAsClient(t *testing.T) {
	f := setupRouter(t)

	booking := sampleBooking()
	var gotInput domain.CreateBookingInput
	f.bookingSvc.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input domain.CreateBookingInput) {
			gotInput = input
		}).
		Return(booking, nil)

	doJSON(t, f.router, http.MethodPost, "/api/bookings", createBookingBody(booking.ServiceID), asClient("c1"))

	assert.Equal(t, "c1", gotInput.ClientID)
}

func TestHandler_CreateBooking_AdminOverridesClient(t *testing.T) {
	f := setupRouter(t)

	booking := sampleBooking()
	body := createBookingBody(booking.ServiceID)
	body.ClientID = "c2"

	var gotInput domain.CreateBookingInput
	f.bookingSvc.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input domain.CreateBookingInput) {
			gotInput = input
		}).
		Return(booking, nil)

	doJSON(t, f.router, http.MethodPost, "/api/bookings", body, asAdmin())

	assert.Equal(t, "c2", gotInput.ClientID)
}

func TestHandler_CreateBooking_Unauthenticated(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings", createBookingBody(uuid.New().String()), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	f := setupRouter(t)

	body := createBookingBody(uuid.New().String())
	body.BookingDate = "10-09-2026"

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings", body, asClient("c1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_DistrictConflict(t *testing.T) {
	f := setupRouter(t)

	suggested := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	f.bookingSvc.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Return(nil, &domain.DistrictConflictError{LockedDistrict: "Malaz", SuggestedDate: &suggested})

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings", createBookingBody(uuid.New().String()), asClient("c1"))

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Malaz", resp.LockedDistrict)
	require.NotNil(t, resp.SuggestedDate)
	assert.Equal(t, "2026-09-12", *resp.SuggestedDate)
	assert.Contains(t, resp.Error, "locked to Malaz district")
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	f.bookingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, f.router, http.MethodGet, "/api/bookings/"+id, nil, asClient("c1"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_BadID(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodGet, "/api/bookings/not-a-uuid", nil, asClient("c1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	f := setupRouter(t)

	booking := sampleBooking()
	booking.Status = domain.BookingStatusInProgress

	f.bookingSvc.EXPECT().UpdateStatus(mock.Anything, booking.ID, domain.BookingStatusInProgress).
		Return(booking, nil)

	w := doJSON(t, f.router, http.MethodPatch, "/api/bookings/"+booking.ID+"/status",
		dto.UpdateStatusRequest{Status: "in-progress"}, asAdmin())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "in-progress", resp.Status)
}

func TestHandler_CancelBooking_Forbidden(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	f.bookingSvc.EXPECT().CancelBooking(mock.Anything, id, domain.Requester{UserID: "c2", Role: domain.RoleClient}).
		Return(nil, domain.ErrForbidden)

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings/"+id+"/cancel", nil, asClient("c2"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelBooking_WindowViolation(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	f.bookingSvc.EXPECT().CancelBooking(mock.Anything, id, mock.Anything).
		Return(nil, &domain.CancellationWindowError{HoursRemaining: 12.5, MinimumHours: 48})

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings/"+id+"/cancel", nil, asClient("c1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "48")
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	f := setupRouter(t)

	booking := sampleBooking()
	booking.Status = domain.BookingStatusCancelled

	f.bookingSvc.EXPECT().CancelBooking(mock.Anything, booking.ID, mock.Anything).Return(booking, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", nil, asClient("c1"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled successfully")
}

// --- Availability ---

func TestHandler_GetAvailableDates(t *testing.T) {
	f := setupRouter(t)

	f.availabilitySvc.EXPECT().AvailableDates(mock.Anything, "Olaya").Return(&domain.DateAvailability{
		Available:   []time.Time{time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)},
		Unavailable: []string{"2026-09-04"},
	}, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/availability/dates/Olaya", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DateAvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2026-09-03"}, resp.Available)
	assert.Equal(t, []string{"2026-09-04"}, resp.Unavailable)
}

func TestHandler_GetTimeSlots(t *testing.T) {
	f := setupRouter(t)

	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	f.availabilitySvc.EXPECT().TimeSlots(mock.Anything, date, "Olaya").Return([]domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "10:00", Available: false},
	}, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/availability/slots?date=2026-09-03&district=Olaya", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var slots []domain.TimeSlot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots, 2)
	assert.False(t, slots[1].Available)
}

func TestHandler_GetTimeSlots_MissingParams(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodGet, "/api/availability/slots?district=Olaya", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin schedules ---

func TestHandler_UnlockSchedule(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	f.scheduleSvc.EXPECT().Unlock(mock.Anything, id).Return(&domain.Schedule{
		ID:       id,
		Date:     time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		District: "Olaya",
		IsLocked: false,
	}, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/admin/schedules/"+id+"/unlock", nil, asAdmin())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "schedule unlocked")
}

func TestHandler_UnlockSchedule_NonAdmin(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/admin/schedules/"+uuid.New().String()+"/unlock", nil, asClient("c1"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UnlockSchedule_Unauthenticated(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/admin/schedules/"+uuid.New().String()+"/unlock", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_SetScheduleDistrict(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	f.scheduleSvc.EXPECT().SetDistrict(mock.Anything, id, "Malaz").Return(&domain.Schedule{
		ID:       id,
		Date:     time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		District: "Malaz",
		IsLocked: true,
	}, nil)

	w := doJSON(t, f.router, http.MethodPatch, "/api/admin/schedules/"+id+"/district",
		dto.SetDistrictRequest{District: "Malaz"}, asAdmin())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Malaz")
}

// --- Services ---

func TestHandler_ListServices(t *testing.T) {
	f := setupRouter(t)

	f.catalogSvc.EXPECT().List(mock.Anything, true).Return([]*domain.Service{
		{ID: uuid.New().String(), Name: "Home Cleaning", Price: 250, IsActive: true},
	}, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/services", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Home Cleaning")
}

func TestHandler_CreateService_AdminOnly(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/services",
		dto.CreateServiceRequest{Name: "X", Price: 10}, asClient("c1"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Users ---

func TestHandler_CreateUser(t *testing.T) {
	f := setupRouter(t)

	user := &domain.User{
		ID:          uuid.New().String(),
		Name:        "Sara",
		PhoneNumber: "+966500000001",
		Role:        domain.RoleClient,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	f.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/users",
		dto.CreateUserRequest{Name: "Sara", PhoneNumber: "+966500000001"}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sara", resp.Name)
	assert.Equal(t, "client", resp.Role)
}

func TestHandler_CreateUser_PhoneTaken(t *testing.T) {
	f := setupRouter(t)

	f.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrPhoneTaken)

	w := doJSON(t, f.router, http.MethodPost, "/api/users",
		dto.CreateUserRequest{PhoneNumber: "+966500000001"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Health(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
