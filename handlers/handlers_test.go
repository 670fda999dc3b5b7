package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medicare/config"
	"medicare/handlers"
	"medicare/models"
	"medicare/routes"
	"medicare/services/booking"
	"medicare/services/payment"
	"medicare/services/user"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fake services ---

type fakeAvailability struct {
	appointments []models.AppointmentType
	err          error
}

func (f *fakeAvailability) AvailableAppointments(date string) ([]models.AppointmentType, error) {
	return f.appointments, f.err
}

func (f *fakeAvailability) SpecialtyNames() ([]models.AppointmentSpecialty, error) {
	var names []models.AppointmentSpecialty
	for _, a := range f.appointments {
		names = append(names, models.AppointmentSpecialty{Name: a.Name})
	}
	return names, f.err
}

type fakeBookingService struct {
	bookings  []models.Booking
	createErr error
}

func (f *fakeBookingService) Create(candidate *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	candidate.ID = "bk-1"
	f.bookings = append(f.bookings, *candidate)
	return nil
}

func (f *fakeBookingService) ByID(id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			copy := b
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingService) ByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakePaymentService struct {
	recordErr error
	recorded  []models.Payment
}

func (f *fakePaymentService) CreateIntent(price float64) (string, error) {
	return "cs_test", nil
}

func (f *fakePaymentService) Record(ctx context.Context, p *models.Payment) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, *p)
	return nil
}

func (f *fakePaymentService) History(bookingID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.recorded {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeUserService struct {
	admins map[string]bool
	users  []models.User
}

func (f *fakeUserService) Register(u *models.User) (bool, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return false, nil
		}
	}
	f.users = append(f.users, *u)
	return true, nil
}

func (f *fakeUserService) GetAll() ([]models.User, error) { return f.users, nil }

func (f *fakeUserService) IssueToken(email string) (string, error) {
	for _, existing := range f.users {
		if existing.Email == email {
			return utils.GenerateToken(email, time.Hour)
		}
	}
	return "", user.ErrUnknownUser
}

func (f *fakeUserService) IsAdmin(email string) (bool, error) {
	return f.admins[email], nil
}

func (f *fakeUserService) PromoteToAdmin(id string) (bool, error) {
	return id == "known-id", nil
}

type fakeDoctorService struct {
	doctors []models.Doctor
}

func (f *fakeDoctorService) Create(d *models.Doctor) error {
	d.ID = "doc-1"
	f.doctors = append(f.doctors, *d)
	return nil
}

func (f *fakeDoctorService) GetAll() ([]models.Doctor, error) { return f.doctors, nil }

func (f *fakeDoctorService) Delete(id string) (bool, error) {
	return id == "doc-1", nil
}

// --- harness ---

func setupRouter(bundle *handlers.HandlerBundle) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.RegisterRoutes(router, bundle)
	return router
}

func defaultBundle() (*handlers.HandlerBundle, *fakeBookingService, *fakePaymentService) {
	logger := utils.GetLogger()
	bookingSvc := &fakeBookingService{}
	paymentSvc := &fakePaymentService{}
	userSvc := &fakeUserService{
		admins: map[string]bool{"admin@example.com": true},
		users: []models.User{
			{ID: "u1", Email: "admin@example.com", Role: models.RoleAdmin},
			{ID: "u2", Email: "jordan@example.com"},
		},
	}
	bundle := &handlers.HandlerBundle{
		Appointment: handlers.NewAppointmentHandler(&fakeAvailability{
			appointments: []models.AppointmentType{
				{Name: "Cleaning", Price: 99, Slots: []string{"9am", "11am"}},
			},
		}, logger),
		Booking:     handlers.NewBookingHandler(bookingSvc, logger),
		Payment:     handlers.NewPaymentHandler(paymentSvc, logger),
		User:        handlers.NewUserHandler(userSvc, logger),
		Doctor:      handlers.NewDoctorHandler(&fakeDoctorService{}, logger),
		UserService: userSvc,
	}
	return bundle, bookingSvc, paymentSvc
}

func doJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestMain(m *testing.M) {
	config.AppConfig.JWTSecret = "test-secret"
	m.Run()
}

// --- tests ---

func TestGetAppointmentsEnvelope(t *testing.T) {
	bundle, _, _ := defaultBundle()
	router := setupRouter(bundle)

	w := doJSON(router, http.MethodGet, "/appointments?date=2024-01-01", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestCreateBookingSuccess(t *testing.T) {
	bundle, bookingSvc, _ := defaultBundle()
	router := setupRouter(bundle)

	w := doJSON(router, http.MethodPost, "/booking", gin.H{
		"treatmentName":   "Cleaning",
		"appointmentDate": "2024-01-01",
		"slot":            "9am",
		"email":           "jordan@example.com",
		"price":           99,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Appointment successfully confirmed", resp.Message)
	assert.Len(t, bookingSvc.bookings, 1)
}

func TestCreateBookingConflictIsWellFormedRejection(t *testing.T) {
	bundle, bookingSvc, _ := defaultBundle()
	bookingSvc.createErr = &booking.ConflictError{Date: "2024-01-01"}
	router := setupRouter(bundle)

	w := doJSON(router, http.MethodPost, "/booking", gin.H{
		"treatmentName":   "Cleaning",
		"appointmentDate": "2024-01-01",
		"slot":            "9am",
		"email":           "jordan@example.com",
	}, "")
	// Business rejection, not a transport error.
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "2024-01-01")
}

func TestCreateBookingSilentFailureMessage(t *testing.T) {
	bundle, bookingSvc, _ := defaultBundle()
	bookingSvc.createErr = booking.ErrNotCompleted
	router := setupRouter(bundle)

	w := doJSON(router, http.MethodPost, "/booking", gin.H{
		"treatmentName":   "Cleaning",
		"appointmentDate": "2024-01-01",
		"slot":            "9am",
		"email":           "jordan@example.com",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Appointment could not be completed", resp.Message)
}

func TestCreateBookingMissingFields(t *testing.T) {
	bundle, _, _ := defaultBundle()
	router := setupRouter(bundle)

	w := doJSON(router, http.MethodPost, "/booking", gin.H{"slot": "9am"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingsByEmailOwnerOnly(t *testing.T) {
	bundle, bookingSvc, _ := defaultBundle()
	bookingSvc.bookings = []models.Booking{
		{ID: "bk-1", Email: "jordan@example.com", TreatmentName: "Cleaning"},
	}
	router := setupRouter(bundle)

	token, err := utils.GenerateToken("jordan@example.com", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		query      string
		token      string
		wantStatus int
	}{
		{"no token", "jordan@example.com", "", http.StatusUnauthorized},
		{"wrong owner", "someone@example.com", token, http.StatusForbidden},
		{"owner", "jordan@example.com", token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, "/booking?email="+tt.query, nil, tt.token)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRecordPaymentSuccessAndDuplicate(t *testing.T) {
	bundle, _, paymentSvc := defaultBundle()
	router := setupRouter(bundle)

	body := gin.H{"bookingId": "bk-1", "transactionId": "tx1", "amount": 99}

	w := doJSON(router, http.MethodPost, "/payments", body, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Payment successfully completed", resp.Message)
	require.Len(t, paymentSvc.recorded, 1)

	paymentSvc.recordErr = &payment.DuplicatePaymentError{TransactionID: "tx1"}
	w = doJSON(router, http.MethodPost, "/payments", body, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "tx1")
}

func TestGetPaymentsForBooking(t *testing.T) {
	bundle, _, paymentSvc := defaultBundle()
	paymentSvc.recorded = []models.Payment{
		{ID: "p1", BookingID: "bk-1", TransactionID: "tx1", Amount: 99},
	}
	router := setupRouter(bundle)

	// Requires a bearer token.
	w := doJSON(router, http.MethodGet, "/payments/bk-1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.GenerateToken("jordan@example.com", time.Hour)
	require.NoError(t, err)

	w = doJSON(router, http.MethodGet, "/payments/bk-1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)

	// A booking with no payments answers with an empty list, not null.
	w = doJSON(router, http.MethodGet, "/payments/bk-none", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	data, ok := raw["data"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestCreateIntent(t *testing.T) {
	bundle, _, _ := defaultBundle()
	router := setupRouter(bundle)

	w := doJSON(router, http.MethodPost, "/create-payment-intent", gin.H{"price": 99}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cs_test", resp["clientSecret"])
}

func TestRegisterAndLogin(t *testing.T) {
	bundle, _, _ := defaultBundle()
	router := setupRouter(bundle)

	w := doJSON(router, http.MethodPost, "/users", gin.H{"email": "new@example.com", "name": "New"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully registered", decodeEnvelope(t, w).Message)

	w = doJSON(router, http.MethodPost, "/users", gin.H{"email": "jordan@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully logged in", decodeEnvelope(t, w).Message)
}

func TestIssueTokenUnknownEmail(t *testing.T) {
	bundle, _, _ := defaultBundle()
	router := setupRouter(bundle)

	w := doJSON(router, http.MethodGet, "/jwt?email=nobody@example.com", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp["accessToken"])
}

func TestDoctorRoutesAdminGated(t *testing.T) {
	bundle, _, _ := defaultBundle()
	router := setupRouter(bundle)

	adminToken, err := utils.GenerateToken("admin@example.com", time.Hour)
	require.NoError(t, err)
	userToken, err := utils.GenerateToken("jordan@example.com", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"non-admin", userToken, http.StatusForbidden},
		{"admin", adminToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, "/doctors", nil, tt.token)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreateDoctorNamesDoctorInMessage(t *testing.T) {
	bundle, _, _ := defaultBundle()
	router := setupRouter(bundle)

	adminToken, err := utils.GenerateToken("admin@example.com", time.Hour)
	require.NoError(t, err)

	w := doJSON(router, http.MethodPost, "/doctors", gin.H{
		"name":      "Dr. Rivera",
		"email":     "rivera@example.com",
		"specialty": "Dental",
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dr. Rivera successfully created", decodeEnvelope(t, w).Message)
}

func TestCheckAdminFlag(t *testing.T) {
	bundle, _, _ := defaultBundle()
	router := setupRouter(bundle)

	token, err := utils.GenerateToken("jordan@example.com", time.Hour)
	require.NoError(t, err)

	w := doJSON(router, http.MethodGet, "/users/admin/admin@example.com", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.IsAdmin)
	assert.True(t, *resp.IsAdmin)
}

func TestUnexpectedFaultSurfacedInEnvelope(t *testing.T) {
	bundle, bookingSvc, _ := defaultBundle()
	bookingSvc.createErr = errors.New("store unreachable")
	router := setupRouter(bundle)

	w := doJSON(router, http.MethodPost, "/booking", gin.H{
		"treatmentName":   "Cleaning",
		"appointmentDate": "2024-01-01",
		"slot":            "9am",
		"email":           "jordan@example.com",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "store unreachable")
}
