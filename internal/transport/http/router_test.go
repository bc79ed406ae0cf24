package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"hemobank/internal/auth"
	authstore "hemobank/internal/auth/store"
	"hemobank/internal/donor"
	donorstore "hemobank/internal/donor/store"
	"hemobank/internal/hospital"
	hospitalstore "hemobank/internal/hospital/store"
	"hemobank/internal/inventory"
	"hemobank/internal/ratelimit"
	"hemobank/pkg/testutil"
)

// RouterSuite runs the API end to end against the memory backend: real
// services and stores, no network.
type RouterSuite struct {
	suite.Suite
	router http.Handler
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	donorSvc, err := donor.NewService(donorstore.NewInMemoryStore(), donor.WithLogger(logger))
	s.Require().NoError(err)
	hospitalSvc, err := hospital.NewService(hospitalstore.NewInMemoryStore(), hospital.WithLogger(logger))
	s.Require().NoError(err)
	authSvc, err := auth.NewService(authstore.NewInMemoryStore(),
		auth.WithLogger(logger), auth.WithBcryptCost(bcrypt.MinCost))
	s.Require().NoError(err)

	s.router = NewRouter(Deps{
		Logger:         logger,
		Donors:         donorSvc,
		Hospitals:      hospitalSvc,
		Auth:           authSvc,
		RateLimit:      ratelimit.NewMiddleware(ratelimit.NewInMemoryStore(), 100, time.Minute, logger),
		RequestTimeout: 5 * time.Second,
	})
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func donorBody() map[string]any {
	return map[string]any{
		"name":            "Jane Doe",
		"age":             30,
		"gender":          "female",
		"bloodGroup":      "O-",
		"phone":           "9876543210",
		"email":           "jane@x.com",
		"address":         "1 Main St",
		"city":            "Metropolis",
		"state":           "NY",
		"ageConfirmation": true,
	}
}

func (s *RouterSuite) TestHealthz() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/healthz"))
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "status", "ok")
}

func (s *RouterSuite) TestMetricsEndpointExposed() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(s.T(), rr)
}

func (s *RouterSuite) TestDonorLifecycle() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/donors", donorBody()))
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)

	type registerResponse struct {
		Donor donor.Donor `json:"donor"`
	}
	created := testutil.UnmarshalResponse[registerResponse](s.T(), rr)
	s.Require().NotEmpty(created.Donor.ID)

	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/donors/"+created.Donor.ID))
	testutil.AssertStatusOK(s.T(), rr)

	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/donors/"+created.Donor.ID))
	testutil.AssertStatusOK(s.T(), rr)

	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/donors/"+created.Donor.ID))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")

	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/donors/"+created.Donor.ID))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func (s *RouterSuite) TestInventoryReflectsRegistrations() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/donors", donorBody()))
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)

	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/inventory/summary"))
	testutil.AssertStatusOK(s.T(), rr)

	summary := testutil.UnmarshalResponse[inventory.Summary](s.T(), rr)
	s.Equal(1, summary.TotalDonors)
	s.Equal(2, summary.TotalBloodUnits)
}

func (s *RouterSuite) TestHospitalRegistrationAndListing() {
	body := map[string]any{
		"name":          "City General Hospital",
		"email":         "admin@citygeneral.org",
		"phone":         "5551234567",
		"address":       "42 Health Ave",
		"city":          "Metropolis",
		"state":         "NY",
		"contactPerson": "Dr. Smith",
	}
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/hospitals", body))
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)

	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/hospitals"))
	testutil.AssertStatusOK(s.T(), rr)
	records := testutil.UnmarshalResponse[[]hospital.Hospital](s.T(), rr)
	s.Len(*records, 1)
}

func (s *RouterSuite) TestSignupThenLogin() {
	creds := map[string]string{"email": "jane@x.com", "password": "hunter22"}

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/auth/signup", creds))
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)

	rr = testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/auth/signup", creds))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "conflict")

	rr = testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/auth/login", creds))
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "message", "Login successful")

	rr = testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/auth/login",
		map[string]string{"email": "jane@x.com", "password": "wrong"}))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "unauthorized")
}

func (s *RouterSuite) TestValidationErrorsCarryFieldList() {
	body := donorBody()
	body["age"] = 17
	body["ageConfirmation"] = false

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/donors", body))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_failed")
	testutil.AssertJSONHasKey(s.T(), rr, "fields")
}

func (s *RouterSuite) TestUnsupportedContentTypeRejected() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/donors", "name=Jane")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusUnsupportedMediaType)
}

func (s *RouterSuite) TestRequestIDEchoed() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/healthz")
	req.Header.Set("X-Request-ID", "test-request-id")

	rr := testutil.DoRequest(s.router, req)

	s.Equal("test-request-id", rr.Header().Get("X-Request-ID"))
}
