package transport

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	authapp "github.com/expenzo/expenzo-backend/application/auth"
	billgroupapp "github.com/expenzo/expenzo-backend/application/billgroup"
	budgetapp "github.com/expenzo/expenzo-backend/application/budget"
	jobapp "github.com/expenzo/expenzo-backend/application/job"
	marketplaceapp "github.com/expenzo/expenzo-backend/application/marketplace"
	"github.com/expenzo/expenzo-backend/cmd/config"
	"github.com/expenzo/expenzo-backend/model"
	utilsContext "github.com/expenzo/expenzo-backend/utils/context"
)

type RestHandler struct {
	AuthApp        authapp.AuthApp
	MarketplaceApp marketplaceapp.MarketplaceApp
	JobApp         jobapp.JobApp
	BillGroupApp   billgroupapp.BillGroupApp
	BudgetApp      budgetapp.BudgetApp
}

func NewTransport(cfg *config.Config, limiter *RateLimiter, authApp authapp.AuthApp, marketplaceApp marketplaceapp.MarketplaceApp, jobApp jobapp.JobApp, billGroupApp billgroupapp.BillGroupApp, budgetApp budgetapp.BudgetApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:        authApp,
		MarketplaceApp: marketplaceApp,
		JobApp:         jobApp,
		BillGroupApp:   billGroupApp,
		BudgetApp:      budgetApp,
	}

	router.Use(LoggingMiddleware())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.Middleware("api", cfg.RateLimit.API))

	api.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// OTP dispatch sits outside the auth tier and carries its own tighter
	// budget; registered on the api router so the subrouter middleware
	// below never charges these hits.
	api.HandleFunc("/auth/send-otp", limiter.Wrap("otp", cfg.RateLimit.OTP, rh.SendOTP)).Methods(http.MethodPost)
	api.HandleFunc("/auth/resend-otp", limiter.Wrap("otp", cfg.RateLimit.OTP, rh.ResendOTP)).Methods(http.MethodPost)

	// Remaining auth routes share the auth tier.
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(limiter.Middleware("auth", cfg.RateLimit.Auth))
	auth.HandleFunc("/verify-otp", rh.VerifyOTP).Methods(http.MethodPost)
	auth.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", rh.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", rh.ResetPassword).Methods(http.MethodPost)

	// Marketplace. Reads are public with optional ownership annotation;
	// writes require a session. my-items must register before the :id route.
	api.HandleFunc("/marketplace/items", OptionalAuth(authApp, rh.ListItems)).Methods(http.MethodGet)
	api.HandleFunc("/marketplace/items", RequireAuth(authApp, rh.CreateItem)).Methods(http.MethodPost)
	api.HandleFunc("/marketplace/my-items", RequireAuth(authApp, rh.ListMyItems)).Methods(http.MethodGet)
	api.HandleFunc("/marketplace/items/{id:[0-9]+}", OptionalAuth(authApp, rh.GetItem)).Methods(http.MethodGet)
	api.HandleFunc("/marketplace/items/{id:[0-9]+}", RequireAuth(authApp, rh.UpdateItem)).Methods(http.MethodPut)
	api.HandleFunc("/marketplace/items/{id:[0-9]+}", RequireAuth(authApp, rh.DeleteItem)).Methods(http.MethodDelete)

	// Jobs
	api.HandleFunc("/jobs", OptionalAuth(authApp, rh.ListJobs)).Methods(http.MethodGet)
	api.HandleFunc("/jobs", RequireAuth(authApp, rh.CreateJob)).Methods(http.MethodPost)
	api.HandleFunc("/jobs/my-jobs", RequireAuth(authApp, rh.ListMyJobs)).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{id:[0-9]+}", OptionalAuth(authApp, rh.GetJob)).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{id:[0-9]+}", RequireAuth(authApp, rh.UpdateJob)).Methods(http.MethodPut)
	api.HandleFunc("/jobs/{id:[0-9]+}", RequireAuth(authApp, rh.DeleteJob)).Methods(http.MethodDelete)

	// Bill group
	api.HandleFunc("/billgroup", RequireAuth(authApp, rh.GetBillGroup)).Methods(http.MethodGet)
	api.HandleFunc("/billgroup/person", RequireAuth(authApp, rh.AddPerson)).Methods(http.MethodPost)
	api.HandleFunc("/billgroup/person/{id}", RequireAuth(authApp, rh.RemovePerson)).Methods(http.MethodDelete)
	api.HandleFunc("/billgroup/expense", RequireAuth(authApp, rh.AddBillExpense)).Methods(http.MethodPost)
	api.HandleFunc("/billgroup/expense/{id}", RequireAuth(authApp, rh.RemoveBillExpense)).Methods(http.MethodDelete)
	api.HandleFunc("/billgroup/reset", RequireAuth(authApp, rh.ResetBillGroup)).Methods(http.MethodDelete)

	// Budget
	api.HandleFunc("/budget", RequireAuth(authApp, rh.GetBudget)).Methods(http.MethodGet)
	api.HandleFunc("/budget/settings", RequireAuth(authApp, rh.UpdateBudgetSettings)).Methods(http.MethodPut)
	api.HandleFunc("/budget/expense", RequireAuth(authApp, rh.AddBudgetExpense)).Methods(http.MethodPost)
	api.HandleFunc("/budget/expense/{id}", RequireAuth(authApp, rh.RemoveBudgetExpense)).Methods(http.MethodDelete)

	return router
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

// viewerID is the caller's user id, or 0 for anonymous requests.
func viewerID(ctx context.Context) uint64 {
	id, _ := utilsContext.GetUserID(ctx)
	return id
}

// Health handler
// @Summary Health check
// @Description Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /api/health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.HealthResponse{
		Status:    "ok",
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
