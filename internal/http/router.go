package http

import (
	"net/http"

	"studio-backend/internal/handlers"
	"studio-backend/internal/middleware"
	"studio-backend/internal/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	totpHandler *handlers.TOTPHandler,
	clientHandler *handlers.ClientHandler,
	bankHandler *handlers.BankHandler,
	quoteHandler *handlers.QuoteHandler,
	estimateHandler *handlers.EstimateHandler,
	generalEstimateHandler *handlers.GeneralEstimateHandler,
	incomeHandler *handlers.IncomeHandler,
	stageHandler *handlers.StageHandler,
	expenseHandler *handlers.ExpenseHandler,
	cashFlowHandler *handlers.CashFlowHandler,
	catalogHandler *handlers.CatalogHandler,
	presetHandler *handlers.PresetHandler,
	dashboardHandler *handlers.DashboardHandler,
	paymentHandler *handlers.PaymentHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	r.HandleFunc("/auth/totp/verify", totpHandler.VerifyLogin).Methods("POST")

	// Public enquiry form submission
	r.HandleFunc("/quote", quoteHandler.CreateQuote).Methods("POST")

	// Razorpay server-to-server callbacks
	r.HandleFunc("/payments/webhook", paymentHandler.Webhook).Methods("POST")

	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Current user
	r.Handle("/auth/me", authMiddleware.Authenticate(http.HandlerFunc(authHandler.Me))).Methods("GET")
	r.Handle("/auth/verify", authMiddleware.Authenticate(http.HandlerFunc(authHandler.Verify))).Methods("GET")

	meAPI := r.PathPrefix("/api/me").Subrouter()
	meAPI.Use(authMiddleware.Authenticate)
	meAPI.HandleFunc("", authHandler.Me).Methods("GET")

	// User lookup
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("/{id}", authHandler.GetUser).Methods("GET")

	// 2FA management
	totpAPI := r.PathPrefix("/api/totp").Subrouter()
	totpAPI.Use(authMiddleware.Authenticate)
	totpAPI.HandleFunc("/setup", totpHandler.Setup).Methods("POST")
	totpAPI.HandleFunc("/enable", totpHandler.Enable).Methods("POST")

	// Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.Use(authMiddleware.Authenticate)
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/{id}", clientHandler.GetClient).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.UpdateClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.DeleteClient).Methods("DELETE")

	// Banks
	banksAPI := r.PathPrefix("/api/banks").Subrouter()
	banksAPI.Use(authMiddleware.Authenticate)
	banksAPI.HandleFunc("", bankHandler.ListBanks).Methods("GET")
	banksAPI.HandleFunc("", bankHandler.CreateBank).Methods("POST")
	banksAPI.HandleFunc("/{id}", bankHandler.UpdateBank).Methods("PUT")
	banksAPI.HandleFunc("/{id}", bankHandler.DeleteBank).Methods("DELETE")

	// Quotes (admin review of public enquiries)
	quotesAPI := r.PathPrefix("/api/quotes").Subrouter()
	quotesAPI.Use(authMiddleware.Authenticate)
	quotesAPI.HandleFunc("", quoteHandler.ListQuotes).Methods("GET")
	quotesAPI.HandleFunc("/{id}", quoteHandler.DeleteQuote).Methods("DELETE")

	// Interior estimates
	estimatesAPI := r.PathPrefix("/api/interior-estimates").Subrouter()
	estimatesAPI.Use(authMiddleware.Authenticate)
	estimatesAPI.HandleFunc("", estimateHandler.ListEstimates).Methods("GET")
	estimatesAPI.HandleFunc("", estimateHandler.CreateEstimate).Methods("POST")
	estimatesAPI.HandleFunc("/client/{clientId}", estimateHandler.ListByClient).Methods("GET")
	estimatesAPI.HandleFunc("/{id}", estimateHandler.GetEstimate).Methods("GET")
	estimatesAPI.HandleFunc("/{id}", estimateHandler.UpdateEstimate).Methods("PUT")
	estimatesAPI.HandleFunc("/{id}", estimateHandler.DeleteEstimate).Methods("DELETE")
	estimatesAPI.HandleFunc("/{id}/approve", estimateHandler.ApproveEstimate).Methods("POST")
	estimatesAPI.HandleFunc("/{id}/pdf", estimateHandler.ExportPDF).Methods("GET")

	// General (construction) estimates
	generalAPI := r.PathPrefix("/api/general-estimates").Subrouter()
	generalAPI.Use(authMiddleware.Authenticate)
	generalAPI.HandleFunc("", generalEstimateHandler.List).Methods("GET")
	generalAPI.HandleFunc("", generalEstimateHandler.Create).Methods("POST")
	generalAPI.HandleFunc("/client/{clientId}", generalEstimateHandler.ListByClient).Methods("GET")
	generalAPI.HandleFunc("/{id}", generalEstimateHandler.Get).Methods("GET")
	generalAPI.HandleFunc("/{id}", generalEstimateHandler.Update).Methods("PUT")
	generalAPI.HandleFunc("/{id}", generalEstimateHandler.Delete).Methods("DELETE")

	// Income
	incomeAPI := r.PathPrefix("/api/interior-income").Subrouter()
	incomeAPI.Use(authMiddleware.Authenticate)
	incomeAPI.HandleFunc("", incomeHandler.ListIncome).Methods("GET")
	incomeAPI.HandleFunc("", incomeHandler.CreateIncome).Methods("POST")
	incomeAPI.HandleFunc("/{id}", incomeHandler.UpdateIncome).Methods("PATCH", "PUT")

	// Project stages
	stagesAPI := r.PathPrefix("/api/stages").Subrouter()
	stagesAPI.Use(authMiddleware.Authenticate)
	stagesAPI.HandleFunc("", stageHandler.ListStages).Methods("GET")
	stagesAPI.HandleFunc("", stageHandler.CreateStage).Methods("POST")

	// Expenses
	expensesAPI := r.PathPrefix("/api/expenses").Subrouter()
	expensesAPI.Use(authMiddleware.Authenticate)
	expensesAPI.HandleFunc("", expenseHandler.ListExpenses).Methods("GET")
	expensesAPI.HandleFunc("", expenseHandler.CreateExpense).Methods("POST")
	expensesAPI.HandleFunc("/{id}", expenseHandler.DeleteExpense).Methods("DELETE")

	commonExpensesAPI := r.PathPrefix("/api/common-expenses").Subrouter()
	commonExpensesAPI.Use(authMiddleware.Authenticate)
	commonExpensesAPI.HandleFunc("", expenseHandler.ListCommonExpenses).Methods("GET")
	commonExpensesAPI.HandleFunc("", expenseHandler.CreateCommonExpense).Methods("POST")
	commonExpensesAPI.HandleFunc("/{id}", expenseHandler.DeleteCommonExpense).Methods("DELETE")

	// Cash flow
	cashFlowAPI := r.PathPrefix("/api/cashflow").Subrouter()
	cashFlowAPI.Use(authMiddleware.Authenticate)
	cashFlowAPI.HandleFunc("", cashFlowHandler.GetCashFlow).Methods("GET")

	// Catalog
	categoriesAPI := r.PathPrefix("/api/categories").Subrouter()
	categoriesAPI.Use(authMiddleware.Authenticate)
	categoriesAPI.HandleFunc("", catalogHandler.ListCategories).Methods("GET")
	categoriesAPI.HandleFunc("", catalogHandler.CreateCategory).Methods("POST")
	categoriesAPI.HandleFunc("/{id}", catalogHandler.UpdateCategory).Methods("PUT")
	categoriesAPI.HandleFunc("/{id}", catalogHandler.DeleteCategory).Methods("DELETE")

	subcategoriesAPI := r.PathPrefix("/api/subcategories").Subrouter()
	subcategoriesAPI.Use(authMiddleware.Authenticate)
	subcategoriesAPI.HandleFunc("", catalogHandler.ListSubCategories).Methods("GET")
	subcategoriesAPI.HandleFunc("", catalogHandler.CreateSubCategory).Methods("POST")
	subcategoriesAPI.HandleFunc("/{id}", catalogHandler.UpdateSubCategory).Methods("PUT")
	subcategoriesAPI.HandleFunc("/{id}", catalogHandler.DeleteSubCategory).Methods("DELETE")

	sectionsAPI := r.PathPrefix("/api/sections").Subrouter()
	sectionsAPI.Use(authMiddleware.Authenticate)
	sectionsAPI.HandleFunc("", catalogHandler.ListSections).Methods("GET")
	sectionsAPI.HandleFunc("", catalogHandler.CreateSection).Methods("POST")
	sectionsAPI.HandleFunc("/{id}", catalogHandler.UpdateSection).Methods("PUT")
	sectionsAPI.HandleFunc("/{id}", catalogHandler.DeleteSection).Methods("DELETE")

	// Presets
	presetsAPI := r.PathPrefix("/api/presets").Subrouter()
	presetsAPI.Use(authMiddleware.Authenticate)
	presetsAPI.HandleFunc("", presetHandler.ListPresets).Methods("GET")
	presetsAPI.HandleFunc("", presetHandler.CreatePreset).Methods("POST")
	presetsAPI.HandleFunc("/{id}", presetHandler.GetPreset).Methods("GET")
	presetsAPI.HandleFunc("/{id}", presetHandler.UpdatePreset).Methods("PUT")
	presetsAPI.HandleFunc("/{id}", presetHandler.DeletePreset).Methods("DELETE")

	// Online payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("/status", paymentHandler.Status).Methods("GET")
	paymentsAPI.HandleFunc("/order", paymentHandler.CreateOrder).Methods("POST")
	paymentsAPI.HandleFunc("/verify", paymentHandler.VerifyPayment).Methods("POST")
	paymentsAPI.HandleFunc("/transactions", paymentHandler.ListTransactions).Methods("GET")

	// Admin overview
	r.Handle("/api/dashboard",
		authMiddleware.RequireRole(models.RoleAdmin)(http.HandlerFunc(dashboardHandler.GetStats)),
	).Methods("GET")

	return r
}
