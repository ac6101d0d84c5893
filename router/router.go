package router

import (
	"go-charts-api/handler"
	"go-charts-api/service"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "go-charts-api/docs"
)

func NewRouter(authHandler *handler.AuthHandler, chartHandler *handler.ChartHandler, authService *service.AuthService) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.HandleFunc("GET /api/info", handler.Info)

	mux.Handle("POST /api/login", handler.ErrorHandlingMiddleware(authHandler.Login))

	// Protected routes: the auth middleware rejects the request before the
	// chart handler is ever invoked.
	mux.Handle("GET /api/charts/{key}", handler.AuthMiddleware(authService,
		handler.ErrorHandlingMiddleware(chartHandler.GetChart)))

	mux.Handle("GET /swagger/", httpSwagger.Handler())

	return mux
}
