// Package router assembles the gin engine: middleware, observability
// endpoints, and the API routes.
package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/okane-app/backend/api"
	"github.com/okane-app/backend/internal/controllers/healthz"
	v1 "github.com/okane-app/backend/internal/controllers/v1"
	"github.com/okane-app/backend/internal/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router with all middlewares. The returned teardown
// function unregisters the Prometheus metrics so that Config can be
// called again, which tests do for every request.
func Config() (*gin.Engine, func(), error) {
	r := gin.New()

	// Don’t process the X-Forwarded-For header as we do not do anything
	// with client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	r.Use(MetricsMiddleware())

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	return r, func() { unregisterPrometheusMetrics() }, nil
}

// AttachRoutes attaches the API routes to the router group that is
// passed in. Separating this from Config allows attaching the routes to
// different paths for different deployments.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.Title = "Okane"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Okane, a personal finance tracker built around recurring budgets. Check out the source code at https://github.com/okane-app/backend."

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(group.Group("/healthz"))

	// API v1 setup
	v1Group := group.Group("/v1")
	{
		v1Group.GET("", GetV1)
		v1Group.OPTIONS("", OptionsV1)
	}

	v1.RegisterWorkspaceRoutes(v1Group.Group("/workspaces"))
	v1.RegisterUserRoutes(v1Group.Group("/users"))
	v1.RegisterCategoryRoutes(v1Group.Group("/categories"))
	v1.RegisterCurrencyRoutes(v1Group.Group("/currencies"))
	v1.RegisterBudgetRoutes(v1Group.Group("/budgets"))
	v1.RegisterSeriesRoutes(v1Group.Group("/series"))
	v1.RegisterTransactionRoutes(v1Group.Group("/transactions"))
	v1.RegisterReportRoutes(v1Group.Group("/reports"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"`
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`
	Version string `json:"version" example:"https://example.com/api/version"`
	V1      string `json:"v1" example:"https://example.com/api/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Workspaces   string `json:"workspaces" example:"https://example.com/api/v1/workspaces"`
	Users        string `json:"users" example:"https://example.com/api/v1/users"`
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`
	Currencies   string `json:"currencies" example:"https://example.com/api/v1/currencies"`
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`
	Series       string `json:"series" example:"https://example.com/api/v1/series"`
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`
	Reports      string `json:"reports" example:"https://example.com/api/v1/reports"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Workspaces:   url + "/workspaces",
			Users:        url + "/users",
			Categories:   url + "/categories",
			Currencies:   url + "/currencies",
			Budgets:      url + "/budgets",
			Series:       url + "/series",
			Transactions: url + "/transactions",
			Reports:      url + "/reports",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
