package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/campaign"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/seo"
	"github.com/vfg2006/marketing-dashboard-api/pkg/middleware"
)

func Healthcheck(version string, db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(version, db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service dashboard.Overviewer, policy domain.DataVisibilityPolicy) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/overview",
			Method:      http.MethodGet,
			Handler:     GetDashboardOverview(service, policy),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service campaign.CampaignService, policy domain.DataVisibilityPolicy) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service, policy),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service, policy),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetCampaignMetrics(service, policy),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Seo(service seo.SeoService, policy domain.DataVisibilityPolicy) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/seo/summary",
			Method:      http.MethodGet,
			Handler:     GetSeoSummary(service, policy),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/seo/history",
			Method:      http.MethodGet,
			Handler:     GetSeoHistory(service, policy),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/seo/keyword-intent",
			Method:      http.MethodGet,
			Handler:     GetKeywordIntent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/seo/traffic-by-location",
			Method:      http.MethodGet,
			Handler:     GetTrafficByLocation(service, policy),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/seo/search-console",
			Method:      http.MethodGet,
			Handler:     GetSearchConsoleOverview(service, policy),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Insights(service insighting.Insighter, policy domain.DataVisibilityPolicy) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/ai",
			Method:      http.MethodGet,
			Handler:     GetAiInsights(service, policy),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAbove()},
		},
		{
			Path:        "/v1/reports/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailableReportPeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAbove()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.SuperAdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.SuperAdminOnly()},
		},
	}
}
