package handler

import (
	"net/http"

	"github.com/zuchi/dashboard-api/internal/api/handler/router"
	"github.com/zuchi/dashboard-api/internal/usecases/administrating"
	"github.com/zuchi/dashboard-api/internal/usecases/ingesting"
	"github.com/zuchi/dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/tally",
			Method:  http.MethodGet,
			Handler: GetTally(service),
		},
	}
}

func Cashier(service ingesting.IngestService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cashier",
			Method:  http.MethodPost,
			Handler: ReceiveCashierPayload(service),
		},
		{
			Path:    "/v1/cashier/recent-activity",
			Method:  http.MethodGet,
			Handler: GetRecentActivity(service),
		},
	}
}

func Admin(service administrating.AdminService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/stores",
			Method:  http.MethodGet,
			Handler: ListStores(service),
		},
		{
			Path:    "/v1/admin/stores",
			Method:  http.MethodPost,
			Handler: AddStore(service),
		},
		{
			Path:    "/v1/admin/members",
			Method:  http.MethodGet,
			Handler: ListMembers(service),
		},
		{
			Path:    "/v1/admin/transactions/recent",
			Method:  http.MethodGet,
			Handler: ListRecentTransactions(service),
		},
		{
			Path:    "/v1/admin/statistics",
			Method:  http.MethodGet,
			Handler: GetStatistics(service),
		},
		{
			Path:    "/v1/admin/revenues",
			Method:  http.MethodGet,
			Handler: ListRevenues(service),
		},
		{
			Path:    "/v1/admin/revenues/:id",
			Method:  http.MethodPut,
			Handler: UpdateRevenue(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
