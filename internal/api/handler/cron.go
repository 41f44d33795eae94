package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/zuchi/dashboard-api/internal/scheduler"
	"github.com/zuchi/dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeArchiveRetention = "archive-retention"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ArchiveRetentionService *scheduler.ArchiveRetentionService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteFailure(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado")
			return
		}

		switch cronType {
		case CronJobTypeArchiveRetention, CronJobTypeAll:
			if services.ArchiveRetentionService == nil {
				apiErrors.WriteServerError(w, "Serviço de limpeza do arquivo não disponível")
				return
			}
			services.ArchiveRetentionService.TriggerManualSync()

		default:
			apiErrors.WriteFailure(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: archive-retention, all")
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"archive-retention": services.ArchiveRetentionService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status)
	}
}
