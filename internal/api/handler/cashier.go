package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/zuchi/dashboard-api/internal/usecases/ingesting"
	"github.com/zuchi/dashboard-api/pkg/apiErrors"
	"github.com/zuchi/dashboard-api/pkg/log"
)

const defaultActivityHours = 24

// ReceiveCashierPayload recebe o payload bruto de venda do terminal de caixa.
// Payloads malformados ou de loja desconhecida ainda respondem 200: o caixa só
// deve reenviar quando o processamento falhou de fato.
func ReceiveCashierPayload(service ingesting.IngestService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.WithError(err).Error("cashier: erro ao ler o corpo da requisição")
			apiErrors.WriteServerError(w, "erro ao ler o corpo da requisição")
			return
		}

		if err := service.Ingest(body); err != nil {
			logger.WithError(err).Error("cashier: erro ao processar o payload")
			apiErrors.WriteServerError(w, "erro ao processar o payload")
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

func GetRecentActivity(service ingesting.IngestService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		hours := defaultActivityHours
		if raw := r.URL.Query().Get("hours"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				hours = parsed
			}
		}

		logger.WithField("hours", hours).Info("cashier: consultando atividade recente")

		report, err := service.RecentActivity(hours)
		if err != nil {
			logger.WithError(err).Error("cashier: erro ao consultar atividade recente")
			apiErrors.WriteFailure(w, apiErrors.ErrDatabaseOperation, "erro ao consultar atividade recente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("cashier: erro ao serializar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
