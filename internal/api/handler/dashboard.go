package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/zuchi/dashboard-api/internal/domain"
	"github.com/zuchi/dashboard-api/internal/usecases/reporting"
	"github.com/zuchi/dashboard-api/pkg/log"
	"github.com/zuchi/dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetTally atende o relatório consolidado do painel. Datas ilegíveis caem para
// hoje e a resposta é sempre HTTP 200: falhas vão no corpo (success=false).
func GetTally(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		filters := domain.TallyFilters{
			Begin:    utils.ParseHTMLDate(query.Get("begin")),
			End:      utils.ParseHTMLDate(query.Get("end")),
			Interval: query.Get("interval"),
			Group:    query.Get("group"),
		}

		logger.WithFields(log.Fields{
			"begin":    utils.FormatHTMLDate(filters.Begin),
			"end":      utils.FormatHTMLDate(filters.End),
			"interval": filters.Interval,
			"group":    filters.Group,
		}).Info("dashboard: gerando relatório consolidado")

		response := service.Tally(filters)
		if !response.Success {
			logger.WithField("message", response.Message).Warn("dashboard: relatório devolvido com falha no corpo")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dashboard: erro ao serializar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
