package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/zuchi/dashboard-api/internal/domain"
	"github.com/zuchi/dashboard-api/internal/usecases/administrating"
	"github.com/zuchi/dashboard-api/pkg/apiErrors"
	"github.com/zuchi/dashboard-api/pkg/log"
)

func ListStores(service administrating.AdminService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.Stores()
		if err != nil {
			logger.WithError(err).Error("admin: erro ao listar lojas")
			apiErrors.WriteFailure(w, apiErrors.ErrDatabaseOperation, "erro ao listar lojas")
			return
		}

		writeJSON(w, logger, report)
	})
}

// AddStoreRequest é o corpo esperado no cadastro de loja
type AddStoreRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Area  string `json:"area"`
	Brand string `json:"brand"`
	Spot  string `json:"spot"`
}

func AddStore(service administrating.AdminService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request AddStoreRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("admin: corpo inválido no cadastro de loja")
			apiErrors.WriteFailure(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido")
			return
		}

		if request.ID == "" || request.Name == "" {
			apiErrors.WriteFailure(w, apiErrors.ErrMissingRequiredData, "código e nome da loja são obrigatórios")
			return
		}

		store := &domain.Store{
			ID:    request.ID,
			Name:  request.Name,
			Area:  request.Area,
			Brand: request.Brand,
			Spot:  request.Spot,
		}

		result, err := service.AddStore(r.Context(), store)
		if err != nil {
			logger.WithError(err).Error("admin: erro ao cadastrar loja")
			apiErrors.WriteFailure(w, apiErrors.ErrDatabaseOperation, "erro ao cadastrar loja")
			return
		}

		logger.WithFields(log.Fields{
			"store_id": store.ID,
			"success":  result.Success,
		}).Info("admin: cadastro de loja processado")

		writeJSON(w, logger, result)
	})
}

func ListMembers(service administrating.AdminService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		page := queryInt(query.Get("page"), 1)
		pageSize := queryInt(query.Get("pageSize"), 0)

		report, err := service.MembersOverview(page, pageSize)
		if err != nil {
			logger.WithError(err).Error("admin: erro ao listar membros")
			apiErrors.WriteFailure(w, apiErrors.ErrDatabaseOperation, "erro ao listar membros")
			return
		}

		writeJSON(w, logger, report)
	})
}

func ListRecentTransactions(service administrating.AdminService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		count := queryInt(query.Get("count"), 0)
		storeID := query.Get("storeId")

		var year, month *int
		if parsed := queryInt(query.Get("year"), 0); parsed > 0 {
			year = &parsed
		}
		if parsed := queryInt(query.Get("month"), 0); parsed >= 1 && parsed <= 12 {
			month = &parsed
		}

		// Ano e mês só filtram juntos
		if year == nil || month == nil {
			year, month = nil, nil
		}

		report, err := service.RecentTransactions(count, year, month, storeID)
		if err != nil {
			logger.WithError(err).Error("admin: erro ao listar transações recentes")
			apiErrors.WriteFailure(w, apiErrors.ErrDatabaseOperation, "erro ao listar transações recentes")
			return
		}

		writeJSON(w, logger, report)
	})
}

func GetStatistics(service administrating.AdminService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		revenueMonth := r.URL.Query().Get("revenueMonth")
		if revenueMonth != "last" {
			revenueMonth = "current"
		}

		report, err := service.Statistics(revenueMonth)
		if err != nil {
			logger.WithError(err).Error("admin: erro ao consultar estatísticas")
			apiErrors.WriteFailure(w, apiErrors.ErrDatabaseOperation, "erro ao consultar estatísticas")
			return
		}

		writeJSON(w, logger, report)
	})
}

func ListRevenues(service administrating.AdminService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.Revenues()
		if err != nil {
			logger.WithError(err).Error("admin: erro ao listar metas de faturamento")
			apiErrors.WriteFailure(w, apiErrors.ErrDatabaseOperation, "erro ao listar metas de faturamento")
			return
		}

		writeJSON(w, logger, report)
	})
}

// UpdateRevenueRequest é o corpo esperado na atualização de meta
type UpdateRevenueRequest struct {
	Amount int `json:"amount"`
}

func UpdateRevenue(service administrating.AdminService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteFailure(w, apiErrors.ErrInvalidRequest, "identificador de meta inválido")
			return
		}

		var request UpdateRevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("admin: corpo inválido na atualização de meta")
			apiErrors.WriteFailure(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido")
			return
		}

		if request.Amount < 0 {
			apiErrors.WriteFailure(w, apiErrors.ErrInvalidRequest, "a meta de faturamento não pode ser negativa")
			return
		}

		result, err := service.UpdateRevenue(id, request.Amount)
		if err != nil {
			logger.WithError(err).Error("admin: erro ao atualizar meta de faturamento")
			apiErrors.WriteFailure(w, apiErrors.ErrDatabaseOperation, "erro ao atualizar meta de faturamento")
			return
		}

		logger.WithFields(log.Fields{
			"revenue_id": id,
			"success":    result.Success,
		}).Info("admin: atualização de meta processada")

		writeJSON(w, logger, result)
	})
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return parsed
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao serializar a resposta")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
