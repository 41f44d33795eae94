package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos no corpo das respostas
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidDateRange    = "VAL_003" // Período de datas inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Envelope é o formato histórico de falha do painel: success=false e a causa
// em message, sempre com HTTP 200. Os clientes de gráficos existentes só olham
// o corpo, nunca o status HTTP — manter esse comportamento é obrigatório.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// WriteFailure escreve uma falha no envelope do painel (HTTP 200)
func WriteFailure(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(Envelope{
		Success: false,
		Message: message,
		Code:    code,
	})
}

// WriteServerError responde 500 com o mesmo envelope; usado apenas quando a
// requisição nem chegou a ser processada (ex.: ingestão do caixa)
func WriteServerError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)

	_ = json.NewEncoder(w).Encode(Envelope{
		Success: false,
		Message: message,
		Code:    ErrInternalServer,
	})
}
