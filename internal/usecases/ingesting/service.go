// Package ingesting normaliza e persiste os payloads de venda enviados pelos
// terminais de caixa das lojas
package ingesting

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zuchi/dashboard-api/infrastructure/repository"
	"github.com/zuchi/dashboard-api/internal/domain"
	"github.com/zuchi/dashboard-api/pkg/utils"
)

// Formatos de horário aceitos no campo time do pedido
var orderTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type IngestService interface {
	// Ingest processa um payload bruto do caixa. Payloads incompletos ou de
	// loja desconhecida são arquivados e ignorados sem erro; um erro só é
	// devolvido quando a requisição não pôde ser processada de forma alguma.
	Ingest(body []byte) error
	RecentActivity(hours int) (*ActivityReport, error)
}

type Service struct {
	storeRepo       repository.StoreRepository
	transactionRepo repository.TransactionRepository
	archive         *Archive
}

func NewService(
	storeRepo repository.StoreRepository,
	transactionRepo repository.TransactionRepository,
	archive *Archive,
) IngestService {
	return &Service{
		storeRepo:       storeRepo,
		transactionRepo: transactionRepo,
		archive:         archive,
	}
}

func (s *Service) Ingest(body []byte) error {
	logrus.WithField("payload_bytes", len(body)).Info("Cashier: payload recebido")

	var record domain.CashierRecord
	if len(body) > 0 {
		if err := json.Unmarshal(body, &record); err != nil {
			logrus.WithError(err).Error("Cashier: falha ao desserializar o payload")
		} else {
			logrus.Debug("Cashier: payload desserializado\n", utils.PrettyJson(body))
		}
	}

	complete := record.Data != nil && record.Data.Store != nil && record.Data.Order != nil

	var store *domain.Store
	if complete {
		found, err := s.storeRepo.GetByName(record.Data.Store.Name)
		if err != nil {
			// Falha de consulta: arquivar como exceção e propagar (o caixa
			// recebe 500 e reenvia)
			s.archivePayload(body, record, ArchiveException)
			return fmt.Errorf("erro ao resolver loja do payload: %w", err)
		}
		store = found
	}

	// O payload bruto é arquivado sempre, processável ou não
	status := ArchiveFailed
	if store != nil {
		status = ArchiveSuccess
	}
	s.archivePayload(body, record, status)

	if !complete {
		logrus.WithField("payload_bytes", len(body)).Warn("Cashier: payload incompleto, transação descartada")
		return nil
	}

	if store == nil {
		logrus.WithField("store_name", record.Data.Store.Name).Warn("Cashier: loja não encontrada, transação descartada")
		return nil
	}

	transaction := normalize(record.Data, store)
	if err := s.transactionRepo.Create(transaction); err != nil {
		// Persistência com melhor esforço: o erro é logado e o caixa ainda
		// recebe 200 (o payload arquivado permite reprocessar depois)
		logrus.WithError(err).WithFields(logrus.Fields{
			"store_id":   store.ID,
			"order_time": record.Data.Order.Time,
		}).Error("Cashier: erro ao salvar a transação")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"store_id":       store.ID,
		"transaction_id": transaction.ID,
		"amount":         transaction.Amount,
		"items":          len(transaction.Items),
	}).Info("Cashier: transação salva com sucesso")

	return nil
}

func (s *Service) archivePayload(body []byte, record domain.CashierRecord, status string) {
	if len(body) == 0 {
		return
	}

	orderTime := ""
	if record.Data != nil && record.Data.Order != nil {
		orderTime = record.Data.Order.Time
	}

	if err := s.archive.Save(body, orderTime, status); err != nil {
		logrus.WithError(err).Warn("Cashier: erro ao arquivar o payload")
	}
}

// normalize converte o payload do PDV em uma transação com itens, com os
// contadores de clientes/consumidores derivados pela heurística da marca
func normalize(data *domain.CashierData, store *domain.Store) *domain.Transaction {
	transaction := &domain.Transaction{
		StoreID: store.ID,
		Amount:  int(math.Round(data.Order.Total)),
	}

	for _, layout := range orderTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, data.Order.Time, time.Local); err == nil {
			transaction.Time = &parsed
			break
		}
	}

	items := make([]*domain.TransactionItem, 0, len(data.Order.Items))
	for _, orderItem := range data.Order.Items {
		item := &domain.TransactionItem{
			StoreID: transaction.StoreID,
			Time:    transaction.Time,
			Qty:     orderItem.Quantity,
		}

		// Convenção "Classe - Produto" do PDV: o primeiro segmento antes do
		// hífen é a classe; sem separador, o nome inteiro vira o produto
		if orderItem.Name != "" {
			parts := strings.Split(orderItem.Name, "-")
			if len(parts) >= 2 {
				item.ProductClass = strings.TrimSpace(parts[0])
				item.Product = strings.TrimSpace(parts[1])
			} else {
				item.ProductClass = ""
				item.Product = orderItem.Name
			}
		}

		items = append(items, item)
	}

	transaction.Items = items
	transaction.NumOfCustomers, transaction.NumOfConsumers = countParty(store.Brand, items)

	return transaction
}

// ActivityReport resume a atividade recente da ingestão: transações salvas e
// payloads arquivados dentro da janela consultada
type ActivityReport struct {
	Success          bool                  `json:"success"`
	TimeRange        string                `json:"timeRange"`
	TransactionCount int                   `json:"transactionCount"`
	JSONFileCount    int                   `json:"jsonFileCount"`
	Transactions     []*domain.Transaction `json:"transactions"`
	JSONFiles        []ArchivedFile        `json:"jsonFiles"`
}

func (s *Service) RecentActivity(hours int) (*ActivityReport, error) {
	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)

	transactions, err := s.transactionRepo.ListSince(cutoff, 50)
	if err != nil {
		return nil, err
	}

	files, err := s.archive.RecentFiles(cutoff, 20)
	if err != nil {
		return nil, err
	}

	return &ActivityReport{
		Success:          true,
		TimeRange:        fmt.Sprintf("最近 %d 小時", hours),
		TransactionCount: len(transactions),
		JSONFileCount:    len(files),
		Transactions:     transactions,
		JSONFiles:        files,
	}, nil
}
