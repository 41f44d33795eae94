package ingesting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zuchi/dashboard-api/infrastructure/repository/mocks"
	"github.com/zuchi/dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newIngestServiceWithMocks(t *testing.T) (IngestService, *mocks.MockStoreRepository, *mocks.MockTransactionRepository) {
	ctrl := gomock.NewController(t)

	storeRepo := mocks.NewMockStoreRepository(ctrl)
	transactionRepo := mocks.NewMockTransactionRepository(ctrl)
	archive := NewArchive(t.TempDir())

	return NewService(storeRepo, transactionRepo, archive), storeRepo, transactionRepo
}

const validPayload = `{
	"code": 0,
	"message": "ok",
	"type": "order",
	"data": {
		"store": {"name": "築崎鍋物公館店", "uuid": "u-1", "no": "001"},
		"order": {
			"time": "2025-03-01 12:30:00",
			"uuid": "o-1",
			"no": "A001",
			"subtotal": 840,
			"discount": 0,
			"tax": 42,
			"total": 882.4,
			"items": [
				{"name": "湯底 - 昆布湯底", "quantity": 2, "price": 120},
				{"name": "肉品 - 雪花牛", "quantity": 1, "price": 300},
				{"name": "兒童餐", "quantity": 1, "price": 150}
			]
		}
	}
}`

func TestIngestPayloadValido(t *testing.T) {
	service, storeRepo, transactionRepo := newIngestServiceWithMocks(t)

	store := &domain.Store{ID: "S001", Name: "築崎鍋物公館店", Brand: "B"}
	storeRepo.EXPECT().GetByName("築崎鍋物公館店").Return(store, nil)

	var saved *domain.Transaction
	transactionRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(transaction *domain.Transaction) error {
			saved = transaction
			return nil
		})

	err := service.Ingest([]byte(validPayload))
	assert.NoError(t, err)

	assert.NotNil(t, saved)
	assert.Equal(t, "S001", saved.StoreID)
	assert.Equal(t, 882, saved.Amount) // total arredondado

	expectedTime := time.Date(2025, 3, 1, 12, 30, 0, 0, time.Local)
	assert.NotNil(t, saved.Time)
	assert.Equal(t, expectedTime, *saved.Time)

	// "Classe - Produto" é separado no hífen; sem separador o nome vira produto
	assert.Len(t, saved.Items, 3)
	assert.Equal(t, "湯底", saved.Items[0].ProductClass)
	assert.Equal(t, "昆布湯底", saved.Items[0].Product)
	assert.Equal(t, 2, saved.Items[0].Qty)
	assert.Equal(t, "", saved.Items[2].ProductClass)
	assert.Equal(t, "兒童餐", saved.Items[2].Product)

	// Heurística da marca B: um caldo (cliente+consumidor) e uma criança (só cliente).
	// A quantidade do item não multiplica a contagem.
	assert.Equal(t, 2, saved.NumOfCustomers)
	assert.Equal(t, 1, saved.NumOfConsumers)
}

func TestIngestPayloadIncompleto(t *testing.T) {
	service, _, _ := newIngestServiceWithMocks(t)

	// Sem data/store/order nada é persistido e o caixa ainda recebe 200
	err := service.Ingest([]byte(`{"code": 1, "message": "erro no caixa"}`))
	assert.NoError(t, err)
}

func TestIngestCorpoVazio(t *testing.T) {
	service, _, _ := newIngestServiceWithMocks(t)

	err := service.Ingest(nil)
	assert.NoError(t, err)
}

func TestIngestJSONInvalido(t *testing.T) {
	service, _, _ := newIngestServiceWithMocks(t)

	err := service.Ingest([]byte(`{invalido`))
	assert.NoError(t, err)
}

func TestIngestLojaDesconhecida(t *testing.T) {
	service, storeRepo, _ := newIngestServiceWithMocks(t)

	storeRepo.EXPECT().GetByName("築崎鍋物公館店").Return(nil, nil)

	// A transação é descartada sem erro; o payload fica arquivado como Failed
	err := service.Ingest([]byte(validPayload))
	assert.NoError(t, err)
}

func TestIngestErroAoResolverLoja(t *testing.T) {
	service, storeRepo, _ := newIngestServiceWithMocks(t)

	storeRepo.EXPECT().GetByName("築崎鍋物公館店").Return(nil, errors.New("conexão recusada"))

	// Falha de consulta propaga: o caixa recebe 500 e reenvia depois
	err := service.Ingest([]byte(validPayload))
	assert.Error(t, err)
}

func TestIngestErroDePersistenciaNaoPropaga(t *testing.T) {
	service, storeRepo, transactionRepo := newIngestServiceWithMocks(t)

	store := &domain.Store{ID: "S001", Name: "築崎鍋物公館店", Brand: "B"}
	storeRepo.EXPECT().GetByName("築崎鍋物公館店").Return(store, nil)
	transactionRepo.EXPECT().Create(gomock.Any()).Return(errors.New("deadlock"))

	// O payload já está arquivado; o erro é só logado
	err := service.Ingest([]byte(validPayload))
	assert.NoError(t, err)
}

func TestRecentActivity(t *testing.T) {
	service, _, transactionRepo := newIngestServiceWithMocks(t)

	now := time.Now()
	transactions := []*domain.Transaction{
		{ID: 1, StoreID: "S001", Time: &now, Amount: 500},
	}

	transactionRepo.EXPECT().
		ListSince(gomock.Any(), 50).
		Return(transactions, nil)

	report, err := service.RecentActivity(6)
	assert.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, "最近 6 小時", report.TimeRange)
	assert.Equal(t, 1, report.TransactionCount)
	assert.Equal(t, transactions, report.Transactions)
	assert.Equal(t, 0, report.JSONFileCount)
}
