package administrating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zuchi/dashboard-api/infrastructure/repository/mocks"
	"github.com/zuchi/dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type adminMocks struct {
	storeRepo       *mocks.MockStoreRepository
	transactionRepo *mocks.MockTransactionRepository
	memberRepo      *mocks.MockMemberRepository
	revenueRepo     *mocks.MockRevenueRepository
}

func newAdminServiceWithMocks(t *testing.T) (AdminService, adminMocks) {
	ctrl := gomock.NewController(t)

	m := adminMocks{
		storeRepo:       mocks.NewMockStoreRepository(ctrl),
		transactionRepo: mocks.NewMockTransactionRepository(ctrl),
		memberRepo:      mocks.NewMockMemberRepository(ctrl),
		revenueRepo:     mocks.NewMockRevenueRepository(ctrl),
	}

	return NewService(m.storeRepo, m.transactionRepo, m.memberRepo, m.revenueRepo), m
}

func TestMembersOverview(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	members := []*domain.Member{
		{PhoneNumber: "0912345678", Name: "王小明", Sex: "M", BirthDay: time.Date(1990, 3, 15, 0, 0, 0, 0, time.Local)},
		{PhoneNumber: "0923456789", Name: "林美玲", Sex: "F", BirthDay: time.Date(1985, 11, 2, 0, 0, 0, 0, time.Local)},
		{PhoneNumber: "0934567890", Name: "張三", Sex: "", BirthDay: time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)},
	}

	m.memberRepo.EXPECT().Count().Return(45, nil)
	m.memberRepo.EXPECT().ListPage(2, 20).Return(members, nil)

	page, err := service.MembersOverview(2, 20)
	assert.NoError(t, err)

	assert.True(t, page.Success)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 45, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages) // ceil(45/20)

	assert.Len(t, page.Members, 3)
	assert.Equal(t, "男", page.Members[0].Sex)
	assert.Equal(t, "女", page.Members[1].Sex)
	assert.Equal(t, "未知", page.Members[2].Sex)
	assert.Equal(t, time.Now().Year()-1990, page.Members[0].Age)
}

func TestMembersOverviewParametrosInvalidosCaemParaPadrao(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	m.memberRepo.EXPECT().Count().Return(0, nil)
	m.memberRepo.EXPECT().ListPage(1, 20).Return([]*domain.Member{}, nil)

	page, err := service.MembersOverview(0, -5)
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.Equal(t, 0, page.TotalPages)
}

func TestRecentTransactions(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	march1 := time.Date(2025, 3, 1, 12, 30, 0, 0, time.Local)
	transactions := []*domain.Transaction{
		{ID: 2, StoreID: "S001", Time: &march1, Amount: 882, NumOfCustomers: 2, NumOfConsumers: 1,
			Items: []*domain.TransactionItem{{Product: "昆布湯底"}}},
		{ID: 1, StoreID: "S999", Amount: 100},
	}

	m.transactionRepo.EXPECT().ListRecent(10, nil, nil, "").Return(transactions, nil)
	m.storeRepo.EXPECT().List().Return([]*domain.Store{
		{ID: "S001", Name: "築崎鍋物公館店"},
	}, nil)

	report, err := service.RecentTransactions(0, nil, nil, "")
	assert.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, 2, report.Count)

	assert.Equal(t, "築崎鍋物公館店", report.Transactions[0].StoreName)
	assert.Equal(t, "2025-03-01 12:30:00", report.Transactions[0].Time)
	assert.Equal(t, 1, report.Transactions[0].ItemCount)

	// Loja fora do cadastro e transação sem horário
	assert.Equal(t, "未知店舖", report.Transactions[1].StoreName)
	assert.Equal(t, "", report.Transactions[1].Time)
}

func TestStatistics(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	m.storeRepo.EXPECT().List().Return([]*domain.Store{{ID: "S001"}, {ID: "S002"}}, nil)
	m.memberRepo.EXPECT().Count().Return(45, nil)
	m.transactionRepo.EXPECT().CountBetween(gomock.Any(), gomock.Any()).Return(12, nil)
	m.transactionRepo.EXPECT().SumAmountBetween(gomock.Any(), gomock.Any()).Return(1234567, nil)

	stats, err := service.Statistics("current")
	assert.NoError(t, err)

	assert.True(t, stats.Success)
	assert.Equal(t, 2, stats.TotalStores)
	assert.Equal(t, 45, stats.TotalMembers)
	assert.Equal(t, 12, stats.TodayTransactions)
	assert.Equal(t, "本月營收", stats.RevenueLabel)
	assert.Equal(t, "1,234,567", stats.Revenue)
}

func TestStatisticsMesAnterior(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	now := time.Now()
	monthBegin := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)

	m.storeRepo.EXPECT().List().Return([]*domain.Store{}, nil)
	m.memberRepo.EXPECT().Count().Return(0, nil)
	m.transactionRepo.EXPECT().CountBetween(gomock.Any(), gomock.Any()).Return(0, nil)
	m.transactionRepo.EXPECT().
		SumAmountBetween(monthBegin.AddDate(0, -1, 0), monthBegin).
		Return(500, nil)

	stats, err := service.Statistics("last")
	assert.NoError(t, err)
	assert.Equal(t, "上月營收", stats.RevenueLabel)
	assert.Equal(t, "500", stats.Revenue)
}

func TestStores(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	m.storeRepo.EXPECT().List().Return([]*domain.Store{
		{ID: "S001", Name: "築崎燒串中山店", Area: "北區", Brand: "A", Spot: "B"},
	}, nil)

	report, err := service.Stores()
	assert.NoError(t, err)

	assert.True(t, report.Success)
	assert.Len(t, report.Stores, 1)
	assert.Equal(t, "築崎燒串", report.Stores[0].BrandName)
	assert.Equal(t, "賣場", report.Stores[0].SpotName)
}

func TestAddStore(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	store := &domain.Store{ID: "S010", Name: "築崎燒串新店", Brand: "A", Spot: "A"}

	m.storeRepo.EXPECT().Exists("S010").Return(false, nil)
	m.storeRepo.EXPECT().Create(gomock.Any(), store).Return(nil)

	result, err := service.AddStore(context.Background(), store)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "新增成功", result.Message)
}

func TestAddStoreCodigoDuplicado(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	m.storeRepo.EXPECT().Exists("S001").Return(true, nil)

	result, err := service.AddStore(context.Background(), &domain.Store{ID: "S001", Name: "Loja"})
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "店舖代碼已存在", result.Message)
}

func TestRevenues(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	m.revenueRepo.EXPECT().ListAll().Return([]*domain.Revenue{
		{ID: 1, StoreID: "S001", Amount: 31000},
		{ID: 2, StoreID: "S999", Amount: 0},
	}, nil)
	m.storeRepo.EXPECT().List().Return([]*domain.Store{
		{ID: "S001", Name: "築崎燒串中山店"},
	}, nil)

	report, err := service.Revenues()
	assert.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, "築崎燒串中山店", report.Revenues[0].StoreName)
	assert.Equal(t, "未知店舖", report.Revenues[1].StoreName)
}

func TestUpdateRevenue(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	m.revenueRepo.EXPECT().GetByID(1).Return(&domain.Revenue{ID: 1, StoreID: "S001"}, nil)
	m.revenueRepo.EXPECT().UpdateAmount(1, 50000).Return(nil)

	result, err := service.UpdateRevenue(1, 50000)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "更新成功", result.Message)
}

func TestUpdateRevenueInexistente(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	m.revenueRepo.EXPECT().GetByID(404).Return(nil, nil)

	result, err := service.UpdateRevenue(404, 50000)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "找不到該營收目標", result.Message)
}

func TestUpdateRevenueErroDeConsulta(t *testing.T) {
	service, m := newAdminServiceWithMocks(t)

	m.revenueRepo.EXPECT().GetByID(1).Return(nil, errors.New("conexão recusada"))

	result, err := service.UpdateRevenue(1, 50000)
	assert.Error(t, err)
	assert.Nil(t, result)
}
