// Package administrating concentra as operações da retaguarda do painel:
// consulta de membros, transações recentes, estatísticas e cadastro de lojas
// e metas de faturamento
package administrating

import (
	"context"
	"fmt"
	"time"

	"github.com/zuchi/dashboard-api/infrastructure/repository"
	"github.com/zuchi/dashboard-api/internal/domain"
	"github.com/zuchi/dashboard-api/pkg/utils"
)

const (
	defaultPageSize      = 20
	defaultRecentCount   = 10
	unknownStoreName     = "未知店舖"
	currentRevenueLabel  = "本月營收"
	previousRevenueLabel = "上月營收"
)

// MemberView é a projeção de um membro para a listagem da retaguarda, com o
// sexo e a idade já resolvidos para exibição
type MemberView struct {
	PhoneNumber string `json:"phoneNumber"`
	Name        string `json:"name"`
	Sex         string `json:"sex"`
	Age         int    `json:"age"`
}

type MembersPage struct {
	Success    bool          `json:"success"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalCount int           `json:"totalCount"`
	TotalPages int           `json:"totalPages"`
	Members    []*MemberView `json:"members"`
}

type TransactionView struct {
	ID             int    `json:"id"`
	StoreID        string `json:"storeId"`
	StoreName      string `json:"storeName"`
	Time           string `json:"time"`
	NumOfCustomers int    `json:"numOfCustomers"`
	NumOfConsumers int    `json:"numOfConsumers"`
	Amount         int    `json:"amount"`
	ItemCount      int    `json:"itemCount"`
}

type TransactionsReport struct {
	Success      bool               `json:"success"`
	Count        int                `json:"count"`
	Transactions []*TransactionView `json:"transactions"`
}

type Statistics struct {
	Success           bool   `json:"success"`
	TotalStores       int    `json:"totalStores"`
	TotalMembers      int    `json:"totalMembers"`
	TodayTransactions int    `json:"todayTransactions"`
	RevenueLabel      string `json:"revenueLabel"`
	Revenue           string `json:"revenue"`
}

type StoreView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Area      string `json:"area"`
	Brand     string `json:"brand"`
	BrandName string `json:"brandName"`
	Spot      string `json:"spot"`
	SpotName  string `json:"spotName"`
}

type StoresReport struct {
	Success bool         `json:"success"`
	Stores  []*StoreView `json:"stores"`
}

type RevenueView struct {
	ID        int    `json:"id"`
	StoreID   string `json:"storeId"`
	StoreName string `json:"storeName"`
	Amount    int    `json:"amount"`
}

type RevenuesReport struct {
	Success  bool           `json:"success"`
	Revenues []*RevenueView `json:"revenues"`
}

type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AdminService interface {
	MembersOverview(page int, pageSize int) (*MembersPage, error)
	RecentTransactions(count int, year *int, month *int, storeID string) (*TransactionsReport, error)
	Statistics(revenueMonth string) (*Statistics, error)
	Stores() (*StoresReport, error)
	AddStore(ctx context.Context, store *domain.Store) (*MutationResult, error)
	Revenues() (*RevenuesReport, error)
	UpdateRevenue(id int, amount int) (*MutationResult, error)
}

type Service struct {
	storeRepo       repository.StoreRepository
	transactionRepo repository.TransactionRepository
	memberRepo      repository.MemberRepository
	revenueRepo     repository.RevenueRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	transactionRepo repository.TransactionRepository,
	memberRepo repository.MemberRepository,
	revenueRepo repository.RevenueRepository,
) AdminService {
	return &Service{
		storeRepo:       storeRepo,
		transactionRepo: transactionRepo,
		memberRepo:      memberRepo,
		revenueRepo:     revenueRepo,
	}
}

func (s *Service) MembersOverview(page int, pageSize int) (*MembersPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total, err := s.memberRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("erro ao contar membros: %w", err)
	}

	members, err := s.memberRepo.ListPage(page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar membros: %w", err)
	}

	today := utils.Today()
	views := make([]*MemberView, 0, len(members))
	for _, member := range members {
		views = append(views, &MemberView{
			PhoneNumber: member.PhoneNumber,
			Name:        member.Name,
			Sex:         sexLabel(member.Sex),
			Age:         member.Age(today),
		})
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return &MembersPage{
		Success:    true,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
		Members:    views,
	}, nil
}

// sexLabel traduz o código de sexo armazenado para o rótulo do painel
func sexLabel(code string) string {
	switch code {
	case "M":
		return "男"
	case "F":
		return "女"
	default:
		return "未知"
	}
}

func (s *Service) RecentTransactions(count int, year *int, month *int, storeID string) (*TransactionsReport, error) {
	if count < 1 {
		count = defaultRecentCount
	}

	transactions, err := s.transactionRepo.ListRecent(count, year, month, storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar transações recentes: %w", err)
	}

	stores, err := s.storeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}

	namesByID := make(map[string]string, len(stores))
	for _, store := range stores {
		namesByID[store.ID] = store.Name
	}

	views := make([]*TransactionView, 0, len(transactions))
	for _, transaction := range transactions {
		view := &TransactionView{
			ID:             transaction.ID,
			StoreID:        transaction.StoreID,
			StoreName:      unknownStoreName,
			NumOfCustomers: transaction.NumOfCustomers,
			NumOfConsumers: transaction.NumOfConsumers,
			Amount:         transaction.Amount,
			ItemCount:      len(transaction.Items),
		}

		if name, ok := namesByID[transaction.StoreID]; ok {
			view.StoreName = name
		}

		if transaction.Time != nil {
			view.Time = transaction.Time.Format("2006-01-02 15:04:05")
		}

		views = append(views, view)
	}

	return &TransactionsReport{
		Success:      true,
		Count:        len(views),
		Transactions: views,
	}, nil
}

// Statistics resume o estado geral do painel. revenueMonth aceita "current"
// (mês corrente) ou "last" (mês anterior).
func (s *Service) Statistics(revenueMonth string) (*Statistics, error) {
	stores, err := s.storeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}

	totalMembers, err := s.memberRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("erro ao contar membros: %w", err)
	}

	today := utils.Today()
	todayTransactions, err := s.transactionRepo.CountBetween(today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("erro ao contar transações de hoje: %w", err)
	}

	monthBegin := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local)
	label := currentRevenueLabel
	begin, end := monthBegin, monthBegin.AddDate(0, 1, 0)
	if revenueMonth == "last" {
		label = previousRevenueLabel
		begin, end = monthBegin.AddDate(0, -1, 0), monthBegin
	}

	revenue, err := s.transactionRepo.SumAmountBetween(begin, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar faturamento do mês: %w", err)
	}

	return &Statistics{
		Success:           true,
		TotalStores:       len(stores),
		TotalMembers:      totalMembers,
		TodayTransactions: todayTransactions,
		RevenueLabel:      label,
		Revenue:           utils.FormatThousands(revenue),
	}, nil
}

func (s *Service) Stores() (*StoresReport, error) {
	stores, err := s.storeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}

	views := make([]*StoreView, 0, len(stores))
	for _, store := range stores {
		views = append(views, &StoreView{
			ID:        store.ID,
			Name:      store.Name,
			Area:      store.Area,
			Brand:     store.Brand,
			BrandName: domain.BrandName(store.Brand),
			Spot:      store.Spot,
			SpotName:  domain.SpotName(store.Spot),
		})
	}

	return &StoresReport{
		Success: true,
		Stores:  views,
	}, nil
}

// AddStore cadastra a loja junto com a sua meta de faturamento zerada. Um
// código já existente não é erro de servidor: a operação apenas falha no corpo.
func (s *Service) AddStore(ctx context.Context, store *domain.Store) (*MutationResult, error) {
	exists, err := s.storeRepo.Exists(store.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar loja existente: %w", err)
	}

	if exists {
		return &MutationResult{
			Success: false,
			Message: "店舖代碼已存在",
		}, nil
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("erro ao cadastrar loja: %w", err)
	}

	return &MutationResult{
		Success: true,
		Message: "新增成功",
	}, nil
}

func (s *Service) Revenues() (*RevenuesReport, error) {
	revenues, err := s.revenueRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar metas de faturamento: %w", err)
	}

	stores, err := s.storeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}

	namesByID := make(map[string]string, len(stores))
	for _, store := range stores {
		namesByID[store.ID] = store.Name
	}

	views := make([]*RevenueView, 0, len(revenues))
	for _, revenue := range revenues {
		view := &RevenueView{
			ID:        revenue.ID,
			StoreID:   revenue.StoreID,
			StoreName: unknownStoreName,
			Amount:    revenue.Amount,
		}

		if name, ok := namesByID[revenue.StoreID]; ok {
			view.StoreName = name
		}

		views = append(views, view)
	}

	return &RevenuesReport{
		Success:  true,
		Revenues: views,
	}, nil
}

func (s *Service) UpdateRevenue(id int, amount int) (*MutationResult, error) {
	revenue, err := s.revenueRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar meta de faturamento: %w", err)
	}

	if revenue == nil {
		return &MutationResult{
			Success: false,
			Message: "找不到該營收目標",
		}, nil
	}

	if err := s.revenueRepo.UpdateAmount(id, amount); err != nil {
		return nil, fmt.Errorf("erro ao atualizar meta de faturamento: %w", err)
	}

	return &MutationResult{
		Success: true,
		Message: "更新成功",
	}, nil
}
