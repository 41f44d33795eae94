package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/zuchi/dashboard-api/infrastructure/database/postgres"
	"github.com/zuchi/dashboard-api/internal/domain"
)

const (
	revenuesTable = "revenues r"
)

type RevenueRepository interface {
	ListAll() ([]*domain.Revenue, error)
	GetByID(id int) (*domain.Revenue, error)
	UpdateAmount(id int, amount int) error
}

type revenueRepository struct {
	conn *postgres.Connection
}

func NewRevenueRepository(conn *postgres.Connection) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

// ListAll retorna todas as metas de faturamento ordenadas pela loja.
// Não há recorte por data no armazenamento: o rateio pelo período consultado
// é responsabilidade do motor de relatórios.
func (r *revenueRepository) ListAll() ([]*domain.Revenue, error) {
	query, args, err := squirrel.
		Select("r.id", "r.store_id", "r.amount").
		From(revenuesTable).
		OrderBy("r.store_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	revenues := make([]*domain.Revenue, 0)
	for rows.Next() {
		revenue := &domain.Revenue{}
		if err := rows.Scan(&revenue.ID, &revenue.StoreID, &revenue.Amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		revenues = append(revenues, revenue)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return revenues, nil
}

func (r *revenueRepository) GetByID(id int) (*domain.Revenue, error) {
	query, args, err := squirrel.
		Select("r.id", "r.store_id", "r.amount").
		From(revenuesTable).
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	revenue := &domain.Revenue{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&revenue.ID, &revenue.StoreID, &revenue.Amount); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return revenue, nil
}

func (r *revenueRepository) UpdateAmount(id int, amount int) error {
	query, args, err := squirrel.StatementBuilder.
		Update("revenues").
		Set("amount", amount).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar meta: %w", err)
	}

	return nil
}
