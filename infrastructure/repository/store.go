// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/zuchi/dashboard-api/infrastructure/database/postgres"
	"github.com/zuchi/dashboard-api/internal/domain"
)

const (
	storesTable = "stores s"
)

type StoreRepository interface {
	List() ([]*domain.Store, error)
	GetByName(name string) (*domain.Store, error)
	Exists(id string) (bool, error)
	Create(ctx context.Context, store *domain.Store) error
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

// List retorna todas as lojas ordenadas pelo código
func (r *storeRepository) List() ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select("s.id", "s.name", "s.area", "s.brand", "s.spot").
		From(storesTable).
		OrderBy("s.id ASC").
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

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(&store.ID, &store.Name, &store.Area, &store.Brand, &store.Spot); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

// GetByName busca uma loja pelo nome de exibição; retorna nil quando não existe.
// O PDV identifica a loja apenas pelo nome, por isso a busca não usa o código.
func (r *storeRepository) GetByName(name string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select("s.id", "s.name", "s.area", "s.brand", "s.spot").
		From(storesTable).
		Where(squirrel.Eq{"s.name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store := &domain.Store{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&store.ID, &store.Name, &store.Area, &store.Brand, &store.Spot); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return store, nil
}

func (r *storeRepository) Exists(id string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(storesTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao verificar existência da loja: %w", err)
	}

	return count > 0, nil
}

// Create insere a loja junto com uma meta de faturamento zerada, na mesma
// transação — toda loja precisa aparecer no relatório de metas desde o início
func (r *storeRepository) Create(ctx context.Context, store *domain.Store) error {
	storeQuery, storeArgs, err := squirrel.StatementBuilder.
		Insert("stores").
		Columns("id", "name", "area", "brand", "spot").
		Values(store.ID, store.Name, store.Area, store.Brand, store.Spot).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	revenueQuery, revenueArgs, err := squirrel.StatementBuilder.
		Insert("revenues").
		Columns("store_id", "amount").
		Values(store.ID, 0).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção da meta: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec(storeQuery, storeArgs...); err != nil {
			return fmt.Errorf("erro ao inserir loja: %w", err)
		}
		if _, err := tx.Exec(revenueQuery, revenueArgs...); err != nil {
			return fmt.Errorf("erro ao inserir meta inicial: %w", err)
		}
		return nil
	})
}
