package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/zuchi/dashboard-api/infrastructure/database/postgres"
	"github.com/zuchi/dashboard-api/internal/domain"
)

const (
	transactionsTable     = "transactions t"
	transactionItemsTable = "transaction_items ti"
)

type TransactionRepository interface {
	// ListByRange retorna as transações com time em [begin, endExclusive),
	// com os itens já carregados
	ListByRange(begin time.Time, endExclusive time.Time) ([]*domain.Transaction, error)
	ListRecent(limit int, year *int, month *int, storeID string) ([]*domain.Transaction, error)
	ListSince(cutoff time.Time, limit int) ([]*domain.Transaction, error)
	CountBetween(begin time.Time, endExclusive time.Time) (int, error)
	SumAmountBetween(begin time.Time, endExclusive time.Time) (int, error)
	Create(transaction *domain.Transaction) error
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) ListByRange(begin time.Time, endExclusive time.Time) ([]*domain.Transaction, error) {
	query, args, err := transactionSelect().
		Where(squirrel.GtOrEq{"t.time": begin}).
		Where(squirrel.Lt{"t.time": endExclusive}).
		OrderBy("t.time ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	transactions, err := r.queryTransactions(query, args)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

// ListRecent retorna as transações mais recentes. Quando um ano/mês ou uma
// loja é informada o limite de linhas é removido, como o painel espera.
func (r *transactionRepository) ListRecent(limit int, year *int, month *int, storeID string) ([]*domain.Transaction, error) {
	builder := transactionSelect().
		Where("t.time IS NOT NULL").
		OrderBy("t.time DESC")

	filtered := false

	if year != nil && month != nil {
		begin := time.Date(*year, time.Month(*month), 1, 0, 0, 0, 0, time.Local)
		builder = builder.
			Where(squirrel.GtOrEq{"t.time": begin}).
			Where(squirrel.Lt{"t.time": begin.AddDate(0, 1, 0)})
		filtered = true
	}

	if storeID != "" {
		builder = builder.Where(squirrel.Eq{"t.store_id": storeID})
		filtered = true
	}

	if !filtered {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryTransactions(query, args)
}

func (r *transactionRepository) ListSince(cutoff time.Time, limit int) ([]*domain.Transaction, error) {
	query, args, err := transactionSelect().
		Where(squirrel.GtOrEq{"t.time": cutoff}).
		OrderBy("t.time DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryTransactions(query, args)
}

func (r *transactionRepository) CountBetween(begin time.Time, endExclusive time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(transactionsTable).
		Where(squirrel.GtOrEq{"t.time": begin}).
		Where(squirrel.Lt{"t.time": endExclusive}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}

	return count, nil
}

func (r *transactionRepository) SumAmountBetween(begin time.Time, endExclusive time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(t.amount), 0)").
		From(transactionsTable).
		Where(squirrel.GtOrEq{"t.time": begin}).
		Where(squirrel.Lt{"t.time": endExclusive}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var sum int
	if err := r.conn.QueryRow(query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("erro ao somar faturamento: %w", err)
	}

	return sum, nil
}

// Create insere a transação e em seguida os itens. As duas escritas não são
// envolvidas em transação: uma queda entre elas deixa a transação sem itens,
// limitação herdada do fluxo de ingestão original.
func (r *transactionRepository) Create(transaction *domain.Transaction) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("transactions").
		Columns("store_id", "time", "num_of_customers", "num_of_consumers", "amount").
		Values(
			transaction.StoreID,
			transaction.Time,
			transaction.NumOfCustomers,
			transaction.NumOfConsumers,
			transaction.Amount,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&transaction.ID); err != nil {
		return fmt.Errorf("erro ao inserir transação: %w", err)
	}

	if len(transaction.Items) == 0 {
		return nil
	}

	itemsBuilder := squirrel.StatementBuilder.
		Insert("transaction_items").
		Columns("master_id", "store_id", "time", "product_class", "product", "qty").
		PlaceholderFormat(squirrel.Dollar)

	for _, item := range transaction.Items {
		item.MasterID = transaction.ID
		itemsBuilder = itemsBuilder.Values(
			item.MasterID,
			item.StoreID,
			item.Time,
			item.ProductClass,
			item.Product,
			item.Qty,
		)
	}

	itemsQuery, itemsArgs, err := itemsBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção dos itens: %w", err)
	}

	if _, err := r.conn.Exec(itemsQuery, itemsArgs...); err != nil {
		return fmt.Errorf("erro ao inserir itens da transação: %w", err)
	}

	return nil
}

func transactionSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"t.id",
			"t.store_id",
			"t.time",
			"t.num_of_customers",
			"t.num_of_consumers",
			"t.amount",
		).
		From(transactionsTable)
}

func (r *transactionRepository) queryTransactions(query string, args []interface{}) ([]*domain.Transaction, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

// loadItems carrega os itens de todas as transações em uma única query
func (r *transactionRepository) loadItems(transactions []*domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	byID := make(map[int]*domain.Transaction, len(transactions))
	ids := make([]int, 0, len(transactions))
	for _, transaction := range transactions {
		byID[transaction.ID] = transaction
		ids = append(ids, transaction.ID)
	}

	query, args, err := squirrel.
		Select(
			"ti.id",
			"ti.master_id",
			"COALESCE(ti.store_id, '')",
			"ti.time",
			"COALESCE(ti.product_class, '')",
			"COALESCE(ti.product, '')",
			"ti.qty",
		).
		From(transactionItemsTable).
		Where("ti.master_id = ANY(?)", pq.Array(ids)).
		OrderBy("ti.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query dos itens: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query dos itens: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item := &domain.TransactionItem{}
		var itemTime sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.MasterID,
			&item.StoreID,
			&itemTime,
			&item.ProductClass,
			&item.Product,
			&item.Qty,
		)
		if err != nil {
			return fmt.Errorf("erro ao escanear item: %w", err)
		}

		if itemTime.Valid {
			item.Time = &itemTime.Time
		}

		if master, ok := byID[item.MasterID]; ok {
			master.Items = append(master.Items, item)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de linhas dos itens: %w", err)
	}

	return nil
}

func scanTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}
	var transactionTime sql.NullTime

	err := rows.Scan(
		&transaction.ID,
		&transaction.StoreID,
		&transactionTime,
		&transaction.NumOfCustomers,
		&transaction.NumOfConsumers,
		&transaction.Amount,
	)
	if err != nil {
		return nil, err
	}

	if transactionTime.Valid {
		transaction.Time = &transactionTime.Time
	}

	return transaction, nil
}
