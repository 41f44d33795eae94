package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/zuchi/dashboard-api/infrastructure/database/postgres"
	"github.com/zuchi/dashboard-api/internal/domain"
)

const (
	membersTable = "members m"
)

type MemberRepository interface {
	Count() (int, error)
	ListPage(page int, pageSize int) ([]*domain.Member, error)
	ListAll() ([]*domain.Member, error)
}

type memberRepository struct {
	conn *postgres.Connection
}

func NewMemberRepository(conn *postgres.Connection) MemberRepository {
	return &memberRepository{
		conn: conn,
	}
}

func (r *memberRepository) Count() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(membersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar membros: %w", err)
	}

	return count, nil
}

// ListPage retorna uma página de membros ordenada pelo telefone decrescente
// (tabela não tem data de cadastro; o telefone é a melhor aproximação de ordem
// de entrada que o painel sempre usou)
func (r *memberRepository) ListPage(page int, pageSize int) ([]*domain.Member, error) {
	if page < 1 {
		page = 1
	}

	query, args, err := squirrel.
		Select("m.phone_number", "m.name", "m.sex", "m.birth_day").
		From(membersTable).
		OrderBy("m.phone_number DESC").
		Offset(uint64((page - 1) * pageSize)).
		Limit(uint64(pageSize)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMembers(query, args)
}

// ListAll retorna a tabela inteira de membros. O histograma demográfico do
// painel sempre varre todos os membros, sem recorte pelo período consultado.
func (r *memberRepository) ListAll() ([]*domain.Member, error) {
	query, args, err := squirrel.
		Select("m.phone_number", "m.name", "m.sex", "m.birth_day").
		From(membersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMembers(query, args)
}

func (r *memberRepository) queryMembers(query string, args []interface{}) ([]*domain.Member, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		member := &domain.Member{}
		if err := rows.Scan(&member.PhoneNumber, &member.Name, &member.Sex, &member.BirthDay); err != nil {
			return nil, fmt.Errorf("erro ao escanear membro: %w", err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return members, nil
}
