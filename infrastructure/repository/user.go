package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/plan-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
)

const usersTable = "users"

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func userSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"u.id", "u.name", "u.lastname", "u.email", "u.password_hash", "u.active", "u.role_id",
			"COALESCE(ARRAY_AGG(gm.group_id) FILTER (WHERE gm.group_id IS NOT NULL), '{}')",
			"u.created_at", "u.updated_at",
		).
		From(usersTable + " u").
		LeftJoin(groupMembersTable + " gm ON gm.user_id = u.id").
		Where(squirrel.Eq{"u.deleted": false}).
		GroupBy("u.id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("name", "lastname", "email", "password_hash", "active", "role_id").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.RoleID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"u.email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"u.id": userID})
}

func (r *userRepository) getUser(ctx context.Context, filter squirrel.Eq) (*domain.User, error) {
	query, args, err := userSelect().Where(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		user     domain.User
		groupIDs pq.Int64Array
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&groupIDs,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	user.GroupIDs = make([]int, 0, len(groupIDs))
	for _, id := range groupIDs {
		user.GroupIDs = append(user.GroupIDs, int(id))
	}

	return &user, nil
}
