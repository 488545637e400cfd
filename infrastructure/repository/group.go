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
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

const (
	groupsTable       = "groups"
	groupMembersTable = "group_members"

	foreignKeyViolation = "23503"
)

//go:generate mockgen -source=group.go -destination=mocks/mock_group.go -package=mocks

type GroupRepository interface {
	CreateGroup(ctx context.Context, name string) (*domain.Group, error)
	GetGroup(ctx context.Context, groupID int) (*domain.Group, error)
	AddMember(ctx context.Context, groupID, userID int) error
	RemoveMember(ctx context.Context, groupID, userID int) error
}

type groupRepository struct {
	conn postgres.Queryer
}

func NewGroupRepository(conn postgres.Queryer) GroupRepository {
	return &groupRepository{
		conn: conn,
	}
}

func (r *groupRepository) CreateGroup(ctx context.Context, name string) (*domain.Group, error) {
	query, args, err := squirrel.
		Insert(groupsTable).
		Columns("name").
		Values(name).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	group := &domain.Group{Name: name, MemberIDs: []int{}}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&group.ID, &group.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar grupo: %w", err)
	}

	return group, nil
}

// GetGroup retorna o grupo com os membros na ordem em que foram adicionados
func (r *groupRepository) GetGroup(ctx context.Context, groupID int) (*domain.Group, error) {
	query, args, err := squirrel.
		Select(
			"g.id", "g.name", "g.created_at",
			"COALESCE(ARRAY_AGG(gm.user_id ORDER BY gm.created_at, gm.user_id) FILTER (WHERE gm.user_id IS NOT NULL), '{}')",
		).
		From(groupsTable + " g").
		LeftJoin(groupMembersTable + " gm ON gm.group_id = g.id").
		Where(squirrel.Eq{"g.id": groupID}).
		GroupBy("g.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		group     domain.Group
		memberIDs pq.Int64Array
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&group.ID, &group.Name, &group.CreatedAt, &memberIDs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar grupo %d: %w", groupID, err)
	}

	group.MemberIDs = make([]int, 0, len(memberIDs))
	for _, id := range memberIDs {
		group.MemberIDs = append(group.MemberIDs, int(id))
	}

	return &group, nil
}

func (r *groupRepository) AddMember(ctx context.Context, groupID, userID int) error {
	query, args, err := squirrel.
		Insert(groupMembersTable).
		Columns("group_id", "user_id").
		Values(groupID, userID).
		Suffix("ON CONFLICT (group_id, user_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return domain.NewTrackingError(domain.ErrNotFound, apiErrors.ErrGroupNotFound, fmt.Sprintf("grupo %d ou usuário %d inexistente", groupID, userID))
		}
		return fmt.Errorf("erro ao vincular membro: %w", err)
	}

	return nil
}

func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID int) error {
	query, args, err := squirrel.
		Delete(groupMembersTable).
		Where(squirrel.Eq{"group_id": groupID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao desvincular membro: %w", err)
	}

	return nil
}
