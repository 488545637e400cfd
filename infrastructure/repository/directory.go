package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

// OwnerDirectory resolve grupos em membros e donos em nomes de exibição
type OwnerDirectory struct {
	users  UserRepository
	groups GroupRepository
}

func NewOwnerDirectory(users UserRepository, groups GroupRepository) *OwnerDirectory {
	return &OwnerDirectory{
		users:  users,
		groups: groups,
	}
}

func (d *OwnerDirectory) GetGroupMembers(ctx context.Context, groupID int) ([]int, error) {
	group, err := d.groups.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.NewTrackingError(domain.ErrNotFound, apiErrors.ErrGroupNotFound, fmt.Sprintf("grupo %d", groupID))
	}
	return group.MemberIDs, nil
}

// GetDisplayName retorna string vazia quando o usuário não existe mais
func (d *OwnerDirectory) GetDisplayName(ctx context.Context, ownerID int) (string, error) {
	user, err := d.users.GetUserByID(ctx, ownerID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.DisplayName(), nil
}
