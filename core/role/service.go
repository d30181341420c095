package role

import (
	"errors"

	"github.com/su-ri-ya/littlechampions/core"
)

var (
	// errors
	ErrNotFound = errors.New("role not found")
)

type (
	Repository interface {
		CreateRole(r Role) (Role, error)
		QueryAllRoles() ([]Role, error)
		GetRoleByID(id string) (Role, error)
		UpdateRole(id string, ur UpdateRole) (Role, error)
		DeleteRolesByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nr NewRole) (Role, error) {
	if err := nr.Validate(); err != nil {
		return Role{}, err
	}
	return svc.repo.CreateRole(Role{
		Name:        nr.Name,
		Description: nr.Description,
		Permissions: nr.Permissions,
	})
}

func (svc *Service) QueryAll() ([]Role, error) {
	return svc.repo.QueryAllRoles()
}

func (svc *Service) GetByID(id string) (Role, error) {
	return svc.repo.GetRoleByID(core.CleanString(id))
}

// HasPermission reports whether the role exists and was granted perm.
func (svc *Service) HasPermission(roleID, perm string) (bool, error) {
	r, err := svc.repo.GetRoleByID(roleID)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return r.Has(perm), nil
}

func (svc *Service) Update(id string, ur UpdateRole) (Role, error) {
	if err := ur.Validate(); err != nil {
		return Role{}, err
	}
	return svc.repo.UpdateRole(id, ur)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteRolesByID(ids...)
}
