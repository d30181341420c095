package dummydb

import "github.com/su-ri-ya/littlechampions/core/role"

type roleRepository struct {
	db  *table[role.Role]
	gen func() string
}

var _ role.Repository = (*roleRepository)(nil) // interface compliance check

func NewRoleRepository(db *DB) role.Repository {
	return &roleRepository{db: db.role, gen: db.newID}
}

func (repo *roleRepository) CreateRole(r role.Role) (role.Role, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	r.ID = repo.db.nextID(repo.gen)
	return repo.db.insert(r), nil
}

func (repo *roleRepository) QueryAllRoles() ([]role.Role, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *roleRepository) GetRoleByID(id string) (role.Role, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if r, ok := repo.db.get(id); ok {
		return r, nil
	}
	return role.Role{}, role.ErrNotFound
}

func (repo *roleRepository) UpdateRole(id string, ur role.UpdateRole) (role.Role, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if r, ok := repo.db.update(id, ur.Apply); ok {
		return r, nil
	}
	return role.Role{}, role.ErrNotFound
}

func (repo *roleRepository) DeleteRolesByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.delete(ids...)
	return nil
}
