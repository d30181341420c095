package dummydb

import "github.com/su-ri-ya/littlechampions/core/class"

type classRepository struct {
	db  *table[class.Class]
	gen func() string
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *DB) class.Repository {
	return &classRepository{db: db.class, gen: db.newID}
}

func (repo *classRepository) CreateClass(c class.Class) (class.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	c.ID = repo.db.nextID(repo.gen)
	return repo.db.insert(c), nil
}

func (repo *classRepository) QueryAllClasses() ([]class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *classRepository) GetClassByID(id string) (class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.get(id); ok {
		return c, nil
	}
	return class.Class{}, class.ErrNotFound
}

func (repo *classRepository) FilterClasses(filter class.QueryFilter) ([]class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.filter(filter.Match), nil
}

func (repo *classRepository) UpdateClass(id string, uc class.UpdateClass, check func(class.Class) error) (class.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	c, ok, err := repo.db.modify(id, func(c *class.Class) error {
		uc.Apply(c)
		if check != nil {
			return check(*c)
		}
		return nil
	})
	if !ok {
		return class.Class{}, class.ErrNotFound
	}
	return c, err
}

func (repo *classRepository) DeleteClassesByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.delete(ids...)
	return nil
}
