package dummydb

import "github.com/su-ri-ya/littlechampions/core/teacher"

type teacherRepository struct {
	db  *table[teacher.Teacher]
	gen func() string
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teacher, gen: db.newID}
}

func (repo *teacherRepository) CreateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	t.ID = repo.db.nextID(repo.gen)
	return repo.db.insert(t), nil
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *teacherRepository) GetTeacherByID(id string) (teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if t, ok := repo.db.get(id); ok {
		return t, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) FilterTeachers(filter teacher.QueryFilter) ([]teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.filter(filter.Match), nil
}

func (repo *teacherRepository) UpdateTeacher(id string, ut teacher.UpdateTeacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if t, ok := repo.db.update(id, ut.Apply); ok {
		return t, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) DeleteTeachersByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.delete(ids...)
	return nil
}
