package dummydb

import "github.com/su-ri-ya/littlechampions/core/student"

type studentRepository struct {
	db  *table[student.Student]
	gen func() string
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student, gen: db.newID}
}

func (repo *studentRepository) CreateStudent(s student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	s.ID = repo.db.nextID(repo.gen)
	return repo.db.insert(s), nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.get(id); ok {
		return s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(filter student.QueryFilter) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.filter(filter.Match), nil
}

func (repo *studentRepository) UpdateStudent(id string, us student.UpdateStudent) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if s, ok := repo.db.update(id, us.Apply); ok {
		return s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) DeleteStudentsByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.delete(ids...)
	return nil
}
