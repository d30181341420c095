package dummydb

import "github.com/su-ri-ya/littlechampions/core/leave"

type leaveRepository struct {
	db  *table[leave.Request]
	gen func() string
}

var _ leave.Repository = (*leaveRepository)(nil) // interface compliance check

func NewLeaveRepository(db *DB) leave.Repository {
	return &leaveRepository{db: db.leaveRequest, gen: db.newID}
}

func (repo *leaveRepository) CreateRequest(r leave.Request) (leave.Request, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	r.ID = repo.db.nextID(repo.gen)
	return repo.db.insert(r), nil
}

func (repo *leaveRepository) QueryAllRequests() ([]leave.Request, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *leaveRepository) GetRequestByID(id string) (leave.Request, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if r, ok := repo.db.get(id); ok {
		return r, nil
	}
	return leave.Request{}, leave.ErrNotFound
}

func (repo *leaveRepository) FilterRequests(filter leave.QueryFilter) ([]leave.Request, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.filter(filter.Match), nil
}

func (repo *leaveRepository) SetRequestStatus(id, status string) (leave.Request, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	r, ok := repo.db.get(id)
	if !ok {
		return leave.Request{}, leave.ErrNotFound
	}
	if r.Status != leave.StatusPending {
		return leave.Request{}, leave.ErrNotPending
	}
	r, _ = repo.db.update(id, func(r *leave.Request) { r.Status = status })
	return r, nil
}

func (repo *leaveRepository) DeleteRequestsByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.delete(ids...)
	return nil
}
