package dummydb

import "github.com/su-ri-ya/littlechampions/core/attendance"

type attendanceRepository struct {
	db  *table[attendance.Record]
	gen func() string
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance, gen: db.newID}
}

func (repo *attendanceRepository) UpsertRecords(records ...attendance.Record) ([]attendance.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	saved := make([]attendance.Record, 0, len(records))
	for _, rec := range records {
		i := repo.indexOf(rec)
		if i < 0 {
			rec.ID = repo.db.nextID(repo.gen)
			saved = append(saved, repo.db.insert(rec))
			continue
		}
		stored := repo.db.rows[i]
		stored.Status = rec.Status
		stored.Remarks = rec.Remarks
		repo.db.rows[i] = stored
		saved = append(saved, stored)
	}
	return saved, nil
}

// indexOf returns the position of the record stored for the same (student, class, date), or -1.
func (repo *attendanceRepository) indexOf(rec attendance.Record) int {
	for i, r := range repo.db.rows {
		if r.SameKey(rec) {
			return i
		}
	}
	return -1
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *attendanceRepository) GetRecordByID(id string) (attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if r, ok := repo.db.get(id); ok {
		return r, nil
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) QueryRecordsByDate(date string) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.filter(func(r attendance.Record) bool { return r.Date == date }), nil
}

func (repo *attendanceRepository) FilterRecords(filter attendance.QueryFilter) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.filter(filter.Match), nil
}

func (repo *attendanceRepository) UpdateRecord(id string, ur attendance.UpdateRecord) (attendance.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if r, ok := repo.db.update(id, ur.Apply); ok {
		return r, nil
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) DeleteRecordsByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.delete(ids...)
	return nil
}
