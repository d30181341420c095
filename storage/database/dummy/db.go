package dummydb

import (
	"sync"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/fee"
	"github.com/su-ri-ya/littlechampions/core/leave"
	"github.com/su-ri-ya/littlechampions/core/report"
	"github.com/su-ri-ya/littlechampions/core/role"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/core/teacher"
)

type (
	// DB is the in-memory store: one table per collection, each guarded by its own lock.
	// Tables are always locked in declaration order.
	DB struct {
		newID core.IDGenerator
		seed  bool

		student      *table[student.Student]
		teacher      *table[teacher.Teacher]
		class        *table[class.Class]
		attendance   *table[attendance.Record]
		feeStructure *table[fee.Structure]
		feePayment   *table[fee.Payment]
		role         *table[role.Role]
		leaveRequest *table[leave.Request]
	}

	Option func(*DB)

	// table keeps its rows in insertion order.
	table[T any] struct {
		sync.RWMutex
		rows   []T
		issued map[string]struct{} // every id ever stored, so that none is reused
		idOf   func(T) string
		clone  func(T) T
	}
)

var _ report.Snapshotter = (*DB)(nil) // interface compliance check

// WithIDGenerator replaces the default UUIDv4 id generator.
func WithIDGenerator(gen core.IDGenerator) Option {
	return func(db *DB) { db.newID = gen }
}

// WithSeed loads the sample school data.
func WithSeed() Option {
	return func(db *DB) { db.seed = true }
}

func Open(opts ...Option) (*DB, error) {
	db := &DB{
		newID:        core.NewUUID,
		student:      newTable(func(s student.Student) string { return s.ID }, nil),
		teacher:      newTable(func(t teacher.Teacher) string { return t.ID }, nil),
		class:        newTable(func(c class.Class) string { return c.ID }, class.Class.Copy),
		attendance:   newTable(func(r attendance.Record) string { return r.ID }, nil),
		feeStructure: newTable(func(s fee.Structure) string { return s.ID }, nil),
		feePayment:   newTable(func(p fee.Payment) string { return p.ID }, nil),
		role:         newTable(func(r role.Role) string { return r.ID }, role.Role.Copy),
		leaveRequest: newTable(func(r leave.Request) string { return r.ID }, nil),
	}
	for _, opt := range opts {
		opt(db)
	}
	if db.seed {
		seed(db)
	}
	return db, nil
}

// Snapshot copies every collection while holding all the read locks.
func (db *DB) Snapshot() report.Snapshot {
	db.student.RLock()
	defer db.student.RUnlock()
	db.teacher.RLock()
	defer db.teacher.RUnlock()
	db.class.RLock()
	defer db.class.RUnlock()
	db.attendance.RLock()
	defer db.attendance.RUnlock()
	db.feeStructure.RLock()
	defer db.feeStructure.RUnlock()
	db.feePayment.RLock()
	defer db.feePayment.RUnlock()
	db.role.RLock()
	defer db.role.RUnlock()
	db.leaveRequest.RLock()
	defer db.leaveRequest.RUnlock()

	return report.Snapshot{
		Students:      db.student.all(),
		Teachers:      db.teacher.all(),
		Classes:       db.class.all(),
		Attendance:    db.attendance.all(),
		FeeStructures: db.feeStructure.all(),
		FeePayments:   db.feePayment.all(),
		Roles:         db.role.all(),
		LeaveRequests: db.leaveRequest.all(),
	}
}

func newTable[T any](idOf func(T) string, clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{issued: make(map[string]struct{}), idOf: idOf, clone: clone}
}

// The helpers below expect the caller to hold the table lock.

// all returns a copy of the rows.
func (t *table[T]) all() []T {
	rows := make([]T, 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, t.clone(r))
	}
	return rows
}

func (t *table[T]) filter(match func(T) bool) []T {
	rows := make([]T, 0)
	for _, r := range t.rows {
		if match(r) {
			rows = append(rows, t.clone(r))
		}
	}
	return rows
}

func (t *table[T]) index(id string) int {
	for i, r := range t.rows {
		if t.idOf(r) == id {
			return i
		}
	}
	return -1
}

func (t *table[T]) get(id string) (T, bool) {
	if i := t.index(id); i >= 0 {
		return t.clone(t.rows[i]), true
	}
	var zero T
	return zero, false
}

// nextID draws ids until one was never issued by this table.
func (t *table[T]) nextID(gen core.IDGenerator) string {
	for {
		id := gen()
		if _, ok := t.issued[id]; !ok {
			return id
		}
	}
}

func (t *table[T]) insert(row T) T {
	row = t.clone(row)
	t.issued[t.idOf(row)] = struct{}{}
	t.rows = append(t.rows, row)
	return t.clone(row)
}

// update applies fn to the stored row with id.
func (t *table[T]) update(id string, fn func(*T)) (T, bool) {
	row, ok, _ := t.modify(id, func(r *T) error {
		fn(r)
		return nil
	})
	return row, ok
}

// modify applies fn to a copy of the stored row with id and stores the result,
// unless fn fails. The bool reports whether the row exists.
func (t *table[T]) modify(id string, fn func(*T) error) (T, bool, error) {
	var zero T
	i := t.index(id)
	if i < 0 {
		return zero, false, nil
	}
	row := t.clone(t.rows[i])
	if err := fn(&row); err != nil {
		return zero, true, err
	}
	t.rows[i] = row
	return t.clone(row), true, nil
}

// delete removes the rows with ids, ignoring the unknown ones.
func (t *table[T]) delete(ids ...string) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := t.rows[:0]
	for _, r := range t.rows {
		if _, ok := drop[t.idOf(r)]; !ok {
			kept = append(kept, r)
		}
	}
	var zero T
	for i := len(kept); i < len(t.rows); i++ {
		t.rows[i] = zero
	}
	t.rows = kept
}
