package dummydb

import "github.com/su-ri-ya/littlechampions/core/fee"

type feeRepository struct {
	structures *table[fee.Structure]
	payments   *table[fee.Payment]
	gen        func() string
}

var _ fee.Repository = (*feeRepository)(nil) // interface compliance check

func NewFeeRepository(db *DB) fee.Repository {
	return &feeRepository{structures: db.feeStructure, payments: db.feePayment, gen: db.newID}
}

// Structures

func (repo *feeRepository) CreateStructure(s fee.Structure) (fee.Structure, error) {
	repo.structures.Lock()
	defer repo.structures.Unlock()

	s.ID = repo.structures.nextID(repo.gen)
	return repo.structures.insert(s), nil
}

func (repo *feeRepository) QueryAllStructures() ([]fee.Structure, error) {
	repo.structures.RLock()
	defer repo.structures.RUnlock()
	return repo.structures.all(), nil
}

func (repo *feeRepository) GetStructureByID(id string) (fee.Structure, error) {
	repo.structures.RLock()
	defer repo.structures.RUnlock()

	if s, ok := repo.structures.get(id); ok {
		return s, nil
	}
	return fee.Structure{}, fee.ErrStructureNotFound
}

func (repo *feeRepository) FilterStructures(filter fee.StructureFilter) ([]fee.Structure, error) {
	repo.structures.RLock()
	defer repo.structures.RUnlock()
	return repo.structures.filter(filter.Match), nil
}

func (repo *feeRepository) UpdateStructure(id string, us fee.UpdateStructure) (fee.Structure, error) {
	repo.structures.Lock()
	defer repo.structures.Unlock()

	if s, ok := repo.structures.update(id, us.Apply); ok {
		return s, nil
	}
	return fee.Structure{}, fee.ErrStructureNotFound
}

func (repo *feeRepository) DeleteStructuresByID(ids ...string) error {
	repo.structures.Lock()
	defer repo.structures.Unlock()
	repo.structures.delete(ids...)
	return nil
}

// Payments

func (repo *feeRepository) CreatePayment(p fee.Payment) (fee.Payment, error) {
	repo.payments.Lock()
	defer repo.payments.Unlock()

	p.ID = repo.payments.nextID(repo.gen)
	return repo.payments.insert(p), nil
}

func (repo *feeRepository) QueryAllPayments() ([]fee.Payment, error) {
	repo.payments.RLock()
	defer repo.payments.RUnlock()
	return repo.payments.all(), nil
}

func (repo *feeRepository) GetPaymentByID(id string) (fee.Payment, error) {
	repo.payments.RLock()
	defer repo.payments.RUnlock()

	if p, ok := repo.payments.get(id); ok {
		return p, nil
	}
	return fee.Payment{}, fee.ErrPaymentNotFound
}

func (repo *feeRepository) FilterPayments(filter fee.PaymentFilter) ([]fee.Payment, error) {
	repo.payments.RLock()
	defer repo.payments.RUnlock()
	return repo.payments.filter(filter.Match), nil
}

func (repo *feeRepository) UpdatePayment(id string, up fee.UpdatePayment, derive func(*fee.Payment, fee.Structure)) (fee.Payment, error) {
	if derive != nil {
		repo.structures.RLock()
		defer repo.structures.RUnlock()
	}
	repo.payments.Lock()
	defer repo.payments.Unlock()

	p, ok, err := repo.payments.modify(id, func(p *fee.Payment) error {
		up.Apply(p)
		if derive == nil {
			return nil
		}
		struc, found := repo.structures.get(p.FeeStructureID)
		if !found {
			return fee.ErrStructureNotFound
		}
		derive(p, struc)
		return nil
	})
	if !ok {
		return fee.Payment{}, fee.ErrPaymentNotFound
	}
	return p, err
}

func (repo *feeRepository) DeletePaymentsByID(ids ...string) error {
	repo.payments.Lock()
	defer repo.payments.Unlock()
	repo.payments.delete(ids...)
	return nil
}

func (repo *feeRepository) MarkPaymentsOverdue(today string) (int, error) {
	repo.payments.Lock()
	defer repo.payments.Unlock()

	var n int
	for i, p := range repo.payments.rows {
		if p.IsOverdue(today) {
			repo.payments.rows[i].Status = fee.StatusOverdue
			n++
		}
	}
	return n, nil
}
