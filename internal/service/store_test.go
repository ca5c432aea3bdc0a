package service

import (
	"context"
	"sort"

	"github.com/umalmyha/customerlib/internal/model"
)

type memTxKey struct{}

// memStore is in-memory storage with transactions restoring snapshot on failure
type memStore struct {
	seq       int
	customers map[int]model.Customer
	addresses map[int]model.Address
	notes     map[int]model.Note

	failAddressCreate error
	failNoteDelete    error
}

func newMemStore() *memStore {
	return &memStore{
		customers: make(map[int]model.Customer),
		addresses: make(map[int]model.Address),
		notes:     make(map[int]model.Note),
	}
}

func (s *memStore) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return txFunc(ctx)
	}

	seq := s.seq
	customers := copyMap(s.customers)
	addresses := copyMap(s.addresses)
	notes := copyMap(s.notes)

	if err := txFunc(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		s.seq, s.customers, s.addresses, s.notes = seq, customers, addresses, notes
		return err
	}
	return nil
}

func (s *memStore) nextID() int {
	s.seq++
	return s.seq
}

func copyMap[T any](m map[int]T) map[int]T {
	cp := make(map[int]T, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

type memCustomers struct{ s *memStore }

func (r memCustomers) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.s.customers[id]
	return ok, nil
}

func (r memCustomers) Create(_ context.Context, c *model.Customer) (int, error) {
	row := *c
	row.ID = r.s.nextID()
	row.Addresses, row.Notes = nil, nil
	r.s.customers[row.ID] = row
	return row.ID, nil
}

func (r memCustomers) Read(_ context.Context, id int) (*model.Customer, error) {
	row, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r memCustomers) ReadAll(ctx context.Context) ([]*model.Customer, error) {
	return r.ReadPage(ctx, 1, len(r.s.customers)+1)
}

func (r memCustomers) Count(_ context.Context) (int, error) {
	return len(r.s.customers), nil
}

func (r memCustomers) ReadPage(_ context.Context, page int, pageSize int) ([]*model.Customer, error) {
	customers := make([]*model.Customer, 0)
	ids := sortedIDs(r.s.customers)
	for i := (page - 1) * pageSize; i < len(ids) && i < page*pageSize; i++ {
		row := r.s.customers[ids[i]]
		customers = append(customers, &row)
	}
	return customers, nil
}

func (r memCustomers) Update(_ context.Context, c *model.Customer) error {
	row := *c
	row.Addresses, row.Notes = nil, nil
	r.s.customers[row.ID] = row
	return nil
}

func (r memCustomers) Delete(_ context.Context, id int) error {
	delete(r.s.customers, id)
	return nil
}

func (r memCustomers) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	taken, _, err := r.IsEmailTakenWithCustomerID(ctx, email)
	return taken, err
}

func (r memCustomers) IsEmailTakenWithCustomerID(_ context.Context, email string) (bool, int, error) {
	for id, c := range r.s.customers {
		if c.Email != nil && *c.Email == email {
			return true, id, nil
		}
	}
	return false, 0, nil
}

type memAddresses struct{ s *memStore }

func (r memAddresses) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.s.addresses[id]
	return ok, nil
}

func (r memAddresses) Create(_ context.Context, a *model.Address) (int, error) {
	if r.s.failAddressCreate != nil {
		return 0, r.s.failAddressCreate
	}

	row := *a
	row.ID = r.s.nextID()
	r.s.addresses[row.ID] = row
	return row.ID, nil
}

func (r memAddresses) Read(_ context.Context, id int) (*model.Address, error) {
	row, ok := r.s.addresses[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r memAddresses) ReadByCustomer(_ context.Context, customerID int) ([]*model.Address, error) {
	addresses := make([]*model.Address, 0)
	for _, id := range sortedIDs(r.s.addresses) {
		if row := r.s.addresses[id]; row.CustomerID == customerID {
			addresses = append(addresses, &row)
		}
	}
	return addresses, nil
}

func (r memAddresses) Update(_ context.Context, a *model.Address) error {
	r.s.addresses[a.ID] = *a
	return nil
}

func (r memAddresses) Delete(_ context.Context, id int) error {
	delete(r.s.addresses, id)
	return nil
}

func (r memAddresses) DeleteByCustomer(_ context.Context, customerID int) error {
	for id, row := range r.s.addresses {
		if row.CustomerID == customerID {
			delete(r.s.addresses, id)
		}
	}
	return nil
}

type memNotes struct{ s *memStore }

func (r memNotes) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.s.notes[id]
	return ok, nil
}

func (r memNotes) Create(_ context.Context, n *model.Note) (int, error) {
	row := *n
	row.ID = r.s.nextID()
	r.s.notes[row.ID] = row
	return row.ID, nil
}

func (r memNotes) Read(_ context.Context, id int) (*model.Note, error) {
	row, ok := r.s.notes[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r memNotes) ReadByCustomer(_ context.Context, customerID int) ([]*model.Note, error) {
	notes := make([]*model.Note, 0)
	for _, id := range sortedIDs(r.s.notes) {
		if row := r.s.notes[id]; row.CustomerID == customerID {
			notes = append(notes, &row)
		}
	}
	return notes, nil
}

func (r memNotes) Update(_ context.Context, n *model.Note) error {
	r.s.notes[n.ID] = *n
	return nil
}

func (r memNotes) Delete(_ context.Context, id int) error {
	delete(r.s.notes, id)
	return nil
}

func (r memNotes) DeleteByCustomer(_ context.Context, customerID int) error {
	if r.s.failNoteDelete != nil {
		return r.s.failNoteDelete
	}

	for id, row := range r.s.notes {
		if row.CustomerID == customerID {
			delete(r.s.notes, id)
		}
	}
	return nil
}
