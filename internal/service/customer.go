package service

import (
	"context"

	"github.com/sirupsen/logrus"
	errs "github.com/umalmyha/customerlib/internal/errors"
	"github.com/umalmyha/customerlib/internal/model"
	"github.com/umalmyha/customerlib/internal/repository"
	"github.com/umalmyha/customerlib/internal/validation"
	"github.com/umalmyha/customerlib/pkg/db/transactor"
)

// PageQuery describes requested customers page.
// When CheckTotalSame is set, page is read only if total number of customers still equals ExpectedTotal.
type PageQuery struct {
	Page             int
	PageSize         int
	IncludeAddresses bool
	IncludeNotes     bool
	CheckTotalSame   bool
	ExpectedTotal    int
}

// CustomerService keeps customer aggregate consistent: customer with its addresses and notes
type CustomerService interface {
	Exists(context.Context, int) (bool, error)
	Save(context.Context, *model.Customer) error
	Get(ctx context.Context, id int, includeAddresses bool, includeNotes bool) (*model.Customer, error)
	GetAll(ctx context.Context, includeAddresses bool, includeNotes bool) ([]*model.Customer, error)
	Count(context.Context) (int, error)
	GetPage(context.Context, PageQuery) ([]*model.Customer, error)
	Update(context.Context, *model.Customer) (bool, error)
	Delete(context.Context, int) (bool, error)
}

type customerService struct {
	trx          transactor.Transactor
	customerRepo repository.CustomerRepository
	addressRepo  repository.AddressRepository
	noteRepo     repository.NoteRepository
}

// NewCustomerService builds CustomerService
func NewCustomerService(
	trx transactor.Transactor,
	customerRepo repository.CustomerRepository,
	addressRepo repository.AddressRepository,
	noteRepo repository.NoteRepository,
) CustomerService {
	return &customerService{trx: trx, customerRepo: customerRepo, addressRepo: addressRepo, noteRepo: noteRepo}
}

func (s *customerService) Exists(ctx context.Context, id int) (bool, error) {
	if err := errs.NotLessThan(1, id, "id"); err != nil {
		return false, err
	}

	exists, err := s.customerRepo.Exists(ctx, id)
	return exists, logFailure(err, "customer.Exists", logrus.Fields{"customerId": id})
}

// Save validates customer with all rule sets and creates it with owned addresses and notes atomically.
// Assigned ids are set on customer and its children only after commit.
func (s *customerService) Save(ctx context.Context, c *model.Customer) error {
	if c == nil {
		return errs.NewInvalidArgumentErr("customer", "Cannot be null.")
	}

	if res := validation.ValidateCustomer(c); !res.IsValid() {
		return errs.NewValidationErr(res)
	}

	var customerID int
	addressIDs := make([]int, len(c.Addresses))
	noteIDs := make([]int, len(c.Notes))

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		if c.Email != nil {
			taken, err := s.customerRepo.IsEmailTaken(ctx, *c.Email)
			if err != nil {
				return err
			}

			if taken {
				return errs.NewEmailTakenErr(*c.Email)
			}
		}

		id, err := s.customerRepo.Create(ctx, c)
		if err != nil {
			return err
		}
		customerID = id

		for i, a := range c.Addresses {
			addr := *a
			addr.CustomerID = id
			if addressIDs[i], err = s.addressRepo.Create(ctx, &addr); err != nil {
				return err
			}
		}

		for i, n := range c.Notes {
			note := *n
			note.CustomerID = id
			if noteIDs[i], err = s.noteRepo.Create(ctx, &note); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return logFailure(err, "customer.Save", s.emailFields(c))
	}

	c.ID = customerID
	for i, a := range c.Addresses {
		a.ID = addressIDs[i]
		a.CustomerID = customerID
	}

	for i, n := range c.Notes {
		n.ID = noteIDs[i]
		n.CustomerID = customerID
	}
	return nil
}

func (s *customerService) Get(ctx context.Context, id int, includeAddresses bool, includeNotes bool) (*model.Customer, error) {
	if err := errs.NotLessThan(1, id, "id"); err != nil {
		return nil, err
	}

	c, err := s.customerRepo.Read(ctx, id)
	if err != nil {
		return nil, logFailure(err, "customer.Get", logrus.Fields{"customerId": id})
	}

	if c == nil {
		return nil, nil
	}

	if err := s.populate(ctx, c, includeAddresses, includeNotes); err != nil {
		return nil, logFailure(err, "customer.Get", logrus.Fields{"customerId": id})
	}
	return c, nil
}

func (s *customerService) GetAll(ctx context.Context, includeAddresses bool, includeNotes bool) ([]*model.Customer, error) {
	customers, err := s.customerRepo.ReadAll(ctx)
	if err != nil {
		return nil, logFailure(err, "customer.GetAll", nil)
	}

	for _, c := range customers {
		if err := s.populate(ctx, c, includeAddresses, includeNotes); err != nil {
			return nil, logFailure(err, "customer.GetAll", logrus.Fields{"customerId": c.ID})
		}
	}
	return customers, nil
}

func (s *customerService) Count(ctx context.Context) (int, error) {
	count, err := s.customerRepo.Count(ctx)
	return count, logFailure(err, "customer.Count", nil)
}

// GetPage returns 1-indexed page of customers ordered by id, page past the end is empty
func (s *customerService) GetPage(ctx context.Context, q PageQuery) ([]*model.Customer, error) {
	if err := errs.NotLessThan(1, q.Page, "page"); err != nil {
		return nil, err
	}

	if err := errs.NotLessThan(1, q.PageSize, "pageSize"); err != nil {
		return nil, err
	}

	if err := errs.NotLessThan(0, q.ExpectedTotal, "expectedTotal"); err != nil {
		return nil, err
	}

	fields := logrus.Fields{"page": q.Page, "pageSize": q.PageSize}

	if q.CheckTotalSame {
		total, err := s.customerRepo.Count(ctx)
		if err != nil {
			return nil, logFailure(err, "customer.GetPage", fields)
		}

		if total != q.ExpectedTotal {
			return nil, errs.NewDataChangedErr(q.ExpectedTotal, total)
		}
	}

	customers, err := s.customerRepo.ReadPage(ctx, q.Page, q.PageSize)
	if err != nil {
		return nil, logFailure(err, "customer.GetPage", fields)
	}

	if customers == nil {
		customers = make([]*model.Customer, 0)
	}

	for _, c := range customers {
		if err := s.populate(ctx, c, q.IncludeAddresses, q.IncludeNotes); err != nil {
			return nil, logFailure(err, "customer.GetPage", fields)
		}
	}
	return customers, nil
}

// Update validates only customer's own fields, addresses and notes are managed by their services
func (s *customerService) Update(ctx context.Context, c *model.Customer) (bool, error) {
	if c == nil {
		return false, errs.NewInvalidArgumentErr("customer", "Cannot be null.")
	}

	if res := validation.ValidateCustomerOwnFields(c); !res.IsValid() {
		return false, errs.NewValidationErr(res)
	}

	if c.ID < 1 {
		return false, nil
	}

	var updated bool
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.customerRepo.Exists(ctx, c.ID)
		if err != nil || !exists {
			return err
		}

		if c.Email != nil {
			taken, ownerID, err := s.customerRepo.IsEmailTakenWithCustomerID(ctx, *c.Email)
			if err != nil {
				return err
			}

			if taken && ownerID != c.ID {
				return errs.NewEmailTakenErr(*c.Email)
			}
		}

		if err := s.customerRepo.Update(ctx, c); err != nil {
			return err
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, logFailure(err, "customer.Update", s.emailFields(c))
	}
	return updated, nil
}

// Delete removes customer with all owned addresses and notes atomically
func (s *customerService) Delete(ctx context.Context, id int) (bool, error) {
	if err := errs.NotLessThan(1, id, "id"); err != nil {
		return false, err
	}

	var deleted bool
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.customerRepo.Exists(ctx, id)
		if err != nil || !exists {
			return err
		}

		if err := s.addressRepo.DeleteByCustomer(ctx, id); err != nil {
			return err
		}

		if err := s.noteRepo.DeleteByCustomer(ctx, id); err != nil {
			return err
		}

		if err := s.customerRepo.Delete(ctx, id); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, logFailure(err, "customer.Delete", logrus.Fields{"customerId": id})
	}
	return deleted, nil
}

// populate fills requested collections, collections which were not requested stay nil
func (s *customerService) populate(ctx context.Context, c *model.Customer, includeAddresses bool, includeNotes bool) error {
	if includeAddresses {
		addresses, err := s.addressRepo.ReadByCustomer(ctx, c.ID)
		if err != nil {
			return err
		}

		if addresses == nil {
			addresses = make([]*model.Address, 0)
		}
		c.Addresses = addresses
	}

	if includeNotes {
		notes, err := s.noteRepo.ReadByCustomer(ctx, c.ID)
		if err != nil {
			return err
		}

		if notes == nil {
			notes = make([]*model.Note, 0)
		}
		c.Notes = notes
	}
	return nil
}

func (s *customerService) emailFields(c *model.Customer) logrus.Fields {
	fields := logrus.Fields{"customerId": c.ID}
	if c.Email != nil {
		fields["email"] = *c.Email
	}
	return fields
}
