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

// AddressService manages addresses of existing customers
type AddressService interface {
	Exists(context.Context, int) (bool, error)
	Save(context.Context, *model.Address) (bool, error)
	Get(context.Context, int) (*model.Address, error)
	FindByCustomer(context.Context, int) ([]*model.Address, error)
	Update(context.Context, *model.Address) (bool, error)
	Delete(context.Context, int) (bool, error)
	DeleteByCustomer(context.Context, int) error
}

type addressService struct {
	trx          transactor.Transactor
	customerRepo repository.CustomerRepository
	addressRepo  repository.AddressRepository
}

// NewAddressService builds AddressService
func NewAddressService(
	trx transactor.Transactor,
	customerRepo repository.CustomerRepository,
	addressRepo repository.AddressRepository,
) AddressService {
	return &addressService{trx: trx, customerRepo: customerRepo, addressRepo: addressRepo}
}

func (s *addressService) Exists(ctx context.Context, id int) (bool, error) {
	if err := errs.NotLessThan(1, id, "id"); err != nil {
		return false, err
	}

	exists, err := s.addressRepo.Exists(ctx, id)
	return exists, logFailure(err, "address.Exists", logrus.Fields{"addressId": id})
}

// Save creates address if owning customer exists, false is returned otherwise
func (s *addressService) Save(ctx context.Context, a *model.Address) (bool, error) {
	if a == nil {
		return false, errs.NewInvalidArgumentErr("address", "Cannot be null.")
	}

	if res := validation.ValidateAddress(a); !res.IsValid() {
		return false, errs.NewValidationErr(res)
	}

	var id int
	var saved bool
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.customerRepo.Exists(ctx, a.CustomerID)
		if err != nil || !exists {
			return err
		}

		if id, err = s.addressRepo.Create(ctx, a); err != nil {
			return err
		}
		saved = true
		return nil
	})
	if err != nil {
		return false, logFailure(err, "address.Save", logrus.Fields{"customerId": a.CustomerID})
	}

	if !saved {
		return false, nil
	}
	a.ID = id
	return true, nil
}

func (s *addressService) Get(ctx context.Context, id int) (*model.Address, error) {
	if err := errs.NotLessThan(1, id, "id"); err != nil {
		return nil, err
	}

	a, err := s.addressRepo.Read(ctx, id)
	if err != nil {
		return nil, logFailure(err, "address.Get", logrus.Fields{"addressId": id})
	}
	return a, nil
}

// FindByCustomer never returns nil slice
func (s *addressService) FindByCustomer(ctx context.Context, customerID int) ([]*model.Address, error) {
	if err := errs.NotLessThan(1, customerID, "customerId"); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.ReadByCustomer(ctx, customerID)
	if err != nil {
		return nil, logFailure(err, "address.FindByCustomer", logrus.Fields{"customerId": customerID})
	}

	if addresses == nil {
		addresses = make([]*model.Address, 0)
	}
	return addresses, nil
}

func (s *addressService) Update(ctx context.Context, a *model.Address) (bool, error) {
	if a == nil {
		return false, errs.NewInvalidArgumentErr("address", "Cannot be null.")
	}

	if res := validation.ValidateAddress(a); !res.IsValid() {
		return false, errs.NewValidationErr(res)
	}

	if a.ID < 1 {
		return false, nil
	}

	var updated bool
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.addressRepo.Exists(ctx, a.ID)
		if err != nil || !exists {
			return err
		}

		if err := s.addressRepo.Update(ctx, a); err != nil {
			return err
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, logFailure(err, "address.Update", logrus.Fields{"addressId": a.ID})
	}
	return updated, nil
}

func (s *addressService) Delete(ctx context.Context, id int) (bool, error) {
	if err := errs.NotLessThan(1, id, "id"); err != nil {
		return false, err
	}

	var deleted bool
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.addressRepo.Exists(ctx, id)
		if err != nil || !exists {
			return err
		}

		if err := s.addressRepo.Delete(ctx, id); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, logFailure(err, "address.Delete", logrus.Fields{"addressId": id})
	}
	return deleted, nil
}

// DeleteByCustomer is unconditional, customer without addresses is not an error
func (s *addressService) DeleteByCustomer(ctx context.Context, customerID int) error {
	if err := errs.NotLessThan(1, customerID, "customerId"); err != nil {
		return err
	}

	err := s.addressRepo.DeleteByCustomer(ctx, customerID)
	return logFailure(err, "address.DeleteByCustomer", logrus.Fields{"customerId": customerID})
}
