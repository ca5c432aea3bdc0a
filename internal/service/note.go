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

// NoteService manages notes of existing customers
type NoteService interface {
	Exists(context.Context, int) (bool, error)
	Save(context.Context, *model.Note) (bool, error)
	Get(context.Context, int) (*model.Note, error)
	FindByCustomer(context.Context, int) ([]*model.Note, error)
	Update(context.Context, *model.Note) (bool, error)
	Delete(context.Context, int) (bool, error)
	DeleteByCustomer(context.Context, int) error
}

type noteService struct {
	trx          transactor.Transactor
	customerRepo repository.CustomerRepository
	noteRepo  repository.NoteRepository
}

// NewNoteService builds NoteService
func NewNoteService(
	trx transactor.Transactor,
	customerRepo repository.CustomerRepository,
	noteRepo repository.NoteRepository,
) NoteService {
	return &noteService{trx: trx, customerRepo: customerRepo, noteRepo: noteRepo}
}

func (s *noteService) Exists(ctx context.Context, id int) (bool, error) {
	if err := errs.NotLessThan(1, id, "id"); err != nil {
		return false, err
	}

	exists, err := s.noteRepo.Exists(ctx, id)
	return exists, logFailure(err, "note.Exists", logrus.Fields{"noteId": id})
}

// Save creates note if owning customer exists, false is returned otherwise
func (s *noteService) Save(ctx context.Context, n *model.Note) (bool, error) {
	if n == nil {
		return false, errs.NewInvalidArgumentErr("note", "Cannot be null.")
	}

	if res := validation.ValidateNote(n); !res.IsValid() {
		return false, errs.NewValidationErr(res)
	}

	var id int
	var saved bool
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.customerRepo.Exists(ctx, n.CustomerID)
		if err != nil || !exists {
			return err
		}

		if id, err = s.noteRepo.Create(ctx, n); err != nil {
			return err
		}
		saved = true
		return nil
	})
	if err != nil {
		return false, logFailure(err, "note.Save", logrus.Fields{"customerId": n.CustomerID})
	}

	if !saved {
		return false, nil
	}
	n.ID = id
	return true, nil
}

func (s *noteService) Get(ctx context.Context, id int) (*model.Note, error) {
	if err := errs.NotLessThan(1, id, "id"); err != nil {
		return nil, err
	}

	n, err := s.noteRepo.Read(ctx, id)
	if err != nil {
		return nil, logFailure(err, "note.Get", logrus.Fields{"noteId": id})
	}
	return n, nil
}

// FindByCustomer never returns nil slice
func (s *noteService) FindByCustomer(ctx context.Context, customerID int) ([]*model.Note, error) {
	if err := errs.NotLessThan(1, customerID, "customerId"); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ReadByCustomer(ctx, customerID)
	if err != nil {
		return nil, logFailure(err, "note.FindByCustomer", logrus.Fields{"customerId": customerID})
	}

	if notes == nil {
		notes = make([]*model.Note, 0)
	}
	return notes, nil
}

func (s *noteService) Update(ctx context.Context, n *model.Note) (bool, error) {
	if n == nil {
		return false, errs.NewInvalidArgumentErr("note", "Cannot be null.")
	}

	if res := validation.ValidateNote(n); !res.IsValid() {
		return false, errs.NewValidationErr(res)
	}

	if n.ID < 1 {
		return false, nil
	}

	var updated bool
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.noteRepo.Exists(ctx, n.ID)
		if err != nil || !exists {
			return err
		}

		if err := s.noteRepo.Update(ctx, n); err != nil {
			return err
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, logFailure(err, "note.Update", logrus.Fields{"noteId": n.ID})
	}
	return updated, nil
}

func (s *noteService) Delete(ctx context.Context, id int) (bool, error) {
	if err := errs.NotLessThan(1, id, "id"); err != nil {
		return false, err
	}

	var deleted bool
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.noteRepo.Exists(ctx, id)
		if err != nil || !exists {
			return err
		}

		if err := s.noteRepo.Delete(ctx, id); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, logFailure(err, "note.Delete", logrus.Fields{"noteId": id})
	}
	return deleted, nil
}

// DeleteByCustomer is unconditional, customer without notes is not an error
func (s *noteService) DeleteByCustomer(ctx context.Context, customerID int) error {
	if err := errs.NotLessThan(1, customerID, "customerId"); err != nil {
		return err
	}

	err := s.noteRepo.DeleteByCustomer(ctx, customerID)
	return logFailure(err, "note.DeleteByCustomer", logrus.Fields{"customerId": customerID})
}
