package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	cacheMocks "github.com/umalmyha/customerlib/internal/cache/mocks"
	"github.com/umalmyha/customerlib/internal/model"
	rpsMocks "github.com/umalmyha/customerlib/internal/repository/mocks"
)

type cachedCustomerTestSuite struct {
	suite.Suite
	ctx               context.Context
	customer          *model.Customer
	customerRps       CustomerRepository
	customerRpsMock   *rpsMocks.CustomerRepository
	customerCacheMock *cacheMocks.CustomerCache
}

func (s *cachedCustomerTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.customer = &model.Customer{ID: 17, Person: model.Person{LastName: strPtr("Walls")}}
}

func (s *cachedCustomerTestSuite) SetupTest() {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.customerCacheMock = cacheMocks.NewCustomerCache(t)
	s.customerRps = NewCachedCustomerRepository(s.customerRpsMock, s.customerCacheMock)
}

func (s *cachedCustomerTestSuite) TestReadFromCache() {
	s.customerCacheMock.On("FindByID", s.ctx, s.customer.ID).Return(s.customer, nil).Once()

	s.T().Log("customer must be found in cache")
	{
		c, err := s.customerRps.Read(s.ctx, s.customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(s.customer, c)
		s.customerRpsMock.AssertNotCalled(s.T(), "Read", s.ctx, s.customer.ID)
	}
}

func (s *cachedCustomerTestSuite) TestReadCached() {
	s.customerCacheMock.On("FindByID", s.ctx, s.customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("Read", s.ctx, s.customer.ID).Return(s.customer, nil).Once()
	s.customerCacheMock.On("Cache", s.ctx, s.customer).Return(nil).Once()

	s.T().Log("customer is not in cache, found in primary datasource and cached")
	{
		c, err := s.customerRps.Read(s.ctx, s.customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotNil(c, "customer must be found")
	}
}

func (s *cachedCustomerTestSuite) TestReadNotFound() {
	s.customerCacheMock.On("FindByID", s.ctx, s.customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("Read", s.ctx, s.customer.ID).Return(nil, nil).Once()

	s.T().Log("customer is missing in cache and in primary datasource")
	{
		c, err := s.customerRps.Read(s.ctx, s.customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Nil(c, "no customer must be present but it was found")
		s.customerCacheMock.AssertNotCalled(s.T(), "Cache", mock.Anything, mock.Anything)
	}
}

func (s *cachedCustomerTestSuite) TestReadCacheUnavailable() {
	s.customerCacheMock.On("FindByID", s.ctx, s.customer.ID).Return(nil, errors.New("cache err")).Once()
	s.customerRpsMock.On("Read", s.ctx, s.customer.ID).Return(s.customer, nil).Once()
	s.customerCacheMock.On("Cache", s.ctx, s.customer).Return(errors.New("cache err")).Once()

	s.T().Log("cache failures fall back to primary datasource")
	{
		c, err := s.customerRps.Read(s.ctx, s.customer.ID)
		s.Assert().NoError(err, "cache errors must not fail reads")
		s.Assert().Equal(s.customer, c)
	}
}

func (s *cachedCustomerTestSuite) TestUpdateEvicts() {
	s.customerRpsMock.On("Update", s.ctx, s.customer).Return(nil).Once()
	s.customerCacheMock.On("EvictByID", s.ctx, s.customer.ID).Return(nil).Once()

	err := s.customerRps.Update(s.ctx, s.customer)
	s.Assert().NoError(err, "no error must be raised")
}

func (s *cachedCustomerTestSuite) TestDeleteFailedKeepsCache() {
	s.customerRpsMock.On("Delete", s.ctx, s.customer.ID).Return(errors.New("db err")).Once()

	err := s.customerRps.Delete(s.ctx, s.customer.ID)
	s.Assert().Error(err, "repository raised error - error must be raised up")
	s.customerCacheMock.AssertNotCalled(s.T(), "EvictByID", mock.Anything, mock.Anything)
}

func (s *cachedCustomerTestSuite) TestDeleteEvicts() {
	s.customerRpsMock.On("Delete", s.ctx, s.customer.ID).Return(nil).Once()
	s.customerCacheMock.On("EvictByID", s.ctx, s.customer.ID).Return(nil).Once()

	err := s.customerRps.Delete(s.ctx, s.customer.ID)
	s.Assert().NoError(err, "no error must be raised")
}

func (s *cachedCustomerTestSuite) TestOtherMethodsDelegated() {
	s.customerRpsMock.On("Count", s.ctx).Return(4, nil).Once()

	count, err := s.customerRps.Count(s.ctx)
	s.Assert().NoError(err)
	s.Assert().Equal(4, count)
}

// start cached customer repository test suite
func TestCachedCustomerTestSuite(t *testing.T) {
	suite.Run(t, new(cachedCustomerTestSuite))
}
