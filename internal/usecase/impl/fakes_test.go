package impl

import (
	"context"
	"sync"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory fakes backing the service tests. The transaction manager
// snapshots the customer store before running the callback and restores it on
// error, mirroring a rollback.

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers []*entity.Customer
	nextID    int64
	updateErr error
}

func (r *fakeCustomerRepo) snapshot() []*entity.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]*entity.Customer, len(r.customers))
	for i, customer := range r.customers {
		clone := *customer
		copied[i] = &clone
	}

	return copied
}

func (r *fakeCustomerRepo) restore(snapshot []*entity.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = snapshot
}

func (r *fakeCustomerRepo) FindByEmailAndPhone(_ context.Context, email, phone string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, customer := range r.customers {
		if customer.Email == email && customer.Phone == phone {
			clone := *customer

			return &clone, nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, customer := range r.customers {
		if customer.Email == email {
			clone := *customer

			return &clone, nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) FindByPhone(_ context.Context, phone string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, customer := range r.customers {
		if customer.Phone == phone {
			clone := *customer

			return &clone, nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) FindByUUID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, customer := range r.customers {
		if customer.UUID == id {
			clone := *customer

			return &clone, nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*entity.Customer(nil), r.customers...), nil
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	customer.ID = r.nextID
	customer.UUID = uuid.New()
	clone := *customer
	r.customers = append(r.customers, &clone)

	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	if r.updateErr != nil {
		return r.updateErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.customers {
		if existing.ID == customer.ID {
			clone := *customer
			r.customers[i] = &clone

			return nil
		}
	}

	return repository.ErrCustomerNotFound
}

type fakeOrderRepo struct {
	mu        sync.Mutex
	orders    []*entity.Order
	createErr error
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = int64(len(r.orders) + 1)
	order.UUID = uuid.New()
	clone := *order
	r.orders = append(r.orders, &clone)

	return nil
}

func (r *fakeOrderRepo) FindByUUID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.UUID == id {
			clone := *order

			return &clone, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*entity.Order(nil), r.orders...), nil
}

type fakeCateringRepo struct {
	mu        sync.Mutex
	requests  []*entity.CateringRequest
	createErr error
}

func (r *fakeCateringRepo) Create(_ context.Context, request *entity.CateringRequest) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	request.ID = int64(len(r.requests) + 1)
	request.UUID = uuid.New()
	clone := *request
	r.requests = append(r.requests, &clone)

	return nil
}

func (r *fakeCateringRepo) List(_ context.Context) ([]*entity.CateringRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*entity.CateringRequest(nil), r.requests...), nil
}

type fakeRepoFactory struct {
	customerRepo *fakeCustomerRepo
	orderRepo    *fakeOrderRepo
	cateringRepo *fakeCateringRepo
}

func (f *fakeRepoFactory) CustomerRepo() repository.CustomerRepository { return f.customerRepo }
func (f *fakeRepoFactory) OrderRepo() repository.OrderRepository       { return f.orderRepo }
func (f *fakeRepoFactory) CateringRepo() repository.CateringRepository { return f.cateringRepo }

type fakeTxManager struct {
	factory  *fakeRepoFactory
	beginErr error
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if tm.beginErr != nil {
		return tm.beginErr
	}

	snapshot := tm.factory.customerRepo.snapshot()

	if err := fn(tm.factory); err != nil {
		tm.factory.customerRepo.restore(snapshot)

		return err
	}

	return nil
}

type fakeMailer struct {
	sent chan *service.EmailMessage
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan *service.EmailMessage, 8)}
}

func (m *fakeMailer) Send(_ context.Context, message *service.EmailMessage) error {
	m.sent <- message

	return nil
}
