package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery"
	"delivery/internal/entity"
	"delivery/internal/usecase/order"
)

type nopTransactor struct{}

func (nopTransactor) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeStore backs all three repositories with in-memory maps so the
// completion sequence can be asserted end to end.
type fakeStore struct {
	orders      map[uint64]entity.Order
	couriers    map[uint64]entity.Courier
	completions map[uint64]entity.CompletedOrder // keyed by order id

	nextCompletionID uint64
	hydratedIDs      []uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:      map[uint64]entity.Order{},
		couriers:    map[uint64]entity.Courier{},
		completions: map[uint64]entity.CompletedOrder{},
	}
}

func (f *fakeStore) BatchCreate(ctx context.Context, orders []entity.Order) (*[]entity.Order, error) {
	res := []entity.Order{}
	for _, o := range orders {
		o.ID = uint64(len(f.orders) + 1)
		f.orders[o.ID] = o
		res = append(res, o)
	}
	return &res, nil
}

func (f *fakeStore) FindById(ctx context.Context, id uint64) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, &delivery.Error{Code: delivery.ENOTFOUND, Message: "Order not found"}
	}
	if c, ok := f.completions[id]; ok {
		ct := c.CompleteTime
		o.CompletedTime = &ct
	}
	return &o, nil
}

func (f *fakeStore) PaginatedFetchAll(ctx context.Context, offset, limit int32) (*[]entity.Order, error) {
	res := []entity.Order{}
	for id := uint64(1); id <= uint64(len(f.orders)); id++ {
		res = append(res, f.orders[id])
	}
	lo := int(offset)
	if lo > len(res) {
		lo = len(res)
	}
	hi := lo + int(limit)
	if hi > len(res) {
		hi = len(res)
	}
	page := res[lo:hi]
	return &page, nil
}

func (f *fakeStore) FindCompletedByIds(ctx context.Context, ids []uint64) (*[]entity.Order, error) {
	f.hydratedIDs = append([]uint64{}, ids...)
	res := []entity.Order{}
	for _, id := range ids {
		o := f.orders[id]
		c := f.completions[id]
		ct := c.CompleteTime
		o.CompletedTime = &ct
		res = append(res, o)
	}
	return &res, nil
}

type courierFinder struct{ store *fakeStore }

func (f courierFinder) FindById(ctx context.Context, id uint64) (*entity.Courier, error) {
	c, ok := f.store.couriers[id]
	if !ok {
		return nil, &delivery.Error{Code: delivery.ENOTFOUND, Message: "Courier not found"}
	}
	return &c, nil
}

type completionRepo struct{ store *fakeStore }

func (r completionRepo) Create(ctx context.Context, c entity.CompletedOrder) (*entity.CompletedOrder, error) {
	if _, ok := r.store.completions[c.OrderID]; ok {
		return nil, &delivery.Error{Code: delivery.ECONFLICT, Message: "Order already completed"}
	}
	r.store.nextCompletionID++
	c.ID = r.store.nextCompletionID
	r.store.completions[c.OrderID] = c
	return &c, nil
}

func (r completionRepo) FindByOrderId(ctx context.Context, orderID uint64) (*entity.CompletedOrder, error) {
	c, ok := r.store.completions[orderID]
	if !ok {
		return nil, &delivery.Error{Code: delivery.ENOTFOUND, Message: "Completion record not found"}
	}
	return &c, nil
}

func newUseCase(store *fakeStore) *order.OrderUseCase {
	return order.New(nopTransactor{}, store, courierFinder{store}, completionRepo{store})
}

func seed(store *fakeStore) {
	store.couriers[1] = entity.Courier{ID: 1, CourierType: entity.BIKE, Regions: []int32{1}}
	store.orders[1] = entity.Order{ID: 1, Weight: 1.5, Regions: 1, DeliveryHours: []string{"10:00-12:00"}, Cost: 100}
	store.orders[2] = entity.Order{ID: 2, Weight: 2.5, Regions: 1, DeliveryHours: []string{"12:00-14:00"}, Cost: 200}
}

func claim(courierID, orderID int64, at time.Time) order.OrderToCompleteDTO {
	return order.OrderToCompleteDTO{CourierId: courierID, OrderId: orderID, CompleteTime: at}
}

var completeAt = time.Date(2023, 5, 1, 12, 30, 0, 0, time.UTC)

func TestCompleteSuccess(t *testing.T) {
	store := newFakeStore()
	seed(store)
	uc := newUseCase(store)

	res, err := uc.Complete(context.Background(), []order.OrderToCompleteDTO{
		claim(1, 1, completeAt),
		claim(1, 2, completeAt.Add(time.Hour)),
	})
	require.NoError(t, err)

	require.Len(t, *res, 2)
	assert.Equal(t, []uint64{1, 2}, store.hydratedIDs)

	first := (*res)[0]
	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint32(100), first.Cost)
	require.NotNil(t, first.CompletedTime)
	assert.Equal(t, completeAt, first.CompletedTime.UTC())

	assert.Len(t, store.completions, 2)
}

func TestCompleteUnknownOrder(t *testing.T) {
	store := newFakeStore()
	seed(store)
	uc := newUseCase(store)

	_, err := uc.Complete(context.Background(), []order.OrderToCompleteDTO{
		claim(1, 99, completeAt),
	})

	require.Error(t, err)
	assert.Equal(t, delivery.EINVALID, delivery.ErrorCode(err))
	assert.Equal(t, "Order not found", delivery.ErrorMessage(err))
	assert.Empty(t, store.completions)
}

func TestCompleteUnknownCourier(t *testing.T) {
	store := newFakeStore()
	seed(store)
	uc := newUseCase(store)

	_, err := uc.Complete(context.Background(), []order.OrderToCompleteDTO{
		claim(99, 1, completeAt),
	})

	require.Error(t, err)
	assert.Equal(t, delivery.EINVALID, delivery.ErrorCode(err))
	assert.Equal(t, "Courier not found", delivery.ErrorMessage(err))
	assert.Empty(t, store.completions, "no completion row may remain for the order")
}

func TestCompleteTwiceReportsConflict(t *testing.T) {
	store := newFakeStore()
	seed(store)
	uc := newUseCase(store)

	_, err := uc.Complete(context.Background(), []order.OrderToCompleteDTO{claim(1, 1, completeAt)})
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), []order.OrderToCompleteDTO{claim(1, 1, completeAt.Add(time.Hour))})
	require.Error(t, err)
	assert.Equal(t, delivery.ECONFLICT, delivery.ErrorCode(err))
	assert.Equal(t, "Order already completed", delivery.ErrorMessage(err))

	// completion state still reflects only the first attempt
	assert.Equal(t, completeAt, store.completions[1].CompleteTime.UTC())
}

func TestCompleteFailsFastMidBatch(t *testing.T) {
	store := newFakeStore()
	seed(store)
	uc := newUseCase(store)

	_, err := uc.Complete(context.Background(), []order.OrderToCompleteDTO{
		claim(1, 1, completeAt),
		claim(1, 99, completeAt), // fails: order does not exist
		claim(1, 2, completeAt),  // must never be reached
	})

	require.Error(t, err)
	_, thirdProcessed := store.completions[2]
	assert.False(t, thirdProcessed, "claims after the failing one must not be processed")
	assert.Nil(t, store.hydratedIDs, "failed batch must not be hydrated")
}

func TestCompleteRejectsNegativeIds(t *testing.T) {
	store := newFakeStore()
	seed(store)
	uc := newUseCase(store)

	_, err := uc.Complete(context.Background(), []order.OrderToCompleteDTO{
		claim(-1, 1, completeAt),
	})

	require.Error(t, err)
	assert.Equal(t, delivery.EINVALID, delivery.ErrorCode(err))
}

func TestCreateOrdersRejectsBadInterval(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	_, err := uc.CreateOrders(context.Background(), []order.OrderToCreateDTO{
		{Weight: 1, Regions: 1, DeliveryHours: []string{"12:00"}, Cost: 10},
	})

	require.Error(t, err)
	assert.Equal(t, delivery.EINVALID, delivery.ErrorCode(err))
	assert.Empty(t, store.orders)
}

func TestGetByIdReportsCompletionTime(t *testing.T) {
	store := newFakeStore()
	seed(store)
	uc := newUseCase(store)

	got, err := uc.GetById(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, got.CompletedTime)

	_, err = uc.Complete(context.Background(), []order.OrderToCompleteDTO{claim(1, 1, completeAt)})
	require.NoError(t, err)

	got, err = uc.GetById(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got.CompletedTime)
	assert.Equal(t, completeAt, got.CompletedTime.UTC())
}

func TestPaginatedGetAllFirstPage(t *testing.T) {
	store := newFakeStore()
	seed(store)
	uc := newUseCase(store)

	page, err := uc.PaginatedGetAll(context.Background(), 0, 1)
	require.NoError(t, err)

	require.Len(t, *page, 1)
	assert.Equal(t, uint64(1), (*page)[0].ID)
}
