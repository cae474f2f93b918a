package commands_test

import (
	"context"

	"cogs/internal/core/application/usecases/commands"
	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/product"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/core/domain/model/supplier"
	"cogs/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	po, _ := args.Get(0).(*purchaseorder.PurchaseOrder)
	return po, args.Error(1)
}

func (m *MockPurchaseOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	po, _ := args.Get(0).(*purchaseorder.PurchaseOrder)
	return po, args.Error(1)
}

func (m *MockPurchaseOrderRepository) GetByItemIDForUpdate(ctx context.Context, itemID kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, itemID)
	po, _ := args.Get(0).(*purchaseorder.PurchaseOrder)
	return po, args.Error(1)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) ListIDsByStatus(ctx context.Context, status purchaseorder.Status) ([]kernel.UUID, error) {
	args := m.Called(ctx, status)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetByASIN(ctx context.Context, asin string) (*product.Product, error) {
	args := m.Called(ctx, asin)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Add(ctx context.Context, s *supplier.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepository) GetByName(ctx context.Context, name string) (*supplier.Supplier, error) {
	args := m.Called(ctx, name)
	s, _ := args.Get(0).(*supplier.Supplier)
	return s, args.Error(1)
}

// MockUoW implements both commands.UoW and commands.PurchaseOrderUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) SupplierRepository() ports.SupplierRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPurchaseOrderUoWFactory struct{ mock.Mock }

func (m *MockPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PurchaseOrderUoW)
}
