package cmd

import (
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB           *gorm.DB
	uowFactory       postgres.GormUnitOfWorkFactory
	defaultUnitPrice kernel.Money
	reconciler       services.PaymentReconciler
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	defaultUnitPrice, err := kernel.NewMoney(config.DefaultUnitPriceMinor)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		defaultUnitPrice: defaultUnitPrice,
		reconciler:       services.NewPaymentReconciler(),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.defaultUnitPrice)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.UpdateOrderUoWFactory = FuncUpdateOrderUoWFactory(func() commands.UpdateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.defaultUnitPrice)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.reconciler)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.DeleteOrderUoWFactory = FuncDeleteOrderUoWFactory(func() commands.DeleteOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateExpirePaymentsCommandHandler() commands.ExpirePaymentsCommandHandler {
	var f commands.ExpirePaymentsUoWFactory = FuncExpirePaymentsUoWFactory(func() commands.ExpirePaymentsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpirePaymentsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	// Queries read outside a transaction, so the repositories come from a
	// unit of work that never begins one.
	uow := c.uowFactory.Create()
	return queries.NewGetOrderQueryHandler(
		uow.OrderRepository(),
		uow.PaymentRepository(),
		uow.CustomerRepository(),
		c.reconciler,
	)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncUpdateOrderUoWFactory func() commands.UpdateOrderUoW

func (f FuncUpdateOrderUoWFactory) Create() commands.UpdateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDeleteOrderUoWFactory func() commands.DeleteOrderUoW

func (f FuncDeleteOrderUoWFactory) Create() commands.DeleteOrderUoW {
	return f()
}

type FuncExpirePaymentsUoWFactory func() commands.ExpirePaymentsUoW

func (f FuncExpirePaymentsUoWFactory) Create() commands.ExpirePaymentsUoW {
	return f()
}
