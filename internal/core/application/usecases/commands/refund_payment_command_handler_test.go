package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
)

func TestRefundPaymentCommandHandler_Handle_PartialRefund(t *testing.T) {
	ctx := t.Context()
	ord := placedDeliveryOrder(t)
	require.NoError(t, ord.SetPaymentSummary(order.SummaryCompleted))
	paid := completedCardPayment(t, ord.ID(), 2400)
	cmd, err := commands.NewRefundPaymentCommand(paid.ID(), testMoney(t, 400))
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()
	paymentRepo.On("Update", ctx, paid).Return(nil).Once()
	paymentRepo.On("GetAllByOrder", ctx, ord.ID()).Return([]*payment.Payment{paid}, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	orderRepo.On("Update", ctx, ord).Return(nil).Once()

	processor := new(MockPaymentProcessor)
	processor.On("Refund", ctx, paid.ID(), "txn-100", testMoney(t, 400)).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundPaymentCommandHandler(factory, processor)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, payment.PartiallyRefunded, paid.Status())
	require.True(t, paid.RemainingRefundable().IsEqual(testMoney(t, 2000)))
	require.Equal(t, order.SummaryPartiallyRefunded, ord.PaymentSummary())
	processor.AssertExpectations(t)
}

func TestRefundPaymentCommandHandler_Handle_OverRefundNeverReachesProcessor(t *testing.T) {
	ctx := t.Context()
	ord := placedDeliveryOrder(t)
	paid := completedCardPayment(t, ord.ID(), 2400)
	cmd, err := commands.NewRefundPaymentCommand(paid.ID(), testMoney(t, 5000))
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()

	processor := new(MockPaymentProcessor)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundPaymentCommandHandler(factory, processor)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, payment.ErrOverRefund)
	require.Equal(t, payment.Completed, paid.Status())
	processor.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRefundPaymentCommandHandler_Handle_CashRefundSkipsProcessor(t *testing.T) {
	ctx := t.Context()
	ord := placedDeliveryOrder(t)
	paid, err := payment.NewPayment(kernel.NewUUID(), ord.ID(), payment.Cash, testMoney(t, 2400))
	require.NoError(t, err)
	require.NoError(t, paid.Settle(payment.Completed, ""))
	cmd, err := commands.NewRefundPaymentCommand(paid.ID(), testMoney(t, 2400))
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()
	paymentRepo.On("Update", ctx, paid).Return(nil).Once()
	paymentRepo.On("GetAllByOrder", ctx, ord.ID()).Return([]*payment.Payment{paid}, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	orderRepo.On("Update", ctx, ord).Return(nil).Once()

	processor := new(MockPaymentProcessor)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundPaymentCommandHandler(factory, processor)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, payment.Refunded, paid.Status())
	processor.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRefundPaymentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RefundPaymentCommand{} // not constructed properly

	h := commands.NewRefundPaymentCommandHandler(new(MockOrderPaymentUoWFactory), new(MockPaymentProcessor))
	require.Error(t, h.Handle(ctx, cmd))
}
