// Package checkout drives a storefront checkout from the client side: create
// the order, create the gateway order, collect the payment and verify it.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Steps reported in StepError.
const (
	StepCreateOrder        = "create_order"
	StepCreateGatewayOrder = "create_gateway_order"
	StepCollectPayment     = "collect_payment"
	StepVerifyPayment      = "verify_payment"
)

// ErrPaymentCancelled is returned by a PaymentUI when the customer closes the
// payment form without paying.
var ErrPaymentCancelled = errors.New("payment cancelled")

type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("checkout %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Session holds the idempotency key shared by every retry of one cart.
type Session struct {
	IdempotencyKey string
	OrderNumber    string
}

func NewSession() *Session {
	return &Session{IdempotencyKey: uuid.NewString()}
}

type Cart struct {
	CustomerName    string
	Email           string
	ExternalUserRef string
	Products        []LineItem
	Address         *Address
	AddressID       string

	// Major units
	Total    decimal.Decimal
	Discount decimal.Decimal
	Currency string
}

// PaymentUI opens the gateway's payment collection UI for order and blocks
// until the customer pays or gives up.
type PaymentUI interface {
	Collect(ctx context.Context, order GatewayOrder) (PaymentConfirmation, error)
}

type API interface {
	CreateOrder(ctx context.Context, idempotencyKey string, cart Cart) (string, error)
	CreateGatewayOrder(ctx context.Context, orderNumber string, amount decimal.Decimal, currency string) (GatewayOrder, error)
	VerifyPayment(ctx context.Context, orderNumber string, p PaymentConfirmation) (Verification, error)
}

type Result struct {
	OrderNumber    string
	GatewayOrderID string
	PaymentID      string
	Resolution     string
}

type Orchestrator struct {
	api   API
	ui    PaymentUI
	retry utils.RetryConfig
}

func NewOrchestrator(api API, ui PaymentUI) *Orchestrator {
	return &Orchestrator{
		api: api,
		ui:  ui,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
		},
	}
}

// Checkout retries order creation on transport and 5xx errors. Verification is
// never retried.
func (o *Orchestrator) Checkout(ctx context.Context, session *Session, cart Cart) (Result, error) {
	if session == nil || session.IdempotencyKey == "" {
		return Result{}, &StepError{Step: StepCreateOrder, Err: errors.New("session has no idempotency key")}
	}

	if session.OrderNumber == "" {
		err := utils.Retry(ctx, o.retry, func() error {
			number, err := o.api.CreateOrder(ctx, session.IdempotencyKey, cart)
			if err != nil {
				if !Retryable(err) {
					return permanent{err}
				}
				return err
			}
			session.OrderNumber = number
			return nil
		}, errPermanent)
		if err != nil {
			return Result{}, &StepError{Step: StepCreateOrder, Err: unwrapPermanent(err)}
		}
	}

	gwOrder, err := o.api.CreateGatewayOrder(ctx, session.OrderNumber, cart.Total, cart.Currency)
	if err != nil {
		return Result{}, &StepError{Step: StepCreateGatewayOrder, Err: err}
	}

	confirmation, err := o.ui.Collect(ctx, gwOrder)
	if err != nil {
		return Result{}, &StepError{Step: StepCollectPayment, Err: err}
	}

	verification, err := o.api.VerifyPayment(ctx, session.OrderNumber, confirmation)
	if err != nil {
		return Result{}, &StepError{Step: StepVerifyPayment, Err: err}
	}

	return Result{
		OrderNumber:    verification.OrderNumber,
		GatewayOrderID: gwOrder.ID,
		PaymentID:      confirmation.PaymentID,
		Resolution:     verification.Resolution,
	}, nil
}

var errPermanent = errors.New("permanent")

// permanent marks an error that Retry must not repeat.
type permanent struct{ err error }

func (p permanent) Error() string        { return p.err.Error() }
func (p permanent) Unwrap() error        { return p.err }
func (p permanent) Is(target error) bool { return target == errPermanent }

func unwrapPermanent(err error) error {
	var p permanent
	if errors.As(err, &p) {
		return p.err
	}
	return err
}
