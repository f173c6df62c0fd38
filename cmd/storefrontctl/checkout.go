package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/pkg/checkout"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type checkoutFlags struct {
	name      string
	email     string
	products  []string
	total     string
	discount  string
	currency  string
	addressID string
	link      bool
	wait      time.Duration
}

func newCheckoutCmd(opts *rootOptions) *cobra.Command {
	var flags checkoutFlags

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Run a checkout against the service",
		Long: "Creates the order and a gateway order, then asks for the payment id and " +
			"signature returned by the gateway form. With --link a hosted payment link is " +
			"printed instead and the order is polled until it is paid.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cart, err := flags.cart()
			if err != nil {
				return err
			}
			client := opts.client()
			out := cmd.OutOrStdout()

			if flags.link {
				return checkoutWithLink(cmd.Context(), client, cart, flags.wait, out)
			}

			ui := &promptUI{in: bufio.NewReader(cmd.InOrStdin()), out: out}
			res, err := checkout.NewOrchestrator(client, ui).Checkout(cmd.Context(), checkout.NewSession(), cart)
			if err != nil {
				return err
			}
			return printJSON(out, res)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "Test Customer", "customer name")
	cmd.Flags().StringVar(&flags.email, "email", "customer@example.com", "customer email")
	cmd.Flags().StringSliceVar(&flags.products, "product", []string{"prod_demo:1"}, "line item as REF:QTY, repeatable")
	cmd.Flags().StringVar(&flags.total, "total", "", "order total in major units")
	cmd.Flags().StringVar(&flags.discount, "discount", "0", "discount in major units")
	cmd.Flags().StringVar(&flags.currency, "currency", "INR", "ISO currency")
	cmd.Flags().StringVar(&flags.addressID, "address-id", "", "saved address to ship to")
	cmd.Flags().BoolVar(&flags.link, "link", false, "pay through a hosted payment link")
	cmd.Flags().DurationVar(&flags.wait, "wait", 10*time.Minute, "how long to wait for a link payment")
	cmd.MarkFlagRequired("total")
	return cmd
}

func (f checkoutFlags) cart() (checkout.Cart, error) {
	total, err := decimal.NewFromString(f.total)
	if err != nil {
		return checkout.Cart{}, fmt.Errorf("invalid --total: %w", err)
	}
	discount, err := decimal.NewFromString(f.discount)
	if err != nil {
		return checkout.Cart{}, fmt.Errorf("invalid --discount: %w", err)
	}

	items := make([]checkout.LineItem, 0, len(f.products))
	for _, p := range f.products {
		ref, qty, ok := strings.Cut(p, ":")
		if !ok {
			qty = "1"
		}
		n, err := strconv.Atoi(qty)
		if err != nil || ref == "" {
			return checkout.Cart{}, fmt.Errorf("invalid --product %q, expected REF:QTY", p)
		}
		items = append(items, checkout.LineItem{ProductRef: ref, Quantity: n})
	}

	return checkout.Cart{
		CustomerName: f.name,
		Email:        f.email,
		Products:     items,
		AddressID:    f.addressID,
		Total:        total,
		Discount:     discount,
		Currency:     f.currency,
	}, nil
}

func checkoutWithLink(ctx context.Context, client *checkout.Client, cart checkout.Cart, wait time.Duration, out io.Writer) error {
	number, err := client.CreateOrder(ctx, checkout.NewSession().IdempotencyKey, cart)
	if err != nil {
		return err
	}
	link, err := client.CreatePaymentLink(ctx, number)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "order %s, pay at %s\n", number, link.ShortURL)

	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	order, err := client.WaitForStatus(ctx, number, 2*time.Second, "paid")
	if err != nil {
		return fmt.Errorf("order %s not paid: %w", number, err)
	}
	return printJSON(out, order)
}

// promptUI asks the operator to complete the payment in the gateway test form
// and paste back what the form returned.
type promptUI struct {
	in  *bufio.Reader
	out io.Writer
}

func (u *promptUI) Collect(_ context.Context, order checkout.GatewayOrder) (checkout.PaymentConfirmation, error) {
	fmt.Fprintf(u.out, "gateway order %s, amount %d %s, key %s\n", order.ID, order.Amount, order.Currency, order.KeyID)

	paymentID, err := u.ask("payment id")
	if err != nil {
		return checkout.PaymentConfirmation{}, err
	}
	sig, err := u.ask("signature")
	if err != nil {
		return checkout.PaymentConfirmation{}, err
	}
	return checkout.PaymentConfirmation{PaymentID: paymentID, GatewayOrderID: order.ID, Signature: sig}, nil
}

// ask returns ErrPaymentCancelled on an empty answer or closed input.
func (u *promptUI) ask(label string) (string, error) {
	fmt.Fprintf(u.out, "%s: ", label)
	line, err := u.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", checkout.ErrPaymentCancelled
	}
	return line, nil
}
