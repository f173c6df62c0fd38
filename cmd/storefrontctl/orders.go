package main

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/checkout"

	"github.com/spf13/cobra"
)

func newOrdersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Просмотр и изменение заказов",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := opts.client().ListOrders(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, o := range orders {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", o.OrderNumber, o.ID)
			}
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "max orders, server default when 0")

	get := &cobra.Command{
		Use:   "get ORDER_NUMBER",
		Short: "Print an order as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := opts.client().GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}

	cmd.AddCommand(list, get, newStatusCmd(opts))
	return cmd
}

type statusFlags struct {
	status      string
	trackingKey string
	date        string
}

func (f statusFlags) update(orderNumber string) (checkout.StatusUpdate, error) {
	u := checkout.StatusUpdate{
		OrderNumber: orderNumber,
		Status:      f.status,
		TrackingKey: f.trackingKey,
	}
	if !entities.OrderStatus(f.status).Valid() {
		return u, fmt.Errorf("unknown status %q", f.status)
	}
	if f.trackingKey != "" && !entities.ValidTrackingKey(f.trackingKey) {
		return u, fmt.Errorf("unknown tracking key %q, expected one of %v", f.trackingKey, entities.TrackingKeys)
	}
	if f.date != "" {
		d, err := time.Parse(time.RFC3339, f.date)
		if err != nil {
			return u, fmt.Errorf("invalid --date: %w", err)
		}
		u.Date = &d
	}
	return u, nil
}

func (f *statusFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", "", "new order status")
	cmd.Flags().StringVar(&f.trackingKey, "tracking-key", "", "tracking milestone to stamp")
	cmd.Flags().StringVar(&f.date, "date", "", "milestone date, RFC3339, now when empty")
	cmd.MarkFlagRequired("status")
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var flags statusFlags
	cmd := &cobra.Command{
		Use:   "status ORDER_NUMBER",
		Short: "Update order status through the admin API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := flags.update(args[0])
			if err != nil {
				return err
			}
			if err := opts.client().UpdateStatus(cmd.Context(), u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s: %s\n", u.OrderNumber, u.Status)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
