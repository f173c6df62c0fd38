package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/pkg/checkout"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type loadStats struct {
	ok, notFound, failed atomic.Int64
}

func newLoadCmd(opts *rootOptions) *cobra.Command {
	var (
		rps         float64
		workers     int
		duration    time.Duration
		missPercent int
	)

	cmd := &cobra.Command{
		Use:   "load ORDER_NUMBER",
		Short: "Hammer GET /api/orders with a known order number mixed with unknown ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), duration)
			defer cancel()

			client := checkout.NewClient(opts.baseURL, checkout.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}))
			limiter := rate.NewLimiter(rate.Limit(rps), workers)
			var stats loadStats

			g, ctx := errgroup.WithContext(ctx)
			for range workers {
				g.Go(func() error {
					for limiter.Wait(ctx) == nil {
						number := args[0]
						if rand.Intn(100) < missPercent {
							number = randomOrderNumber()
						}
						stats.record(client.GetOrder(ctx, number))
					}
					return nil
				})
			}
			_ = g.Wait()

			fmt.Fprintf(cmd.OutOrStdout(), "ok=%d not_found=%d failed=%d\n",
				stats.ok.Load(), stats.notFound.Load(), stats.failed.Load())
			return nil
		},
	}

	cmd.Flags().Float64Var(&rps, "rps", 50, "total requests per second")
	cmd.Flags().IntVar(&workers, "workers", 10, "concurrent workers")
	cmd.Flags().DurationVar(&duration, "duration", 30*time.Second, "how long to run")
	cmd.Flags().IntVar(&missPercent, "miss-percent", 20, "share of requests for unknown orders")
	return cmd
}

func (s *loadStats) record(_ checkout.Order, err error) {
	switch {
	case err == nil:
		s.ok.Add(1)
	case checkout.HasReason(err, "order_not_found"):
		s.notFound.Add(1)
	default:
		s.failed.Add(1)
	}
}

func randomOrderNumber() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = chars[rand.Intn(len(chars))]
	}
	return fmt.Sprintf("ORD_%d_%s", time.Now().UnixMilli(), b)
}
