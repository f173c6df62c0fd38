package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/SergeyBogomolovv/storefront-checkout/pkg/checkout"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	baseURL     string
	adminSecret string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "storefrontctl",
		Short:         "Утилита для работы с сервисом заказов",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "url", envOr("STOREFRONT_URL", "http://localhost:8080"), "base URL of the service")
	cmd.PersistentFlags().StringVar(&opts.adminSecret, "admin-secret", os.Getenv("ADMIN_API_SECRET"), "value of the X-Admin-Secret header")

	cmd.AddCommand(
		newOrdersCmd(opts),
		newPublishStatusCmd(),
		newLoadCmd(opts),
		newCheckoutCmd(opts),
	)
	return cmd
}

func (o *rootOptions) client() *checkout.Client {
	return checkout.NewClient(o.baseURL, checkout.WithAdminSecret(o.adminSecret))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
