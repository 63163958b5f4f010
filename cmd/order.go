package cmd

import (
	"errors"
	"fmt"

	"garment-geek/core/catalog"
	"garment-geek/feature/order"

	"github.com/spf13/cobra"
)

var orderFlags struct {
	code    int64
	name    string
	email   string
	message string
}

// orderCmd places an order from the command line
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place an order for a garment",
	Long: `Places an order for the garment with the given product code and stores the confirmation.

Example:
  garment-geek order --code 222 --name "Alex Robertson" --email geek@geekmail.com --message "Hurry please"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()
		if err := rt.migrate(); err != nil {
			return err
		}

		svc, err := rt.catalog(nil)
		if err != nil {
			return err
		}
		orders := order.NewService(rt.store, rt.cfg.Storage.Bucket, rt.cfg.Order, rt.orders(), svc, nil, rt.logger, nil)

		code := catalog.ProductCode(orderFlags.code)
		o, err := orders.Submit(cmd.Context(), order.Request{
			ProductCode: &code,
			Name:        orderFlags.name,
			Email:       orderFlags.email,
			Message:     orderFlags.message,
		})
		var verr *order.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid %s: %s", verr.Field, verr.Message)
		}
		if err != nil {
			return err
		}

		fmt.Println(o.Confirmation())
		fmt.Printf("\nMessage sent! One of our friendly staff at %s will be in touch shortly.\n", rt.cfg.Server.AppName)
		return nil
	},
}

func init() {
	f := orderCmd.Flags()
	f.Int64Var(&orderFlags.code, "code", 0, "product code of the garment")
	f.StringVar(&orderFlags.name, "name", "", "your full name")
	f.StringVar(&orderFlags.email, "email", "", "your email address")
	f.StringVar(&orderFlags.message, "message", "", "message for the staff")
	_ = orderCmd.MarkFlagRequired("code")
	RootCmd.AddCommand(orderCmd)
}
