package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"garment-geek/feature/garment"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inventoryCmd groups inventory maintenance commands
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inspect and publish the inventory",
}

var inventoryBrandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List the brands in stock and the highest price",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		svc, err := rt.catalog(nil)
		if err != nil {
			return err
		}
		brands, err := svc.Brands(cmd.Context())
		if err != nil {
			return err
		}
		pr, err := svc.PriceRange(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("\n--- Brands ---")
		for _, b := range brands {
			fmt.Printf("- %s\n", b)
		}
		fmt.Printf("\nPrice range:    $%.2f - $%.2f\n", pr.Min, pr.Max)
		return nil
	},
}

var importTarget string

var inventoryImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Publish an inventory file to the database or storage",
	Long: `Parses an inventory file and publishes it so the server can use the database or storage catalog source.
Defaults to the configured catalog path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		path := rt.cfg.Catalog.Path
		if len(args) == 1 {
			path = args[0]
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		result, err := garment.ParseInventory(bytes.NewReader(data), rt.cfg.Catalog.Mode())
		if err != nil {
			return err
		}
		for _, s := range result.Skipped {
			rt.logger.Warn("Skipped inventory record", zap.Error(s))
		}

		ctx := cmd.Context()
		switch importTarget {
		case garment.SourceDatabase:
			if rt.db == nil {
				return errors.New("no database connection configured")
			}
			if err := rt.migrate(); err != nil {
				return err
			}
			n, err := garment.ImportToDatabase(ctx, rt.db, result.Inventory)
			if err != nil {
				return err
			}
			rt.logger.Info("Inventory imported", zap.String("target", importTarget), zap.Int("items", n))
		case garment.SourceStorage:
			if err := garment.UploadToStorage(ctx, rt.store, rt.cfg.Storage.Bucket, rt.cfg.Catalog.Object, data); err != nil {
				return err
			}
			rt.logger.Info("Inventory uploaded",
				zap.String("bucket", rt.cfg.Storage.Bucket),
				zap.String("object", rt.cfg.Catalog.Object),
				zap.Int("items", result.Inventory.Len()),
			)
		default:
			return fmt.Errorf("unsupported import target %q (use database or storage)", importTarget)
		}
		return nil
	},
}

func init() {
	inventoryImportCmd.Flags().StringVar(&importTarget, "to", garment.SourceDatabase, "import target: database or storage")
	inventoryCmd.AddCommand(inventoryBrandsCmd, inventoryImportCmd)
	RootCmd.AddCommand(inventoryCmd)
}
