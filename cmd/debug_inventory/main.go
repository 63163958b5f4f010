package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"garment-geek/core/catalog"
	"garment-geek/core/config"
	"garment-geek/core/database"
	"garment-geek/core/storage"
	"garment-geek/feature/garment"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	// Report every bad record instead of stopping at the first one.
	cfg.Catalog.SkipInvalid = true

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	var db *gorm.DB
	if cfg.Catalog.Source == garment.SourceDatabase {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			log.Fatal(err)
		}
	}

	src, err := garment.NewSource(cfg.Catalog, client, cfg.Storage.Bucket, db)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== Loading inventory from %s ===\n", src.Name())
	result, err := src.Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	inv := result.Inventory
	fmt.Printf("Version:  %s\n", result.Version)
	fmt.Printf("Items:    %d\n", inv.Len())
	fmt.Printf("Skipped:  %d\n", len(result.Skipped))
	for _, s := range result.Skipped {
		fmt.Printf("  - %v\n", s)
	}

	fmt.Println("\n=== Attribute values ===")
	for _, key := range catalog.Keys() {
		values := inv.Values(key)
		fmt.Printf("%-14s %d distinct\n", key.String()+":", len(values))
		for _, v := range values {
			fmt.Printf("  %-16s %s\n", v, garment.DisplayLabel(key, v))
		}
	}

	fmt.Println("\n=== Items per garment type ===")
	for _, gt := range []garment.GarmentType{garment.TShirt, garment.Hoodie} {
		criteria := catalog.NewAttributeSet([]catalog.Entry{{Key: catalog.KeyGarmentType, Value: catalog.Scalar(string(gt))}})
		fmt.Printf("%-8s %d\n", gt.DisplayName()+":", len(inv.FindMatch(criteria)))
	}
	fmt.Printf("\nMax price: $%.2f\n", inv.MaxPrice())

	if len(result.Skipped) > 0 {
		os.Exit(2)
	}
}
