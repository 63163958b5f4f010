package cmd

import (
	"errors"
	"fmt"

	"garment-geek/feature/garment"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var searchFlags struct {
	garmentType string
	sizes       []string
	brands      []string
	material    string
	neckline    string
	sleeve      string
	style       string
	pocket      string
	minPrice    float64
	maxPrice    float64
}

// searchCmd runs a catalog search from the command line
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the inventory",
	Long: `Searches the inventory for garments matching the given criteria and prints them.

Example:
  garment-geek search --type hoodie --size M --size L --max 30`,
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

		req := garment.SearchRequest{
			Type:        searchFlags.garmentType,
			Sizes:       searchFlags.sizes,
			Brands:      searchFlags.brands,
			Material:    searchFlags.material,
			Neckline:    searchFlags.neckline,
			SleeveType:  searchFlags.sleeve,
			HoodieStyle: searchFlags.style,
			PocketType:  searchFlags.pocket,
		}
		if cmd.Flags().Changed("min") {
			req.MinPrice = &searchFlags.minPrice
		}
		if cmd.Flags().Changed("max") {
			req.MaxPrice = &searchFlags.maxPrice
		}

		matches, err := svc.Search(cmd.Context(), req)
		var verr *garment.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid search: %s", verr.Message)
		}
		if err != nil {
			return err
		}

		rt.logger.Debug("Search finished", zap.Int("matches", len(matches)))
		if len(matches) == 0 {
			fmt.Println("Unfortunately your search returned no compatible garments.")
			return nil
		}

		fmt.Printf("\n--- %d matching garment(s) ---\n", len(matches))
		for _, item := range matches {
			fmt.Println()
			fmt.Print(garment.Describe(item))
		}
		fmt.Println("-----------------------------")
		fmt.Println("Place an order with: garment-geek order --code <product code>")
		return nil
	},
}

func init() {
	f := searchCmd.Flags()
	f.StringVarP(&searchFlags.garmentType, "type", "t", "", "garment type (t-shirt, hoodie)")
	f.StringSliceVarP(&searchFlags.sizes, "size", "s", nil, "size to search for; repeat or comma separate")
	f.StringSliceVarP(&searchFlags.brands, "brand", "b", nil, "brand to include; repeat or comma separate")
	f.StringVar(&searchFlags.material, "material", "", "material (cotton, wool-blend, polyester)")
	f.StringVar(&searchFlags.neckline, "neckline", "", "t-shirt neckline (crew, v, scoop, high)")
	f.StringVar(&searchFlags.sleeve, "sleeve", "", "t-shirt sleeve type (long, short, sleeveless, bat-wing, puffed)")
	f.StringVar(&searchFlags.style, "style", "", "hoodie style (pull-over, zip-up, over-sized, athletic)")
	f.StringVar(&searchFlags.pocket, "pocket", "", "hoodie pocket type (kangaroo, patch, zipper, slash, faux)")
	f.Float64Var(&searchFlags.minPrice, "min", 0, "minimum price")
	f.Float64Var(&searchFlags.maxPrice, "max", 0, "maximum price")
	RootCmd.AddCommand(searchCmd)
}
