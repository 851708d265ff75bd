package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wichananm65/fashion-marketplace-backend/internal/catalog"
	"github.com/wichananm65/fashion-marketplace-backend/internal/intent"
	"github.com/wichananm65/fashion-marketplace-backend/internal/recommendation"
	"github.com/wichananm65/fashion-marketplace-backend/internal/stylecontext"
)

type recommendOptions struct {
	catalogPath string
	text        string
	occasion    string
	style       string
}

func newRecommendCmd() *cobra.Command {
	opts := recommendOptions{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank a JSON catalog file against a style context",
		Example: `  marketplace recommend --catalog products.json --intent "old money look for a wedding"
  marketplace recommend --occasion office`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "path to a JSON array of products (defaults to the sample catalog)")
	cmd.Flags().StringVar(&opts.text, "intent", "", "free-text intent to parse")
	cmd.Flags().StringVar(&opts.occasion, "occasion", "", "occasion: wedding, party, office or casual")
	cmd.Flags().StringVar(&opts.style, "style", "", "style: traditional, classic or streetwear")
	return cmd
}

func runRecommend(cmd *cobra.Command, opts recommendOptions) error {
	products, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}

	// flags win over parsed intent, same as a draft edited after chatting
	flags := stylecontext.Partial{
		Occasion:      stylecontext.Occasion(opts.occasion),
		StyleOverride: stylecontext.Style(opts.style),
	}
	if !flags.Valid() {
		return fmt.Errorf("invalid --occasion %q or --style %q", opts.occasion, opts.style)
	}

	var sess stylecontext.Session
	if opts.text != "" {
		sess.SetDraft(intent.Parse(opts.text))
	}
	sess.SetDraft(flags)
	sess.Apply()

	items := recommendation.Recommend(products, sess.Applied)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func loadCatalog(path string) ([]catalog.Product, error) {
	if path == "" {
		return catalog.NewInMemoryRepository(catalog.SampleProducts()).ActiveProducts(context.Background())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var products []catalog.Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return products, nil
}
