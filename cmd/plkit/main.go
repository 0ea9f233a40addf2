// Package main provides the CLI entry point for plkit.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/eubc/plkit-go/pkg/plkit"
	"github.com/eubc/plkit-go/pkg/plkit/catalogue"
	"github.com/eubc/plkit-go/pkg/plkit/metrics"
	"github.com/eubc/plkit-go/pkg/plkit/output"
	"github.com/eubc/plkit-go/pkg/plkit/parser"
	"github.com/spf13/cobra"
)

var (
	productsPath  string
	personalPath  string
	cataloguePath string
	sqlitePath    string
	metricsPath   string
	sheet         string
	verbose       bool

	orderName  string
	orderEmail string
	pretty     bool
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plkit",
		Short: "Aggregate kit order form responses",
		Long: `plkit turns the kit order form responses (xlsx) into a product order
for the supplier and a personalisation list for printing.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Responses sheet name (default: first sheet)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")

	generateCmd := &cobra.Command{
		Use:   "generate [responses.xlsx]",
		Short: "Write the product order and personalisation list",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&productsPath, "output", "o", "product_order.xlsx", "Product order output path")
	generateCmd.Flags().StringVar(&personalPath, "personalisations", "personalisations.xlsx", "Personalisation list output path")
	generateCmd.Flags().StringVar(&cataloguePath, "catalogue", "", "Catalogue YAML (default: built-in catalogue)")
	generateCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "Also export both reports to this SQLite database")
	generateCmd.Flags().StringVar(&metricsPath, "metrics", "", "Write run metrics to this textfile")

	orderCmd := &cobra.Command{
		Use:   "order [responses.xlsx]",
		Short: "Show one person's resolved order as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runOrder,
	}
	orderCmd.Flags().StringVar(&orderName, "name", "", "Name on the order")
	orderCmd.Flags().StringVar(&orderEmail, "email", "", "Email, needed when several orders share the name")
	orderCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	_ = orderCmd.MarkFlagRequired("name")

	validateCmd := &cobra.Command{
		Use:   "validate [responses.xlsx] [product_order.xlsx] [personalisations.xlsx]",
		Short: "Check written reports against the responses",
		Args:  cobra.ExactArgs(3),
		RunE:  runValidate,
	}

	rootCmd.AddCommand(generateCmd, orderCmd, validateCmd)
	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadCatalogue() (*catalogue.Catalogue, error) {
	if cataloguePath == "" {
		return catalogue.Default()
	}
	return catalogue.Load(cataloguePath)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := newLogger()

	cat, err := loadCatalogue()
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	opts := plkit.Options{Logger: logger, Sheet: sheet}

	res, err := plkit.GenerateFile(inputPath, cat, opts)
	if err != nil {
		if metricsPath != "" {
			reg.Failed()
			if werr := reg.WriteTextfile(metricsPath); werr != nil {
				logger.Error("failed to write metrics", slog.Any("err", werr))
			}
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := output.WriteProductsXLSX(productsPath, res.Products); err != nil {
		return fmt.Errorf("failed to write product order: %w", err)
	}
	if err := output.WritePersonalisationsXLSX(personalPath, res.Personalisations); err != nil {
		return fmt.Errorf("failed to write personalisations: %w", err)
	}

	if sqlitePath != "" {
		if err := output.WriteSQLite(cmd.Context(), sqlitePath, res.RunID, res.Products, res.Personalisations); err != nil {
			return fmt.Errorf("failed to write sqlite export: %w", err)
		}
	}

	if metricsPath != "" {
		reg.Observe(res)
		if err := reg.WriteTextfile(metricsPath); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Orders:           %d\n", res.Stats.Orders)
	fmt.Fprintf(out, "Items:            %d\n", res.Products.TotalQuantity)
	fmt.Fprintf(out, "Personalisations: %d\n", res.Stats.Personalisations)
	fmt.Fprintf(out, "Total price:      %s %s\n", res.Products.TotalPrice.StringFixed(2), res.Products.Currency)
	fmt.Fprintf(out, "Product order:    %s\n", productsPath)
	fmt.Fprintf(out, "Personalisations: %s\n", personalPath)
	return nil
}

func runOrder(cmd *cobra.Command, args []string) error {
	t, err := plkit.Load(args[0], plkit.Options{Sheet: sheet})
	if err != nil {
		return err
	}

	o, err := plkit.ReadOrder(t, orderName, orderEmail)
	if err != nil {
		return fmt.Errorf("read order: %w", err)
	}
	resolved := plkit.Resolve(o)

	jsonData, err := output.OrderToJSON(&resolved, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	t, err := plkit.Load(args[0], plkit.Options{Sheet: sheet})
	if err != nil {
		return err
	}
	products, err := parser.ReadProductReport(args[1])
	if err != nil {
		return fmt.Errorf("read product order: %w", err)
	}
	personal, err := parser.ReadPersonalisationReport(args[2])
	if err != nil {
		return fmt.Errorf("read personalisations: %w", err)
	}

	if err := plkit.Reconcile(t, products, personal); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok: reports match the responses")
	return nil
}
