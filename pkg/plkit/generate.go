package plkit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/eubc/plkit-go/pkg/plkit/parser"
	"github.com/google/uuid"
)

// Stats summarises a run.
type Stats struct {
	Orders           int `json:"orders"`
	LineItems        int `json:"line_items"`
	BackNames        int `json:"back_names"`
	SleeveInitials   int `json:"sleeve_initials"`
	DroppedSizings   int `json:"dropped_sizings"`
	Personalisations int `json:"personalisations"`
}

// Result holds both reports of a completed run.
type Result struct {
	RunID            string                        `json:"run_id"`
	Orders           []models.ResolvedOrder        `json:"orders"`
	Products         *models.ProductReport         `json:"products"`
	Personalisations *models.PersonalisationReport `json:"personalisations"`
	Stats            Stats                         `json:"stats"`
}

// Load reads the responses sheet of an xlsx workbook.
func Load(path string, opts Options) (models.Table, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return models.Table{}, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return models.Table{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	t, err := parser.ReadWorkbook(path, opts.Sheet)
	if err != nil {
		return models.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// GenerateFile loads the responses workbook at path and runs Generate.
func GenerateFile(path string, cat Catalogue, opts Options) (*Result, error) {
	t, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	return Generate(t, cat, opts)
}

// Generate runs the whole pipeline over the responses table. Either both
// reports are returned and reconcile, or an error is.
func Generate(t models.Table, cat Catalogue, opts Options) (*Result, error) {
	log := opts.logger()
	runID := uuid.NewString()
	log = log.With(slog.String("run_id", runID))
	log.Info("generating kit order", slog.String("sheet", t.Sheet), slog.Int("rows", len(t.Rows)))

	orders, err := ReadOrders(t)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	resolved := ResolveAll(orders)

	opts.Logger = log
	products, aggStats, err := AggregateProducts(cat, resolved, opts)
	if err != nil {
		return nil, fmt.Errorf("aggregate products: %w", err)
	}
	personal := ExtractPersonalisations(resolved)

	if err := Reconcile(t, products, personal); err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	stats := Stats{
		Orders:           len(orders),
		DroppedSizings:   aggStats.DroppedSizings,
		Personalisations: len(personal.Rows),
	}
	for _, o := range orders {
		stats.LineItems += o.ItemCount()
		stats.BackNames += o.BackCount()
		stats.SleeveInitials += o.SleeveCount()
	}

	log.Info("kit order generated",
		slog.Int("orders", stats.Orders),
		slog.Int("line_items", stats.LineItems),
		slog.Int("personalisations", stats.Personalisations),
		slog.Int("total_quantity", products.TotalQuantity),
		slog.String("total_price", products.TotalPrice.StringFixed(2)))

	return &Result{
		RunID:            runID,
		Orders:           resolved,
		Products:         products,
		Personalisations: personal,
		Stats:            stats,
	}, nil
}
