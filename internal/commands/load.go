package commands

import (
	"fmt"
	"path/filepath"

	"github.com/facturo-dev/facturo/internal/config"
	"github.com/facturo-dev/facturo/internal/logger"
	"github.com/facturo-dev/facturo/internal/model"
	"github.com/facturo-dev/facturo/internal/normalize"
	"github.com/facturo-dev/facturo/internal/records"
	"github.com/facturo-dev/facturo/internal/vat"
)

// projectInputs holds everything a command needs after loading and
// normalizing a project's records.
type projectInputs struct {
	cfg            *config.Config
	tax            vat.Config
	clientInvoices []model.ClientInvoice
	vendorInvoices []model.VendorInvoice
}

// loadProject reads the config and raw records of a project rooted at
// dir and normalizes them into canonical invoices. Skipped records are
// logged here, not inside the engine.
func loadProject(dir string) (*projectInputs, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	tax, err := cfg.TaxConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid vat configuration: %w", err)
	}

	dataDir := filepath.Join(dir, cfg.Paths.Data)
	log := logger.WithComponent("records")

	clients, err := records.LoadClients(dataDir)
	if err != nil {
		return nil, err
	}

	services, skippedServices, err := records.LoadServiceRecords(dataDir)
	if err != nil {
		return nil, err
	}
	if skippedServices > 0 {
		log.Warn().Int("skipped", skippedServices).Msg("malformed service records dropped")
	}

	purchases, skippedPurchases, err := records.LoadPurchaseRecords(dataDir)
	if err != nil {
		return nil, err
	}
	if skippedPurchases > 0 {
		log.Warn().Int("skipped", skippedPurchases).Msg("malformed purchase records dropped")
	}

	directory := records.NewDirectory(clients)
	clientInvoices := normalize.ClientInvoices(services, directory, tax)
	vendorInvoices := normalize.VendorInvoices(purchases)

	log.Debug().
		Int("services", len(services)).
		Int("purchases", len(purchases)).
		Int("client_invoices", len(clientInvoices)).
		Int("vendor_invoices", len(vendorInvoices)).
		Msg("records normalized")

	return &projectInputs{
		cfg:            cfg,
		tax:            tax,
		clientInvoices: clientInvoices,
		vendorInvoices: vendorInvoices,
	}, nil
}
