package records

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/facturo-dev/facturo/internal/model"
)

const (
	purchaseNumFields = 6
	purColID          = 0
	purColVendor      = 1
	purColReference   = 2
	purColDate        = 3
	purColStatus      = 4
	purColAmount      = 5
)

// ReadPurchaseRecords reads purchases.csv
// (id,vendor,reference,date,status,amount_ttc). Rows with an
// unparseable date or amount are skipped; the skip count is returned
// alongside the records.
func ReadPurchaseRecords(r io.Reader) ([]model.PurchaseRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = purchaseNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading purchases CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, 0, nil
	}

	var out []model.PurchaseRecord
	skipped := 0
	for _, rec := range rows[1:] {
		pr, err := unmarshalPurchase(rec)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, pr)
	}
	return out, skipped, nil
}

// LoadPurchaseRecords reads purchases.csv from a data directory.
func LoadPurchaseRecords(dir string) ([]model.PurchaseRecord, int, error) {
	f, err := open(dir, PurchasesFile)
	if err != nil || f == nil {
		return nil, 0, err
	}
	defer f.Close()
	return ReadPurchaseRecords(f)
}

func unmarshalPurchase(rec []string) (model.PurchaseRecord, error) {
	date, err := parseDate(rec[purColDate])
	if err != nil {
		return model.PurchaseRecord{}, err
	}

	amount, err := decimal.NewFromString(rec[purColAmount])
	if err != nil {
		return model.PurchaseRecord{}, fmt.Errorf("parsing amount_ttc %q: %w", rec[purColAmount], err)
	}

	return model.PurchaseRecord{
		ID:        rec[purColID],
		Vendor:    rec[purColVendor],
		Reference: rec[purColReference],
		Date:      date,
		Status:    model.PurchaseStatus(rec[purColStatus]),
		AmountTTC: amount,
	}, nil
}
