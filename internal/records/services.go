package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/facturo-dev/facturo/internal/model"
)

const (
	serviceNumFields   = 9
	svcColID           = 0
	svcColClientID     = 1
	svcColKind         = 2
	svcColStatus       = 3
	svcColScheduledAt  = 4
	svcColPrice        = 5
	svcColSurcharge    = 6
	svcColNumber       = 7
	svcColVATEnabled   = 8
)

// ReadServiceRecords reads services.csv
// (id,client_id,kind,status,scheduled_at,price,surcharge,invoice_number,vat_enabled).
// Rows with an unparseable date or amount are skipped; the skip count
// is returned alongside the records.
func ReadServiceRecords(r io.Reader) ([]model.ServiceRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = serviceNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading services CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, 0, nil
	}

	var out []model.ServiceRecord
	skipped := 0
	for _, rec := range rows[1:] {
		sr, err := unmarshalService(rec)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, sr)
	}
	return out, skipped, nil
}

// LoadServiceRecords reads services.csv from a data directory.
func LoadServiceRecords(dir string) ([]model.ServiceRecord, int, error) {
	f, err := open(dir, ServicesFile)
	if err != nil || f == nil {
		return nil, 0, err
	}
	defer f.Close()
	return ReadServiceRecords(f)
}

func unmarshalService(rec []string) (model.ServiceRecord, error) {
	scheduledAt, err := parseDate(rec[svcColScheduledAt])
	if err != nil {
		return model.ServiceRecord{}, err
	}

	price, err := decimal.NewFromString(rec[svcColPrice])
	if err != nil {
		return model.ServiceRecord{}, fmt.Errorf("parsing price %q: %w", rec[svcColPrice], err)
	}

	surcharge := decimal.Zero
	if rec[svcColSurcharge] != "" {
		surcharge, err = decimal.NewFromString(rec[svcColSurcharge])
		if err != nil {
			return model.ServiceRecord{}, fmt.Errorf("parsing surcharge %q: %w", rec[svcColSurcharge], err)
		}
	}

	var vatEnabled *bool
	if rec[svcColVATEnabled] != "" {
		v, err := strconv.ParseBool(rec[svcColVATEnabled])
		if err != nil {
			return model.ServiceRecord{}, fmt.Errorf("parsing vat_enabled %q: %w", rec[svcColVATEnabled], err)
		}
		vatEnabled = &v
	}

	return model.ServiceRecord{
		ID:            rec[svcColID],
		ClientID:      rec[svcColClientID],
		Kind:          model.ServiceKind(rec[svcColKind]),
		Status:        model.ServiceStatus(rec[svcColStatus]),
		ScheduledAt:   scheduledAt,
		Price:         price,
		Surcharge:     surcharge,
		InvoiceNumber: rec[svcColNumber],
		VATEnabled:    vatEnabled,
	}, nil
}
