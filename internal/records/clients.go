package records

import (
	"encoding/csv"
	"fmt"
	"io"
)

const (
	clientNumFields = 2
	clientColID     = 0
	clientColName   = 1
)

// Client is a row of clients.csv.
type Client struct {
	ID   string
	Name string
}

// Directory provides client name lookup for the invoice normalizer.
type Directory struct {
	byID map[string]string
}

// NewDirectory builds a Directory from a slice of clients.
func NewDirectory(clients []Client) *Directory {
	byID := make(map[string]string, len(clients))
	for _, c := range clients {
		byID[c.ID] = c.Name
	}
	return &Directory{byID: byID}
}

// Name returns the display name for a client id.
func (d *Directory) Name(id string) (string, bool) {
	name, ok := d.byID[id]
	return name, ok
}

// ReadClients reads clients.csv (id,name).
func ReadClients(r io.Reader) ([]Client, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = clientNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading clients CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	var clients []Client
	for _, rec := range rows[1:] {
		clients = append(clients, Client{ID: rec[clientColID], Name: rec[clientColName]})
	}
	return clients, nil
}
