package routetable

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidTable is wrapped by every validation failure.
var ErrInvalidTable = errors.New("invalid route table")

// Status code bounds accepted for a route.
const (
	DefaultStatus = http.StatusOK
	MinStatus     = 100
	MaxStatus     = 599
)

func (t *Table) applyDefaults() {
	for i := range t.Routes {
		if t.Routes[i].Status == 0 {
			t.Routes[i].Status = DefaultStatus
		}
	}
	for _, m := range t.Mounts {
		if m.Table != nil {
			m.Table.applyDefaults()
		}
	}
}

// Validate checks the table and every nested table. Defaults are expected
// to be applied already.
func (t *Table) Validate() error {
	return t.validate("")
}

func (t *Table) validate(prefix string) error {
	seen := make(map[string]int, len(t.Routes))
	for i, r := range t.Routes {
		field := fmt.Sprintf("%sroutes[%d]", prefix, i)

		if r.Pattern == "" {
			return fmt.Errorf("%w: %s.pattern is required", ErrInvalidTable, field)
		}
		if j, ok := seen[r.Pattern]; ok {
			return fmt.Errorf("%w: %s.pattern %q duplicates %sroutes[%d]", ErrInvalidTable, field, r.Pattern, prefix, j)
		}
		seen[r.Pattern] = i

		if r.Status < MinStatus || r.Status > MaxStatus {
			return fmt.Errorf("%w: %s.status must be between %d and %d, got %d",
				ErrInvalidTable, field, MinStatus, MaxStatus, r.Status)
		}
	}

	for i, m := range t.Mounts {
		field := fmt.Sprintf("%smounts[%d]", prefix, i)

		if m.At == "" {
			return fmt.Errorf("%w: %s.at is required", ErrInvalidTable, field)
		}
		if m.Table == nil {
			return fmt.Errorf("%w: %s.table is required", ErrInvalidTable, field)
		}
		if m.Table.Default != "" {
			return fmt.Errorf("%w: %s.table.default is only allowed at the top level", ErrInvalidTable, field)
		}
		if err := m.Table.validate(field + ".table."); err != nil {
			return err
		}
	}

	return nil
}
