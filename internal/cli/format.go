package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bizdesk/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// money formats an amount with two decimals in the configured locale.
func (a *app) money(d decimal.Decimal) string {
	return a.printer.Sprintf("%.2f", d.InexactFloat64())
}

func (a *app) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

func (a *app) line(format string, args ...any) {
	fmt.Fprintln(a.out, a.printer.Sprintf(format, args...))
}

func parseMonth(s string) (types.Month, error) {
	if s == "" {
		return types.MonthOf(time.Now()), nil
	}
	return types.ParseMonth(s)
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s %q is not a number", name, s)
	}
	return d, nil
}

// parseOptionalAmount returns an invalid NullDecimal for the empty string.
func parseOptionalAmount(name, s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := parseAmount(name, s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func parseOptionalDate(s string) (types.Date, error) {
	if s == "" {
		return types.Date{}, nil
	}
	return types.ParseDate(s)
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%q is not a valid ID: %w", s, err)
	}
	return id, nil
}
