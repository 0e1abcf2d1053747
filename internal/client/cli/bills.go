package cli

import (
	"context"
	"fmt"
)

// biller is an entry in the static bill payment catalog.
type biller struct {
	Name     string
	Category string
}

var billers = []biller{
	{Name: "EKEDC Prepaid", Category: "Electricity"},
	{Name: "IKEDC Postpaid", Category: "Electricity"},
	{Name: "DStv", Category: "TV"},
	{Name: "GOtv", Category: "TV"},
	{Name: "MTN Airtime", Category: "Airtime"},
	{Name: "Airtel Airtime", Category: "Airtime"},
	{Name: "Lagos Water Corporation", Category: "Water"},
}

// Bills prints the bill payment catalog, grouped by category.
func (a *App) Bills(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first")
		return nil
	}

	last := ""
	for _, b := range billers {
		if b.Category != last {
			printlnFn(fmt.Sprintf("-- %s --", b.Category))
			last = b.Category
		}
		printlnFn("  " + b.Name)
	}
	printlnFn("Bill payments are coming soon")
	return nil
}
