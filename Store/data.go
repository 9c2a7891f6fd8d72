package Store

import (
	"context"
	"errors"
	"fmt"

	"LogiTrack/Models"

	"golang.org/x/exp/slices"
)

// ErrUnknownRateCategory means an update named a category the table does
// not carry.
var ErrUnknownRateCategory = errors.New("no rate entry for category")

// Local storage keys, one per entity kind.
const (
	KeyRates        = "logitrack_rates"
	KeyRequests     = "logitrack_requests"
	KeyDrivers      = "logitrack_drivers"
	KeyClients      = "logitrack_clients"
	KeyExpenses     = "logitrack_expenses"
	KeyUsers        = "logitrack_users"
	KeyContracts    = "logitrack_contracts"
	KeyTransactions = "logitrack_transactions"
)

// Data is the set of typed collections the handlers work against.
// Constructed once at startup and never reconfigured.
type Data struct {
	Requests     *Collection[Models.TransportRequest]
	Drivers      *Collection[Models.Driver]
	Clients      *Collection[Models.Client]
	Rates        *Collection[Models.VehicleRate]
	Expenses     *Collection[Models.DriverExpense]
	Users        *Collection[Models.User]
	Contracts    *Collection[Models.FixedContract]
	Transactions *Collection[Models.FinancialTransaction]

	defaultRates []Models.VehicleRate
}

func NewData(gw *Gateway, defaultRates []Models.VehicleRate) *Data {
	return &Data{
		Requests: NewCollection(gw, KeyRequests, "requests",
			func(r Models.TransportRequest) string { return r.ID }),
		Drivers: NewCollection(gw, KeyDrivers, "drivers",
			func(d Models.Driver) string { return d.ID }),
		Clients: NewCollection(gw, KeyClients, "clients",
			func(c Models.Client) string { return c.ID }),
		Rates: NewCollection(gw, KeyRates, "rates",
			func(r Models.VehicleRate) string { return string(r.Type) }),
		Expenses: NewCollection(gw, KeyExpenses, "expenses",
			func(e Models.DriverExpense) string { return e.ID }),
		Users: NewCollection(gw, KeyUsers, "users",
			func(u Models.User) string { return u.ID }),
		Contracts: NewCollection(gw, KeyContracts, "contracts",
			func(c Models.FixedContract) string { return c.ID }),
		Transactions: NewCollection(gw, KeyTransactions, "transactions",
			func(t Models.FinancialTransaction) string { return t.ID }),
		defaultRates: defaultRates,
	}
}

// ResolveRates returns the stored rate table, substituting the built-in
// defaults when neither source has data yet (first run). The defaults are
// cloned so later edits never reach back into the built-in table.
func (d *Data) ResolveRates(ctx context.Context) ([]Models.VehicleRate, error) {
	rates, err := d.Rates.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return slices.Clone(d.defaultRates), nil
	}
	return rates, nil
}

// UpdateRate replaces one category's entry and syncs the full table to
// both stores, so the defaults become durable the moment they are edited
// and prefer-remote reads keep serving every category.
func (d *Data) UpdateRate(ctx context.Context, rate Models.VehicleRate) error {
	table, err := d.ResolveRates(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range table {
		if table[i].Type == rate.Type {
			table[i] = rate
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w %s", ErrUnknownRateCategory, rate.Type)
	}
	return d.Rates.SyncAll(ctx, table)
}

// EnsureUsers seeds the default accounts when the user collection has
// never been written.
func (d *Data) EnsureUsers(ctx context.Context) error {
	seeded, err := d.Users.SeedLocal(Models.InitialUsers())
	if err != nil {
		return err
	}
	if seeded {
		return d.Users.mirrorSeed(ctx)
	}
	return nil
}

// mirrorSeed pushes a freshly seeded local collection to the remote store.
// Failures are warnings like any other remote write.
func (c *Collection[T]) mirrorSeed(ctx context.Context) error {
	c.mu.Lock()
	items, err := c.readLocal()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := c.mirror(ctx, "insert", item); err != nil {
			return err
		}
	}
	return nil
}
