package screen_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/application/screen"
)

func customer(id int64, name, phone, kind string, amount int64) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID: id,
		CustomerRequest: dto.CustomerRequest{
			CustomerName: name,
			PhoneNumber:  phone,
			CustomerType: kind,
			TotalAmount:  decimal.NewFromInt(amount),
		},
	}
}

func names(list []dto.CustomerResponse) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.CustomerName
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtering
// ──────────────────────────────────────────────────────────────────────────────

func TestTable_FilterIsCaseInsensitive(t *testing.T) {
	tbl := screen.NewTable(screen.Customers())
	tbl.Load([]dto.CustomerResponse{
		customer(1, "Ada Obi", "08011112222", "New", 4500),
		customer(2, "John Smith", "08099998888", "Returning", 1000),
	})

	tbl.SetQuery("obi")
	assert.Equal(t, []string{"Ada Obi"}, names(tbl.Visible()))

	tbl.SetQuery("OBI")
	assert.Equal(t, []string{"Ada Obi"}, names(tbl.Visible()))

	tbl.SetQuery("0809")
	assert.Equal(t, []string{"John Smith"}, names(tbl.Visible()), "phone is searchable")

	tbl.SetQuery("")
	assert.Len(t, tbl.Visible(), 2, "empty query restores the full list")
}

func TestTable_StatsIgnoreQuery(t *testing.T) {
	tbl := screen.NewTable(screen.Customers())
	tbl.Load([]dto.CustomerResponse{
		customer(1, "Ada Obi", "1", "New", 4500),
		customer(2, "John Smith", "2", "Returning", 1000),
	})
	before := tbl.Stats()

	tbl.SetQuery("obi")
	require.Len(t, tbl.Visible(), 1)
	after := tbl.Stats()

	assert.Equal(t, before, after)
	assert.Equal(t, screen.Stat{Label: "Total customers", Value: "2"}, after[0])
	assert.Equal(t, screen.Stat{Label: "Returning customers", Value: "1"}, after[1])
	assert.Equal(t, screen.Stat{Label: "Total revenue", Value: "₦5,500.00"}, after[2])
}

func TestTable_UnicodeFolding(t *testing.T) {
	got := screen.Filter([]string{"Émile Okafor", "Emeka Eze"}, "ÉMILE", func(s string) []string { return []string{s} })
	assert.Equal(t, []string{"Émile Okafor"}, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// States
// ──────────────────────────────────────────────────────────────────────────────

func TestTable_States(t *testing.T) {
	tbl := screen.NewTable(screen.Suppliers())
	assert.Equal(t, screen.Loading, tbl.State())
	assert.False(t, tbl.Empty())

	tbl.Load(nil)
	assert.Equal(t, screen.Ready, tbl.State())
	assert.True(t, tbl.Empty())

	tbl.Load([]dto.SupplierResponse{{ID: 1, SupplierRequest: dto.SupplierRequest{SupplierName: "Agro Ltd"}}})
	boom := errors.New("connection refused")
	tbl.Fail(boom)
	assert.Equal(t, screen.Failed, tbl.State())
	assert.ErrorIs(t, tbl.Err(), boom)
	assert.Nil(t, tbl.Visible(), "no rows next to an error")
	assert.Nil(t, tbl.Stats())
	assert.False(t, tbl.Empty())
}

func TestInventoryStats_LowStockUsesComputedStatus(t *testing.T) {
	tbl := screen.NewTable(screen.Inventory())
	tbl.Load([]dto.InventoryResponse{
		{ID: 1, ItemName: "Rose seeds", QuantityInStock: 3, RestockLevel: 5, CostPrice: decimal.NewFromInt(100)},
		{ID: 2, ItemName: "Hoe", QuantityInStock: 0, RestockLevel: 5, CostPrice: decimal.NewFromInt(2500)},
		{ID: 3, ItemName: "Compost", QuantityInStock: 40, RestockLevel: 5, CostPrice: decimal.NewFromInt(50)},
	})

	stats := tbl.Stats()
	assert.Equal(t, "3", stats[0].Value)
	assert.Equal(t, "2", stats[1].Value)
	assert.Equal(t, "₦2,300.00", stats[2].Value)
}

func TestAppointments_GroupedByDate(t *testing.T) {
	appt := func(id int64, client, date string) dto.AppointmentResponse {
		return dto.AppointmentResponse{ID: id, AppointmentRequest: dto.AppointmentRequest{ClientName: client, Service: "Lawn care", Date: date}}
	}
	tbl := screen.NewTable(screen.Appointments())
	tbl.Load([]dto.AppointmentResponse{
		appt(1, "Ada", "2026-03-02"),
		appt(2, "Bola", "2026-03-01"),
		appt(3, "Chi", "2026-03-02"),
	})

	groups := tbl.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "2026-03-01", groups[0].Key)
	assert.Equal(t, "2026-03-02", groups[1].Key)
	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, "Ada", groups[1].Items[0].ClientName)

	assert.Nil(t, screen.NewTable(screen.Clients()).Groups())
}
