package impl

import (
	"testing"
	"time"

	"bistro/config"
	"bistro/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandCartLines(t *testing.T) {
	serves := 10
	lines := expandCartLines([]entity.CartItem{
		{
			ItemName:       "Phad Thai",
			Price:          decimal.RequireFromString("65.00"),
			Quantity:       2,
			SelectedServes: &serves,
			SelectedSize:   "Half",
			Upgrade48Qty:   1,
			Upgrade24Qty:   2,
			AddOnQty:       1,
		},
	})

	require.Len(t, lines, 4)

	assert.Equal(t, "Phad Thai (Serves 10) (Half Tray)", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "65.00", lines[0].UnitPrice)
	assert.Equal(t, "130.00", lines[0].LineTotal)

	assert.Equal(t, "Upgrade: Pad Thai (48 oz)", lines[1].Name)
	assert.Equal(t, "24.00", lines[1].UnitPrice)
	assert.Equal(t, "24.00", lines[1].LineTotal)

	assert.Equal(t, "Upgrade: Pad Thai (24 oz)", lines[2].Name)
	assert.Equal(t, "12.00", lines[2].UnitPrice)
	assert.Equal(t, "24.00", lines[2].LineTotal)

	// A half tray takes the 16oz sauce at the lower price.
	assert.Equal(t, "Add-on: Jao Sauce (16oz)", lines[3].Name)
	assert.Equal(t, "15.00", lines[3].UnitPrice)
	assert.Equal(t, "15.00", lines[3].LineTotal)
}

func TestExpandCartLines_AddOnVariants(t *testing.T) {
	lines := expandCartLines([]entity.CartItem{
		{
			ItemName:     "Sai Ua Sausage",
			Price:        decimal.RequireFromString("90.00"),
			Quantity:     1,
			SelectedSize: "Full",
			AddOnQty:     2,
		},
	})

	require.Len(t, lines, 2)
	assert.Equal(t, "Add-on: Prik Noom Sauce (32oz)", lines[1].Name)
	assert.Equal(t, "25.00", lines[1].UnitPrice)
	assert.Equal(t, "50.00", lines[1].LineTotal)
}

func TestRenderOrderEmails_ItemTable(t *testing.T) {
	restaurant := &config.RestaurantConfig{
		Name:              "Misa's Thai Kitchen",
		NotificationEmail: "orders@example.com",
		ContactEmail:      "hello@example.com",
		ContactPhone:      "555-0100",
	}
	order := &entity.Order{
		CustomerName:    "Alice Example",
		CustomerEmail:   "alice@example.com",
		DeliveryAddress: "12 Main St",
		DeliveryDate:    time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		Total:           decimal.RequireFromString("154.00"),
		Payload: entity.OrderPayload{
			Items: []entity.CartItem{
				{
					ItemName:     "Phad Thai",
					Price:        decimal.RequireFromString("65.00"),
					Quantity:     2,
					SelectedSize: "Half",
					Upgrade24Qty: 2,
				},
			},
		},
	}

	messages := renderOrderEmails(restaurant, order)
	require.Len(t, messages, 2)

	for _, message := range messages {
		assert.Contains(t, message.HTMLBody, "Phad Thai (Half Tray)")
		assert.Contains(t, message.HTMLBody, "$130.00", "base row carries the line total")
		assert.Contains(t, message.HTMLBody, "Upgrade: Pad Thai (24 oz)")
		assert.Contains(t, message.HTMLBody, "$24.00", "upgrade row is priced")

		assert.Contains(t, message.PlainTextBody, "Phad Thai (Half Tray) x2 @ $65.00 - $130.00")
		assert.Contains(t, message.PlainTextBody, "Upgrade: Pad Thai (24 oz) x2 @ $12.00 - $24.00")
	}
}
