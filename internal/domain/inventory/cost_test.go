package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntryTotalCost_SinRecargo(t *testing.T) {
	got := EntryTotalCost(
		decimal.RequireFromString("100"),
		decimal.RequireFromString("2.00"),
		decimal.RequireFromString("10"),
		decimal.RequireFromString("5"),
		decimal.RequireFromString("5"),
		decimal.Zero,
	)
	assert.True(t, got.Equal(decimal.RequireFromString("220")), "obtuvo %s", got)
}

func TestEntryTotalCost_ConRecargoProveedor(t *testing.T) {
	// 10 * 10 = 100, +10% ST = 110
	got := EntryTotalCost(
		decimal.RequireFromString("10"),
		decimal.RequireFromString("10"),
		decimal.Zero, decimal.Zero, decimal.Zero,
		decimal.RequireFromString("10"),
	)
	assert.True(t, got.Equal(decimal.RequireFromString("110")), "obtuvo %s", got)
}
