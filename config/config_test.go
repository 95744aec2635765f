package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goflare.io/storefront/models/enum"
)

func TestDefault_FeeTable(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5.00, cfg.Delivery.Fee(enum.DeliveryOptionStandard))
	assert.Equal(t, 10.00, cfg.Delivery.Fee(enum.DeliveryOptionExpress))
	assert.Equal(t, 7.00, cfg.Delivery.Fee(enum.DeliveryOptionEco))
	assert.Equal(t, 5.00, cfg.Delivery.Fee(enum.DeliveryOption("carrier-pigeon")))
}

func TestLoadFromYAML_OverlaysDefaults(t *testing.T) {
	cfg, err := LoadFromYAML([]byte(`
redis:
  addr: redis.internal:6380
delivery:
  fees:
    standard: 4.00
    express: 9.00
    eco: 6.00
`))
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 4.00, cfg.Delivery.Fee(enum.DeliveryOptionStandard))
	assert.Equal(t, 9.00, cfg.Delivery.Fee(enum.DeliveryOptionExpress))

	// Untouched sections keep their defaults.
	assert.Equal(t, "storefront:cart", cfg.Storage.CartKey)
}

func TestLoadFromYAML_EmptyInputIsDefaults(t *testing.T) {
	cfg, err := LoadFromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromYAML_RejectsBadInput(t *testing.T) {
	_, err := LoadFromYAML([]byte("delivery: [not, a, mapping]"))
	assert.Error(t, err)

	_, err = LoadFromYAML([]byte(`
delivery:
  fees:
    standard: -1.00
`))
	assert.Error(t, err)

	_, err = LoadFromYAML([]byte(`
storage:
  cart_key: ""
`))
	assert.Error(t, err)
}

func TestParseDeliveryOption(t *testing.T) {
	assert.Equal(t, enum.DeliveryOptionExpress, enum.ParseDeliveryOption("express"))
	assert.Equal(t, enum.DeliveryOptionStandard, enum.ParseDeliveryOption(""))
	assert.Equal(t, enum.DeliveryOptionStandard, enum.ParseDeliveryOption("EXPRESS"))
}
