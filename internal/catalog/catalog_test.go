package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.Destinations)

	d, ok := c.Find("paris")
	require.True(t, ok)
	assert.Equal(t, int64(1000), d.Price)
	assert.Equal(t, "/checkout-destination/?destination=Paris&price=1000", d.CheckoutURL())
}

func TestCheckoutURLEscapesName(t *testing.T) {
	d := Destination{Name: "Cape Town", Price: 1200}
	assert.Equal(t, "/checkout-destination/?destination=Cape+Town&price=1200", d.CheckoutURL())
}

func TestParseRejectsBadEntries(t *testing.T) {
	_, err := Parse([]byte("destinations:\n  - name: ''\n    price: 10\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("destinations:\n  - name: Oslo\n    price: -1\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("destinations: ["))
	assert.Error(t, err)
}
