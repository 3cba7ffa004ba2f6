package shortage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShortfallCost(t *testing.T) {
	cases := []struct {
		name        string
		systemCount int64
		actualCount int64
		unitPrice   string
		want        string
	}{
		{"missing stock", 5, 3, "20", "40"},
		{"exact count", 5, 5, "20", "0"},
		{"overage is not a shortage", 3, 7, "20", "0"},
		{"fractional unit price", 10, 7, "1.25", "3.75"},
		{"zero price", 5, 0, "0", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Shortage{
				SystemCount: c.systemCount,
				ActualCount: c.actualCount,
				UnitPrice:   decimal.RequireFromString(c.unitPrice),
			}
			assert.True(t, s.ShortfallCost().Equal(decimal.RequireFromString(c.want)),
				"got %s, want %s", s.ShortfallCost(), c.want)
			assert.False(t, s.ShortfallCost().IsNegative())
		})
	}
}

func TestChargeable(t *testing.T) {
	assert.True(t, Shortage{}.Chargeable())
	assert.False(t, Shortage{Resolved: true}.Chargeable())
	assert.False(t, Shortage{Excluded: true}.Chargeable())
	assert.False(t, Shortage{Resolved: true, Excluded: true}.Chargeable())
}
