package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        string
	FullName  string
	PayRate   decimal.Decimal
	PayUnit   PayUnit
	PayClass  PayClass
	IsActive  bool
	HireDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayUnit determines what the pay rate multiplies: worked hours or shift count.
type PayUnit string

const (
	PayUnitHourly   PayUnit = "hourly"
	PayUnitPerShift PayUnit = "per_shift"
)

// PayClass distinguishes staff on plain variable pay from managers, who
// additionally receive a fixed period stipend.
type PayClass string

const (
	PayClassRegular PayClass = "regular"
	PayClassManager PayClass = "manager"
)
