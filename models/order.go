package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// OrderDateLayout is the wire format for order timestamps. No timezone.
const OrderDateLayout = "2006-01-02T15:04:05"

// OrderDate wraps time.Time so order timestamps round-trip through JSON
// and Postgres in the fixed YYYY-MM-DDTHH:MM:SS form.
type OrderDate struct {
	time.Time
}

func ParseOrderDate(value string) (OrderDate, error) {
	t, err := time.Parse(OrderDateLayout, value)
	if err != nil {
		return OrderDate{}, err
	}
	return OrderDate{t}, nil
}

func (d OrderDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(OrderDateLayout) + `"`), nil
}

func (d *OrderDate) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("order date must be a string in %s format", OrderDateLayout)
	}
	t, err := time.Parse(OrderDateLayout, string(data[1:len(data)-1]))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *OrderDate) Scan(src any) error {
	t, ok := src.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into OrderDate", src)
	}
	d.Time = t
	return nil
}

func (d OrderDate) Value() (driver.Value, error) {
	return d.Time, nil
}

type Order struct {
	ID        int       `json:"id"`
	OrderDate OrderDate `json:"order_date"`
	UserID    int       `json:"user_id"`
	Products  []Product `json:"products"`
}
