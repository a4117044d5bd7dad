package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// JSON-backed column types. MySQL returns JSON columns as []byte; on the way
// in they are marshalled so the whole document round-trips through a single
// row.

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

type PersonList []Person

func (l PersonList) Value() (driver.Value, error) {
	if l == nil {
		l = PersonList{}
	}
	return json.Marshal(l)
}

func (l *PersonList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

type BillExpenseList []BillExpense

func (l BillExpenseList) Value() (driver.Value, error) {
	if l == nil {
		l = BillExpenseList{}
	}
	return json.Marshal(l)
}

func (l *BillExpenseList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

type BudgetExpenseList []BudgetExpense

func (l BudgetExpenseList) Value() (driver.Value, error) {
	if l == nil {
		l = BudgetExpenseList{}
	}
	return json.Marshal(l)
}

func (l *BudgetExpenseList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

type ShareMap map[string]float64

// FlexFloat decodes from a JSON number or a numeric string. Anything that
// does not parse (including null) decodes to 0, matching the permissive
// parseFloat-or-default contract of the API.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}
