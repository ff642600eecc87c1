package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

// IntList 以 JSON 形式落库的整型数组字段
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]int(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *IntList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported column type for IntList: %T", value)
	}
}
