package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Vector 向量列类型，以JSON数组形式存储。nil 表示尚未生成
type Vector []float64

func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (v *Vector) Scan(src interface{}) error {
	if src == nil {
		*v = nil
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return fmt.Errorf("cannot scan %T into Vector", src)
	}
}

func (Vector) GormDataType() string {
	return "json"
}

// StringList 字符串列表列类型，以JSON数组形式存储
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, l)
	case string:
		return json.Unmarshal([]byte(data), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

func (StringList) GormDataType() string {
	return "json"
}
