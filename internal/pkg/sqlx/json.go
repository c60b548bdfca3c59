package sqlx

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JsonColumn 以 JSON 形式落库的列，Valid 为 false 时落 NULL
type JsonColumn[T any] struct {
	Val   T
	Valid bool
}

func NewJsonColumn[T any](val T) JsonColumn[T] {
	return JsonColumn[T]{Val: val, Valid: true}
}

func (j *JsonColumn[T]) Scan(src any) error {
	var bs []byte
	switch val := src.(type) {
	case nil:
		return nil
	case []byte:
		bs = val
	case string:
		bs = []byte(val)
	default:
		return fmt.Errorf("不支持的 src 类型 %T", src)
	}
	if err := json.Unmarshal(bs, &j.Val); err != nil {
		return err
	}
	j.Valid = true
	return nil
}

func (j JsonColumn[T]) Value() (driver.Value, error) {
	if !j.Valid {
		return nil, nil
	}
	return json.Marshal(j.Val)
}
