package pdfexport

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// IsFilled значение задано: не nil, не пустая строка из пробелов, не пустой список
func IsFilled(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []interface{}:
		return len(v) > 0
	case []string:
		return len(v) > 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return IsFilled(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return rv.Len() > 0
	}
	return true
}

// formatAnswer строковое представление ответа, списки через запятую
func formatAnswer(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatAnswer(item))
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(v, ",")
	case map[string]interface{}:
		body, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(body)
	case nil:
		return ""
	}
	return fmt.Sprint(value)
}
