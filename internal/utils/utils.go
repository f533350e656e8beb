package utils

import (
	"reflect"
	"strings"
)

// FieldNames returns the column names declared by the struct's tags (e.g.
// "db"). Fields without the tag fall back to the Go field name; fields
// tagged "-" are skipped.
func FieldNames(s interface{}, tagName string) []string {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get(tagName)
		if tag != "" {
			tagParts := strings.SplitN(tag, ",", 2)
			if tagParts[0] == "-" {
				continue
			}
			if tagParts[0] != "" {
				names = append(names, tagParts[0])
				continue
			}
		}
		names = append(names, field.Name)
	}
	return names
}

// FieldKinds returns the reflect.Kind of each exported struct field, in
// declaration order. Used to infer a destination schema from a record shape.
func FieldKinds(s interface{}) []reflect.Kind {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	kinds := make([]reflect.Kind, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		kinds[i] = t.Field(i).Type.Kind()
	}
	return kinds
}

// FieldValues returns the struct's field values in declaration order.
func FieldValues(s interface{}) []interface{} {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	row := make([]interface{}, val.NumField())
	for i := 0; i < val.NumField(); i++ {
		row[i] = val.Field(i).Interface()
	}
	return row
}
