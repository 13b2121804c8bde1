package gomap

import (
	"fmt"
	"reflect"
	"strings"
)

// fieldTag is the parsed form of a `cv:"name,omitempty"` struct tag.
type fieldTag struct {
	name      string
	omitEmpty bool
	skip      bool
}

func parseTag(f reflect.StructField) fieldTag {
	tag := f.Tag.Get("cv")
	if tag == "-" {
		return fieldTag{skip: true}
	}
	res := fieldTag{name: f.Name}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		res.name = parts[0]
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			res.omitEmpty = true
		}
	}
	return res
}

func fieldPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func elemPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
