// Package hashing keeps one hash scheme for all container types so their
// Hash methods stay consistent with their Equal methods.
package hashing

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Sum digests a variant tag followed by the payload renderings. Payloads are
// walked the way reflect.DeepEqual compares them: pointers and interfaces are
// followed to their pointees and map entries are ordered, so values that
// compare equal produce the same digest. A tag with no payloads hashes to a
// fixed constant.
func Sum(tag byte, payloads ...any) uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{tag})
	for _, p := range payloads {
		_, _ = io.WriteString(d, "/")
		writeValue(d, reflect.ValueOf(p))
	}

	return d.Sum64()
}

// writeValue renders v into w. The traversal mirrors reflect.DeepEqual's view
// of the value: nil-ness is rendered, pointer identity is not.
func writeValue(w io.Writer, v reflect.Value) {
	if !v.IsValid() {
		_, _ = io.WriteString(w, "nil")
		return
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			_, _ = io.WriteString(w, "nil")
			return
		}
		writeValue(w, v.Elem())
	case reflect.Struct:
		_, _ = io.WriteString(w, "{")
		for i := 0; i < v.NumField(); i++ {
			if i > 0 {
				_, _ = io.WriteString(w, " ")
			}
			writeValue(w, v.Field(i))
		}
		_, _ = io.WriteString(w, "}")
	case reflect.Slice:
		// nil and empty slices are not deeply equal
		if v.IsNil() {
			_, _ = io.WriteString(w, "nil")
			return
		}
		writeSeq(w, v)
	case reflect.Array:
		writeSeq(w, v)
	case reflect.Map:
		if v.IsNil() {
			_, _ = io.WriteString(w, "nil")
			return
		}
		// iteration order is random, so sort the entry renderings
		entries := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			var sb strings.Builder
			writeValue(&sb, iter.Key())
			sb.WriteString(":")
			writeValue(&sb, iter.Value())
			entries = append(entries, sb.String())
		}
		sort.Strings(entries)
		_, _ = io.WriteString(w, "map["+strings.Join(entries, " ")+"]")
	default:
		// fmt formats a reflect.Value as the concrete value it holds, which
		// also covers unexported struct fields
		_, _ = fmt.Fprintf(w, "%v", v)
	}
}

func writeSeq(w io.Writer, v reflect.Value) {
	_, _ = io.WriteString(w, "[")
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			_, _ = io.WriteString(w, " ")
		}
		writeValue(w, v.Index(i))
	}
	_, _ = io.WriteString(w, "]")
}
