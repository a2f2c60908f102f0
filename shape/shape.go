/*
Package shape provides small value helpers living next to the selector builder:
a rectangle factory and JSON (de-)serialization of plain values.

Deserialization is shape-directed: the caller names the Go type the text is to be
read into, and the value returned carries the methods of that type.

	type Box struct{ shape.Rect }
	box, err := shape.Deserialize[Box](`{"width":10,"height":20}`)
	box.Area() // 200

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shape

import (
	"errors"
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
)

// Rect is a rectangle.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rectangle creates a rectangle of a given width and height.
func Rectangle(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area returns width × height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// ErrNoTarget is returned by DeserializeInto for targets which are not non-nil pointers.
var ErrNoTarget = errors.New("shape: deserialization target must be a non-nil pointer")

// Serialize returns the JSON encoding of v. Map keys are sorted, the order of
// slices and arrays is preserved.
func Serialize(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("shape: cannot serialize %T: %w", v, err)
	}
	return string(b), nil
}

// Deserialize parses JSON text into a value of type T.
func Deserialize[T any](text string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return v, fmt.Errorf("shape: cannot deserialize into %T: %w", v, err)
	}
	return v, nil
}

// DeserializeInto parses JSON text into the value target points to. Fields of the
// target not present in the text keep their values, thus target may be pre-populated
// with defaults.
func DeserializeInto(target interface{}, text string) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrNoTarget
	}
	if err := json.Unmarshal([]byte(text), target); err != nil {
		return fmt.Errorf("shape: cannot deserialize into %T: %w", target, err)
	}
	return nil
}
