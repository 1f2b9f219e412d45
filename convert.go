package argparser

import (
	"reflect"
	"strconv"

	"github.com/muir/reflectutils"
)

var (
	intSetter  = mustSetter(reflect.TypeOf(int(0)))
	boolSetter = mustSetter(reflect.TypeOf(false))
)

func mustSetter(t reflect.Type) func(reflect.Value, string) error {
	setter, err := reflectutils.MakeStringSetter(t)
	if err != nil {
		panic(err.Error())
	}
	return setter
}

func decodeInt(text string) (int, error) {
	var i int
	err := intSetter(reflect.ValueOf(&i).Elem(), text)
	return i, err
}

func decodeFlag(text string) (bool, error) {
	var b bool
	err := boolSetter(reflect.ValueOf(&b).Elem(), text)
	return b, err
}

func encodeFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// checkText makes sure that text can later be converted to
// the option's type.
func checkText(vt ValueType, text string) error {
	switch vt {
	case Integer:
		_, err := decodeInt(text)
		return err
	case Flag:
		_, err := decodeFlag(text)
		return err
	}
	return nil
}

func encodeInt(i int) string {
	return strconv.Itoa(i)
}
