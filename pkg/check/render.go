package check

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// renderConfig keeps composite-value rendering deterministic:
// map keys are sorted and pointer addresses suppressed, so the
// same value always produces the same bytes.
var renderConfig = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// debugString renders a captured operand value for diagnostics.
// Types choose their own representation via fmt.Stringer or
// error; strings are quoted; scalars print plainly; composite
// values go through spew.
func debugString(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", v)
	case reflect.String:
		return strconv.Quote(rv.String())
	}

	return strings.TrimSuffix(
		renderConfig.Sprintf("%v", v), "\n",
	)
}
