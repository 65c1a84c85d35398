package nutrition

import (
	"fmt"
	"strings"
)

// MethodOption is one measurement method a food can be logged with,
// plus the serving-size narrative shown next to the quantity field.
type MethodOption struct {
	Method      MeasurementMethod `json:"method"`
	PerPortion  float64           `json:"per_portion"`
	Description string            `json:"description"`
}

// encodedMethods is the fixed offering order for encoding-keyed methods.
var encodedMethods = []MeasurementMethod{
	MethodGrams,
	MethodCups,
	MethodTablespoons,
	MethodItems,
}

// Methods resolves which measurement methods a food record offers. A
// method is offered iff its encoding is present and strictly positive.
// Foods in direct-unit categories with no encodings resolve to the
// single direct method; the per-unit rates on such records already
// describe one user-facing unit.
func Methods(f Food) []MethodOption {
	var opts []MethodOption
	for _, m := range encodedMethods {
		v := f.encoding(m)
		if v > 0 {
			opts = append(opts, MethodOption{
				Method:      m,
				PerPortion:  v,
				Description: describeServing(m, v),
			})
		}
	}
	if len(opts) == 0 && f.Category.UsesDirectUnits() {
		opts = append(opts, MethodOption{
			Method:      MethodDirect,
			PerPortion:  1,
			Description: "one serving",
		})
	}
	return opts
}

// HasMethod reports whether a food offers the given method.
func HasMethod(f Food, m MeasurementMethod) bool {
	if m == MethodDirect {
		return f.Category.UsesDirectUnits()
	}
	return f.encoding(m) > 0
}

// ServingDescription builds the "what is one portion" narrative for a
// food. All available measurements equal one portion, so multiple
// narratives are joined with "=":
//
//	One portion = 30 grams = one item
func ServingDescription(f Food) string {
	opts := Methods(f)
	if len(opts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		parts = append(parts, o.Description)
	}
	return "One portion = " + strings.Join(parts, " = ")
}

var methodUnits = map[MeasurementMethod][2]string{
	MethodGrams:       {"gram", "grams"},
	MethodCups:        {"cup", "cups"},
	MethodTablespoons: {"tablespoon", "tablespoons"},
	MethodItems:       {"item", "items"},
}

func describeServing(m MeasurementMethod, perPortion float64) string {
	units, ok := methodUnits[m]
	if !ok {
		return "one serving"
	}
	if perPortion == 1 {
		return "one " + units[0]
	}
	return fmt.Sprintf("%g %s", perPortion, units[1])
}
