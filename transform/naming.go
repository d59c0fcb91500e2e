package transform

import (
	"strings"

	"github.com/specforge/monomorph/model"
)

// userDefinedTag renders a UserDefinedValue nested inside another argument.
const userDefinedTag = "UserDefined"

// ExpandedName returns the canonical name of name instantiated with args.
//
// Without arguments the name is unchanged. Otherwise a fragment is appended
// to the local name for each argument; top-level UserDefinedValue arguments
// contribute nothing, so a root type bound only to caller-supplied values
// keeps its name. The namespace is preserved.
//
// Arguments must already be expanded: an InstanceOf contributes only the
// local name of its target. Distinct instantiations can therefore produce
// the same name (e.g., the same local name in two namespaces); they are
// treated as the same type.
func ExpandedName(name model.TypeName, args []model.ValueOf) model.TypeName {
	if len(args) == 0 {
		return name
	}

	var b strings.Builder
	b.WriteString(name.Name)
	for _, arg := range args {
		if _, ok := arg.(*model.UserDefinedValue); ok {
			continue
		}
		writeValueName(&b, arg)
	}

	return model.TypeName{Namespace: name.Namespace, Name: b.String()}
}

// writeValueName appends the name fragment of v to b.
func writeValueName(b *strings.Builder, v model.ValueOf) {
	switch v := v.(type) {
	case *model.LiteralValue:
		b.WriteString(v.String())
	case *model.UserDefinedValue:
		b.WriteString(userDefinedTag)
	case *model.ArrayOf:
		b.WriteString("Array")
		writeValueName(b, v.Value)
	case *model.DictionaryOf:
		// Keys are string-like and never distinguish instantiations.
		b.WriteString("Dict")
		writeValueName(b, v.Value)
	case *model.UnionOf:
		b.WriteString("Union")
		for _, item := range v.Items {
			writeValueName(b, item)
		}
	case *model.InstanceOf:
		b.WriteString(v.Type.Name)
	case nil:
	default:
		panic("transform: unknown value kind " + v.Kind().String())
	}
}
