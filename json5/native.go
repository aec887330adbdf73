package json5

// Native converts a parsed [Value] into a plain Go value built from the
// same primitives encoding/json uses: nil, bool, float64, string,
// map[string]any (for objects), and []any (for arrays). This is a
// convenience for callers that want to consume JSON5 data without
// walking the typed [Value] tree.
func Native(v Value) any {
	switch v := v.(type) {
	case Null:
		return nil
	case Boolean:
		return v.True
	case String:
		return v.Value()
	case Number:
		return v.Value()
	case Object:
		m := make(map[string]any, len(v.Members))
		for _, member := range v.Members {
			m[memberNameString(member.Name)] = Native(member.Value)
		}
		return m
	case Array:
		a := make([]any, len(v.Elements))
		for i, el := range v.Elements {
			a[i] = Native(el)
		}
		return a
	default:
		return nil
	}
}

func memberNameString(n MemberName) string {
	switch n := n.(type) {
	case IdentifierName:
		return identifierSV(n.Ident)
	case StringName:
		return String{Lit: n.Lit}.Value()
	default:
		return ""
	}
}
