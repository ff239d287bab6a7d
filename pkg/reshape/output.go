package reshape

import "strings"

// ResolveOutput resolves an output template against root/working, per
// spec.md §4.3. A missing template, or one that is an empty object,
// defaults to returning working whole — callers pass hasTemplate=false
// when the DSL config omitted the "output" key entirely.
func ResolveOutput(root, working, template Value, hasTemplate bool) Value {
	if !hasTemplate {
		return working
	}
	if obj, ok := template.Object(); ok && len(obj) == 0 {
		return working
	}
	return resolveTemplate(root, working, template)
}

func resolveTemplate(root, working, template Value) Value {
	switch template.Kind() {
	case KindString:
		s, _ := template.String()
		switch {
		case s == "$root":
			return root
		case strings.HasPrefix(s, "$root."):
			return GetPath(root, strings.TrimPrefix(s, "$root."))
		case s == "$working":
			return working
		case strings.HasPrefix(s, "$working."):
			return GetPath(working, strings.TrimPrefix(s, "$working."))
		default:
			// Not a recognized prefix form (including a bare "$rootfoo" that
			// fails the "empty or starts with '.'" rule) — treated literally.
			return template
		}
	case KindObject:
		obj, _ := template.Object()
		out := make(map[string]Value, len(obj))
		for k, v := range obj {
			out[k] = resolveTemplate(root, working, v)
		}
		return Obj(out)
	default:
		// Arr and primitives are literal — the output template does not
		// recurse into array elements, per spec.md §4.3.
		return template
	}
}
