package nrbf

// project rewrites a raw decoded object (composite, string, primitive, or
// raw primitive-array sequence) into the plain Value tree callers see. It
// assumes all reference fix-ups have already run, so no ref placeholders
// should reach it, and that finish already rejected any composite left
// with unfilled member slots.
func project(v any) Value {
	c, ok := v.(*composite)
	if !ok {
		// Scalars, strings, nulls, and raw primitive-array sequences carry
		// no memberValues field of their own: return as-is.
		return v
	}
	if c.isArray {
		out := make([]Value, len(c.memberValues))
		for i, mv := range c.memberValues {
			out[i] = project(mv)
		}
		return out
	}
	return projectClassInstance(c)
}

// projectClassInstance collapses a member named "_items" or "value__" to
// the whole composite's projected value, discarding any sibling members
// already accumulated; otherwise it projects every member into a map keyed
// by name.
func projectClassInstance(c *composite) Value {
	result := make(map[string]Value, len(c.desc.memberNames))
	for i, name := range c.desc.memberNames {
		if i >= len(c.memberValues) {
			break
		}
		if name == "_items" || name == "value__" {
			return project(c.memberValues[i])
		}
		result[name] = project(c.memberValues[i])
	}
	return result
}
