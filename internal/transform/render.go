package transform

import (
	"fmt"
	"strconv"
	"strings"
)

// Render prints the transformed function as Go-style source, making the
// rewrite inspectable: every parameter v gained a tangent parameter dv,
// every assignment became a paired assignment through its rule, and the
// return yields the (value, tangent) pair. The apply calls stand for the
// rules captured at transform time.
func (t *Transformed) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "func %s(", t.name)
	for i, p := range t.names[:t.args] {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s, d%s", p, p)
	}
	b.WriteString(" float64) (float64, float64) {\n")

	for _, s := range t.steps {
		lhs := t.names[s.dst]
		fmt.Fprintf(&b, "\t%s, d%s := apply(%q", lhs, lhs, string(s.op))
		for _, a := range s.args {
			if a.isLit {
				fmt.Fprintf(&b, ", %s, 0", strconv.FormatFloat(a.lit, 'g', -1, 64))
			} else {
				name := t.names[a.index]
				fmt.Fprintf(&b, ", %s, d%s", name, name)
			}
		}
		b.WriteString(")\n")
	}

	ret := t.names[t.ret]
	fmt.Fprintf(&b, "\treturn %s, d%s\n}\n", ret, ret)
	return b.String()
}
