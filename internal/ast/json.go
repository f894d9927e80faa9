package ast

import "let-lang/internal/span"

// NodeToMap converts an expression to a map suitable for JSON serialization.
// This produces a tagged-union structure: every node has a "kind" field.
// Integer values are rendered as strings so arbitrary-precision literals
// survive JSON's numeric range.
func NodeToMap(expr Expr) map[string]interface{} {
	if expr == nil {
		return nil
	}

	switch e := expr.(type) {
	case *IntLiteral:
		return m("IntLiteral", e.Span, "value", e.Value.String())
	case *VarRef:
		return m("VarRef", e.Span, "name", e.Name)
	case *Assign:
		return m("Assign", e.Span,
			"name", e.Name,
			"value", NodeToMap(e.Value),
			"body", NodeToMap(e.Body))
	case *Sum:
		return m("Sum", e.Span, "left", NodeToMap(e.Left), "right", NodeToMap(e.Right))
	case *Difference:
		return m("Difference", e.Span, "left", NodeToMap(e.Left), "right", NodeToMap(e.Right))
	case *Product:
		return m("Product", e.Span, "left", NodeToMap(e.Left), "right", NodeToMap(e.Right))
	case *Quotient:
		return m("Quotient", e.Span, "left", NodeToMap(e.Left), "right", NodeToMap(e.Right))
	case *Negation:
		return m("Negation", e.Span, "operand", NodeToMap(e.Operand))
	default:
		return m("Unknown", expr.GetSpan())
	}
}

// m builds a node map from a kind, a span, and key/value pairs.
func m(kind string, s span.Span, kv ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": s.String(),
	}
	for i := 0; i+1 < len(kv); i += 2 {
		result[kv[i].(string)] = kv[i+1]
	}
	return result
}
