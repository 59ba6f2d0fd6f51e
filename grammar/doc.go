// Package grammar holds the canonical statement ordering table and the
// operations that bring a statement's children into that order.
//
// A Table maps a keyword to an ordered list of slots. A slot holds one or
// more keywords of equal rank; all data definition statements share one slot
// so that their relative order, which carries meaning, is never changed.
// Keywords that the table does not know for a parent (extensions such as
// "oc-ext:openconfig-version", or unknown statements) sort after all known
// ones, keeping their original relative order. Sorting is stable, which makes
// it idempotent.
//
// Default returns the built-in table for YANG 1.1. LoadTable reads a table
// from YAML or JSON:
//
//	container: [when, if-feature, must, presence, config, status,
//	            description, reference, typedef, grouping,
//	            [container, leaf, leaf-list, list, choice, anydata, anyxml, uses],
//	            action, notification]
package grammar
