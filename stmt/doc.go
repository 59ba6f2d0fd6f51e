// Package stmt provides the statement tree that every conversion pass in
// yangstyle operates on.
//
// # Overview
//
// A schema document is a tree of Statement values. Each statement has a
// keyword (a bare keyword such as "container" or a prefixed extension such as
// "oc-ext:openconfig-version"), an optional argument and an ordered list of
// children. Child order is significant and is normally brought into canonical
// order by the grammar package before a tree is serialized.
//
// # Ownership
//
// A statement is owned by exactly one parent, through the parent's Children
// slice. The Parent field is a back reference only. All structural edits go
// through Move (or the helpers built on it: Append, InsertAt, SetChildren,
// Replace) so that both ends of the link are updated together:
//
//	leaf := stmt.New("leaf", "mtu", stmt.New("type", "uint16"))
//	if err := container.Append(leaf); err != nil {
//	    // leaf is an ancestor of container
//	}
//
// Move refuses to create a cycle and reports a *StructuralError, which
// wraps ErrStructural.
//
// # Annotations
//
// Statements carry facts computed by an external validator (or by the
// annotate package):
//
//   - Config: tri-state is-configurable mark; ConfigUnset means inherit.
//   - Module: the owning module, its own prefix and its import prefixes.
//   - Target: the resolved definition for uses/type/base/if-feature.
//
// EffectiveConfig resolves inheritance: the nearest explicit mark on the
// statement or its ancestors wins, otherwise the module default (true).
//
// # Copying
//
// Copy produces a deep, detached copy sharing no node with its source.
// The CopyPolicy argument decides what happens to the Config annotation:
// CopyAnnotations carries it verbatim, RecomputeConfig resets it so the copy
// inherits config-ness from wherever it is attached next. Module, Target and
// Pos are always carried.
//
// # Thread Safety
//
// Statement trees are not safe for concurrent use.
package stmt
