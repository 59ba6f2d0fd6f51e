// Package refs rewrites the textual references carried in statement
// arguments when statements move across module or container boundaries.
//
// Three kinds of reference are handled:
//
//   - names of features, identities and typedefs (Qualify, QualifyTypedef,
//     RetypeStateRefs)
//   - relative leafref paths, whose leading "../" steps must track the
//     number of data levels inserted above a leaf (FixLeafrefPath,
//     FixSubtreeLeafrefs)
//   - container names appearing as leafref path steps (RenamePathSegments)
package refs
