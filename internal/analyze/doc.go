// Package analyze holds the declaration model supplied by the host for one
// generation pass.
//
// The host (a compiler front end or the manifest loader) decides everything
// that requires symbol information up front, so the rest of the pipeline
// never inspects type names:
//   - TypeID: namespace + containing types + name + generic arity
//   - TypeDeclaration: an eligible type and its fields in declaration order
//   - FieldDeclaration: name, TypeRef, readonly flag, getter/setter markers
//   - TypeRef: plain type or a capsule (read-only / read-write) with its value type
package analyze
