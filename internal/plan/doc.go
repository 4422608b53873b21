// Package plan provides the resolution pipeline that turns declared fields
// into resolved property specifications consumed by code generation.
//
// Resolution pipeline, per type:
//  1. Resolve the type-level configuration over the built-in defaults
//  2. For each candidate field in declaration order:
//     - Layer the member-level override
//     - Classify: derive the name, detect capsule delegation, validate markers
//     - Reject names that collide with earlier properties or declared members
//  3. Return the ordered properties and every diagnostic, in field order
//
// A Pass owns the set of types already processed, so a type reported from
// several partial fragments is resolved once.
package plan
