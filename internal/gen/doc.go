// Package gen renders resolved properties as C# accessor declarations and
// wraps them into per-type companion source files.
//
// Generation is deterministic: the same resolved properties always produce
// byte-identical output.
//
// Emitted shapes:
//   - Field access: get => _f; set => _f = value;
//   - Init-only setter for readonly fields: init => _f = value;
//   - Delegated access through a capsule: get => _f.Get(this); set => _f.Set(this, value);
//
// Reserved words are escaped with the verbatim identifier prefix '@'.
package gen
