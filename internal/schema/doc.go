// Package schema parses field-type schemas and classifies decoded values.
//
// A schema is an ordered list of field declarations, not a map: when a
// line fails validation on several fields at once, the errors come out
// in schema order, so declaration order must survive parsing. Three
// input shapes are supported:
//
//   - JSON documents: {"trace_id": "str", "reward": "float"}
//   - YAML documents: trace_id: str
//   - CLI pairs:      --field trace_id=str --field reward=float
//
// # Type vocabulary
//
// Declarable types are str, int, float, bool, list and dict. A value's
// dynamic type is classified with the same vocabulary plus null. The
// int/float split follows the JSON literal: 3 is an int, 3.0 and 3e2
// are floats. Unrecognized declared types produce no check at all; a
// schema can carry them without failing anything.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package schema
