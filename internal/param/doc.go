// Package param provides the typed attribute values carried by simulation
// records.
//
// A simulation's run parameters (viscosity, resolution, initial condition
// names, ...) are stored as Params, a name to Value map. Value is sealed:
// only String, Int, Float, Bool and Array implement it. Nested mappings are
// rejected at decode time so every value has a single, flat string form.
//
// Format produces that string form. It is the identity used when records are
// bucketed by a parameter, so it must be deterministic:
//   - strings are NFC normalized
//   - floats use the shortest representation that round-trips (1.0 -> "1")
//   - arrays format as "[a, b, c]"
package param
