// Package group buckets simulation records by the value of one attribute.
//
// Group is a pure function: it reads its input slice and the records'
// accessors and writes only to the mapping it returns. It is safe to call
// concurrently on independent inputs.
//
// STRATEGY SELECTION:
//
// The strategy is chosen by probing the first record (after the optional
// started filter):
//  1. If the record has the attribute, every record is keyed by the canonical
//     string form of that attribute (param.Format). All records must have it.
//  2. Otherwise, if the attribute is one of "Lx", "Ly", "Lz", every record is
//     keyed by the first component of its domain-size vector.
//  3. Otherwise grouping fails.
//
// KNOWN QUIRK:
//
// The domain-size strategy always reads the first component, even when "Ly"
// or "Lz" is requested. Existing analysis scripts depend on this, so it is
// kept until a product decision says otherwise.
//
// ORDERING:
//
// Groups iterate in first-encounter order, or in natural order of their keys
// (package natsort) when Options.Sort is set. Records inside a group keep
// their input order.
package group
