// Package measure implements the read-only measurement probe.
//
// The probe is a non-mutating variant of the drafting tool machine: it
// computes distance, angle, area, perimeter, radius and coordinate
// readouts either from manually clicked points or from selected
// entities, and never emits or mutates entities.
//
// Completed measurements accumulate in an append-only history that can
// be cleared or exported as YAML.
package measure
