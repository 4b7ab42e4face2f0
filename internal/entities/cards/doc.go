// Package cards defines the card-forge domain model: elements, creature classes,
// item categories and types, the Creature card, the Item sum type and the CardSet.
//
// The lookup tables in this package are fixed at compile time and never mutated.
// Accessors return copies so callers cannot alter them.
package cards
