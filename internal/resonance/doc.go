// Package resonance runs the ART1 fixed-point iteration over a prototype table.
//
// Each pass visits items in order. For an item v, active clusters are tried in
// ascending index order against two tests:
//
//	resonance: |v ∧ P| / (β + |P|) > |v| / (β + F)
//	vigilance: |v ∧ P| / |v| < ρ
//
// The first cluster passing both wins. If it is not the item's current
// cluster the item moves there. Items still unassigned after the scan get a
// fresh slot. Passes repeat until one makes no change or the budget runs out.
//
// Note the vigilance polarity: a candidate is accepted when the match ratio is
// BELOW ρ. This is intentional and changes results if inverted.
package resonance
