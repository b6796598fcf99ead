// Package scenario loads crossing scenarios — a named party of crossing
// costs plus a cost bound — from YAML files, and provides the built-in
// classic scenario (costs 1, 2, 5 and 10, bound 17).
//
// File format (version 1):
//
//	version: 1
//	scenario:
//	  name: classic
//	  costs: [1, 2, 5, 10]
//	  bound: 17
//
// Load validates the version, that every cost is strictly positive, and
// that the bound is positive; puzzle.NewParty re-validates costs at solve
// time, so a Scenario never smuggles an invalid party past the engine.
package scenario
