/*
File    : lumen/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the name-to-value bindings the
// evaluator reads and writes. An Environment is a single lexical frame;
// frames chain through an outer link to form the scope a program sees
// at any given point.
package environment

import "github.com/akashmaji946/lumen/object"

// Environment is a mapping from identifier name to Object plus an
// optional link to the enclosing frame. Bindings are held in a Go map,
// so they have no defined order. Lookups walk outward through
// outer; writes always land in the current frame, so a `let` in an
// inner block never clobbers a binding in an enclosing one.
type Environment struct {
	store map[string]object.Object
	outer object.Environment
}

// NewEnvironment creates an empty top-level frame with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosedEnvironment creates a frame nested inside outer. Used when
// entering a function body: the new frame sees everything outer sees,
// but bindings made inside it are invisible once the call returns.
func NewEnclosedEnvironment(outer object.Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up name in this frame, then in each enclosing frame in
// turn. The bool result reports whether a binding was found anywhere
// in the chain.
func (e *Environment) Get(name string) (object.Object, bool) {
	val, ok := e.store[name]
	if !ok && e.outer != nil {
		val, ok = e.outer.Get(name)
	}
	return val, ok
}

// Set binds name to val in this frame only. It never reaches into an
// outer frame, even if name is already bound there.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}
