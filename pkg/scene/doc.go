// Package scene defines the collection of named geometry produced by
// evaluating a script. A Scene is built once by the engine and is not
// mutated afterwards; each evaluation produces a new scene.
package scene
