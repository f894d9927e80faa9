package runtime

import "math/big"

// binding is one frame in the persistent chain.
type binding struct {
	name  string
	value *big.Int
	next  *binding
}

// Environment is an immutable mapping from variable name to integer value.
// It is value-like: Extend returns a new Environment sharing the receiver's
// chain, and no operation ever modifies an existing frame. A binding made
// for an assignment body is therefore invisible to anyone holding the
// original Environment.
type Environment struct {
	top *binding
}

// NewEnvironment returns an empty environment.
func NewEnvironment() Environment {
	return Environment{}
}

// Extend returns a new environment with name bound to value, shadowing any
// earlier binding of the same name.
func (e Environment) Extend(name string, value *big.Int) Environment {
	return Environment{top: &binding{name: name, value: value, next: e.top}}
}

// Get looks up a name, innermost binding first.
func (e Environment) Get(name string) (*big.Int, bool) {
	for b := e.top; b != nil; b = b.next {
		if b.name == name {
			return b.value, true
		}
	}
	return nil, false
}
