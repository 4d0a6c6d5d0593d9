//go:build !layoutdebug

package tree

func (a *arena) assertInvariants() {}
