// Package domain contains the core entities of the legislative model: the
// members of an assembly and the laws they may support. It is independent of
// any configuration, logging or delivery mechanism.
package domain
