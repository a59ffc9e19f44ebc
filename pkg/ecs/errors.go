package ecs

import "errors"

// ErrPoisoned is returned by Registry and Token operations once the
// registry's internal mutex has been poisoned by a panic in a goroutine
// that held it. Poisoning is emulated in registry.go via a recovered
// panic that flips an internal flag. Every subsequent call against that
// Registry fails the same way until a new one is built.
var ErrPoisoned = errors.New("ecs: registry poisoned by a prior panic")
