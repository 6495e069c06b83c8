package decorator

import "github.com/go-leo/notify/notifier"

// Builder assembles a chain without nesting constructor calls.
//
//	chain := new(decorator.Builder).
//		Use(decorator.WithUrgent()).
//		Use(decorator.WithTimestamp()).
//		Then(terminal)
type Builder struct {
	decorators []Decorator
}

// Use appends decorators to the chain, outermost first.
func (b *Builder) Use(decorators ...Decorator) *Builder {
	b.decorators = append(b.decorators, decorators...)
	return b
}

// Then terminates the chain with terminal and returns the outermost link.
// The result is identical to nested construction in Use order.
func (b *Builder) Then(terminal notifier.Notifier) notifier.Notifier {
	return Chain(terminal, b.decorators...)
}
