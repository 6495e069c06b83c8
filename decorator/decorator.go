package decorator

import "github.com/go-leo/notify/notifier"

// Decorator wraps a Notifier, adding one behavior in front of it.
type Decorator func(next notifier.Notifier) notifier.Notifier

// Chain wraps terminal with all decorators. The first decorator becomes the
// outermost link, so its transformation appears first in the final payload
// and its label appears first in Describe.
func Chain(terminal notifier.Notifier, decorators ...Decorator) notifier.Notifier {
	for i := len(decorators) - 1; i >= 0; i-- {
		terminal = decorators[i](terminal)
	}
	return terminal
}
