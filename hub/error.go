package hub

import "errors"

var (
	// ErrTopicEmpty topic is empty
	ErrTopicEmpty = errors.New("topic is empty")

	// ErrNotifierNil notifier arg is nil
	ErrNotifierNil = errors.New("notifier is nil")

	// ErrNotifierIncomparable notifier's type is not comparable, so it could
	// never be unsubscribed
	ErrNotifierIncomparable = errors.New("notifier is incomparable")

	// ErrHubClosed hub is closed
	ErrHubClosed = errors.New("hub is closed")
)
