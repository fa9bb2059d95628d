package errors

import "fmt"

var (
	ErrAggregatorPanic   = fmt.Errorf("aggregator panic")
	ErrInvalidRecord     = fmt.Errorf("invalid message record")
	ErrUnsupportedFormat = fmt.Errorf("unsupported transcript format")
	ErrChatNotFound      = fmt.Errorf("chat not found")
	ErrInvalidChatName   = fmt.Errorf("chat name must be non-empty and free of colons")
)
