package log

import "github.com/ethereum/go-ethereum/log"

// NewNopLogger returns a logger that doesn't do anything.
func NewNopLogger() Logger {
	l := log.New()
	l.SetHandler(log.DiscardHandler())
	return l
}
