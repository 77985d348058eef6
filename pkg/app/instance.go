package app

import (
	"io"
	"sync"
)

// Instance tracks process lifetime: resources to close and the stop signal
// that ends WaitForFinish.
type Instance struct {
	closers  []io.Closer
	failed   bool
	stop     chan bool
	stopOnce sync.Once
}

func NewInstance() *Instance {
	return &Instance{
		stop: make(chan bool),
	}
}
