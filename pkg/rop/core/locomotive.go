package core

import (
	"sync"

	"github.com/ib-77/outcome/internal/logging"
)

// Locomotive runs jobs from the channel one at a time until it is closed.
func Locomotive(line int, jobs <-chan func(), log *logging.Logger, wg *sync.WaitGroup) {
	defer wg.Done()

	log.Debug("line started", logging.Int(logging.Line, line))
	for job := range jobs {
		job()
	}
	log.Debug("line stopped", logging.Int(logging.Line, line))
}
