// Package profiling writes pprof CPU and heap profiles for the demo binary.
package profiling

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
)

// DefaultMemInterval is how often StartMem rewrites the heap profile.
const DefaultMemInterval = 10 * time.Second

// StartCPU starts CPU profiling into path. The returned stop function
// flushes the profile and closes the file.
func StartCPU(path string, log logrus.FieldLogger) (stop func(), err error) {
	f, err := osCreate(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create CPU profile: %w", err)
	}
	if err = pprofStartCPUProfile(f); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to start CPU profile: %w", err), f.Close())
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			log.WithError(err).WithField("path", path).Warn("failed to close CPU profile")
		}
	}, nil
}

// StartMem writes a heap profile to path every interval until stop is
// called; stop writes a final profile.
func StartMem(path string, interval time.Duration, log logrus.FieldLogger) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				writeHeap(path, log)
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
			writeHeap(path, log)
		})
	}
}

func writeHeap(path string, log logrus.FieldLogger) {
	if err := WriteHeap(path); err != nil {
		log.WithError(err).WithField("path", path).Warn("failed to write heap profile")
	}
}

// WriteHeap replaces path with a fresh heap profile.
func WriteHeap(path string) (err error) {
	f, err := osCreate(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return pprofWriteHeapProfile(f)
}
