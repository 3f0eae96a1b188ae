package cleanup

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse registration order, so resources
// are released before the ones they were built on. Every job runs even if an
// earlier one fails; the errors are joined. Jobs are forgotten after the run.
func CleanUp() error {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()

	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		log.Printf("Cleanup job %s started...", j.Name)
		if err := j.F(); err != nil {
			log.Printf("Job finished with error: %v", err)
			errs = append(errs, fmt.Errorf("%s: %w", j.Name, err))
			continue
		}
		log.Println("Cleaned")
	}
	return errors.Join(errs...)
}
