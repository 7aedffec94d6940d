package tempo

import (
	"context"
	"sync"
	"time"
)

type ClientStub struct {
	mu       sync.RWMutex
	worklogs map[stubKey][]Worklog
	failures map[stubKey]error
	calls    []time.Time
}

type stubKey struct {
	accountId string
	date      string
}

func NewClientStub() *ClientStub {
	return &ClientStub{
		worklogs: make(map[stubKey][]Worklog),
		failures: make(map[stubKey]error),
	}
}

func (c *ClientStub) GetWorklogs(ctx context.Context, accountId string, day time.Time) ([]Worklog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, day)
	key := stubKey{accountId, day.Format(dateLayout)}
	if err := c.failures[key]; err != nil {
		return nil, err
	}

	result := make([]Worklog, len(c.worklogs[key]))
	copy(result, c.worklogs[key])
	return result, nil
}

// AddWorklogs registers worklogs returned for the given worker and day.
func (c *ClientStub) AddWorklogs(accountId string, day time.Time, worklogs ...Worklog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := stubKey{accountId, day.Format(dateLayout)}
	c.worklogs[key] = append(c.worklogs[key], worklogs...)
}

// FailDay makes every request for the given worker and day return err.
func (c *ClientStub) FailDay(accountId string, day time.Time, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[stubKey{accountId, day.Format(dateLayout)}] = err
}

func (c *ClientStub) Calls() []time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]time.Time, len(c.calls))
	copy(result, c.calls)
	return result
}

func (c *ClientStub) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.worklogs = make(map[stubKey][]Worklog)
	c.failures = make(map[stubKey]error)
	c.calls = nil
}
