package delivery

import (
	"github.com/klokku/worklog-report/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// Collector gathers the report files written during a run.
type Collector struct {
	attachments []string
}

func NewCollector(bus *event_bus.EventBus) *Collector {
	c := &Collector{}
	event_bus.SubscribeTyped(bus, event_bus.ReportWrittenEvent, func(e event_bus.EventT[event_bus.ReportWritten]) error {
		log.Debugf("Collected report %s for delivery", e.Data.Path)
		c.attachments = append(c.attachments, e.Data.Path)
		return nil
	})
	return c
}

func (c *Collector) Attachments() []string {
	result := make([]string, len(c.attachments))
	copy(result, c.attachments)
	return result
}
