package notifier

import "github.com/Tydus/wordleharmony/internal/join"

// Notifier receives the statistics of every finished join.
type Notifier interface {
	Notify(stats *join.Stats) error
}

// Collector keeps every notification in order.
type Collector struct {
	Stats []join.Stats
}

func (c *Collector) Notify(stats *join.Stats) error {
	c.Stats = append(c.Stats, *stats)
	return nil
}
