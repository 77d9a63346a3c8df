package services

import (
	"log"
	"sync"
	"time"
)

// AggregationWorker reruns job aggregation on a fixed interval.
type AggregationWorker interface {
	Start()
	Stop()
}

type aggregationWorker struct {
	aggregator JobAggregator
	interval   time.Duration
	wg         sync.WaitGroup
	stopChan   chan struct{}
}

func NewAggregationWorker(aggregator JobAggregator, interval time.Duration) AggregationWorker {
	return &aggregationWorker{
		aggregator: aggregator,
		interval:   interval,
		stopChan:   make(chan struct{}),
	}
}

// Start implements AggregationWorker.
func (w *aggregationWorker) Start() {
	log.Printf("🚀 Starting aggregation worker (interval: %s)\n", w.interval)

	w.wg.Add(1)
	go w.run()
}

// Stop implements AggregationWorker.
func (w *aggregationWorker) Stop() {
	log.Println("🛑 Stopping aggregation worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Aggregation worker stopped")
}

func (w *aggregationWorker) run() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Aggregation worker loop stopped")
			return
		case <-ticker.C:
			if _, err := w.aggregator.RunAggregation(nil, nil); err != nil {
				log.Printf("⚠️  Scheduled aggregation failed: %v\n", err)
			}
		}
	}
}
