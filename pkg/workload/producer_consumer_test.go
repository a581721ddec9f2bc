package workload

import "testing"

// Scenario: 4 pairs x 1000 items at scale 1 means exactly 4000 tasks
// consumed, no loss, no duplication, queue drained.
func TestProducerConsumer_ExactCompletion(t *testing.T) {
	w := NewProducerConsumer(1, 42)

	res, err := w.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := int64(w.Pairs) * int64(w.Items)
	if res.Completed != want {
		t.Errorf("Completed = %d, want %d", res.Completed, want)
	}
	if res.Checksum == 0 {
		t.Error("Checksum = 0, consumer transform never ran")
	}
	if res.Elapsed <= 0 {
		t.Error("Elapsed should be positive")
	}
}

func TestProducerConsumer_ScaledCounts(t *testing.T) {
	w := NewProducerConsumer(3, 42)

	if w.Pairs != 12 {
		t.Errorf("Pairs = %d, want 12", w.Pairs)
	}
	if w.Items != 3000 {
		t.Errorf("Items = %d, want 3000", w.Items)
	}
	if w.QueueCap != 1000 {
		t.Errorf("QueueCap = %d, want 1000", w.QueueCap)
	}
}

// More producers than queue slots forces producers to block on a full ring;
// the count must still come out exact.
func TestProducerConsumer_SmallQueueBackpressure(t *testing.T) {
	w := &ProducerConsumer{Pairs: 8, Items: 200, QueueCap: 4, Seed: 1}

	res, err := w.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := int64(8 * 200); res.Completed != want {
		t.Errorf("Completed = %d, want %d", res.Completed, want)
	}
}

func TestProducerConsumer_InvalidQueueCapacity(t *testing.T) {
	w := &ProducerConsumer{Pairs: 1, Items: 1, QueueCap: 0, Seed: 1}

	if _, err := w.Run(); err == nil {
		t.Error("Run() with zero queue capacity should fail")
	}
}

// The same seed must produce the same checksum: the workload owns its random
// source, so nothing else can perturb it.
func TestProducerConsumer_DeterministicChecksum(t *testing.T) {
	a := &ProducerConsumer{Pairs: 2, Items: 100, QueueCap: 16, Seed: 7}
	b := &ProducerConsumer{Pairs: 2, Items: 100, QueueCap: 16, Seed: 7}

	ra, err := a.Run()
	if err != nil {
		t.Fatal(err)
	}
	rb, err := b.Run()
	if err != nil {
		t.Fatal(err)
	}

	if ra.Checksum != rb.Checksum {
		t.Errorf("checksums differ for identical seeds: %d vs %d", ra.Checksum, rb.Checksum)
	}
}
