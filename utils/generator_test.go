package utils

import (
	"regexp"
	"sync"
	"testing"
)

var orderIDRE = regexp.MustCompile(`^BK-[A-Z0-9]{8}$`)
var invoiceRE = regexp.MustCompile(`^INV-[A-Z0-9]{8}$`)

func TestGenerateOrderID_Format(t *testing.T) {
	id := GenerateOrderID()
	if !orderIDRE.MatchString(id) {
		t.Errorf("order id %q does not match BK-[A-Z0-9]{8}", id)
	}
}

func TestGenerateInvoiceNumber_Format(t *testing.T) {
	num := GenerateInvoiceNumber()
	if !invoiceRE.MatchString(num) {
		t.Errorf("invoice number %q does not match INV-[A-Z0-9]{8}", num)
	}
}

// Checkout handlers mint identifiers from concurrent Fiber goroutines, so the
// generator must hold up under -race.
func TestGenerateOrderID_Concurrent(t *testing.T) {
	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	results := make([][]string, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ids := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				ids = append(ids, GenerateOrderID())
			}
			results[w] = ids
		}(w)
	}
	wg.Wait()

	for w, ids := range results {
		for _, id := range ids {
			if !orderIDRE.MatchString(id) {
				t.Fatalf("worker %d produced malformed order id %q", w, id)
			}
		}
	}
}

// Generates 2000 IDs and checks for collisions; with 36^8 possibilities this
// would only flake in astronomically unlikely circumstances.
func TestGenerateOrderID_Unique(t *testing.T) {
	const n = 2000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := GenerateOrderID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate order id %q generated on iteration %d", id, i)
		}
		seen[id] = struct{}{}
	}
}
