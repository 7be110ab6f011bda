package chrono

import "sync"

// task fans fn out over data in contiguous chunks, one goroutine per
// chunk, and waits for completion. Items must be independent: the contact
// phase it drives touches one contact and one cache slot per item.
func task[T any](workersCount int, data []T, fn func(data T)) {
	if len(data) == 0 {
		return
	}
	if workersCount < 1 {
		workersCount = 1
	}
	chunkSize := (len(data) + workersCount - 1) / workersCount

	var wg sync.WaitGroup
	for start := 0; start < len(data); start += chunkSize {
		chunk := data[start:min(start+chunkSize, len(data))]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, item := range chunk {
				fn(item)
			}
		}()
	}
	wg.Wait()
}
