package utils

import (
	"log"
	"sync"
)

// Recovery releases the WaitGroup slot held by a panicking worker so a bad
// spreadsheet row cannot hang the whole import batch.
func Recovery(wg *sync.WaitGroup) {
	if r := recover(); r != nil {
		log.Println("recovered from panic in worker:", r)
		wg.Done()
	}
}

// RecoveryWithCallback is Recovery with a hook for reporting the panic value,
// used by the import workers to surface the failed row to the client.
func RecoveryWithCallback(wg *sync.WaitGroup, callback func(any)) {
	if r := recover(); r != nil {
		if callback != nil {
			callback(r)
		}
		wg.Done()
	}
}
