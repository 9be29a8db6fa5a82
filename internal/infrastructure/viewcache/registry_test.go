package viewcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_InvalidateIncrementaSoloEsaVista(t *testing.T) {
	r := NewRegistry()
	assert.Zero(t, r.Version("/dashboard/invoices"))

	r.Invalidate("/dashboard/invoices")
	r.Invalidate("/dashboard/invoices")

	assert.Equal(t, uint64(2), r.Version("/dashboard/invoices"))
	assert.Zero(t, r.Version("/dashboard/customers"))
}

func TestRegistry_Concurrente(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Invalidate("/dashboard/invoices")
			_ = r.Version("/dashboard/invoices")
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(50), r.Version("/dashboard/invoices"))
}
