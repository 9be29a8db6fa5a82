// Package viewcache lleva la versión de cada vista lógica cacheada. Invalidar una vista
// incrementa su versión; la capa HTTP incluye la versión en la clave de caché, de modo que
// las entradas anteriores dejan de servirse.
package viewcache

import "sync"

// Registry versiones por ruta lógica. Seguro para uso concurrente.
type Registry struct {
	mu       sync.RWMutex
	versions map[string]uint64
}

// NewRegistry construye un registro vacío.
func NewRegistry() *Registry {
	return &Registry{versions: make(map[string]uint64)}
}

// Invalidate marca la vista path como obsoleta.
func (r *Registry) Invalidate(path string) {
	r.mu.Lock()
	r.versions[path]++
	r.mu.Unlock()
}

// Version devuelve la versión actual de la vista path (0 si nunca se invalidó).
func (r *Registry) Version(path string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.versions[path]
}
