// Package memory implementa los puertos de repositorio en memoria del proceso.
// Es el backend por defecto y el doble de pruebas de los casos de uso.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// collection mapa protegido por RWMutex que conserva el orden de inserción.
// Entrega y guarda copias para que el caller no comparta memoria con el almacén.
type collection[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
	clone func(T) T
}

func newCollection[T any](clone func(T) T) *collection[T] {
	return &collection[T]{items: make(map[string]T), clone: clone}
}

func (c *collection[T]) all(ctx context.Context, keep func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		item := c.items[id]
		if keep != nil && !keep(item) {
			continue
		}
		out = append(out, c.clone(item))
	}
	return out, nil
}

func (c *collection[T]) get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return zero, false, nil
	}
	return c.clone(item), true, nil
}

func (c *collection[T]) insert(ctx context.Context, id string, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("id vacío: %w", domain.ErrInvalidInput)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; exists {
		return fmt.Errorf("id %s: %w", id, domain.ErrDuplicate)
	}
	c.items[id] = c.clone(item)
	c.order = append(c.order, id)
	return nil
}

// replace no hace nada si el id no existe.
func (c *collection[T]) replace(ctx context.Context, id string, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; exists {
		c.items[id] = c.clone(item)
	}
	return nil
}

func (c *collection[T]) remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		return nil
	}
	delete(c.items, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}
