package clock

import (
	"sync"
	"time"
)

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Real системные часы
type Real struct{}

// Now возвращает текущее время в UTC
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Manual управляемые часы для тестов
type Manual struct {
	mu      sync.Mutex
	current time.Time
}

// NewManual создает часы, выставленные на start
func NewManual(start time.Time) *Manual {
	return &Manual{current: start}
}

// Now возвращает текущее значение часов
func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set выставляет часы
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// Advance сдвигает часы вперёд и возвращает новое значение
func (c *Manual) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
	return c.current
}
