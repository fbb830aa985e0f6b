package memory

import (
	"container/heap"
	"time"

	"github.com/google/uuid"
)

type expiryEntry struct {
	id        uuid.UUID
	expiresAt time.Time
}

// expiryQueue - min-куча активных наблюдений по expires_at.
// Записи, деактивированные голосами, остаются в куче и отбрасываются при извлечении.
type expiryQueue []expiryEntry

func (q expiryQueue) Len() int           { return len(q) }
func (q expiryQueue) Less(i, j int) bool { return q[i].expiresAt.Before(q[j].expiresAt) }
func (q expiryQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *expiryQueue) Push(x any) { *q = append(*q, x.(expiryEntry)) }

func (q *expiryQueue) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]
	return entry
}

func (q *expiryQueue) add(id uuid.UUID, expiresAt time.Time) {
	heap.Push(q, expiryEntry{id: id, expiresAt: expiresAt})
}

// popExpired извлекает все записи с expires_at < now
func (q *expiryQueue) popExpired(now time.Time) []uuid.UUID {
	var ids []uuid.UUID
	for q.Len() > 0 && (*q)[0].expiresAt.Before(now) {
		ids = append(ids, heap.Pop(q).(expiryEntry).id)
	}
	return ids
}
