// Package devicetoken управляет суточной солью для токенов устройств.
//
// Клиент получает публичную соль текущих суток и отправляет токен
// "<epoch>.<hex(sha256(salt ":" localID))>". Сервер никогда не видит локальный идентификатор,
// а токены одного устройства в разные сутки не связываются между собой.
package devicetoken

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/sirupsen/logrus"
)

const day = 24 * time.Hour

var hashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Salt - соль одной эпохи (суток)
type Salt struct {
	Epoch     int64     `json:"epoch"`
	Value     string    `json:"salt"`
	ValidFrom time.Time `json:"valid_from"`
	RotatesAt time.Time `json:"rotates_at"`
}

// Rotator генерирует новую соль в фиксированное время суток и кратко хранит предыдущую,
// чтобы не отклонять запросы, подписанные на границе ротации.
type Rotator struct {
	mu       sync.Mutex
	current  Salt
	previous *Salt
	offset   time.Duration
	grace    time.Duration
	now      func() time.Time
	logger   *logrus.Logger
}

// Option настраивает Rotator
type Option func(*Rotator)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(r *Rotator) { r.now = now }
}

// NewRotator создает Rotator. offset - время суток ротации от полуночи UTC, grace - сколько
// после ротации принимаются токены предыдущей эпохи.
func NewRotator(offset, grace time.Duration, logger *logrus.Logger, opts ...Option) (*Rotator, error) {
	if offset < 0 || offset >= day {
		return nil, fmt.Errorf("rotation offset must be within a day, got %s", offset)
	}
	r := &Rotator{offset: offset, grace: grace, now: time.Now, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	salt, err := r.newSalt(r.epochAt(r.now()))
	if err != nil {
		return nil, err
	}
	r.current = salt
	return r, nil
}

// Current возвращает соль текущей эпохи, при необходимости выполняя ротацию
func (r *Rotator) Current() (Salt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.rotateLocked(r.now()); err != nil {
		return Salt{}, err
	}
	return r.current, nil
}

// Verify проверяет формат и эпоху токена и возвращает его нормализованный вид для хранения.
// Токен предыдущей эпохи принимается только в течение grace после ротации.
func (r *Rotator) Verify(token string) (string, error) {
	epoch, hash, err := parse(token)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if err := r.rotateLocked(now); err != nil {
		return "", err
	}

	switch {
	case epoch == r.current.Epoch:
	case r.previous != nil && epoch == r.previous.Epoch && now.Before(r.current.ValidFrom.Add(r.grace)):
	default:
		return "", models.NewValidationError("device_token", "token epoch is not current")
	}
	return fmt.Sprintf("%d.%s", epoch, hash), nil
}

// Run выполняет ротацию по расписанию до отмены контекста
func (r *Rotator) Run(ctx context.Context) error {
	r.logger.Info("Starting device salt rotator...")
	for {
		r.mu.Lock()
		wait := r.current.RotatesAt.Sub(r.now())
		r.mu.Unlock()
		if wait < 0 {
			wait = 0
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			r.logger.Info("Stopping device salt rotator.")
			return nil
		case <-timer.C:
		}

		r.mu.Lock()
		err := r.rotateLocked(r.now())
		r.mu.Unlock()
		if err != nil {
			r.logger.WithError(err).Error("Failed to rotate device salt")
			// повторяем через минуту
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Minute):
			}
		}
	}
}

// Token вычисляет токен устройства для соли и локального идентификатора.
// Так же клиент вычисляет токен на своей стороне.
func Token(salt Salt, localID string) string {
	sum := sha256.Sum256([]byte(salt.Value + ":" + localID))
	return fmt.Sprintf("%d.%s", salt.Epoch, hex.EncodeToString(sum[:]))
}

func (r *Rotator) rotateLocked(now time.Time) error {
	epoch := r.epochAt(now)
	if epoch <= r.current.Epoch {
		return nil
	}
	salt, err := r.newSalt(epoch)
	if err != nil {
		return err
	}
	prev := r.current
	r.previous = nil
	// Предыдущая соль полезна только если она относится к непосредственно предшествующей эпохе
	if prev.Epoch == epoch-1 {
		r.previous = &prev
	}
	r.current = salt
	r.logger.WithField("epoch", epoch).Info("Device salt rotated")
	return nil
}

func (r *Rotator) epochAt(t time.Time) int64 {
	shifted := t.UTC().Add(-r.offset)
	return shifted.Unix() / int64(day/time.Second)
}

func (r *Rotator) newSalt(epoch int64) (Salt, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return Salt{}, fmt.Errorf("failed to generate device salt: %w", err)
	}
	from := time.Unix(epoch*int64(day/time.Second), 0).UTC().Add(r.offset)
	return Salt{
		Epoch:     epoch,
		Value:     hex.EncodeToString(buf),
		ValidFrom: from,
		RotatesAt: from.Add(day),
	}, nil
}

func parse(token string) (int64, string, error) {
	epochStr, hash, ok := strings.Cut(strings.TrimSpace(token), ".")
	if !ok {
		return 0, "", models.NewValidationError("device_token", "malformed token")
	}
	epoch, err := strconv.ParseInt(epochStr, 10, 64)
	if err != nil {
		return 0, "", models.NewValidationError("device_token", "malformed token epoch")
	}
	hash = strings.ToLower(hash)
	if !hashPattern.MatchString(hash) {
		return 0, "", models.NewValidationError("device_token", "malformed token hash")
	}
	return epoch, hash, nil
}
