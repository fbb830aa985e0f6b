package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/raayraay69/blue-ledger/internal/geo"
	"github.com/raayraay69/blue-ledger/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// MaxRadiusMeters - верхняя граница радиуса запроса
	MaxRadiusMeters = 100 * models.MetersPerMile
	defaultLimit    = 100
	maxLimit        = 500
)

var tracer = otel.Tracer("github.com/raayraay69/blue-ledger/internal/service")

// RateLimiter принимает решение о допуске записи
type RateLimiter interface {
	Admit(ctx context.Context, tokenHash string, class models.OperationClass) error
}

// TokenVerifier проверяет токен устройства и возвращает его вид для хранения
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// admit проверяет токен устройства и списывает операцию из квоты
func admit(ctx context.Context, tokens TokenVerifier, limiter RateLimiter, token string, class models.OperationClass) (string, error) {
	hash, err := tokens.Verify(token)
	if err != nil {
		return "", err
	}
	if err := limiter.Admit(ctx, hash, class); err != nil {
		return "", err
	}
	return hash, nil
}

// validateStruct переводит ошибки validator в models.ValidationError
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return models.NewValidationError(toSnake(fe.Field()), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return models.NewValidationError("", err.Error())
}

// normalizeQuery проверяет и дополняет параметры радиусного запроса
func normalizeQuery(q models.RadiusQuery) (models.RadiusQuery, error) {
	if !(geo.Point{Lat: q.Latitude, Lng: q.Longitude}).Valid() {
		return q, models.NewValidationError("location", "coordinates out of range")
	}
	if math.IsNaN(q.RadiusMeters) || q.RadiusMeters <= 0 || q.RadiusMeters > MaxRadiusMeters {
		return q, models.NewValidationError("radius", "must be positive and at most 100 miles")
	}
	switch q.Order {
	case "":
		q.Order = models.OrderRecent
	case models.OrderRecent, models.OrderNearest:
	default:
		return q, models.NewValidationError("order", "must be recent or nearest")
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q, nil
}

// normalizeTags приводит теги к нижнему регистру, убирает пустые и повторы
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
