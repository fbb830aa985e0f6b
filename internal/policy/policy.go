// Package policy описывает декларативную таблицу доступа "сущность x операция".
// Таблица проверяется до вызова любой операции хранилищ.
package policy

import (
	"fmt"

	"github.com/raayraay69/blue-ledger/internal/models"
)

// Entity - тип сущности
type Entity string

const (
	EntityIncident   Entity = "incident"
	EntityOfficer    Entity = "officer"
	EntitySighting   Entity = "sighting"
	EntityDepartment Entity = "department"
)

// OpKind - вид операции
type OpKind string

const (
	OpRead   OpKind = "read"
	OpInsert OpKind = "insert"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// Operation - операция с уточнением. Для Update уточнение - голос (Vote) либо произвольное изменение.
type Operation struct {
	Kind OpKind
	Vote models.VoteKind
}

func Read() Operation   { return Operation{Kind: OpRead} }
func Insert() Operation { return Operation{Kind: OpInsert} }
func Update() Operation { return Operation{Kind: OpUpdate} }
func Delete() Operation { return Operation{Kind: OpDelete} }

// Vote - update, ограниченный одной из двух операций голосования
func Vote(kind models.VoteKind) Operation { return Operation{Kind: OpUpdate, Vote: kind} }

func (o Operation) String() string {
	if o.Vote != "" {
		return fmt.Sprintf("%s(%s)", o.Kind, o.Vote)
	}
	return string(o.Kind)
}

// Access - решение таблицы для пары (сущность, вид операции)
type Access int

const (
	// Forbidden - операция запрещена всегда (неизменяемые записи)
	Forbidden Access = iota
	// Anyone - разрешено любому внешнему вызывающему
	Anyone
	// RateLimited - разрешено любому, но через ограничитель частоты
	RateLimited
	// ActiveOnly - чтение только активных и не истекших записей
	ActiveOnly
	// VoteOnly - изменение только через операции голосования и только для активных записей
	VoteOnly
	// ServiceOnly - выполняется внутренним путем агрегации/ETL, внешней точки входа нет
	ServiceOnly
)

func (a Access) String() string {
	switch a {
	case Forbidden:
		return "forbidden"
	case Anyone:
		return "anyone"
	case RateLimited:
		return "rate_limited"
	case ActiveOnly:
		return "active_only"
	case VoteOnly:
		return "vote_only"
	case ServiceOnly:
		return "service_only"
	}
	return fmt.Sprintf("access(%d)", int(a))
}

// Row - строка таблицы доступа
type Row struct {
	Read, Insert, Update, Delete Access
}

// Table - таблица доступа
type Table map[Entity]Row

// DefaultTable - правила доступа к хранилищу
var DefaultTable = Table{
	EntityIncident:   {Read: Anyone, Insert: RateLimited, Update: Forbidden, Delete: Forbidden},
	EntityOfficer:    {Read: Anyone, Insert: ServiceOnly, Update: ServiceOnly, Delete: Forbidden},
	EntitySighting:   {Read: ActiveOnly, Insert: RateLimited, Update: VoteOnly, Delete: Forbidden},
	EntityDepartment: {Read: Anyone, Insert: ServiceOnly, Update: ServiceOnly, Delete: Forbidden},
}

// Decision - результат проверки
type Decision struct {
	Access Access
	// RateLimited - требуется допуск ограничителя частоты
	RateLimited bool
	// ActiveOnly - читатель видит только активные и не истекшие записи
	ActiveOnly bool
}

// Enforcer проверяет операции внешних вызывающих по таблице
type Enforcer struct {
	table Table
}

// NewEnforcer создает Enforcer с заданной таблицей
func NewEnforcer(table Table) *Enforcer {
	return &Enforcer{table: table}
}

// Authorize возвращает решение для внешнего вызывающего или ошибку:
// ErrImmutableRecord для запрещенных update/delete, ErrForbidden для service-only операций.
func (e *Enforcer) Authorize(entity Entity, op Operation) (Decision, error) {
	row, ok := e.table[entity]
	if !ok {
		return Decision{}, fmt.Errorf("%w: unknown entity %q", models.ErrForbidden, entity)
	}

	var access Access
	switch op.Kind {
	case OpRead:
		access = row.Read
	case OpInsert:
		access = row.Insert
	case OpUpdate:
		access = row.Update
	case OpDelete:
		access = row.Delete
	default:
		return Decision{}, fmt.Errorf("%w: unknown operation %q", models.ErrForbidden, op.Kind)
	}

	switch access {
	case Anyone:
		return Decision{Access: access}, nil
	case RateLimited:
		return Decision{Access: access, RateLimited: true}, nil
	case ActiveOnly:
		return Decision{Access: access, ActiveOnly: true}, nil
	case VoteOnly:
		if op.Vote == "" {
			return Decision{}, fmt.Errorf("%w: %s %s is limited to vote operations", models.ErrImmutableRecord, entity, op)
		}
		return Decision{Access: access, RateLimited: true, ActiveOnly: true}, nil
	case ServiceOnly:
		if op.Kind == OpUpdate {
			return Decision{}, fmt.Errorf("%w: %s is maintained by the service", models.ErrImmutableRecord, entity)
		}
		return Decision{}, fmt.Errorf("%w: %s %s is service-only", models.ErrForbidden, entity, op)
	}
	return Decision{}, fmt.Errorf("%w: %s %s is not permitted", models.ErrImmutableRecord, entity, op)
}
