package ticket

import (
	"context"

	vo "chamados/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Filter narrows and orders a ticket listing. Zero values mean "all".
type Filter struct {
	Status    *vo.Status
	Priority  *vo.Priority
	Type      *vo.TicketType
	Stage     *vo.Stage
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Stats holds the live counters polled by the dashboard.
type Stats struct {
	Total    int64
	ByStatus map[vo.Status]int64
	ByStage  map[vo.Stage]int64
}
