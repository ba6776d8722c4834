// Package kanban derives ordered, filtered board views from a raw ticket
// set. The engine is pure: it never mutates its input and persists
// nothing. Drag-and-drop reorders are written back through the ticket
// repository by the move use case, not here.
package kanban

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
)

type SortKey string

const (
	SortManual           SortKey = "manual"
	SortPriority         SortKey = "priority"
	SortNumber           SortKey = "number"
	SortCreatedAt        SortKey = "created_at"
	SortRegistrationDate SortKey = "registration_date"
	SortTitle            SortKey = "title"
)

var validSortKeys = map[SortKey]bool{
	SortManual:           true,
	SortPriority:         true,
	SortNumber:           true,
	SortCreatedAt:        true,
	SortRegistrationDate: true,
	SortTitle:            true,
}

func (k SortKey) IsValid() bool {
	return validSortKeys[k]
}

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Criteria narrows and orders a board view. Empty Priority/Type mean
// "all"; archived tickets (status fechado) are excluded unless
// IncludeArchived is set.
type Criteria struct {
	Search          string
	Priority        vo.Priority
	Type            vo.TicketType
	SortKey         SortKey
	SortDir         SortDir
	IncludeArchived bool
}

// View filters and then sorts the given tickets according to the
// criteria. An empty result is valid. The input slice is left untouched.
func View(tickets []*ticket.Ticket, c Criteria) []*ticket.Ticket {
	result := make([]*ticket.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if matches(t, c) {
			result = append(result, t)
		}
	}

	sortView(result, c)
	return result
}

func matches(t *ticket.Ticket, c Criteria) bool {
	if !c.IncludeArchived && t.IsArchived() {
		return false
	}
	if c.Priority != "" && t.Priority() != c.Priority {
		return false
	}
	if c.Type != "" && t.Type() != c.Type {
		return false
	}
	if c.Search != "" && !matchesSearch(t, c.Search) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against title,
// description and the ticket number.
func matchesSearch(t *ticket.Ticket, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title()), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description()), needle) {
		return true
	}
	if t.Number() != nil && strings.Contains(strconv.Itoa(*t.Number()), needle) {
		return true
	}
	return false
}

func sortView(tickets []*ticket.Ticket, c Criteria) {
	desc := c.SortDir == SortDesc

	switch c.SortKey {
	case SortManual:
		// Manual order ignores direction: position ascending, tickets
		// without a persisted position last, ties by id ascending.
		sort.SliceStable(tickets, func(i, j int) bool {
			return lessByPosition(tickets[i], tickets[j])
		})
	case SortPriority:
		sort.SliceStable(tickets, func(i, j int) bool {
			wi, wj := tickets[i].Priority().Weight(), tickets[j].Priority().Weight()
			if wi != wj {
				if desc {
					return wi > wj
				}
				return wi < wj
			}
			return tickets[i].CreatedAt().After(tickets[j].CreatedAt())
		})
	case SortNumber:
		sort.SliceStable(tickets, func(i, j int) bool {
			return lessNullableInt(tickets[i].Number(), tickets[j].Number(),
				tickets[i].ID(), tickets[j].ID(), desc)
		})
	case SortRegistrationDate:
		sort.SliceStable(tickets, func(i, j int) bool {
			return lessNullableTime(tickets[i].RegistrationDate(), tickets[j].RegistrationDate(),
				tickets[i].ID(), tickets[j].ID(), desc)
		})
	case SortTitle:
		sort.SliceStable(tickets, func(i, j int) bool {
			ti, tj := strings.ToLower(tickets[i].Title()), strings.ToLower(tickets[j].Title())
			if ti != tj {
				if desc {
					return ti > tj
				}
				return ti < tj
			}
			return tickets[i].ID() < tickets[j].ID()
		})
	default: // SortCreatedAt
		sort.SliceStable(tickets, func(i, j int) bool {
			ci, cj := tickets[i].CreatedAt(), tickets[j].CreatedAt()
			if !ci.Equal(cj) {
				if desc {
					return ci.After(cj)
				}
				return ci.Before(cj)
			}
			return tickets[i].ID() < tickets[j].ID()
		})
	}
}

func lessByPosition(a, b *ticket.Ticket) bool {
	pa, pb := a.Position(), b.Position()
	switch {
	case pa != nil && pb != nil:
		if *pa != *pb {
			return *pa < *pb
		}
		return a.ID() < b.ID()
	case pa != nil:
		return true
	case pb != nil:
		return false
	default:
		return a.ID() < b.ID()
	}
}

// lessNullableInt orders by value with nils last regardless of direction,
// falling back to id ascending on ties.
func lessNullableInt(a, b *int, idA, idB uint, desc bool) bool {
	switch {
	case a != nil && b != nil:
		if *a != *b {
			if desc {
				return *a > *b
			}
			return *a < *b
		}
		return idA < idB
	case a != nil:
		return true
	case b != nil:
		return false
	default:
		return idA < idB
	}
}

// lessNullableTime orders by time with nils last regardless of direction,
// falling back to id ascending on ties.
func lessNullableTime(a, b *time.Time, idA, idB uint, desc bool) bool {
	switch {
	case a != nil && b != nil:
		if !a.Equal(*b) {
			if desc {
				return a.After(*b)
			}
			return a.Before(*b)
		}
		return idA < idB
	case a != nil:
		return true
	case b != nil:
		return false
	default:
		return idA < idB
	}
}
