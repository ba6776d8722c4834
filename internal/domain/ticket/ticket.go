package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "chamados/internal/domain/ticket/valueobjects"
)

// UserRef is a denormalized reference to the user who created or is
// assigned to a ticket.
type UserRef struct {
	ID     uint
	Name   string
	Email  string
	Avatar string
}

type Ticket struct {
	id               uint
	number           *int
	title            string
	description      string
	ticketType       vo.TicketType
	priority         vo.Priority
	status           vo.Status
	stage            vo.Stage
	position         *int
	url              string
	registrationDate *time.Time
	creator          *UserRef
	assignee         *UserRef
	createdAt        time.Time
	updatedAt        time.Time
}

// NewTicket creates a ticket applying the creation defaults: status aberto,
// priority media, type outros, stage backlog, registration date now when
// absent. Title is the only required field.
func NewTicket(
	title string,
	description string,
	ticketType vo.TicketType,
	priority vo.Priority,
	number *int,
	url string,
	registrationDate *time.Time,
	creator *UserRef,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	if ticketType == "" {
		ticketType = vo.TypeOutros
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}

	if priority == "" {
		priority = vo.PriorityMedia
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if number != nil && *number <= 0 {
		return nil, fmt.Errorf("ticket number must be a positive integer")
	}

	now := time.Now()
	if registrationDate == nil {
		registrationDate = &now
	}

	return &Ticket{
		number:           number,
		title:            title,
		description:      description,
		ticketType:       ticketType,
		priority:         priority,
		status:           vo.StatusAberto,
		stage:            vo.StageBacklog,
		url:              url,
		registrationDate: registrationDate,
		creator:          creator,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state without
// re-applying creation defaults.
func ReconstructTicket(
	id uint,
	number *int,
	title string,
	description string,
	ticketType vo.TicketType,
	priority vo.Priority,
	status vo.Status,
	stage vo.Stage,
	position *int,
	url string,
	registrationDate *time.Time,
	creator *UserRef,
	assignee *UserRef,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid stage")
	}

	return &Ticket{
		id:               id,
		number:           number,
		title:            title,
		description:      description,
		ticketType:       ticketType,
		priority:         priority,
		status:           status,
		stage:            stage,
		position:         position,
		url:              url,
		registrationDate: registrationDate,
		creator:          creator,
		assignee:         assignee,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                    { return t.id }
func (t *Ticket) Number() *int                { return t.number }
func (t *Ticket) Title() string               { return t.title }
func (t *Ticket) Description() string         { return t.description }
func (t *Ticket) Type() vo.TicketType         { return t.ticketType }
func (t *Ticket) Priority() vo.Priority       { return t.priority }
func (t *Ticket) Status() vo.Status           { return t.status }
func (t *Ticket) Stage() vo.Stage             { return t.stage }
func (t *Ticket) Position() *int              { return t.position }
func (t *Ticket) URL() string                 { return t.url }
func (t *Ticket) RegistrationDate() *time.Time { return t.registrationDate }
func (t *Ticket) Creator() *UserRef           { return t.creator }
func (t *Ticket) Assignee() *UserRef          { return t.assignee }
func (t *Ticket) CreatedAt() time.Time        { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time        { return t.updatedAt }

// IsArchived reports whether the ticket is excluded from the default
// board view.
func (t *Ticket) IsArchived() bool {
	return t.status.IsArchived()
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	t.title = title
	t.touch()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	t.description = description
	t.touch()
	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	t.status = newStatus
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}
	t.priority = newPriority
	t.touch()
	return nil
}

func (t *Ticket) ChangeType(newType vo.TicketType) error {
	if !newType.IsValid() {
		return fmt.Errorf("invalid ticket type: %s", newType)
	}
	if t.ticketType == newType {
		return nil
	}
	t.ticketType = newType
	t.touch()
	return nil
}

// MoveTo places the ticket in a stage column at the given manual position.
// This is the persistence half of a drag-and-drop reorder.
func (t *Ticket) MoveTo(stage vo.Stage, position int) error {
	if !stage.IsValid() {
		return fmt.Errorf("invalid stage: %s", stage)
	}
	if position < 0 {
		return fmt.Errorf("position cannot be negative")
	}
	t.stage = stage
	t.position = &position
	t.touch()
	return nil
}

func (t *Ticket) SetNumber(number *int) error {
	if number != nil && *number <= 0 {
		return fmt.Errorf("ticket number must be a positive integer")
	}
	t.number = number
	t.touch()
	return nil
}

func (t *Ticket) SetURL(url string) {
	t.url = url
	t.touch()
}

func (t *Ticket) SetRegistrationDate(date time.Time) {
	t.registrationDate = &date
	t.touch()
}

func (t *Ticket) Assign(assignee *UserRef) {
	t.assignee = assignee
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
}
