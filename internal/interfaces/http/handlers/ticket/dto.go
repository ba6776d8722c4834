package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"chamados/internal/application/ticket/usecases"
	"chamados/internal/domain/ticket"
	"chamados/internal/shared/errors"
)

type UserRefRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func (r *UserRefRequest) toDomain() *ticket.UserRef {
	if r == nil {
		return nil
	}
	return &ticket.UserRef{
		ID:     r.ID,
		Name:   r.Name,
		Email:  r.Email,
		Avatar: r.Avatar,
	}
}

type CreateTicketRequest struct {
	Title            string          `json:"title" binding:"required,max=200"`
	Description      string          `json:"description" binding:"max=5000"`
	Type             string          `json:"type,omitempty"`
	Priority         string          `json:"priority,omitempty"`
	Number           string          `json:"number,omitempty"`
	URL              string          `json:"url,omitempty"`
	RegistrationDate *time.Time      `json:"registration_date,omitempty"`
	Creator          *UserRefRequest `json:"creator,omitempty"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:            r.Title,
		Description:      r.Description,
		Type:             r.Type,
		Priority:         r.Priority,
		Number:           r.Number,
		URL:              r.URL,
		RegistrationDate: r.RegistrationDate,
		Creator:          r.Creator.toDomain(),
	}
}

// UpdateTicketRequest carries a partial update: absent fields are left
// untouched.
type UpdateTicketRequest struct {
	Title            *string         `json:"title,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Status           *string         `json:"status,omitempty"`
	Priority         *string         `json:"priority,omitempty"`
	Type             *string         `json:"type,omitempty"`
	Number           *string         `json:"number,omitempty"`
	URL              *string         `json:"url,omitempty"`
	RegistrationDate *time.Time      `json:"registration_date,omitempty"`
	Assignee         *UserRefRequest `json:"assignee,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:         ticketID,
		Title:            r.Title,
		Description:      r.Description,
		Status:           r.Status,
		Priority:         r.Priority,
		Type:             r.Type,
		Number:           r.Number,
		URL:              r.URL,
		RegistrationDate: r.RegistrationDate,
		Assignee:         r.Assignee.toDomain(),
	}
}

type MoveTicketRequest struct {
	Stage    string `json:"stage" binding:"required"`
	Position int    `json:"position" binding:"gte=0"`
}

type ListTicketsRequest struct {
	Page      int
	PageSize  int
	Status    *string
	Priority  *string
	Type      *string
	Stage     *string
	Search    string
	SortBy    string
	SortOrder string
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:    r.Status,
		Priority:  r.Priority,
		Type:      r.Type,
		Stage:     r.Stage,
		Search:    r.Search,
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Page:      page,
		PageSize:  pageSize,
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if status := c.Query("status"); status != "" {
		req.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		req.Priority = &priority
	}
	if ticketType := c.Query("type"); ticketType != "" {
		req.Type = &ticketType
	}
	if stage := c.Query("stage"); stage != "" {
		req.Stage = &stage
	}

	return req, nil
}

func parseBoardRequest(c *gin.Context) usecases.GetBoardQuery {
	return usecases.GetBoardQuery{
		Search:          c.Query("search"),
		Priority:        c.Query("priority"),
		Type:            c.Query("type"),
		SortKey:         c.Query("sort_key"),
		SortDir:         c.Query("sort_dir"),
		IncludeArchived: c.Query("include_archived") == "true",
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}
