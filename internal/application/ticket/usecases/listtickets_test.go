package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamados/internal/domain/ticket"
	"chamados/internal/shared/errors"
)

func TestListTickets_DefaultsAndClamping(t *testing.T) {
	var captured ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.PageSize)
	assert.Equal(t, "created_at", captured.SortBy)
	assert.Equal(t, "desc", captured.SortOrder)

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Page: -3, PageSize: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 100, captured.PageSize)
}

func TestListTickets_FilterValidation(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, noopLogger{})

	bad := "resolvido"
	_, err := uc.Execute(context.Background(), ListTicketsQuery{Status: &bad})
	assert.True(t, errors.IsValidationError(err))

	badPriority := "urgente"
	_, err = uc.Execute(context.Background(), ListTicketsQuery{Priority: &badPriority})
	assert.True(t, errors.IsValidationError(err))

	badStage := "qa"
	_, err = uc.Execute(context.Background(), ListTicketsQuery{Stage: &badStage})
	assert.True(t, errors.IsValidationError(err))
}

func TestListTickets_PassesValidFilters(t *testing.T) {
	var captured ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return []*ticket.Ticket{storedTicket(t, 1)}, 1, nil
		},
	}
	uc := NewListTicketsUseCase(repo, noopLogger{})

	status := "pendente"
	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		Status: &status,
		Search: "login",
	})
	require.NoError(t, err)

	require.NotNil(t, captured.Status)
	assert.Equal(t, "pendente", captured.Status.String())
	assert.Equal(t, "login", captured.Search)
	assert.Equal(t, int64(1), result.TotalCount)
	assert.Len(t, result.Tickets, 1)
}
