package kanban

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
)

type ticketSpec struct {
	id        uint
	title     string
	desc      string
	number    *int
	priority  vo.Priority
	status    vo.Status
	stage     vo.Stage
	position  *int
	createdAt time.Time
}

func buildTicket(t *testing.T, spec ticketSpec) *ticket.Ticket {
	t.Helper()

	if spec.priority == "" {
		spec.priority = vo.PriorityMedia
	}
	if spec.status == "" {
		spec.status = vo.StatusAberto
	}
	if spec.stage == "" {
		spec.stage = vo.StageBacklog
	}
	if spec.createdAt.IsZero() {
		spec.createdAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	built, err := ticket.ReconstructTicket(
		spec.id, spec.number, spec.title, spec.desc,
		vo.TypeOutros, spec.priority, spec.status, spec.stage,
		spec.position, "", nil, nil, nil,
		spec.createdAt, spec.createdAt,
	)
	require.NoError(t, err)
	return built
}

func ids(tickets []*ticket.Ticket) []uint {
	out := make([]uint, len(tickets))
	for i, t := range tickets {
		out[i] = t.ID()
	}
	return out
}

func TestView_SearchMatchesTitleDescriptionAndNumber(t *testing.T) {
	n := 345
	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 1, title: "Erro de login na intranet"}),
		buildTicket(t, ticketSpec{id: 2, title: "Relatorio mensal", desc: "usuario nao consegue fazer login"}),
		buildTicket(t, ticketSpec{id: 3, title: "Outro assunto", number: &n}),
		buildTicket(t, ticketSpec{id: 4, title: "Sem relacao"}),
	}

	view := View(tickets, Criteria{Search: "login"})
	assert.ElementsMatch(t, []uint{1, 2}, ids(view))

	view = View(tickets, Criteria{Search: "LOGIN"})
	assert.ElementsMatch(t, []uint{1, 2}, ids(view))

	view = View(tickets, Criteria{Search: "345"})
	assert.Equal(t, []uint{3}, ids(view))

	view = View(tickets, Criteria{Search: "nada disso"})
	assert.Empty(t, view)
}

func TestView_PriorityFilter(t *testing.T) {
	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 1, title: "a", priority: vo.PriorityAlta}),
		buildTicket(t, ticketSpec{id: 2, title: "b", priority: vo.PriorityBaixa}),
		buildTicket(t, ticketSpec{id: 3, title: "c", priority: vo.PriorityAlta}),
	}

	view := View(tickets, Criteria{Priority: vo.PriorityAlta})
	assert.ElementsMatch(t, []uint{1, 3}, ids(view))

	// Empty priority means all.
	view = View(tickets, Criteria{})
	assert.Len(t, view, 3)
}

func TestView_ArchivedExcludedByDefault(t *testing.T) {
	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 1, title: "aberto", status: vo.StatusAberto}),
		buildTicket(t, ticketSpec{id: 2, title: "fechado", status: vo.StatusFechado}),
		buildTicket(t, ticketSpec{id: 3, title: "pendente", status: vo.StatusPendente}),
	}

	view := View(tickets, Criteria{})
	assert.ElementsMatch(t, []uint{1, 3}, ids(view))

	view = View(tickets, Criteria{IncludeArchived: true})
	assert.Len(t, view, 3)
}

func TestView_PrioritySort(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 1, title: "baixa", priority: vo.PriorityBaixa, createdAt: base}),
		buildTicket(t, ticketSpec{id: 2, title: "alta", priority: vo.PriorityAlta, createdAt: base}),
		buildTicket(t, ticketSpec{id: 3, title: "media", priority: vo.PriorityMedia, createdAt: base}),
	}

	view := View(tickets, Criteria{SortKey: SortPriority, SortDir: SortDesc})
	assert.Equal(t, []uint{2, 3, 1}, ids(view))

	view = View(tickets, Criteria{SortKey: SortPriority, SortDir: SortAsc})
	assert.Equal(t, []uint{1, 3, 2}, ids(view))
}

func TestView_PrioritySort_TiesByCreatedAtDesc(t *testing.T) {
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)

	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 1, title: "antiga", priority: vo.PriorityAlta, createdAt: older}),
		buildTicket(t, ticketSpec{id: 2, title: "nova", priority: vo.PriorityAlta, createdAt: newer}),
	}

	view := View(tickets, Criteria{SortKey: SortPriority, SortDir: SortDesc})
	assert.Equal(t, []uint{2, 1}, ids(view))
}

func TestView_ManualSort(t *testing.T) {
	p0, p1, p2 := 0, 1, 2
	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 1, title: "sem posicao"}),
		buildTicket(t, ticketSpec{id: 2, title: "pos 2", position: &p2}),
		buildTicket(t, ticketSpec{id: 3, title: "pos 0", position: &p0}),
		buildTicket(t, ticketSpec{id: 4, title: "pos 1", position: &p1}),
		buildTicket(t, ticketSpec{id: 5, title: "tambem sem posicao"}),
	}

	want := []uint{3, 4, 2, 1, 5}

	view := View(tickets, Criteria{SortKey: SortManual, SortDir: SortAsc})
	assert.Equal(t, want, ids(view))

	// Manual order ignores the requested direction.
	view = View(tickets, Criteria{SortKey: SortManual, SortDir: SortDesc})
	assert.Equal(t, want, ids(view))
}

func TestView_ManualSort_TiesByID(t *testing.T) {
	p := 1
	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 9, title: "b", position: &p}),
		buildTicket(t, ticketSpec{id: 3, title: "a", position: &p}),
	}

	view := View(tickets, Criteria{SortKey: SortManual})
	assert.Equal(t, []uint{3, 9}, ids(view))
}

func TestView_NumberSort_NilsLast(t *testing.T) {
	n10, n20 := 10, 20
	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 1, title: "sem numero"}),
		buildTicket(t, ticketSpec{id: 2, title: "vinte", number: &n20}),
		buildTicket(t, ticketSpec{id: 3, title: "dez", number: &n10}),
	}

	view := View(tickets, Criteria{SortKey: SortNumber, SortDir: SortAsc})
	assert.Equal(t, []uint{3, 2, 1}, ids(view))

	// Nils stay last even when the direction flips.
	view = View(tickets, Criteria{SortKey: SortNumber, SortDir: SortDesc})
	assert.Equal(t, []uint{2, 3, 1}, ids(view))
}

func TestView_TitleSort(t *testing.T) {
	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 1, title: "caju"}),
		buildTicket(t, ticketSpec{id: 2, title: "Abacate"}),
		buildTicket(t, ticketSpec{id: 3, title: "banana"}),
	}

	view := View(tickets, Criteria{SortKey: SortTitle, SortDir: SortAsc})
	assert.Equal(t, []uint{2, 3, 1}, ids(view))
}

func TestView_CreatedAtDefaultSort(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 1, title: "meio", createdAt: base.Add(time.Hour)}),
		buildTicket(t, ticketSpec{id: 2, title: "novo", createdAt: base.Add(2 * time.Hour)}),
		buildTicket(t, ticketSpec{id: 3, title: "velho", createdAt: base}),
	}

	view := View(tickets, Criteria{SortKey: SortCreatedAt, SortDir: SortDesc})
	assert.Equal(t, []uint{2, 1, 3}, ids(view))
}

func TestView_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tickets := []*ticket.Ticket{
		buildTicket(t, ticketSpec{id: 1, title: "a", createdAt: base}),
		buildTicket(t, ticketSpec{id: 2, title: "b", createdAt: base.Add(time.Hour)}),
		buildTicket(t, ticketSpec{id: 3, title: "c", createdAt: base.Add(2 * time.Hour)}),
	}

	View(tickets, Criteria{SortKey: SortCreatedAt, SortDir: SortDesc})

	assert.Equal(t, []uint{1, 2, 3}, ids(tickets))
}

func TestSortKey_IsValid(t *testing.T) {
	for _, key := range []SortKey{SortManual, SortPriority, SortNumber, SortCreatedAt, SortRegistrationDate, SortTitle} {
		assert.True(t, key.IsValid(), string(key))
	}
	assert.False(t, SortKey("random").IsValid())
	assert.False(t, SortKey("").IsValid())
}
