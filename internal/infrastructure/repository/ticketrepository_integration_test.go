package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/infrastructure/persistence/models"
	"chamados/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.TicketModel{}, &models.ReportModel{})
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, title string, ticketType vo.TicketType, priority vo.Priority) *ticket.Ticket {
	tk, err := ticket.NewTicket(title, "Descricao de teste", ticketType, priority, nil, "", nil, nil)
	require.NoError(t, err)
	return tk
}

// setCreatedAt pins a row's creation timestamp so ordering tests are
// deterministic regardless of wall-clock resolution.
func setCreatedAt(t *testing.T, db *gorm.DB, id uint, milli int64) {
	err := db.Model(&models.TicketModel{}).
		Where("id = ?", id).
		UpdateColumn("created_at", milli).Error
	require.NoError(t, err)
}

func TestTicketRepository_SaveAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Erro no login", vo.TypeCorrecaoTecnica, vo.PriorityAlta)
	number := 345
	require.NoError(t, tk.SetNumber(&number))

	require.NoError(t, repo.Save(ctx, tk))
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "Erro no login", found.Title())
	assert.Equal(t, vo.StatusAberto, found.Status())
	assert.Equal(t, vo.StageBacklog, found.Stage())
	require.NotNil(t, found.Number())
	assert.Equal(t, 345, *found.Number())
}

func TestTicketRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Chamado original", vo.TypeOutros, vo.PriorityBaixa)
	number := 100
	require.NoError(t, tk.SetNumber(&number))
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, tk.ChangePriority(vo.PriorityAlta))
	require.NoError(t, tk.MoveTo(vo.StageDesenvolvimento, 2))

	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.PriorityAlta, found.Priority())
	assert.Equal(t, vo.StageDesenvolvimento, found.Stage())
	require.NotNil(t, found.Position())
	assert.Equal(t, 2, *found.Position())
}

func TestTicketRepository_Update_ClearsNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Com numero", vo.TypeDuvidaNegocial, vo.PriorityMedia)
	number := 42
	require.NoError(t, tk.SetNumber(&number))
	require.NoError(t, repo.Save(ctx, tk))

	// Clearing a nullable field must reach the database as NULL.
	require.NoError(t, tk.SetNumber(nil))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, found.Number())
}

func TestTicketRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Para excluir", vo.TypeOutros, vo.PriorityBaixa)
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	_, err := repo.GetByID(ctx, tk.ID())
	assert.True(t, errors.IsNotFoundError(err))

	err = repo.Delete(ctx, tk.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_List_DefaultOrderIsCreatedAtDesc(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	first := createTestTicket(t, "Primeiro", vo.TypeOutros, vo.PriorityBaixa)
	second := createTestTicket(t, "Segundo", vo.TypeOutros, vo.PriorityBaixa)
	third := createTestTicket(t, "Terceiro", vo.TypeOutros, vo.PriorityBaixa)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, third))

	setCreatedAt(t, db, first.ID(), 1000)
	setCreatedAt(t, db, second.ID(), 2000)
	setCreatedAt(t, db, third.ID(), 3000)

	tickets, total, err := repo.List(ctx, ticket.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, tickets, 3)

	assert.Equal(t, "Terceiro", tickets[0].Title())
	assert.Equal(t, "Segundo", tickets[1].Title())
	assert.Equal(t, "Primeiro", tickets[2].Title())
}

func TestTicketRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	open := createTestTicket(t, "Aberto urgente", vo.TypeCorrecaoTecnica, vo.PriorityAlta)
	require.NoError(t, repo.Save(ctx, open))

	closed := createTestTicket(t, "Resolvido", vo.TypeOrientacao, vo.PriorityBaixa)
	require.NoError(t, closed.ChangeStatus(vo.StatusFechado))
	require.NoError(t, repo.Save(ctx, closed))

	status := vo.StatusFechado
	tickets, total, err := repo.List(ctx, ticket.Filter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Resolvido", tickets[0].Title())

	priority := vo.PriorityAlta
	tickets, total, err = repo.List(ctx, ticket.Filter{Priority: &priority})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Aberto urgente", tickets[0].Title())
}

func TestTicketRepository_List_SearchMatchesTitleAndNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Falha no login", vo.TypeErroTemporario, vo.PriorityMedia)
	number := 345
	require.NoError(t, tk.SetNumber(&number))
	require.NoError(t, repo.Save(ctx, tk))

	other := createTestTicket(t, "Outro assunto", vo.TypeOutros, vo.PriorityBaixa)
	require.NoError(t, repo.Save(ctx, other))

	tickets, total, err := repo.List(ctx, ticket.Filter{Search: "login"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Falha no login", tickets[0].Title())

	tickets, total, err = repo.List(ctx, ticket.Filter{Search: "345"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Falha no login", tickets[0].Title())
}

func TestTicketRepository_List_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	ids := make([]uint, 0, 5)
	for _, title := range []string{"T1", "T2", "T3", "T4", "T5"} {
		tk := createTestTicket(t, title, vo.TypeOutros, vo.PriorityBaixa)
		require.NoError(t, repo.Save(ctx, tk))
		ids = append(ids, tk.ID())
	}
	for i, id := range ids {
		setCreatedAt(t, db, id, int64((i+1)*1000))
	}

	tickets, total, err := repo.List(ctx, ticket.Filter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, tickets, 2)

	// Page 2 of a newest-first listing.
	assert.Equal(t, "T3", tickets[0].Title())
	assert.Equal(t, "T2", tickets[1].Title())
}

func TestTicketRepository_List_SortWhitelist(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	b := createTestTicket(t, "B titulo", vo.TypeOutros, vo.PriorityBaixa)
	a := createTestTicket(t, "A titulo", vo.TypeOutros, vo.PriorityBaixa)
	require.NoError(t, repo.Save(ctx, b))
	require.NoError(t, repo.Save(ctx, a))

	tickets, _, err := repo.List(ctx, ticket.Filter{SortBy: "title", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "A titulo", tickets[0].Title())

	// A field outside the whitelist falls back to the default order instead
	// of reaching the SQL.
	setCreatedAt(t, db, b.ID(), 2000)
	setCreatedAt(t, db, a.ID(), 1000)
	tickets, _, err = repo.List(ctx, ticket.Filter{SortBy: "title; DROP TABLE tickets"})
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "B titulo", tickets[0].Title())
}

func TestTicketRepository_Stats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	open1 := createTestTicket(t, "Aberto 1", vo.TypeOutros, vo.PriorityBaixa)
	require.NoError(t, repo.Save(ctx, open1))

	open2 := createTestTicket(t, "Aberto 2", vo.TypeOutros, vo.PriorityBaixa)
	require.NoError(t, open2.MoveTo(vo.StageDesenvolvimento, 0))
	require.NoError(t, repo.Save(ctx, open2))

	closed := createTestTicket(t, "Fechado", vo.TypeOutros, vo.PriorityBaixa)
	require.NoError(t, closed.ChangeStatus(vo.StatusFechado))
	require.NoError(t, repo.Save(ctx, closed))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.ByStatus[vo.StatusAberto])
	assert.Equal(t, int64(1), stats.ByStatus[vo.StatusFechado])
	assert.Equal(t, int64(2), stats.ByStage[vo.StageBacklog])
	assert.Equal(t, int64(1), stats.ByStage[vo.StageDesenvolvimento])
}
