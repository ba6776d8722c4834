package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/infrastructure/persistence/mappers"
	"chamados/internal/infrastructure/persistence/models"
	"chamados/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":                true,
	"number":            true,
	"title":             true,
	"status":            true,
	"priority":          true,
	"type":              true,
	"stage":             true,
	"position":          true,
	"registration_date": true,
	"created_at":        true,
	"updated_at":        true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper *mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found", fmt.Sprintf("id %d", id))
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found", fmt.Sprintf("id %d", id))
	}
	return nil
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.Filter,
) ([]*ticket.Ticket, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Stage != nil {
		query = query.Where("stage = ?", filter.Stage.String())
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"title LIKE ? OR description LIKE ? OR CAST(number AS CHAR) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []*models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(ticketModels)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepository) Stats(ctx context.Context) (*ticket.Stats, error) {
	stats := &ticket.Stats{
		ByStatus: make(map[vo.Status]int64),
		ByStage:  make(map[vo.Stage]int64),
	}

	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	// "key" is reserved in MySQL, so the alias must avoid it.
	type bucket struct {
		BucketKey string `gorm:"column:bucket_key"`
		Count     int64  `gorm:"column:bucket_count"`
	}

	var byStatus []bucket
	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("status AS bucket_key, COUNT(*) AS bucket_count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate tickets by status: %w", err)
	}
	for _, b := range byStatus {
		stats.ByStatus[vo.Status(b.BucketKey)] = b.Count
	}

	var byStage []bucket
	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("stage AS bucket_key, COUNT(*) AS bucket_count").
		Group("stage").
		Scan(&byStage).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate tickets by stage: %w", err)
	}
	for _, b := range byStage {
		stats.ByStage[vo.Stage(b.BucketKey)] = b.Count
	}

	return stats, nil
}
