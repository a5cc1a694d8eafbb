package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/sayadalsamak/store/internal/domain"
)

type ContactUC struct {
	Messages domain.ContactMessageRepo
}

func (uc *ContactUC) Submit(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	if m.Name == "" || m.Message == "" {
		return nil, domain.Invalidf("name and message are required")
	}
	if m.Email == "" && m.Phone == "" {
		return nil, domain.Invalidf("an email or phone number is required")
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := uc.Messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *ContactUC) Get(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	return uc.Messages.FindByID(ctx, id)
}

func (uc *ContactUC) List(ctx context.Context, unreadOnly bool, page, pageSize int) ([]domain.ContactMessage, int64, error) {
	if pageSize == 0 {
		pageSize = 20
	}
	return uc.Messages.List(ctx, unreadOnly, page, pageSize)
}

func (uc *ContactUC) MarkRead(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	return uc.setFlags(ctx, id, func(m *domain.ContactMessage) { m.IsRead = true })
}

func (uc *ContactUC) MarkReplied(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	return uc.setFlags(ctx, id, func(m *domain.ContactMessage) { m.IsReplied = true })
}

func (uc *ContactUC) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (*domain.ContactMessage, error) {
	return uc.setFlags(ctx, id, func(m *domain.ContactMessage) { m.Notes = notes })
}

func (uc *ContactUC) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Messages.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.Messages.Delete(ctx, id)
}

func (uc *ContactUC) setFlags(ctx context.Context, id uuid.UUID, apply func(*domain.ContactMessage)) (*domain.ContactMessage, error) {
	m, err := uc.Messages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(m)
	if err := uc.Messages.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
