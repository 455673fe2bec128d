package courier

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

type Courier struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Courier {
	return &Courier{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidPhone(*courierModify.Phone) {
		return 0, ErrInvalidPhone
	}

	trimmed := strings.TrimSpace(*courierModify.Phone)
	courierModify.Phone = &trimmed

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.Phone == nil &&
		courierModify.Description == nil &&
		courierModify.AccountID == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}

	courierEntity, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return courierEntity, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	courierEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courierEntity, nil
}

func (s *Courier) GetCouriers(ctx context.Context, skip, limit int64) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

func (s *Courier) DeleteCourier(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete courier: %w", err)
	}

	return nil
}
