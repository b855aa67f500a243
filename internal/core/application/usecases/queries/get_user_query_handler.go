package queries

import (
	"context"
	"errors"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the account no longer exists,
// which can happen for a still-valid token.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	var row struct {
		ID    uuid.UUID
		Email string
		Name  string
		Phone string
	}
	err := h.db.WithContext(ctx).
		Table("users").
		Select("id, email, name, phone").
		Where("id = ?", query.UserID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetUserQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID().String())
		}
		return GetUserQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetUserQueryResponse{}, err
	}

	return GetUserQueryResponse{ID: id, Email: row.Email, Name: row.Name, Phone: row.Phone}, nil
}
