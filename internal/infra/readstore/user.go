package readstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"shutterbook/internal/infra/db"
	"shutterbook/internal/pkg/pgconv"
)

type UserView struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type UserReadStore struct {
	logger *slog.Logger
	dbtx   db.DBTX
}

func NewUserReadStore(logger *slog.Logger, dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{logger: logger, dbtx: dbtx}
}

const findUserSQL = `
SELECT id, email, role FROM users WHERE id = $1`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	var (
		userID pgtype.UUID
		email  string
		role   string
	)
	err := s.dbtx.QueryRow(ctx, findUserSQL, pgconv.UUIDToPgtype(id)).Scan(&userID, &email, &role)
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to find user", err)
	}
	return &UserView{ID: uuid.UUID(userID.Bytes), Email: email, Role: role}, nil
}
