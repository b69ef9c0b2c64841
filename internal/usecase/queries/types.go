package queries

import (
	"shutterbook/internal/pkg/errs"
)

// Role strings as carried in JWT claims.
const (
	RoleAdmin        = "admin"
	RoleCustomer     = "customer"
	RolePhotographer = "photographer"
)

var ErrInvalidCursor = errs.New("invalid pagination cursor")
