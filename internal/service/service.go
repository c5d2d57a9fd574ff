// Package service implements the business operations over the entity store.
// Every operation takes the caller's identity explicitly and gates on the
// permission table before touching the database.
package service

import (
	"fmt"
	"math"
	"time"

	"inventory-app/internal/apperr"
	"inventory-app/internal/permission"
)

// Identity is the authenticated caller, threaded into every operation.
type Identity struct {
	UserID uint
	Role   permission.Role
}

const dateLayout = "2006-01-02"

func requirePermission(id Identity, action permission.Action) error {
	if !permission.Allowed(id.Role, action) {
		return apperr.PermissionDenied(fmt.Sprintf("role %q is not allowed to %s", id.Role, action))
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperr.Validation("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
