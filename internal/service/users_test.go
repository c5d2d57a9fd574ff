package service

import (
	"testing"

	"inventory-app/internal/apperr"
	"inventory-app/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	id, err := svc.Create(asAdmin, UserInput{
		Username: "warehouse",
		Password: "warehouse123",
		Role:     "warehouse",
		FullName: "Warehouse Operator",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	user, err := svc.Authenticate("warehouse", "warehouse123")
	require.NoError(t, err)
	assert.Equal(t, "warehouse", user.Role)
	assert.Equal(t, "Warehouse Operator", user.FullName)

	_, err = svc.Authenticate("warehouse", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "warehouse123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserCreateRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Create(asAdmin, UserInput{
		Username: "x",
		Password: "y",
		Role:     "superuser",
		FullName: "X",
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	input := UserInput{Username: "manager", Password: "p", Role: "manager", FullName: "M"}
	_, err := svc.Create(asAdmin, input)
	require.NoError(t, err)

	_, err = svc.Create(asAdmin, input)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUserManagementRequiresUsersAction(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	input := UserInput{Username: "x", Password: "y", Role: "manager", FullName: "X"}
	for _, id := range []Identity{asWarehouse, asManager} {
		_, err := svc.Create(id, input)
		assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(err))
		_, err = svc.List(id)
		assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(err))
	}
}

func TestResetPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	id, err := svc.Create(asAdmin, UserInput{
		Username: "manager",
		Password: "old-pass",
		Role:     "manager",
		FullName: "M",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(asAdmin, id, "new-pass"))

	_, err = svc.Authenticate("manager", "old-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("manager", "new-pass")
	assert.NoError(t, err)

	err = svc.ResetPassword(asAdmin, 9999, "x")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestChangeOwnPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	id, err := svc.Create(asAdmin, UserInput{
		Username: "warehouse",
		Password: "old-pass",
		Role:     "warehouse",
		FullName: "W",
	})
	require.NoError(t, err)

	self := Identity{UserID: id, Role: "warehouse"}
	require.NoError(t, svc.ChangePassword(self, "rotated"))

	user, err := svc.Authenticate("warehouse", "rotated")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("rotated", user.PasswordHash))

	err = svc.ChangePassword(Identity{UserID: 9999, Role: "warehouse"}, "x")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
