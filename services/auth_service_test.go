package services

import (
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", 7*24*time.Hour)
}

func TestRegisterForcesFarmerRole(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("Ramesh", "ramesh@test.com", "password123", "0812345678", "Haryana", "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFarmer, user.Role)
	assert.False(t, user.Approved)
}

func TestRegisterRejectsOtherRoles(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleAgronomist, "officer"} {
		_, err := svc.Register("X", "x@test.com", "password123", "0812345678", "", role)
		assert.ErrorIs(t, err, ErrRoleNotAllowed)
	}

	// ต้องไม่มี user หลุดเข้า DB เลย
	var count int64
	db.Model(&entity.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("A", "dup@test.com", "password123", "081", "", "")
	require.NoError(t, err)

	_, err = svc.Register("B", "DUP@test.com", "password123", "082", "", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginApprovalGate(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	mkUser(t, db, "pending@test.com", entity.RoleFarmer, false)

	// ยังไม่อนุมัติ — ต้องเป็น error คนละตัวกับรหัสผิด
	_, _, err := svc.Login("pending@test.com", "password123")
	assert.ErrorIs(t, err, ErrPendingApproval)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	mkUser(t, db, "farmer@test.com", entity.RoleFarmer, true)

	_, _, err := svc.Login("farmer@test.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@test.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	u := mkUser(t, db, "farmer@test.com", entity.RoleFarmer, true)

	token, user, err := svc.Login("farmer@test.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.ID, user.ID)
}

func TestCreateByAdminApprovedImmediately(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	for _, role := range []entity.Role{entity.RoleFarmer, entity.RoleAdmin, entity.RoleAgronomist} {
		user, err := svc.CreateByAdmin("U", string(role)+"@test.com", "password123", "081", "", role)
		require.NoError(t, err)
		assert.True(t, user.Approved)
		assert.Equal(t, role, user.Role)
	}
}

func TestCreateByAdminValidation(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	_, err := svc.CreateByAdmin("U", "not-an-email", "password123", "081", "", entity.RoleFarmer)
	assert.Error(t, err)

	_, err = svc.CreateByAdmin("U", "u@test.com", "short", "081", "", entity.RoleFarmer)
	assert.Error(t, err)

	_, err = svc.CreateByAdmin("U", "u@test.com", "password123", "081", "", "superuser")
	assert.Error(t, err)

	_, err = svc.CreateByAdmin("", "u@test.com", "password123", "081", "", entity.RoleFarmer)
	assert.Error(t, err)

	_, err = svc.CreateByAdmin("U", "u@test.com", "password123", "081", "", entity.RoleFarmer)
	require.NoError(t, err)
	_, err = svc.CreateByAdmin("U2", "u@test.com", "password123", "082", "", entity.RoleFarmer)
	assert.ErrorIs(t, err, ErrEmailTaken)
}
