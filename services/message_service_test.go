package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMessageService(db *gorm.DB) *MessageService {
	return NewMessageService(repository.NewMessageRepository(db), repository.NewReportRepository(db))
}

func TestSendResolvesReceiver(t *testing.T) {
	db := setupDB(t)
	svc := newMessageService(db)
	farmer := mkUser(t, db, "farmer@test.com", entity.RoleFarmer, true)
	admin := mkUser(t, db, "admin@test.com", entity.RoleAdmin, true)
	report := mkReport(t, db, farmer.ID, entity.CropTomato, entity.StatusPending)

	// staff ส่ง → ผู้รับคือ farmer เจ้าของ report
	msg, err := svc.Send(report.ID, admin.ID, entity.RoleAdmin, "please send a closer photo")
	require.NoError(t, err)
	assert.Equal(t, farmer.ID, msg.ReceiverID)
	assert.Equal(t, entity.RoleAdmin, msg.SenderRole)
	assert.False(t, msg.IsRead)
}

func TestSendAuthorization(t *testing.T) {
	db := setupDB(t)
	svc := newMessageService(db)
	farmer := mkUser(t, db, "farmer@test.com", entity.RoleFarmer, true)
	other := mkUser(t, db, "other@test.com", entity.RoleFarmer, true)
	report := mkReport(t, db, farmer.ID, entity.CropTomato, entity.StatusPending)

	_, err := svc.Send(report.ID, other.ID, entity.RoleFarmer, "hi")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Send(9999, farmer.ID, entity.RoleFarmer, "hi")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Send(report.ID, farmer.ID, entity.RoleFarmer, "")
	assert.Error(t, err)
}

func TestThreadMarksRead(t *testing.T) {
	db := setupDB(t)
	svc := newMessageService(db)
	farmer := mkUser(t, db, "farmer@test.com", entity.RoleFarmer, true)
	admin := mkUser(t, db, "admin@test.com", entity.RoleAdmin, true)
	report := mkReport(t, db, farmer.ID, entity.CropTomato, entity.StatusPending)

	_, err := svc.Send(report.ID, admin.ID, entity.RoleAdmin, "first")
	require.NoError(t, err)
	_, err = svc.Send(report.ID, admin.ID, entity.RoleAdmin, "second")
	require.NoError(t, err)

	unread, err := svc.UnreadCount(farmer.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	// farmer เปิด thread → ขาเข้าของตัวเองถูก mark อ่านแล้ว
	msgs, err := svc.Thread(report.ID, farmer.ID, entity.RoleFarmer)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	unread, err = svc.UnreadCount(farmer.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestThreadAuthorization(t *testing.T) {
	db := setupDB(t)
	svc := newMessageService(db)
	farmer := mkUser(t, db, "farmer@test.com", entity.RoleFarmer, true)
	other := mkUser(t, db, "other@test.com", entity.RoleFarmer, true)
	agro := mkUser(t, db, "agro@test.com", entity.RoleAgronomist, true)
	report := mkReport(t, db, farmer.ID, entity.CropTomato, entity.StatusPending)

	_, err := svc.Thread(report.ID, other.ID, entity.RoleFarmer)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Thread(report.ID, agro.ID, entity.RoleAgronomist)
	assert.NoError(t, err)

	_, err = svc.Thread(9999, farmer.ID, entity.RoleFarmer)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOnlyParticipants(t *testing.T) {
	db := setupDB(t)
	svc := newMessageService(db)
	farmer := mkUser(t, db, "farmer@test.com", entity.RoleFarmer, true)
	admin := mkUser(t, db, "admin@test.com", entity.RoleAdmin, true)
	stranger := mkUser(t, db, "x@test.com", entity.RoleFarmer, true)
	report := mkReport(t, db, farmer.ID, entity.CropTomato, entity.StatusPending)

	msg, err := svc.Send(report.ID, admin.ID, entity.RoleAdmin, "hello")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(msg.ID, stranger.ID), ErrForbidden)
	assert.NoError(t, svc.Delete(msg.ID, farmer.ID)) // ผู้รับลบได้
	assert.ErrorIs(t, svc.Delete(msg.ID, farmer.ID), ErrNotFound)
}

func TestListMineIncludesSentAndReceived(t *testing.T) {
	db := setupDB(t)
	svc := newMessageService(db)
	farmer := mkUser(t, db, "farmer@test.com", entity.RoleFarmer, true)
	admin := mkUser(t, db, "admin@test.com", entity.RoleAdmin, true)
	report := mkReport(t, db, farmer.ID, entity.CropTomato, entity.StatusPending)

	_, err := svc.Send(report.ID, admin.ID, entity.RoleAdmin, "from staff")
	require.NoError(t, err)
	_, err = svc.Send(report.ID, farmer.ID, entity.RoleFarmer, "from farmer")
	require.NoError(t, err)

	mine, err := svc.ListMine(admin.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1) // เฉพาะที่ admin ส่ง

	mineF, err := svc.ListMine(farmer.ID)
	require.NoError(t, err)
	assert.Len(t, mineF, 2)
}
