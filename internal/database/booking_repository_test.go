package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &PostgresDB{DB: sqlx.NewDb(mockDB, "sqlmock")}, mock
}

func bookingWithRoomRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reference", "user_id", "room_id", "created_at", "updated_at",
		"room_id", "name", "capacity", "hotel_id", "room_created_at", "room_updated_at",
	})
}

func TestBookingGetByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM bookings b`).
			WithArgs(int64(7)).
			WillReturnRows(bookingWithRoomRows().AddRow(
				int64(1), "ref-1", int64(7), int64(3), now, now,
				int64(3), "101", 2, int64(1), now, now,
			))

		booking, err := repo.GetByUserID(7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), booking.ID)
		assert.Equal(t, int64(7), booking.UserID)
		assert.Equal(t, int64(3), booking.Room.ID)
		assert.Equal(t, 2, booking.Room.Capacity)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Booking", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings b`).
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)

		booking, err := repo.GetByUserID(7)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingGetByRoomID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM bookings b`).
		WithArgs(int64(3)).
		WillReturnRows(bookingWithRoomRows().
			AddRow(int64(1), "ref-1", int64(7), int64(3), now, now,
				int64(3), "101", 2, int64(1), now, now).
			AddRow(int64(2), "ref-2", int64(8), int64(3), now, now,
				int64(3), "101", 2, int64(1), now, now))

	bookings, err := repo.GetByRoomID(3)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, int64(7), bookings[0].UserID)
	assert.Equal(t, int64(8), bookings[1].UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithRoomLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT capacity FROM rooms`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(2))
		mock.ExpectQuery(`SELECT COUNT`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO bookings`).
			WithArgs(sqlmock.AnyArg(), int64(7), int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(12), now, now))
		mock.ExpectCommit()

		booking, err := repo.CreateWithRoomLock(7, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(12), booking.ID)
		assert.Equal(t, int64(7), booking.UserID)
		assert.Equal(t, int64(3), booking.RoomID)
		assert.NotEmpty(t, booking.Reference)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Room Full", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT capacity FROM rooms`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(2))
		mock.ExpectQuery(`SELECT COUNT`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectRollback()

		booking, err := repo.CreateWithRoomLock(7, 3)
		assert.ErrorIs(t, err, ErrRoomFull)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Room Not Found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT capacity FROM rooms`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		booking, err := repo.CreateWithRoomLock(7, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate User Booking", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT capacity FROM rooms`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(2))
		mock.ExpectQuery(`SELECT COUNT`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`INSERT INTO bookings`).
			WithArgs(sqlmock.AnyArg(), int64(7), int64(3)).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		booking, err := repo.CreateWithRoomLock(7, 3)
		assert.ErrorIs(t, err, ErrDuplicateBooking)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT capacity FROM rooms`).
			WithArgs(int64(3)).
			WillReturnError(fmt.Errorf("connection reset"))
		mock.ExpectRollback()

		booking, err := repo.CreateWithRoomLock(7, 3)
		assert.Error(t, err)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReassignWithRoomLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT capacity FROM rooms`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(3))
		mock.ExpectQuery(`SELECT COUNT`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`UPDATE bookings`).
			WithArgs(int64(12), int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"reference", "user_id", "created_at", "updated_at"}).
				AddRow("ref-1", int64(7), now, now))
		mock.ExpectCommit()

		booking, err := repo.ReassignWithRoomLock(12, 4)
		require.NoError(t, err)
		assert.Equal(t, int64(12), booking.ID)
		assert.Equal(t, int64(4), booking.RoomID)
		assert.Equal(t, int64(7), booking.UserID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Target Room Full", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT capacity FROM rooms`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(1))
		mock.ExpectQuery(`SELECT COUNT`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		booking, err := repo.ReassignWithRoomLock(12, 4)
		assert.ErrorIs(t, err, ErrRoomFull)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Booking Gone", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT capacity FROM rooms`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(3))
		mock.ExpectQuery(`SELECT COUNT`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`UPDATE bookings`).
			WithArgs(int64(99), int64(4)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		booking, err := repo.ReassignWithRoomLock(99, 4)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
