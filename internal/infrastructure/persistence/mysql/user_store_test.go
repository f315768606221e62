package mysql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/userdao/internal/domain/user"
	apperrors "github.com/xiebiao/userdao/pkg/errors"
)

var userColumns = []string{"id", "name", "last_name", "enabled", "created_at", "updated_at", "deleted_at"}

// newMockStore 基于sqlmock的GORM连接，关闭默认事务以便逐条匹配SQL
func newMockStore(t *testing.T) (user.Store, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewUserStore(db), mock
}

func TestUserStore_FindByID(t *testing.T) {
	ctx := context.Background()
	selectUser := regexp.QuoteMeta("SELECT * FROM `users` WHERE `users`.`id` = ?")

	t.Run("存在时返回记录", func(t *testing.T) {
		store, mock := newMockStore(t)
		now := time.Now()
		mock.ExpectQuery(selectUser).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(123213, "Barbara", "Liskov", true, now, now, nil))

		record, err := store.FindByID(ctx, 123213)

		require.NoError(t, err)
		assert.Equal(t, user.NewRecord(123213, "Barbara", "Liskov", true), record)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("不存在时返回ErrRecordNotFound", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(selectUser).WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := store.FindByID(ctx, 1231332423423)

		assert.ErrorIs(t, err, user.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("数据库故障包装为数据库错误", func(t *testing.T) {
		store, mock := newMockStore(t)
		cause := errors.New("connection refused")
		mock.ExpectQuery(selectUser).WillReturnError(cause)

		_, err := store.FindByID(ctx, 1)

		require.Error(t, err)
		assert.NotErrorIs(t, err, user.ErrRecordNotFound)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDatabaseError))
		assert.ErrorIs(t, err, cause)
	})
}

func TestUserStore_FindAll(t *testing.T) {
	ctx := context.Background()
	store, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE `users`.`deleted_at` IS NULL ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Ada", "Lovelace", true, now, now, nil).
			AddRow(2, "Alan", "Turing", false, now, now, nil))

	records, err := store.FindAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, []*user.Record{
		user.NewRecord(1, "Ada", "Lovelace", true),
		user.NewRecord(2, "Alan", "Turing", false),
	}, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("插入后回填自增ID", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
			WillReturnResult(sqlmock.NewResult(7, 1))

		record := user.NewRecordBuilder().Name("Guybrush").LastName("Threepwood").Enabled(true).Build()
		err := store.Save(ctx, record)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), record.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("插入失败不回填ID", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
			WillReturnError(errors.New("table is read only"))

		record := user.NewRecordBuilder().Name("Guybrush").Build()
		err := store.Save(ctx, record)

		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDatabaseError))
		assert.True(t, record.IsNew())
	})
}

func TestUserStore_DeleteByID(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `users` SET `deleted_at`=?")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.DeleteByID(context.Background(), 10)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	updateEnabled := regexp.QuoteMeta("UPDATE `users` SET `enabled`=?")

	t.Run("只更新enabled列", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(updateEnabled).WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.UpdateStatus(ctx, 12313, false)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("更新失败包装为数据库错误", func(t *testing.T) {
		store, mock := newMockStore(t)
		cause := errors.New("lock wait timeout")
		mock.ExpectExec(updateEnabled).WillReturnError(cause)

		err := store.UpdateStatus(ctx, 12313, true)

		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDatabaseError))
		assert.ErrorIs(t, err, cause)
	})
}
