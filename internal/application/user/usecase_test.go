package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/xiebiao/userdao/internal/domain/user"
	"github.com/xiebiao/userdao/internal/domain/user/mocks"
	"github.com/xiebiao/userdao/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/userdao/pkg/errors"
)

func newDAO() user.DAO {
	return user.NewDAO(memory.NewUserStore(), user.NewMapper(), nil)
}

func TestUseCases_Lifecycle(t *testing.T) {
	ctx := context.Background()
	dao := newDAO()

	created, err := NewCreateUserUseCase(dao).Execute(ctx, CreateUserRequest{
		Name:     "Barbara",
		LastName: "Liskov",
		Enabled:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, &UserResponse{Name: "Barbara", LastName: "Liskov", FullName: "Barbara Liskov", Enabled: true}, created)

	// 内存存储的ID从1开始
	got, err := NewGetUserUseCase(dao).Execute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	require.NoError(t, NewSetUserStatusUseCase(dao).Execute(ctx, 1, false))
	got, err = NewGetUserUseCase(dao).Execute(ctx, 1)
	require.NoError(t, err)
	assert.False(t, got.Enabled)

	list, err := NewListUsersUseCase(dao).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Barbara Liskov", list[0].FullName)

	require.NoError(t, NewDeleteUserUseCase(dao).Execute(ctx, 1))
	_, err = NewGetUserUseCase(dao).Execute(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListUsersUseCase_Empty(t *testing.T) {
	list, err := NewListUsersUseCase(newDAO()).Execute(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestUseCases_AbsentUserIsNoop(t *testing.T) {
	ctx := context.Background()
	dao := newDAO()

	assert.NoError(t, NewSetUserStatusUseCase(dao).Execute(ctx, 404, true))
	assert.NoError(t, NewDeleteUserUseCase(dao).Execute(ctx, 404))
}

func TestCreateUserUseCase_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	dao := user.NewDAO(store, user.NewMapper(), nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	resp, err := NewCreateUserUseCase(dao).Execute(context.Background(), CreateUserRequest{Name: "Guybrush"})

	assert.Nil(t, resp)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserData))
}
