package mysql

import (
	"testing"

	"Church_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestChurchRepositoryFindOwned(t *testing.T) {
	db := newTestDB(t)
	repo := &ChurchRepository{DB: db}

	owned := &model.Church{Name: "First Church", CreatedBy: 1}
	require.NoError(t, repo.Create(owned))
	other := &model.Church{Name: "Second Church", CreatedBy: 2}
	require.NoError(t, repo.Create(other))

	t.Run("returns church owned by caller", func(t *testing.T) {
		got, err := repo.FindOwned(owned.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, owned.ID, got.ID)
		assert.Equal(t, "First Church", got.Name)
	})

	t.Run("not owned and not existing are indistinguishable", func(t *testing.T) {
		// 教会存在但不是调用者的
		_, errNotOwned := repo.FindOwned(other.ID, 1)
		// 教会根本不存在
		_, errMissing := repo.FindOwned(9999, 1)

		assert.ErrorIs(t, errNotOwned, gorm.ErrRecordNotFound)
		assert.ErrorIs(t, errMissing, gorm.ErrRecordNotFound)
		assert.Equal(t, errNotOwned, errMissing)
	})
}

func TestChurchRepositoryListByCreator(t *testing.T) {
	db := newTestDB(t)
	repo := &ChurchRepository{DB: db}

	require.NoError(t, repo.Create(&model.Church{Name: "B", CreatedBy: 1}))
	require.NoError(t, repo.Create(&model.Church{Name: "A", CreatedBy: 1}))
	require.NoError(t, repo.Create(&model.Church{Name: "C", CreatedBy: 2}))

	list, err := repo.ListByCreator(1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// id 升序
	assert.Less(t, list[0].ID, list[1].ID)
	for _, ch := range list {
		assert.Equal(t, uint64(1), ch.CreatedBy)
	}

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
