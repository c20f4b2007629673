package mongostore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vandana2004/CookingBlog/internal/store"
	"github.com/vandana2004/CookingBlog/internal/store/storetest"
	"github.com/vandana2004/CookingBlog/internal/testhelpers"
)

func TestMongoStore(t *testing.T) {
	s := testhelpers.SetupMongoStore(t)
	storetest.Run(t, func(t *testing.T) store.Store {
		ctx := context.Background()
		// one container for the whole run; empty the collections between cases
		require.NoError(t, s.Reset(ctx))
		return s
	})
}

func TestMongoFindRecipeUnknownObjectID(t *testing.T) {
	s := testhelpers.SetupMongoStore(t)
	got, err := s.FindRecipe(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = s.FindRecipe(context.Background(), "12345")
	assert.True(t, errors.Is(err, store.ErrInvalidID))
}
