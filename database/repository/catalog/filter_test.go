package catalogRepo

import (
	"testing"

	"fixv/database"
	"fixv/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRefFilterCoversEveryShopEncoding(t *testing.T) {
	filter := refFilter("shopId", models.NewRef(database.MechanicShopsCollection, "shop-9"))

	arms, ok := filter["$or"].(bson.A)
	require.True(t, ok, "expected an $or filter")

	require.Contains(t, arms, bson.M{"shopId.id": "shop-9"})
	require.Contains(t, arms, bson.M{"shopId": "shop-9"})
	require.Contains(t, arms, bson.M{"shopId": "mechanic_shops/shop-9"})
	require.Contains(t, arms, bson.M{"shopId": "/mechanic_shops/shop-9"})
}
