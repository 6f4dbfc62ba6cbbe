package bookingRepo

import (
	"testing"

	"fixv/database"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// The orphan sweep decides whether a pending transaction is still linked to
// an appointment by counting matches of this filter. Historical appointments
// reference their transaction as a bare id or a path string, so every
// encoding must keep the transaction alive.
func TestRefFilterCoversEveryTransactionEncoding(t *testing.T) {
	filter := refFilter("transactionId", database.PaymentTransactionsCollection, "txn-1")

	arms, ok := filter["$or"].(bson.A)
	require.True(t, ok, "expected an $or filter")

	require.Contains(t, arms, bson.M{"transactionId.id": "txn-1"})
	require.Contains(t, arms, bson.M{"transactionId": "txn-1"})
	require.Contains(t, arms, bson.M{"transactionId": "payment_transactions/txn-1"})
	require.Contains(t, arms, bson.M{"transactionId": "/payment_transactions/txn-1"})
}
