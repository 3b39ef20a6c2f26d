package ecdsa

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchSignVerify(t *testing.T) {
	key, err := NewPrivateKey(big.NewInt(0x5eed))
	require.NoError(t, err)

	digests := make([]*big.Int, 16)
	for i := range digests {
		digests[i] = big.NewInt(int64(i * 1000003))
	}

	sigs, err := BatchSign(context.Background(), key, digests, 4)
	require.NoError(t, err)
	require.Len(t, sigs, len(digests))

	items := make([]VerifyItem, len(digests))
	for i := range digests {
		// Batch results must match the sequential signer.
		want, err := key.Sign(digests[i])
		require.NoError(t, err)
		assert.True(t, sigs[i].IsEqual(want), "#%d", i)

		items[i] = VerifyItem{PubKey: key.PubKey(), Digest: digests[i], Signature: sigs[i]}
	}

	// Break two items.
	items[3].Digest = big.NewInt(1)
	items[9].PubKey = nil

	results, err := BatchVerify(context.Background(), items, 3)
	require.NoError(t, err)
	for i, ok := range results {
		assert.Equal(t, i != 3 && i != 9, ok, "#%d", i)
	}
}

func TestBatchSignError(t *testing.T) {
	key, err := NewPrivateKey(big.NewInt(2))
	require.NoError(t, err)

	digests := []*big.Int{big.NewInt(1), big.NewInt(-1), big.NewInt(3)}
	_, err = BatchSign(context.Background(), key, digests, 2)
	assert.ErrorIs(t, err, ErrInvalidDigest)
}

func TestBatchCancelled(t *testing.T) {
	key, err := NewPrivateKey(big.NewInt(2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = BatchSign(ctx, key, []*big.Int{big.NewInt(1)}, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = BatchVerify(ctx, []VerifyItem{{PubKey: key.PubKey()}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchEmptyAndWorkerFloor(t *testing.T) {
	key, err := NewPrivateKey(big.NewInt(2))
	require.NoError(t, err)

	sigs, err := BatchSign(context.Background(), key, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, sigs)

	results, err := BatchVerify(context.Background(), nil, -1)
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.Equal(t, 1, limit(0))
	assert.Equal(t, 8, limit(8))
}
