package ecdsa

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"
)

// VerifyItem is one signature to check in BatchVerify.
type VerifyItem struct {
	PubKey    *PublicKey
	Digest    *big.Int
	Signature *Signature
}

// BatchVerify verifies items concurrently on at most workers goroutines and
// returns one result per item, in order. It stops early and returns the
// context's error if ctx is cancelled.
func BatchVerify(ctx context.Context, items []VerifyItem, workers int) ([]bool, error) {
	results := make([]bool, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit(workers))
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			item := items[i]
			results[i] = Verify(item.PubKey, item.Digest, item.Signature)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debugw("batch verified", "items", len(items), "workers", limit(workers))
	return results, nil
}

// BatchSign signs every digest with key concurrently on at most workers
// goroutines. Signatures are returned in the order of digests. The first
// signing error cancels the remaining work and is returned.
func BatchSign(ctx context.Context, key *PrivateKey, digests []*big.Int, workers int) ([]*Signature, error) {
	sigs := make([]*Signature, len(digests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit(workers))
	for i := range digests {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sig, err := key.Sign(digests[i])
			if err != nil {
				return err
			}
			sigs[i] = sig
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debugw("batch signed", "items", len(digests), "workers", limit(workers))
	return sigs, nil
}

func limit(workers int) int {
	if workers < 1 {
		return 1
	}
	return workers
}
