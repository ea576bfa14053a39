// Package mongo implements the durable portfolio store on MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mgo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/models"
)

// Ensure Store implements interfaces.PortfolioStore
var _ interfaces.PortfolioStore = (*Store)(nil)

const snapshotsCollection = "snapshots"

// Store is a MongoDB-backed portfolio snapshot store.
type Store struct {
	client *mgo.Client
	db     string
	logger *zap.Logger
}

// New connects to MongoDB and prepares the snapshots collection indexes.
func New(cfg *config.MongoConfig, logger *zap.Logger) (*Store, error) {
	client, err := mgo.NewClient(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("cannot create mongo client for %s: %w", cfg.URI, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	s := &Store{client: client, db: cfg.Database, logger: logger}

	if err := s.ensureIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure snapshot indexes", zap.Error(err))
	}

	return s, nil
}

func (s *Store) collection() *mgo.Collection {
	return s.client.Database(s.db).Collection(snapshotsCollection)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.collection().Indexes().CreateMany(ctx, []mgo.IndexModel{
		{
			Keys: bson.D{
				{Key: "chainId", Value: 1},
				{Key: "address", Value: 1},
				{Key: "provider", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "chain", Value: 1},
				{Key: "expiresAt", Value: 1},
				{Key: "webhookMonitored", Value: 1},
			},
		},
	})
	return err
}

// Get returns the snapshot for (chainId, address, provider), or nil when no
// row exists. An empty provider matches the providerless row.
func (s *Store) Get(ctx context.Context, chainID int64, address, provider string) (*models.PortfolioSnapshot, error) {
	filter := bson.M{"chainId": chainID, "address": address}
	if provider != "" {
		filter["provider"] = provider
	}

	var snap models.PortfolioSnapshot
	err := s.collection().FindOne(ctx, filter).Decode(&snap)
	if errors.Is(err, mgo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}

	return &snap, nil
}

// Upsert overwrites the row for the snapshot's (chainId, address, provider)
// tuple. ExpiresAt must be set by the caller.
func (s *Store) Upsert(ctx context.Context, snap *models.PortfolioSnapshot) error {
	if snap.ExpiresAt.IsZero() {
		return fmt.Errorf("snapshot for %s has no expiry", snap.Address)
	}

	filter := bson.M{
		"chainId":  snap.ChainID,
		"address":  snap.Address,
		"provider": snap.Provider,
	}

	_, err := s.collection().ReplaceOne(ctx, filter, snap, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error upserting snapshot: %w", err)
	}

	return nil
}

// DeleteByAddress removes all rows for (chainId, address) across providers.
func (s *Store) DeleteByAddress(ctx context.Context, chainID int64, address string) (int64, error) {
	res, err := s.collection().DeleteMany(ctx, bson.M{"chainId": chainID, "address": address})
	if err != nil {
		return 0, fmt.Errorf("error deleting snapshots: %w", err)
	}
	return res.DeletedCount, nil
}

// ActiveUnmonitored lists addresses with at least one unexpired snapshot that
// are not yet webhook-monitored.
func (s *Store) ActiveUnmonitored(ctx context.Context, chain string) ([]string, error) {
	filter := bson.M{
		"chain":            chain,
		"expiresAt":        bson.M{"$gt": time.Now()},
		"webhookMonitored": bson.M{"$ne": true},
	}
	return s.distinctAddresses(ctx, filter)
}

// ExpiredMonitored lists monitored addresses whose snapshots have all
// expired. An address with any remaining live row stays subscribed.
func (s *Store) ExpiredMonitored(ctx context.Context, chain string) ([]string, error) {
	expired, err := s.distinctAddresses(ctx, bson.M{
		"chain":            chain,
		"expiresAt":        bson.M{"$lte": time.Now()},
		"webhookMonitored": true,
	})
	if err != nil {
		return nil, err
	}
	if len(expired) == 0 {
		return nil, nil
	}

	live, err := s.distinctAddresses(ctx, bson.M{
		"chain":     chain,
		"expiresAt": bson.M{"$gt": time.Now()},
	})
	if err != nil {
		return nil, err
	}

	liveSet := make(map[string]struct{}, len(live))
	for _, a := range live {
		liveSet[a] = struct{}{}
	}

	out := expired[:0]
	for _, a := range expired {
		if _, ok := liveSet[a]; !ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) distinctAddresses(ctx context.Context, filter bson.M) ([]string, error) {
	values, err := s.collection().Distinct(ctx, "address", filter)
	if err != nil {
		return nil, fmt.Errorf("error listing snapshot addresses: %w", err)
	}

	addrs := make([]string, 0, len(values))
	for _, v := range values {
		if addr, ok := v.(string); ok {
			addrs = append(addrs, addr)
		}
	}
	return addrs, nil
}

// SetMonitored flips the webhookMonitored flag for the addresses in bulk.
func (s *Store) SetMonitored(ctx context.Context, chain string, addresses []string, monitored bool) error {
	if len(addresses) == 0 {
		return nil
	}

	filter := bson.M{"chain": chain, "address": bson.M{"$in": addresses}}
	update := bson.M{"$set": bson.M{"webhookMonitored": monitored}}

	res, err := s.collection().UpdateMany(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating monitored flag: %w", err)
	}

	s.logger.Debug("Updated monitored flag",
		zap.String("chain", chain),
		zap.Bool("monitored", monitored),
		zap.Int64("matched", res.MatchedCount))

	return nil
}

// Close disconnects from MongoDB. Must be called at termination time.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
