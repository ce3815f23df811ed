package pool

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"rayScope/internal/chain"
	"rayScope/internal/dex"
	"rayScope/internal/model"
	"rayScope/internal/observability"
	"rayScope/internal/pricing"
	"rayScope/internal/reserves"
)

// Result is a decoded pool together with its derived metrics.
type Result struct {
	Address solana.PublicKey
	Pool    model.Pool
	Metrics model.Metrics
}

// Service resolves pool addresses into decoded pools and prices.
type Service struct {
	client        chain.Client
	logger        *zap.Logger
	metrics       *observability.Metrics
	clock         func() time.Time
	tickTolerance int32
}

// Option configures Service.
type Option func(*Service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(metrics *observability.Metrics) Option {
	return func(s *Service) { s.metrics = metrics }
}

// WithClock sets the time source used for launch pool vesting.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithTickTolerance sets the allowed CLMM tick drift. Zero requires an exact match.
func WithTickTolerance(ticks int32) Option {
	return func(s *Service) { s.tickTolerance = ticks }
}

// NewService builds a service on top of a chain client.
func NewService(client chain.Client, opts ...Option) *Service {
	s := &Service{
		logger:        zap.NewNop(),
		clock:         time.Now,
		tickTolerance: pricing.DefaultTickTolerance,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.client = observability.InstrumentClient(client, s.metrics)
	return s
}

// GetPool fetches and decodes the pool at address. model.KindAuto detects
// the layout from the account data.
func (s *Service) GetPool(ctx context.Context, address string, kind model.Kind) (model.Pool, error) {
	key, err := chain.ParseAddress(address)
	if err != nil {
		return nil, err
	}
	return s.getPool(ctx, key, kind)
}

func (s *Service) getPool(ctx context.Context, address solana.PublicKey, kind model.Kind) (model.Pool, error) {
	data, err := s.client.AccountData(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("fetch pool %s: %w", address, err)
	}
	decoded, err := dex.Decode(data, kind)
	if err != nil {
		return nil, fmt.Errorf("decode pool %s: %w", address, err)
	}
	s.logger.Debug("pool decoded",
		zap.String("address", address.String()),
		zap.String("kind", string(decoded.Kind())),
		zap.Int("bytes", len(data)),
	)

	if cpmm, ok := decoded.(*model.CPMMPool); ok {
		cfg, err := s.loadAmmConfig(ctx, cpmm.AmmConfig)
		if err != nil {
			return nil, fmt.Errorf("pool %s: %w", address, err)
		}
		decoded = cpmm.WithFeeConfig(*cfg)
	}
	return decoded, nil
}

func (s *Service) loadAmmConfig(ctx context.Context, address solana.PublicKey) (*model.AmmConfig, error) {
	data, err := s.client.AccountData(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("fetch amm config %s: %w", address, err)
	}
	cfg, err := dex.DecodeAmmConfig(data)
	if err != nil {
		return nil, fmt.Errorf("decode amm config %s: %w", address, err)
	}
	return cfg, nil
}

// GetPrice derives metrics for a decoded pool, resolving vault reserves for
// constant-product pools first.
func (s *Service) GetPrice(ctx context.Context, pool model.Pool) (model.Metrics, error) {
	var res *model.Reserves
	switch pool.(type) {
	case *model.V4Pool, *model.CPMMPool:
		resolved, err := reserves.Resolve(ctx, pool, s.client)
		if err != nil {
			return model.Metrics{}, fmt.Errorf("resolve reserves: %w", err)
		}
		res = &resolved
	}

	metrics, err := pricing.Derive(pool, res, pricing.Options{
		TickTolerance: pricing.Tolerance(s.tickTolerance),
		Now:           s.clock(),
	})
	if err != nil {
		return model.Metrics{}, err
	}
	if metrics.Warning != nil {
		s.logger.Warn("pool state inconsistent",
			zap.String("kind", string(pool.Kind())),
			zap.Error(metrics.Warning),
		)
		s.metrics.RecordWarning(pool.Kind())
	}
	return metrics, nil
}

// Query fetches, decodes and prices the pool at address.
func (s *Service) Query(ctx context.Context, address string, kind model.Kind) (Result, error) {
	start := time.Now()
	result, err := s.query(ctx, address, kind)

	observedKind := kind
	if result.Pool != nil {
		observedKind = result.Pool.Kind()
	}
	s.metrics.RecordQuery(observedKind, time.Since(start), err)
	if err != nil {
		return Result{}, err
	}
	s.metrics.SetPrice(result.Address.String(), observedKind, result.Metrics.PriceFloat())
	return result, nil
}

func (s *Service) query(ctx context.Context, address string, kind model.Kind) (Result, error) {
	key, err := chain.ParseAddress(address)
	if err != nil {
		return Result{}, err
	}
	decoded, err := s.getPool(ctx, key, kind)
	if err != nil {
		return Result{}, err
	}
	metrics, err := s.GetPrice(ctx, decoded)
	if err != nil {
		return Result{Address: key, Pool: decoded}, fmt.Errorf("price pool %s: %w", key, err)
	}
	return Result{Address: key, Pool: decoded, Metrics: metrics}, nil
}

func (s *Service) GetV4(ctx context.Context, address string) (*model.V4Pool, error) {
	return getAs[*model.V4Pool](ctx, s, address, model.KindV4)
}

func (s *Service) GetCPMM(ctx context.Context, address string) (*model.CPMMPool, error) {
	return getAs[*model.CPMMPool](ctx, s, address, model.KindCPMM)
}

func (s *Service) GetCLMM(ctx context.Context, address string) (*model.CLMMPool, error) {
	return getAs[*model.CLMMPool](ctx, s, address, model.KindCLMM)
}

func (s *Service) GetLaunchpad(ctx context.Context, address string) (*model.LaunchpadPool, error) {
	return getAs[*model.LaunchpadPool](ctx, s, address, model.KindLaunchpad)
}

func getAs[T model.Pool](ctx context.Context, s *Service, address string, kind model.Kind) (T, error) {
	var zero T
	decoded, err := s.GetPool(ctx, address, kind)
	if err != nil {
		return zero, err
	}
	typed, ok := decoded.(T)
	if !ok {
		return zero, fmt.Errorf("pool %s decoded as %s, want %s", address, decoded.Kind(), kind)
	}
	return typed, nil
}
