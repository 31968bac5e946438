package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fibCalc/internal/domain"
	"fibCalc/internal/ports"
)

var _ ports.ICalculationRepository = (*CalculationRepo)(nil)

// calculationDoc — документ в коллекции calculations. ID в домене int для совместимости с PG, при чтении оставляем 0.
// value строкой: bson не хранит uint64 больше MaxInt64.
type calculationDoc struct {
	Position   int       `bson:"position"`
	Strategy   string    `bson:"strategy"`
	Value      string    `bson:"value"`
	DurationNs int64     `bson:"duration_ns"`
	CacheHit   bool      `bson:"cache_hit"`
	CreatedAt  time.Time `bson:"created_at"`
}

func toDoc(calc domain.Calculation) calculationDoc {
	return calculationDoc{
		Position:   calc.Position,
		Strategy:   calc.Strategy,
		Value:      strconv.FormatUint(calc.Value, 10),
		DurationNs: calc.Duration.Nanoseconds(),
		CacheHit:   calc.CacheHit,
		CreatedAt:  calc.Timestamp,
	}
}

func (d calculationDoc) toDomain() (domain.Calculation, error) {
	v, err := strconv.ParseUint(d.Value, 10, 64)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("parse value %q: %w", d.Value, err)
	}
	return domain.Calculation{
		Position:  d.Position,
		Strategy:  d.Strategy,
		Value:     v,
		Duration:  time.Duration(d.DurationNs),
		CacheHit:  d.CacheHit,
		Timestamp: d.CreatedAt,
	}, nil
}

// CalculationRepo реализует ports.ICalculationRepository для MongoDB.
type CalculationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewCalculationRepo возвращает репозиторий вычислений.
func NewCalculationRepo(client *Client, log *slog.Logger) *CalculationRepo {
	return &CalculationRepo{client: client, log: log}
}

// SaveCalculation сохраняет вычисление в коллекцию.
func (r *CalculationRepo) SaveCalculation(ctx context.Context, calc domain.Calculation) error {
	_, err := r.client.Coll().InsertOne(ctx, toDoc(calc))
	if err != nil {
		r.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает историю вычислений (последние сначала).
func (r *CalculationRepo) GetHistory(ctx context.Context) ([]domain.Calculation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []calculationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Calculation, 0, len(docs))
	for _, d := range docs {
		calc, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		list = append(list, calc)
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *CalculationRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
