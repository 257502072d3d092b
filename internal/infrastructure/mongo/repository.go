package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"jobSeniority/internal/domain"
)

// historyLimit — сколько последних записей отдаёт GetHistory.
const historyLimit = 1000

// fileDoc — документ в коллекции processed_files (без ID — в домене ID int для совместимости с PG, при чтении оставляем 0).
type fileDoc struct {
	Key         string    `bson:"key"`
	OutputKey   string    `bson:"output_key"`
	Postings    int       `bson:"postings"`
	Hits        int       `bson:"hits"`
	Misses      int       `bson:"misses"`
	Resolved    int       `bson:"resolved"`
	Absent      int       `bson:"absent"`
	OK          bool      `bson:"ok"`
	ProcessedAt time.Time `bson:"processed_at"`
}

// RunRepo реализует ports.IRunRepository для MongoDB.
type RunRepo struct {
	client *Client
	log    *slog.Logger
}

// NewRunRepo возвращает журнал обработанных файлов.
func NewRunRepo(client *Client, log *slog.Logger) *RunRepo {
	return &RunRepo{client: client, log: log}
}

// SaveRun сохраняет итог обработки файла в коллекцию.
func (r *RunRepo) SaveRun(ctx context.Context, rep domain.FileReport) error {
	doc := fileDoc{
		Key:         rep.Key,
		OutputKey:   rep.OutputKey,
		Postings:    rep.Postings,
		Hits:        rep.Hits,
		Misses:      rep.Misses,
		Resolved:    rep.Resolved,
		Absent:      rep.Absent,
		OK:          rep.OK,
		ProcessedAt: rep.ProcessedAt,
	}
	_, err := r.client.Coll().InsertOne(ctx, doc)
	if err != nil {
		r.log.Debug("SaveRun failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает журнал обработанных файлов (последние сначала).
func (r *RunRepo) GetHistory(ctx context.Context) ([]domain.FileReport, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "processed_at", Value: -1}}).
		SetLimit(historyLimit)
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []fileDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.FileReport, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.FileReport{
			Key:         d.Key,
			OutputKey:   d.OutputKey,
			Postings:    d.Postings,
			Hits:        d.Hits,
			Misses:      d.Misses,
			Resolved:    d.Resolved,
			Absent:      d.Absent,
			OK:          d.OK,
			ProcessedAt: d.ProcessedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *RunRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
