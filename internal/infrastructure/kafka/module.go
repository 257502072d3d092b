package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Config — настройки Kafka. Переменные: SENIORITY_KAFKA_BROKERS, SENIORITY_KAFKA_TOPIC, SENIORITY_KAFKA_GROUP_ID.
type Config struct {
	Enabled      bool          `envconfig:"ENABLED" default:"true"`
	Brokers      string        `envconfig:"BROKERS" default:"localhost:9092"` // через запятую, если несколько
	Topic        string        `envconfig:"TOPIC" default:"seniority-files"`
	GroupID      string        `envconfig:"GROUP_ID" default:"seniority-analytics"` // для consumer group
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
}

// brokersSlice возвращает список брокеров из строки (через запятую).
func (c *Config) brokersSlice() []string {
	if c == nil || c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	parts := strings.Split(c.Brokers, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Client — конфиг и фабрики продюсера/консьюмера. Подключение к брокеру при создании Writer/Reader.
type Client struct {
	cfg *Config
}

// New создаёт клиент по конфигу. Само подключение к Kafka — при первом вызове Producer() или Consumer().
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg}
}

// Producer создаёт продюсера событий FileProcessed. Ключ сообщения — ключ файла,
// поэтому события одного файла попадают в одну партицию. После использования вызови Close().
func (c *Client) Producer() *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(c.cfg.brokersSlice()...),
		Topic:        c.cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: c.cfg.WriteTimeout,
	}
	return &Producer{w: w}
}

// Consumer создаёт консьюмера для чтения из топика (consumer group). После использования вызови Close().
func (c *Client) Consumer() *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.cfg.brokersSlice(),
		Topic:   c.cfg.Topic,
		GroupID: c.cfg.GroupID,
	})
	return &Consumer{r: r}
}
