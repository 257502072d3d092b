package domain

import "time"

// FileReport — итог обработки одного файла с вакансиями. Он же событие FileProcessed в Kafka.
type FileReport struct {
	ID          int       `json:"id,omitempty"`
	Key         string    `json:"key"`
	OutputKey   string    `json:"output_key"`
	Postings    int       `json:"postings"`
	Hits        int       `json:"hits"`
	Misses      int       `json:"misses"`
	Resolved    int       `json:"resolved"`
	Absent      int       `json:"absent"`
	OK          bool      `json:"ok"`
	ProcessedAt time.Time `json:"processed_at"`
}

// RunReport — итог одного прохода по бакету.
type RunReport struct {
	StartAfter string       `json:"start_after"`
	LastKey    string       `json:"last_key"`
	Files      []FileReport `json:"files"`
	Failed     []FileError  `json:"failed,omitempty"`
}

// FileError — файл, который не удалось обработать в этом проходе.
type FileError struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}
