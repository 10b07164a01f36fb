package taskstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"deutschprofi_backend/internal/domain"

	"github.com/valyala/fastrand"
)

// ErrNoStoredTasks возвращается, когда в хранилище нет заданий
// для запрошенного режима
var ErrNoStoredTasks = errors.New("в хранилище нет сохранённых заданий для этого режима")

// Client - клиент внешнего сервиса хранения заданий (jsonbin-подобный
// bin с заданиями по режимам). Ядро только читает готовые задания,
// как они были сгенерированы - не его забота
type Client struct {
	baseURL    string
	apiKey     string
	binID      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, binID string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		binID:   binID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// binRecord - формат bin'а: задания сгруппированы по режимам игры
type binRecord struct {
	Wortarten   []domain.GameTask `json:"wortarten"`
	Satzglieder []domain.GameTask `json:"satzglieder"`
	Fall        []domain.GameTask `json:"fall"`
}

type binResponse struct {
	Record binRecord `json:"record"`
}

// TasksForMode возвращает все сохранённые задания режима
func (c *Client) TasksForMode(ctx context.Context, mode domain.GameMode) ([]domain.GameTask, error) {
	record, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	switch mode {
	case domain.ModeWortarten:
		return record.Wortarten, nil
	case domain.ModeSatzglieder:
		return record.Satzglieder, nil
	case domain.ModeFall:
		return record.Fall, nil
	default:
		return nil, fmt.Errorf("неизвестный режим игры: %s", mode)
	}
}

// PickRandom выбирает count случайных заданий режима. Если заданий
// меньше, чем запрошено, возвращает все имеющиеся
func (c *Client) PickRandom(ctx context.Context, mode domain.GameMode, count int) ([]domain.GameTask, error) {
	all, err := c.TasksForMode(ctx, mode)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrNoStoredTasks
	}

	shuffled := append([]domain.GameTask(nil), all...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(fastrand.Uint32n(uint32(i + 1)))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count], nil
}

func (c *Client) fetch(ctx context.Context) (*binRecord, error) {
	url := fmt.Sprintf("%s/b/%s/latest", c.baseURL, c.binID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Master-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос к хранилищу заданий: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("хранилище заданий ответило %d: %s", resp.StatusCode, string(body))
	}

	var parsed binResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("разбор ответа хранилища: %w", err)
	}
	return &parsed.Record, nil
}
