// cache реализует кэш полных HTTP-ответов публичных страниц поверх Redis.
//
// Устройство:
//   - запись — Redis Hash с полями status / hdr (JSON http.Header) / body,
//     ключ строится из пути запроса и номера поколения;
//   - Invalidate инкрементирует счётчик поколения: все старые записи
//     мгновенно становятся недостижимыми (грубая инвалидация всего кэша)
//     и умирают по TTL;
//   - кэш — производный артефакт: любая ошибка Redis трактуется вызывающей
//     стороной как промах, а не как отказ страницы.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss — записи нет в кэше.
var ErrMiss = errors.New("cache miss")

// Page — сериализованный ответ страницы.
type Page struct {
	Status int
	Header http.Header
	Body   []byte
}

// PageCache — минимальный контракт кэша страниц.
type PageCache interface {
	// Get возвращает запись по пути; ErrMiss, если её нет.
	Get(ctx context.Context, path string) (*Page, error)
	// Set сохраняет запись с настроенным TTL.
	Set(ctx context.Context, path string, page *Page) error
	// Invalidate делает все текущие записи недостижимыми.
	Invalidate(ctx context.Context) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "page:".
func NewRedisCache(redisURL, prefix string, ttl time.Duration) (PageCache, error) {
	if prefix == "" {
		prefix = "page:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (c *redisCache) genKey() string { return c.prefix + "gen" }

// generation возвращает текущий номер поколения (0, если счётчика ещё нет).
func (c *redisCache) generation(ctx context.Context) (int64, error) {
	v, err := c.rdb.Get(ctx, c.genKey()).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(v, 10, 64)
}

func (c *redisCache) key(gen int64, path string) string {
	return c.prefix + strconv.FormatInt(gen, 10) + ":" + path
}

func (c *redisCache) Get(ctx context.Context, path string) (*Page, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, err
	}

	m, err := c.rdb.HGetAll(ctx, c.key(gen, path)).Result()
	if err != nil {
		return nil, err
	}

	if len(m) == 0 {
		return nil, ErrMiss
	}

	status, err := strconv.Atoi(m["status"])
	if err != nil {
		return nil, err
	}

	var header http.Header
	if err := json.Unmarshal([]byte(m["hdr"]), &header); err != nil {
		return nil, err
	}

	return &Page{
		Status: status,
		Header: header,
		Body:   []byte(m["body"]),
	}, nil
}

func (c *redisCache) Set(ctx context.Context, path string, page *Page) error {
	gen, err := c.generation(ctx)
	if err != nil {
		return err
	}

	hdr, err := json.Marshal(page.Header)
	if err != nil {
		return err
	}

	kv := map[string]string{
		"status": strconv.Itoa(page.Status),
		"hdr":    string(hdr),
		"body":   string(page.Body),
	}

	key := c.key(gen, path)
	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, key, kv)
	pipe.Expire(ctx, key, c.ttl)

	_, err = pipe.Exec(ctx)
	return err
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, c.genKey()).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
