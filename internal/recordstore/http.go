package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/malk-tv/malk/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// 重试只针对网络错误和 5xx，4xx 重试也不会变好
	maxRetries    = 3
	retryInterval = time.Millisecond * 100
)

var requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "malk",
	Subsystem: "recordstore",
	Name:      "requests_total",
	Help:      "记录存储的请求数",
}, []string{"table", "op", "result"})

func init() {
	prometheus.MustRegister(requestCounter)
}

type HTTPClient struct {
	base   string
	token  string
	client *http.Client
	l      logger.LoggerV1
}

func NewHTTPClient(base string, token string, l logger.LoggerV1) *HTTPClient {
	return &HTTPClient{
		base:  base,
		token: token,
		client: &http.Client{
			Timeout: time.Second * 10,
		},
		l: l,
	}
}

type recordBody struct {
	ID          string         `json:"id"`
	Fields      map[string]any `json:"fields"`
	CreatedTime time.Time      `json:"createdTime"`
}

type listBody struct {
	Records []recordBody `json:"records"`
	Offset  string       `json:"offset"`
}

func (c *HTTPClient) Select(ctx context.Context, table string, q Query) (Page, error) {
	vals := url.Values{}
	if q.Formula != "" {
		vals.Set("filterByFormula", q.Formula)
	}
	if q.MaxRecords > 0 {
		vals.Set("maxRecords", strconv.Itoa(q.MaxRecords))
	}
	if q.Offset != "" {
		vals.Set("offset", q.Offset)
	}
	for i, s := range q.Sort {
		vals.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		vals.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
	}
	u := fmt.Sprintf("%s/%s?%s", c.base, url.PathEscape(table), vals.Encode())
	var body listBody
	err := c.do(ctx, table, "select", http.MethodGet, u, nil, &body)
	if err != nil {
		return Page{}, err
	}
	res := Page{
		Records: make([]Record, 0, len(body.Records)),
		Offset:  body.Offset,
	}
	for _, r := range body.Records {
		res.Records = append(res.Records, c.toRecord(r))
	}
	return res, nil
}

func (c *HTTPClient) SelectAll(ctx context.Context, table string, q Query) ([]Record, error) {
	var res []Record
	for {
		page, err := c.Select(ctx, table, q)
		if err != nil {
			return nil, err
		}
		res = append(res, page.Records...)
		if page.Offset == "" {
			return res, nil
		}
		q.Offset = page.Offset
	}
}

func (c *HTTPClient) Find(ctx context.Context, table string, id string) (Record, error) {
	u := fmt.Sprintf("%s/%s/%s", c.base, url.PathEscape(table), url.PathEscape(id))
	var body recordBody
	err := c.do(ctx, table, "find", http.MethodGet, u, nil, &body)
	if err != nil {
		return Record{}, err
	}
	return c.toRecord(body), nil
}

func (c *HTTPClient) Create(ctx context.Context, table string, fields map[string]any) (Record, error) {
	u := fmt.Sprintf("%s/%s", c.base, url.PathEscape(table))
	var body recordBody
	err := c.do(ctx, table, "create", http.MethodPost, u,
		map[string]any{"fields": fields}, &body)
	if err != nil {
		return Record{}, err
	}
	return c.toRecord(body), nil
}

func (c *HTTPClient) Update(ctx context.Context, table string, id string, fields map[string]any) (Record, error) {
	u := fmt.Sprintf("%s/%s/%s", c.base, url.PathEscape(table), url.PathEscape(id))
	var body recordBody
	err := c.do(ctx, table, "update", http.MethodPatch, u,
		map[string]any{"fields": fields}, &body)
	if err != nil {
		return Record{}, err
	}
	return c.toRecord(body), nil
}

func (c *HTTPClient) Destroy(ctx context.Context, table string, id string) error {
	u := fmt.Sprintf("%s/%s/%s", c.base, url.PathEscape(table), url.PathEscape(id))
	return c.do(ctx, table, "destroy", http.MethodDelete, u, nil, nil)
}

// do 发一次请求，网络错误和 5xx 重试，重试耗尽返回 ErrUnavailable
// 每一次 Record Store 往返都是一次网络调用，也是唯一的挂起点
func (c *HTTPClient) do(ctx context.Context, table string, op string,
	method string, u string, reqBody any, respBody any) error {
	var payload []byte
	if reqBody != nil {
		var err error
		payload, err = json.Marshal(reqBody)
		if err != nil {
			return err
		}
	}
	reqID := uuid.New().String()
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryInterval * time.Duration(i)):
			}
		}
		req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-Id", reqID)
		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			c.l.Warn("记录存储请求失败",
				logger.Error(err),
				logger.String("table", table),
				logger.String("op", op),
				logger.Int("attempt", i+1))
			continue
		}
		data, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		switch {
		case resp.StatusCode == http.StatusNotFound:
			requestCounter.WithLabelValues(table, op, "not_found").Inc()
			return ErrRecordNotFound
		case resp.StatusCode >= 500:
			// 服务端的问题，重试
			lastErr = fmt.Errorf("recordstore: 状态码 %d", resp.StatusCode)
			c.l.Warn("记录存储返回 5xx",
				logger.Int("code", resp.StatusCode),
				logger.String("table", table),
				logger.String("op", op),
				logger.Int("attempt", i+1))
			continue
		case resp.StatusCode >= 400:
			// 我们自己的请求有问题，重试没有意义
			requestCounter.WithLabelValues(table, op, "client_error").Inc()
			return fmt.Errorf("recordstore: 状态码 %d: %s", resp.StatusCode, data)
		}
		requestCounter.WithLabelValues(table, op, "ok").Inc()
		if respBody == nil {
			return nil
		}
		return json.Unmarshal(data, respBody)
	}
	requestCounter.WithLabelValues(table, op, "unavailable").Inc()
	c.l.Error("记录存储重试次数耗尽",
		logger.Error(lastErr),
		logger.String("table", table),
		logger.String("op", op))
	return fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (c *HTTPClient) toRecord(r recordBody) Record {
	return Record{
		ID:          r.ID,
		Fields:      r.Fields,
		CreatedTime: r.CreatedTime,
	}
}
