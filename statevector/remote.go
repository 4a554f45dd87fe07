package statevector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/oqtopus-team/qdeck/common"
	"github.com/tidwall/pretty"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	RemoteSettingKey      = "remote_backend"
	statevectorPath       = "/statevector"
	instrumentationScope  = "github.com/oqtopus-team/qdeck/statevector"
	defaultRemoteTimeout  = 30
	defaultRemoteBackend  = "statevector_simulator"
	defaultRemoteEndpoint = "http://localhost:8080"
)

type RemoteSetting struct {
	Endpoint       string `toml:"endpoint"`
	Backend        string `toml:"backend"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
}

func NewRemoteSetting() RemoteSetting {
	return RemoteSetting{
		Endpoint:       defaultRemoteEndpoint,
		Backend:        defaultRemoteBackend,
		TimeoutSeconds: defaultRemoteTimeout,
	}
}

// RemoteBackend posts circuits to an execution service over HTTP.
type RemoteBackend struct {
	setting  RemoteSetting
	endpoint string
	client   *http.Client
	tracer   trace.Tracer
	requests metric.Int64Counter
}

func NewRemoteBackend(s RemoteSetting) (*RemoteBackend, error) {
	endpoint, err := common.ValidEndpoint(s.Endpoint)
	if err != nil {
		zap.L().Error(fmt.Sprintf("invalid remote backend setting/reason:%s", err))
		return nil, err
	}
	if s.Backend == "" {
		s.Backend = defaultRemoteBackend
	}
	if s.TimeoutSeconds <= 0 {
		s.TimeoutSeconds = defaultRemoteTimeout
	}
	requests, err := otel.Meter(instrumentationScope).Int64Counter(
		"qdeck.statevector.requests",
		metric.WithDescription("statevector requests sent to the remote backend"))
	if err != nil {
		return nil, err
	}
	return &RemoteBackend{
		setting:  s,
		endpoint: endpoint + statevectorPath,
		client: &http.Client{
			Transport: otelhttp.NewTransport(&loggingRoundTripper{next: http.DefaultTransport}),
			Timeout:   time.Duration(s.TimeoutSeconds) * time.Second,
		},
		tracer:   otel.Tracer(instrumentationScope),
		requests: requests,
	}, nil
}

func (r *RemoteBackend) Name() string {
	return r.setting.Backend
}

func (r *RemoteBackend) Statevector(ctx context.Context, c *Circuit) (res *Result, err error) {
	id := uuid.NewString()
	ctx, span := r.tracer.Start(ctx, "RemoteBackend.Statevector", trace.WithAttributes(
		attribute.String("request.id", id),
		attribute.String("backend", r.setting.Backend),
		attribute.Int("num_qubits", c.NumQubits),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	r.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("backend", r.setting.Backend)))

	body := encodeRequest(id, r.setting.Backend, c)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.setting.UserAgent != "" {
		req.Header.Set("User-Agent", r.setting.UserAgent)
	}
	if r.setting.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.setting.APIKey)
	}
	zap.L().Debug(fmt.Sprintf("[Remote] sending request/ID:%s/endpoint:%s/body:%s",
		id, r.endpoint, pretty.Ugly(body)))
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request %s", id)
	}
	defer resp.Body.Close()
	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read response of %s", id)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(blob)))
	}
	amps, err := decodeResponse(blob)
	if err != nil {
		return nil, errors.Wrapf(err, "decode response of %s", id)
	}
	if err := checkAmplitudes(c, amps); err != nil {
		return nil, errors.Wrapf(err, "response of %s", id)
	}
	res = newResult(r.setting.Backend, amps)
	res.ID = id
	return res, nil
}

func encodeRequest(id, backend string, c *Circuit) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("id")
	e.Str(id)
	e.FieldStart("backend")
	e.Str(backend)
	e.FieldStart("num_qubits")
	e.Int(c.NumQubits)
	e.FieldStart("gates")
	e.ArrStart()
	for _, g := range c.Gates {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(g.Name)
		e.FieldStart("qubits")
		e.ArrStart()
		for _, q := range g.Qubits {
			e.Int(q)
		}
		e.ArrEnd()
		if len(g.Params) > 0 {
			e.FieldStart("params")
			e.ArrStart()
			for _, p := range g.Params {
				e.Float64(p)
			}
			e.ArrEnd()
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
	return e.Bytes()
}

// decodeResponse reads {"statevector": [[re, im], ...]}.
func decodeResponse(blob []byte) ([]complex128, error) {
	var amps []complex128
	found := false
	d := jx.DecodeBytes(blob)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "statevector" {
			return d.Skip()
		}
		found = true
		return d.Arr(func(d *jx.Decoder) error {
			var pair []float64
			if err := d.Arr(func(d *jx.Decoder) error {
				v, err := d.Float64()
				if err != nil {
					return err
				}
				pair = append(pair, v)
				return nil
			}); err != nil {
				return err
			}
			if len(pair) != 2 {
				return fmt.Errorf("amplitude %d has %d parts", len(amps), len(pair))
			}
			amps = append(amps, complex(pair[0], pair[1]))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no statevector in response")
	}
	return amps, nil
}

type loggingRoundTripper struct {
	next http.RoundTripper
}

func (lrt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := lrt.next.RoundTrip(req)
	if err != nil {
		zap.L().Error("API roundtrip failed", zap.String("url", req.URL.String()), zap.Error(err))
		return nil, err
	}
	zap.L().Debug("Received API response",
		zap.String("url", req.URL.String()),
		zap.Int("statusCode", resp.StatusCode),
	)
	return resp, nil
}
