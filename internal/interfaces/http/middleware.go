package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/secure"

	"github.com/jhoicas/Inventario-tiendas/pkg/logger"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID key en c.Locals del request id.
const LocalRequestID = "request_id"

// RequestID reutiliza X-Request-ID del cliente o genera un UUID nuevo.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// RequestLogger registra cada petición; los 5xx van a nivel error con el error interno.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Error()
			if err, ok := c.Locals(LocalError).(error); ok {
				event = event.Err(err)
			}
		}
		reqID, _ := c.Locals(LocalRequestID).(string)
		event.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return nil
	}
}

// Metrics métricas Prometheus de la API.
type Metrics struct {
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	stockRejection prometheus.Counter
	gatherer       prometheus.Gatherer
}

// NewMetrics registra las métricas en reg. Cada app de test usa su propio registry.
func NewMetrics(reg *prometheus.Registry, prefix string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		stockRejection: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_exit_stock_rejections_total",
			Help: "Total number of exits rejected for insufficient stock",
		}),
		gatherer: reg,
	}
}

// Middleware mide cada petición usando la ruta registrada (no la URL) como etiqueta.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		labels := []string{c.Method(), c.Route().Path, strconv.Itoa(status)}
		m.requests.WithLabelValues(labels...).Inc()
		m.duration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone /metrics.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}

// SecureHeaders agrega cabeceras de seguridad con unrolled/secure.
func SecureHeaders(production bool) fiber.Handler {
	mw := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		STSSeconds:         stsSeconds(production),
		IsDevelopment:      !production,
	})
	return adaptor.HTTPMiddleware(mw.Handler)
}

func stsSeconds(production bool) int64 {
	if production {
		return 31536000
	}
	return 0
}

// LoginRateLimit limita los intentos de login por IP y minuto con httprate.
func LoginRateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	limiter := httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"too many login attempts"}`))
		}),
	)
	return adaptor.HTTPMiddleware(limiter)
}
