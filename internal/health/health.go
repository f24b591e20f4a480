package health

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// DepStatus is the probe result for one dependency.
type DepStatus struct {
	Status string `json:"status"`
	PingMs int64  `json:"pingMs"`
}

// Report is the GET /health payload.
type Report struct {
	Status        string               `json:"status"`
	UptimeSeconds int64                `json:"uptimeSeconds"`
	GoVersion     string               `json:"goVersion"`
	Dependencies  map[string]DepStatus `json:"dependencies"`
}

// Handlers probes the database and, when configured, Redis. A nil Rdb is
// simply omitted from the report.
type Handlers struct {
	DB  *gorm.DB
	Rdb *redis.Client
}

// Get handles GET /health. Returns 503 when any dependency is down.
func (h *Handlers) Get(c *fiber.Ctx) error {
	report := Report{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(startedAt).Seconds()),
		GoVersion:     runtime.Version(),
		Dependencies:  map[string]DepStatus{},
	}

	report.Dependencies["database"] = h.probeDB()
	if h.Rdb != nil {
		report.Dependencies["redis"] = h.probeRedis(c)
	}

	code := fiber.StatusOK
	for _, dep := range report.Dependencies {
		if dep.Status != "connected" {
			report.Status = "degraded"
			code = fiber.StatusServiceUnavailable
		}
	}
	return c.Status(code).JSON(report)
}

func (h *Handlers) probeDB() DepStatus {
	start := time.Now()
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return DepStatus{Status: "disconnected"}
	}
	return DepStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
}

func (h *Handlers) probeRedis(c *fiber.Ctx) DepStatus {
	start := time.Now()
	if err := h.Rdb.Ping(c.Context()).Err(); err != nil {
		return DepStatus{Status: "disconnected"}
	}
	return DepStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
}
