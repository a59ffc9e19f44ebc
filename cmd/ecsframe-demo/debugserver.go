package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arclight-sim/ecsframe/pkg/ecs"
)

// debugServer is a read-only introspection surface over a running
// Machine's trace buffer. It is entirely outside pkg/ecs: the core
// performs no network I/O, so nothing here sits on the path of any
// state-machine step — it only ever reads Machine.Trace() after the
// fact.
type debugServer struct {
	machine *ecs.Machine
	log     *zap.Logger
	engine  *gin.Engine
}

func newDebugServer(m *ecs.Machine, log *zap.Logger) *debugServer {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(zapAccessLog(log))

	s := &debugServer{machine: m, log: log, engine: r}

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/api/stats", func(c *gin.Context) {
		snap := m.Trace().Snapshot()
		c.JSON(200, gin.H{
			"trace_entries": len(snap),
		})
	})

	r.GET("/api/trace", func(c *gin.Context) {
		c.JSON(200, m.Trace().Snapshot())
	})

	return s
}

func (s *debugServer) Run(addr string) error {
	return s.engine.Run(addr)
}

// requestID stamps every debug request with a uuid v4 for correlating
// it across log lines, honoring a caller-supplied X-Request-ID header
// when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if len(id) == 0 || len(id) > 64 {
			id = uuid.New().String()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

func zapAccessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Any("request_id", c.MustGet("request_id")),
		)
	}
}
