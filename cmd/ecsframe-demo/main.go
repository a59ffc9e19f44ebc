// Command ecsframe-demo drives a small two-state machine end to end:
// an initial state seeds entities and then swaps into a second state
// that drains the stack. It exists to exercise pkg/ecs from outside the
// library and, optionally, to expose its trace buffer over HTTP.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arclight-sim/ecsframe/pkg/ecs"
)

// EngineConfig controls the demo binary. It is never read by pkg/ecs
// itself — the core takes no configuration of its own.
type EngineConfig struct {
	Debug       bool   `validate:"-"`
	DebugAddr   string `validate:"required_if=Debug true,omitempty,hostname_port"`
	EntityCount int    `validate:"min=1,max=10000"`
}

func loadConfig() (*EngineConfig, error) {
	cfg := &EngineConfig{}
	flag.BoolVar(&cfg.Debug, "debug", false, "serve the trace buffer over HTTP")
	flag.StringVar(&cfg.DebugAddr, "debug-addr", "127.0.0.1:8090", "address for the debug HTTP surface")
	flag.IntVar(&cfg.EntityCount, "entities", 3, "number of entities SystemA seeds on start")
	flag.Parse()

	if v := os.Getenv("ECSFRAME_ENTITIES"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.EntityCount)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

type CompInt struct{ N int }
type CompFloat struct{ N float32 }

// SystemA seeds EntityCount entities, each carrying a CompInt and a
// CompFloat, then idles.
type SystemA struct {
	ecs.BaseSystem
	count int
}

func (s *SystemA) Start(tok *ecs.Token) {
	_ = ecs.Register[CompInt](tok)
	_ = ecs.Register[CompFloat](tok)

	req := ecs.NewRequest().Write(ecs.Type[CompInt]()).Write(ecs.Type[CompFloat]())
	loaned, err := tok.Request(req)
	if err != nil || loaned == nil {
		return
	}
	defer loaned.Close()

	ints, _ := ecs.UnpackMut[CompInt](loaned)
	floats, _ := ecs.UnpackMut[CompFloat](loaned)

	for i := 0; i < s.count; i++ {
		e := loaned.RegisterEntity()
		ints.Push(CompInt{N: i}, e.ID())
		floats.Push(CompFloat{N: float32(i) * 1.5}, e.ID())
	}
}

// SystemB swaps into the draining state once SystemA has had a chance to
// seed the world.
type SystemB struct {
	ecs.BaseSystem
	target *ecs.State
	ticks  int
}

func (s *SystemB) Update(*ecs.Token) ecs.Transition {
	s.ticks++
	if s.ticks < 2 {
		return ecs.None()
	}
	return ecs.Swap(s.target)
}

// SystemC pops as soon as it runs, draining the machine.
type SystemC struct {
	ecs.BaseSystem
}

func (s *SystemC) Update(*ecs.Token) ecs.Transition { return ecs.Pop() }

func newLogger() *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	log := zap.Must(logConfig.Build())
	return log.Named("ecsframe-demo")
}

func main() {
	log := newLogger()
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	drain := ecs.NewState("drain").With(&SystemC{})
	seed := ecs.NewState("seed").
		With(&SystemA{count: cfg.EntityCount}).
		With(&SystemB{target: drain})

	machine := ecs.NewMachine(seed, log)

	if cfg.Debug {
		srv := newDebugServer(machine, log)
		go func() {
			log.Info("debug surface listening", zap.String("addr", cfg.DebugAddr), zap.String("boot_id", uuid.NewString()))
			if err := srv.Run(cfg.DebugAddr); err != nil {
				log.Error("debug surface exited", zap.Error(err))
			}
		}()
		// Delay process exit by a moment once main returns, so the
		// listener gets a chance to come up instead of the process exiting
		// immediately after the run in -debug mode.
		defer time.Sleep(50 * time.Millisecond)
	}

	machine.Run()

	for _, e := range machine.Trace().Snapshot() {
		log.Info("trace",
			zap.String("run_id", e.RunID),
			zap.String("state", e.StateName),
			zap.Int("kind", int(e.Kind)),
			zap.Int("depth", e.Depth),
		)
	}
}
