package replenishment

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Scheduler dispara el ciclo de reposición: primer tick inmediato al arrancar
// y luego uno por intervalo fijo. A lo sumo un tick en ejecución a la vez; si
// el temporizador dispara con un tick aún corriendo, ese disparo se descarta,
// no se encola. Stop cancela los ticks futuros sin interrumpir el tick en curso.
type Scheduler struct {
	cycle    *ReplenishUseCase
	interval time.Duration
	log      zerolog.Logger

	running  atomic.Bool // tick en curso (guarda de reentrada)
	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewScheduler construye el planificador. interval suele ser 24h.
func NewScheduler(cycle *ReplenishUseCase, interval time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cycle:    cycle,
		interval: interval,
		log:      log,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start lanza la goroutine del planificador. Llamadas repetidas no arrancan
// un segundo temporizador. La cancelación del contexto equivale a Stop.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer close(s.doneCh)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		// Primer tick inmediato.
		s.tick(ctx)
		drainPending(ticker)

		for {
			select {
			case <-ticker.C:
				s.tick(ctx)
				drainPending(ticker)
			case <-ctx.Done():
				s.log.Info().Msg("planificador de reposición detenido por contexto")
				return
			case <-s.stopCh:
				s.log.Info().Msg("planificador de reposición detenido")
				return
			}
		}
	}()
}

// drainPending descarta el disparo que el temporizador dejó en búfer mientras
// un ciclo lento seguía corriendo. Sin esto, un ciclo que dura más que el
// intervalo encadenaría un ciclo duplicado inmediato al terminar.
func drainPending(ticker *time.Ticker) {
	select {
	case <-ticker.C:
	default:
	}
}

// Stop cancela los ticks futuros y libera el temporizador. No interrumpe un
// tick que ya está corriendo; ese termina (o falla) por su cuenta.
func (s *Scheduler) Stop() {
	if !s.started.Load() {
		return
	}
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
}

// TryRunOnce ejecuta un ciclo bajo la misma guarda de reentrada que el
// temporizador (para el disparo manual). Devuelve (false, nil) si ya hay uno
// en curso; con (true, err) el ciclo corrió y err es su resultado.
func (s *Scheduler) TryRunOnce(ctx context.Context) (bool, error) {
	return s.tick(ctx)
}

// tick ejecuta un ciclo completo si no hay otro en curso. Cualquier fallo o
// pánico del cuerpo se registra y muere aquí: nunca tumba el proceso ni
// cancela los ticks siguientes.
func (s *Scheduler) tick(ctx context.Context) (ran bool, err error) {
	if !s.running.CompareAndSwap(false, true) {
		s.log.Warn().Msg("tick de reposición omitido: ciclo anterior aún en curso")
		return false, nil
	}
	defer s.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("pánico en el ciclo de reposición")
			err = fmt.Errorf("pánico en el ciclo de reposición: %v", r)
		}
	}()

	start := time.Now()
	if err := s.cycle.RunCycle(ctx); err != nil {
		s.log.Error().Err(err).Msg("ciclo de reposición abortado")
		return true, err
	}
	s.log.Info().Dur("duración", time.Since(start)).Msg("ciclo de reposición completado")
	return true, nil
}
