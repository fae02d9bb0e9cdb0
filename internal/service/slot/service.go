package slot

import (
	"context"
	"errors"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
	engine "slot_backend/internal/slot"

	"go.uber.org/zap"
)

type serv struct {
	cfg       engine.Config
	sessions  repository.GameSessionRepository
	statsRepo repository.StatsRepository
	log       *zap.Logger
	opts      []engine.Option
}

// NewSlotService - opts передаются каждому новому секвенсору (RNG, таймер в тестах)
func NewSlotService(
	cfg engine.Config,
	sessions repository.GameSessionRepository,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
	opts ...engine.Option,
) service.SlotService {
	return &serv{
		cfg:       cfg,
		sessions:  sessions,
		statsRepo: statsRepo,
		log:       log.Named("slot"),
		opts:      opts,
	}
}

// sequencer - секвенсор открытой сессии, создается при первой игровой команде.
// Закрытая или истекшая сессия дает ErrSessionNotFound
func (s *serv) sequencer(sessionID string) (*engine.Sequencer, error) {
	return s.sessions.GetOrCreate(sessionID, func() *engine.Sequencer {
		s.log.Info("game session started", zap.String("session_id", sessionID))

		opts := append([]engine.Option{
			engine.WithLogger(s.log.With(zap.String("session_id", sessionID))),
			engine.WithSettleHook(s.statsRepo.Record),
		}, s.opts...)
		return engine.NewSequencer(s.cfg, opts...)
	})
}

// Spin принимает ход и ждет его расчета. Отмена ctx не отменяет ход:
// расчет все равно произойдет, результат будет виден в State
func (s *serv) Spin(ctx context.Context, sessionID string) (*model.SpinResult, error) {
	seq, err := s.sequencer(sessionID)
	if err != nil {
		return nil, err
	}
	turn, err := seq.Spin()
	if err != nil {
		return nil, err
	}

	select {
	case res := <-turn.Result:
		return &res, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SetBet - неверная ставка молча игнорируется, ошибка возвращается для логов
func (s *serv) SetBet(_ context.Context, sessionID string, amount int64) (model.LedgerState, error) {
	seq, err := s.sequencer(sessionID)
	if err != nil {
		return model.LedgerState{}, err
	}
	err = seq.SetBet(amount)
	if err != nil && !errors.Is(err, model.ErrInvalidBetSelection) {
		return model.LedgerState{}, err
	}
	if err != nil {
		s.log.Debug("bet rejected", zap.String("session_id", sessionID), zap.Int64("amount", amount), zap.Error(err))
	}
	return seq.Snapshot(), err
}

func (s *serv) ActivateFreeSpins(_ context.Context, sessionID string) (model.LedgerState, error) {
	seq, err := s.sequencer(sessionID)
	if err != nil {
		return model.LedgerState{}, err
	}
	if err := seq.ActivateFreeSpins(); err != nil {
		return model.LedgerState{}, err
	}
	return seq.Snapshot(), nil
}

func (s *serv) State(_ context.Context, sessionID string) (*model.GameState, error) {
	seq, err := s.sequencer(sessionID)
	if err != nil {
		return nil, err
	}

	st := &model.GameState{
		Phase:  string(seq.State()),
		Ledger: seq.Snapshot(),
	}
	if pending, ok := seq.Pending(); ok {
		st.Pending = &pending
	}
	return st, nil
}

func (s *serv) Config() engine.Config {
	return s.cfg
}

func (s *serv) Stats() model.Stats {
	return s.statsRepo.Stats()
}
