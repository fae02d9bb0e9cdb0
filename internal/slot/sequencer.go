package slot

import (
	"fmt"
	"slot_backend/internal/ledger"
	"slot_backend/internal/model"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// State - состояние автомата хода
type State string

const (
	StateIdle                State = "idle"
	StateDrawing             State = "drawing"
	StateRevealing           State = "revealing"
	StateSettling            State = "settling"
	StateSecondChancePending State = "second_chance_pending"
	StateReDrawing           State = "redrawing"
	StateReRevealing         State = "rerevealing"
)

// Timer откладывает расчет хода до конца показа барабанов
type Timer interface {
	AfterFunc(d time.Duration, f func())
}

type realTimer struct{}

func (realTimer) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// Turn - принятый ход. Result получает ровно одну запись и закрывается
type Turn struct {
	SpinID      string
	Grid        model.Grid
	RevealDelay time.Duration
	Resolving   bool
	Result      <-chan model.SpinResult
}

// turnState - параметры хода, зафиксированные при его начале
type turnState struct {
	id         string
	bet        int64
	isFreeSpin bool
	multiplier int
	resolving  bool
	result     chan model.SpinResult
}

type Option func(*Sequencer)

func WithRNG(rng RNG) Option {
	return func(s *Sequencer) { s.gen = NewGenerator(rng) }
}

func WithTimer(t Timer) Option {
	return func(s *Sequencer) { s.timer = t }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Sequencer) { s.log = l }
}

// WithSettleHook - вызывается после каждого расчета, вне блокировки
func WithSettleHook(h func(model.SpinResult)) Option {
	return func(s *Sequencer) { s.hooks = append(s.hooks, h) }
}

// Sequencer - автомат одного игрового сеанса. Владеет своим счетом,
// одновременно в работе не больше одного хода.
type Sequencer struct {
	mu sync.Mutex

	cfg    Config
	ledger *ledger.Ledger
	gen    *Generator
	eval   *Evaluator
	timer  Timer
	log    *zap.Logger
	hooks  []func(model.SpinResult)

	state   State
	grid    model.Grid
	turn    turnState
	pending *model.Outcome
}

func NewSequencer(cfg Config, opts ...Option) *Sequencer {
	s := &Sequencer{
		cfg:    cfg,
		ledger: ledger.New(cfg.LedgerSettings()),
		gen:    NewGenerator(nil),
		eval:   NewEvaluator(cfg),
		timer:  realTimer{},
		log:    zap.NewNop(),
		state:  StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spin начинает ход. В состоянии SecondChancePending вместо нового хода
// разыгрывается второй шанс: перекручиваются только барабаны напротив якоря,
// ставка и взнос в джекпот повторно не списываются.
func (s *Sequencer) Spin() (*Turn, error) {
	s.mu.Lock()

	var (
		turn *Turn
		err  error
	)
	switch s.state {
	case StateIdle:
		turn, err = s.beginTurn()
	case StateSecondChancePending:
		turn = s.beginResolve()
	default:
		err = fmt.Errorf("spin in state %s: %w", s.state, model.ErrBlockedBySpin)
	}
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	s.timer.AfterFunc(turn.RevealDelay, s.settle)
	return turn, nil
}

// beginTurn вызывается под блокировкой
func (s *Sequencer) beginTurn() (*Turn, error) {
	isFree := s.ledger.FreeSpinActive()
	bet := s.ledger.Bet()

	if !isFree {
		if s.ledger.Balance() < bet {
			return nil, fmt.Errorf("bet %d, balance %d: %w", bet, s.ledger.Balance(), model.ErrInsufficientFunds)
		}
		contribution := decimal.NewFromInt(bet).Mul(s.cfg.JackpotRate).Floor().IntPart()
		if err := s.ledger.DeductStake(bet); err != nil {
			return nil, err
		}
		if err := s.ledger.ContributeToJackpot(contribution); err != nil {
			return nil, err
		}
	}

	s.state = StateDrawing
	s.turn = turnState{
		id:         uuid.NewString(),
		bet:        bet,
		isFreeSpin: isFree,
		multiplier: s.ledger.SpinMultiplier(),
		result:     make(chan model.SpinResult, 1),
	}
	s.grid = s.gen.Draw(s.cfg.Reels, s.cfg.Rows, s.cfg.Symbols)
	s.state = StateRevealing

	return &Turn{
		SpinID:      s.turn.id,
		Grid:        s.grid.Clone(),
		RevealDelay: s.revealDelay(s.cfg.Reels),
		Result:      s.turn.result,
	}, nil
}

// beginResolve вызывается под блокировкой
func (s *Sequencer) beginResolve() *Turn {
	cols := OppositeColumns(s.pending.Anchor, s.cfg.Reels)

	s.state = StateReDrawing
	s.turn.id = uuid.NewString()
	s.turn.resolving = true
	s.turn.result = make(chan model.SpinResult, 1)
	s.grid = s.gen.DrawReplacement(s.grid, cols, s.cfg.Rows, s.cfg.Symbols)
	s.state = StateReRevealing

	return &Turn{
		SpinID:      s.turn.id,
		Grid:        s.grid.Clone(),
		RevealDelay: s.revealDelay(len(cols)),
		Resolving:   true,
		Result:      s.turn.result,
	}
}

func (s *Sequencer) revealDelay(reels int) time.Duration {
	return s.cfg.RevealDuration + time.Duration(reels)*s.cfg.ReelStagger
}

// settle - обработчик таймера: оценка поля и изменение счета
func (s *Sequencer) settle() {
	s.mu.Lock()

	resolving := s.state == StateReRevealing
	s.state = StateSettling

	in := EvalInput{
		Bet:        s.turn.bet,
		Jackpot:    s.ledger.Jackpot(),
		IsFreeSpin: s.turn.isFreeSpin,
		Multiplier: s.turn.multiplier,
	}

	var out model.Outcome
	if resolving {
		out = s.eval.Resolve(s.grid, in, *s.pending)
	} else {
		out = s.eval.Evaluate(s.grid, in)
	}

	res := s.apply(out, resolving)
	ch := s.turn.result
	hooks := s.hooks

	s.log.Debug("spin settled",
		zap.String("spin_id", res.SpinID),
		zap.String("outcome", string(res.OutcomeKind)),
		zap.Int64("amount", res.Amount),
		zap.Int64("balance", res.Ledger.Balance),
		zap.Bool("free_spin", res.IsFreeSpin),
		zap.Bool("resolve", resolving),
	)
	s.mu.Unlock()

	ch <- res
	close(ch)
	for _, h := range hooks {
		h(res)
	}
}

// apply меняет счет по результату и переводит автомат в следующее состояние.
// Вызывается под блокировкой
func (s *Sequencer) apply(out model.Outcome, resolving bool) model.SpinResult {
	res := model.SpinResult{
		SpinID:                s.turn.id,
		OutcomeKind:           out.Kind,
		Amount:                out.Amount,
		Description:           out.Description,
		MatchedGeometry:       out.Lines,
		MatchedCells:          out.MatchedCells,
		IsSecondChanceResolve: resolving,
		IsFreeSpin:            s.turn.isFreeSpin,
		JackpotHit:            out.JackpotHit,
		Bet:                   s.turn.bet,
		Grid:                  s.grid.Clone(),
	}

	switch out.Kind {
	case model.OutcomeSecondChance:
		pending := out
		s.pending = &pending
		s.state = StateSecondChancePending
		res.IsSecondChancePending = true

	case model.OutcomeBonus:
		s.ledger.GrantFreeSpins(s.cfg.FreeSpinCount)
		res.AwardedFreeSpins = s.cfg.FreeSpinCount
		s.finishTurn()

	default:
		if err := s.ledger.Credit(out.Amount); err != nil {
			s.log.Error("credit payout", zap.Error(err), zap.String("spin_id", s.turn.id))
		}
		if out.JackpotHit {
			s.ledger.ResetJackpot()
		}
		if s.turn.isFreeSpin {
			s.ledger.ConsumeFreeSpin()
		}
		s.finishTurn()
	}

	res.Ledger = s.ledger.Snapshot()
	return res
}

func (s *Sequencer) finishTurn() {
	s.pending = nil
	s.state = StateIdle
}

// SetBet меняет ставку. Текущий ход продолжает играть со ставкой, зафиксированной при его начале
func (s *Sequencer) SetBet(amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.SetBet(amount)
}

// ActivateFreeSpins выдает бесплатные вращения вне бонусной линии
func (s *Sequencer) ActivateFreeSpins() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return fmt.Errorf("activate free spins in state %s: %w", s.state, model.ErrBlockedBySpin)
	}
	if s.ledger.FreeSpinActive() {
		return fmt.Errorf("%d remaining: %w", s.ledger.FreeSpinsRemaining(), model.ErrFreeSpinsActive)
	}
	s.ledger.GrantFreeSpins(s.cfg.FreeSpinCount)
	return nil
}

func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Sequencer) Snapshot() model.LedgerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Snapshot()
}

// Pending - незавершенный второй шанс, если он есть
func (s *Sequencer) Pending() (model.Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return model.Outcome{}, false
	}
	return *s.pending, true
}
