package slot

type BetRequest struct {
	Amount int64 `json:"amount"` // Один из шагов ставки
}

type BetResponse struct {
	Accepted bool   `json:"accepted"` // false - ставка отклонена, счет не изменился
	Ledger   Ledger `json:"ledger"`
}

type Ledger struct {
	Balance            int64 `json:"balance"`
	Bet                int64 `json:"bet"`
	Jackpot            int64 `json:"jackpot"`
	FreeSpinsRemaining int   `json:"free_spins_remaining"`
	SpinMultiplier     int   `json:"spin_multiplier"`
}

type Line struct {
	Kind  string `json:"kind"`  // horizontal, vertical, diagonal_tl_br, diagonal_tr_bl
	Index int    `json:"index"` // Строка для horizontal, барабан для vertical
}

type Cell struct {
	Reel int `json:"reel"`
	Row  int `json:"row"`
}

type SpinResponse struct {
	SpinID              string     `json:"spin_id"`
	Grid                [][]string `json:"grid"` // [барабан][строка], ID символов
	Outcome             string     `json:"outcome"`
	Amount              int64      `json:"amount"`
	Description         string     `json:"description"`
	Lines               []Line     `json:"lines"`
	Cells               []Cell     `json:"cells"`
	SecondChancePending bool       `json:"second_chance_pending"`
	SecondChanceResolve bool       `json:"second_chance_resolve"`
	FreeSpin            bool       `json:"free_spin"`
	AwardedFreeSpins    int        `json:"awarded_free_spins"`
	JackpotHit          bool       `json:"jackpot_hit"`
	Bet                 int64      `json:"bet"`
	Ledger              Ledger     `json:"ledger"`
}

// Pending - ожидающий второй шанс
type Pending struct {
	Lines       []Line `json:"lines"`
	Rows        []int  `json:"rows"`
	Anchor      string `json:"anchor"`
	RedrawReels []int  `json:"redraw_reels"` // Барабаны, которые будут перекручены
}

type StateResponse struct {
	Phase   string   `json:"phase"`
	Ledger  Ledger   `json:"ledger"`
	Pending *Pending `json:"pending,omitempty"`
}

type Symbol struct {
	ID       string `json:"id"`
	Glyph    string `json:"glyph"`
	PayValue int    `json:"pay_value"`
}

type Payline struct {
	Combination []string `json:"combination"`
	Multiplier  string   `json:"multiplier"`
	IsJackpot   bool     `json:"is_jackpot"`
}

type FreeSpins struct {
	Symbol     string `json:"symbol"`
	Count      int    `json:"count"`
	Multiplier int    `json:"multiplier"`
}

type Animation struct {
	RevealDurationMs int64 `json:"reveal_duration_ms"`
	ReelStaggerMs    int64 `json:"reel_stagger_ms"`
	CellHeight       int   `json:"cell_height"`
}

type ConfigResponse struct {
	Reels        int       `json:"reels"`
	Rows         int       `json:"rows"`
	Symbols      []Symbol  `json:"symbols"`
	MinBet       int64     `json:"min_bet"`
	BetSteps     []int64   `json:"bet_steps"`
	Paylines     []Payline `json:"paylines"`
	SecondChance bool      `json:"second_chance"`
	FreeSpins    FreeSpins `json:"free_spins"`
	Animation    Animation `json:"animation"`
}

type StatsResponse struct {
	TotalSpins    int64            `json:"total_spins"`
	PaidSpins     int64            `json:"paid_spins"`
	TotalBet      int64            `json:"total_bet"`
	TotalPayout   int64            `json:"total_payout"`
	CurrentRTP    string           `json:"current_rtp"` // В процентах
	WindowRTP     string           `json:"window_rtp"`
	WindowSize    int              `json:"window_size"`
	Outcomes      map[string]int64 `json:"outcomes"`
	JackpotHits   int64            `json:"jackpot_hits"`
	BonusTriggers int64            `json:"bonus_triggers"`
}
