package converter

import (
	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/model"
	"slot_backend/internal/slot"
)

func ToLedger(st model.LedgerState) dto.Ledger {
	return dto.Ledger{
		Balance:            st.Balance,
		Bet:                st.Bet,
		Jackpot:            st.Jackpot,
		FreeSpinsRemaining: st.FreeSpinsRemaining,
		SpinMultiplier:     st.SpinMultiplier,
	}
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		SpinID:              res.SpinID,
		Grid:                res.Grid.IDs(),
		Outcome:             string(res.OutcomeKind),
		Amount:              res.Amount,
		Description:         res.Description,
		Lines:               toLines(res.MatchedGeometry),
		Cells:               toCells(res.MatchedCells),
		SecondChancePending: res.IsSecondChancePending,
		SecondChanceResolve: res.IsSecondChanceResolve,
		FreeSpin:            res.IsFreeSpin,
		AwardedFreeSpins:    res.AwardedFreeSpins,
		JackpotHit:          res.JackpotHit,
		Bet:                 res.Bet,
		Ledger:              ToLedger(res.Ledger),
	}
}

// ToStateResponse - reels нужен, чтобы показать клиенту барабаны второго шанса
func ToStateResponse(st *model.GameState, reels int) dto.StateResponse {
	out := dto.StateResponse{
		Phase:  st.Phase,
		Ledger: ToLedger(st.Ledger),
	}
	if st.Pending != nil {
		out.Pending = &dto.Pending{
			Lines:       toLines(st.Pending.Lines),
			Rows:        st.Pending.MatchedRows,
			Anchor:      string(st.Pending.Anchor),
			RedrawReels: slot.OppositeColumns(st.Pending.Anchor, reels),
		}
	}
	return out
}

func ToConfigResponse(cfg slot.Config) dto.ConfigResponse {
	symbols := make([]dto.Symbol, len(cfg.Symbols))
	for i, s := range cfg.Symbols {
		symbols[i] = dto.Symbol{ID: s.ID, Glyph: s.Glyph, PayValue: s.PayValue}
	}

	paylines := make([]dto.Payline, len(cfg.Paylines))
	for i, p := range cfg.Paylines {
		paylines[i] = dto.Payline{
			Combination: p.Combination,
			Multiplier:  p.Multiplier.String(),
			IsJackpot:   p.IsJackpot,
		}
	}

	return dto.ConfigResponse{
		Reels:        cfg.Reels,
		Rows:         cfg.Rows,
		Symbols:      symbols,
		MinBet:       cfg.MinBet,
		BetSteps:     cfg.BetSteps,
		Paylines:     paylines,
		SecondChance: cfg.SecondChance,
		FreeSpins: dto.FreeSpins{
			Symbol:     cfg.BonusSymbolID,
			Count:      cfg.FreeSpinCount,
			Multiplier: cfg.FreeSpinMultiplier,
		},
		Animation: dto.Animation{
			RevealDurationMs: cfg.RevealDuration.Milliseconds(),
			ReelStaggerMs:    cfg.ReelStagger.Milliseconds(),
			CellHeight:       cfg.CellHeight,
		},
	}
}

func ToStatsResponse(st model.Stats) dto.StatsResponse {
	outcomes := make(map[string]int64, len(st.Outcomes))
	for kind, n := range st.Outcomes {
		outcomes[string(kind)] = n
	}

	return dto.StatsResponse{
		TotalSpins:    st.TotalSpins,
		PaidSpins:     st.PaidSpins,
		TotalBet:      st.TotalBet,
		TotalPayout:   st.TotalPayout,
		CurrentRTP:    st.CurrentRTP.StringFixed(2),
		WindowRTP:     st.WindowRTP.StringFixed(2),
		WindowSize:    st.WindowSize,
		Outcomes:      outcomes,
		JackpotHits:   st.JackpotHits,
		BonusTriggers: st.BonusTriggers,
	}
}

func toLines(lines []model.LineGeometry) []dto.Line {
	out := make([]dto.Line, len(lines))
	for i, l := range lines {
		out[i] = dto.Line{Kind: string(l.Kind), Index: l.Index}
	}
	return out
}

func toCells(cells []model.Cell) []dto.Cell {
	out := make([]dto.Cell, len(cells))
	for i, c := range cells {
		out[i] = dto.Cell{Reel: c.Reel, Row: c.Row}
	}
	return out
}
