package converter

import (
	"time"

	dto "grape_backend/internal/api/dto/grape"
	"grape_backend/internal/model"
	"grape_backend/internal/repository/usage_repo"
	"grape_backend/internal/service/grape"
)

func ToAnalyzeInput(req dto.AnalyzeRequest) model.AnalyzeInput {
	return model.AnalyzeInput{
		ModelName: req.Model,
		Games:     req.Games,
		BigCount:  req.Big,
		RegCount:  req.Reg,
		Diff:      req.Diff,
	}
}

func ToAnalyzeResponse(res model.AnalysisResult) dto.AnalyzeResponse {
	results := make([]dto.StrategyResult, len(res.Strategies))
	for i, r := range res.Strategies {
		results[i] = dto.StrategyResult{
			Strategy: r.Strategy,
			Grapes:   r.Grapes,
			// Бесконечная вероятность наружу не сериализуется,
			// на границе представления она становится "-"
			Probability: grape.FormatProbability(r),
			Reconciled:  r.GrapesRaw >= 0,
		}
	}

	return dto.AnalyzeResponse{
		Model:   res.ModelName,
		Games:   res.Stats.Games,
		Big:     res.Stats.BigCount,
		Reg:     res.Stats.RegCount,
		Diff:    res.Stats.Diff,
		Results: results,
	}
}

func ToExtractResponse(fields *model.ExtractedFields, rawText string) dto.ExtractResponse {
	if fields == nil {
		return dto.ExtractResponse{
			Recognized: false,
			RawText:    rawText,
		}
	}

	return dto.ExtractResponse{
		Recognized: true,
		RawText:    rawText,
		Fields: &dto.ExtractedFields{
			Model: fields.ModelName,
			Games: fields.Games,
			Big:   fields.BigCount,
			Reg:   fields.RegCount,
			Diff:  fields.Diff,
		},
	}
}

func ToSessionResponse(state *model.StoredSession) dto.SessionResponse {
	return dto.SessionResponse{
		Model: state.ModelName,
		Games: state.Games,
		Big:   state.BigCount,
		Reg:   state.RegCount,
		Diff:  state.Diff,
	}
}

func ToHistoryResponse(entries []model.HistoryEntry) []dto.HistoryEntry {
	result := make([]dto.HistoryEntry, len(entries))
	for i, e := range entries {
		summary := make([]dto.StrategySummary, len(e.Summary))
		for j, s := range e.Summary {
			summary[j] = dto.StrategySummary{
				Strategy:    s.Strategy,
				Probability: s.Probability,
			}
		}
		result[i] = dto.HistoryEntry{
			Model:     e.ModelName,
			Summary:   summary,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}
	return result
}

func ToCatalogResponse(machines []model.MachinePreset, strategies []model.CaptureStrategy) dto.CatalogResponse {
	resp := dto.CatalogResponse{
		Machines:   make([]dto.Machine, len(machines)),
		Strategies: make([]dto.Strategy, len(strategies)),
	}

	for i, m := range machines {
		resp.Machines[i] = dto.Machine{
			Name:         m.Name,
			Replay:       m.ReplayRate,
			Cherry:       m.CherryRate,
			Bell:         m.BellRate,
			Piero:        m.PieroRate,
			BigPayout:    m.BigPayout,
			RegPayout:    m.RegPayout,
			CherryPayout: m.CherryPayout,
			BellPayout:   m.BellPayout,
			PieroPayout:  m.PieroPayout,
		}
	}

	for i, s := range strategies {
		resp.Strategies[i] = dto.Strategy{
			Name:   s.Name,
			Cherry: s.Cherry,
			Bell:   s.Bell,
			Piero:  s.Piero,
		}
	}

	return resp
}

func ToUsageResponse(snap usage_repo.UsageSnapshot) dto.UsageResponse {
	return dto.UsageResponse{
		Analyses:       snap.Analyses,
		AnalysesByName: snap.AnalysesByName,
		Extracts:       snap.Extracts,
		Recognized:     snap.Recognized,
		Empty:          snap.Empty,
	}
}
