package grape

import (
	"encoding/base64"
	"log"
	"net/http"

	dto "grape_backend/internal/api/dto/grape"
	"grape_backend/internal/converter"
	"grape_backend/internal/repository/usage_repo"
	"grape_backend/internal/service"
	"grape_backend/pkg/req"
	"grape_backend/pkg/resp"
)

type HandlerDeps struct {
	GrapeServ   service.GrapeService
	ExtractServ service.ExtractService
	UsageRepo   *usage_repo.UsageRepo
}

type Handler struct {
	grapeServ   service.GrapeService
	extractServ service.ExtractService
	usageRepo   *usage_repo.UsageRepo
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		grapeServ:   deps.GrapeServ,
		extractServ: deps.ExtractServ,
		usageRepo:   deps.UsageRepo,
	}
}

// Analyze выполняет расчёт винограда по всем стратегиям
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AnalyzeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.grapeServ.Analyze(r.Context(), converter.ToAnalyzeInput(payload))
	if err != nil {
		log.Println("Analyze error:", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAnalyzeResponse(*result))
}

// Extract разбирает текст OCR или скриншот на поля сессии.
// recognized=false - это не ошибка, а просьба прислать снимок почётче
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ExtractRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rawText := payload.Text

	if payload.ImageB64 != "" {
		image, err := base64.StdEncoding.DecodeString(payload.ImageB64)
		if err != nil {
			http.Error(w, "invalid image_b64", http.StatusBadRequest)
			return
		}

		fields, recognizedText, err := h.extractServ.ExtractImage(image)
		if err != nil {
			// Сбой OCR движка: наверх уходит читаемая ошибка,
			// прежние данные сессии никто не трогал
			log.Println("Extract OCR error:", err)
			http.Error(w, "ocr recognition failed", http.StatusBadGateway)
			return
		}

		resp.WriteJSONResponse(w, http.StatusOK, converter.ToExtractResponse(fields, recognizedText))
		return
	}

	fields := h.extractServ.Extract(rawText)
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToExtractResponse(fields, rawText))
}

// Session возвращает последние введённые значения пользователя
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	state, err := h.grapeServ.Session(r.Context())
	if err != nil {
		log.Println("Session error:", err)
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}

	if state == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(state))
}

// History возвращает до 10 последних расчётов, новые первыми
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.grapeServ.History(r.Context())
	if err != nil {
		log.Println("History error:", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(entries))
}

// Catalog возвращает каталог моделей и таблицу стратегий
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK,
		converter.ToCatalogResponse(h.grapeServ.Machines(), h.grapeServ.Strategies()))
}

// Usage возвращает счётчики использования сервиса
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUsageResponse(h.usageRepo.Snapshot()))
}
