package api

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	characterService "github.com/KirkDiggler/character-vault/internal/services/character"
)

type createCharacterRequest struct {
	OwnerID       string         `json:"owner_id"`
	Name          string         `json:"name"`
	AbilityScores map[string]int `json:"ability_scores"`
}

func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	var req createCharacterRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	scores := make(map[shared.Attribute]int, len(req.AbilityScores))
	for name, score := range req.AbilityScores {
		attr := shared.ParseAttribute(name)
		if attr == shared.AttributeNone {
			writeError(w, dnderr.InvalidArgumentf("unknown ability '%s'", name))
			return
		}
		scores[attr] = score
	}

	sheet, err := h.characters.CreateCharacter(r.Context(), &characterService.CreateCharacterInput{
		OwnerID:       req.OwnerID,
		Name:          req.Name,
		AbilityScores: scores,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sheet)
}

func (h *Handler) getCharacter(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.characters.GetCharacter(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	sheets, err := h.characters.ListCharacters(r.Context(), r.URL.Query().Get("owner_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheets)
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	if err := h.characters.DeleteCharacter(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setAbilityScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Score int `json:"score"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	attr := shared.ParseAttribute(r.PathValue("attr"))
	sheet, err := h.characters.SetAbilityScore(r.Context(), r.PathValue("id"), attr, req.Score)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

type setKeyRequest struct {
	Key string `json:"key"`
}

func (h *Handler) setClass(w http.ResponseWriter, r *http.Request) {
	var req setKeyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sheet, err := h.characters.SetClass(r.Context(), r.PathValue("id"), req.Key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

func (h *Handler) setSpecies(w http.ResponseWriter, r *http.Request) {
	var req setKeyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sheet, err := h.characters.SetSpecies(r.Context(), r.PathValue("id"), req.Key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

func (h *Handler) setBackground(w http.ResponseWriter, r *http.Request) {
	var req setKeyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sheet, err := h.characters.SetBackground(r.Context(), r.PathValue("id"), req.Key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

func (h *Handler) setCurrentHP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HP int `json:"hp"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sheet, err := h.characters.SetCurrentHP(r.Context(), r.PathValue("id"), req.HP)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key      string `json:"key"`
		Quantity int    `json:"quantity"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sheet, err := h.characters.AddItem(r.Context(), r.PathValue("id"), req.Key, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	quantity := 1
	if raw := r.URL.Query().Get("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, dnderr.InvalidArgumentf("invalid quantity '%s'", raw))
			return
		}
		quantity = parsed
	}

	sheet, err := h.characters.RemoveItem(r.Context(), r.PathValue("id"), r.PathValue("instance"), quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

func (h *Handler) equipItem(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.characters.EquipItem(r.Context(), r.PathValue("id"), r.PathValue("instance"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

func (h *Handler) unequipItem(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.characters.UnequipItem(r.Context(), r.PathValue("id"), r.PathValue("instance"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}
