package api

import (
	"net/http"

	"github.com/KirkDiggler/character-vault/internal/dice"
	encounterService "github.com/KirkDiggler/character-vault/internal/services/encounter"
)

func (h *Handler) createEncounter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tracker, err := h.encounters.CreateEncounter(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tracker)
}

func (h *Handler) getEncounter(w http.ResponseWriter, r *http.Request) {
	tracker, err := h.encounters.GetEncounter(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tracker)
}

func (h *Handler) listEncounters(w http.ResponseWriter, r *http.Request) {
	trackers, err := h.encounters.ListEncounters(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trackers)
}

func (h *Handler) deleteEncounter(w http.ResponseWriter, r *http.Request) {
	if err := h.encounters.DeleteEncounter(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addPlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CharacterID string `json:"character_id"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	combatant, err := h.encounters.AddPlayer(r.Context(), r.PathValue("id"), req.CharacterID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, combatant)
}

func (h *Handler) addMonster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key string `json:"key"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	combatant, err := h.encounters.AddMonster(r.Context(), r.PathValue("id"), req.Key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, combatant)
}

func (h *Handler) rollInitiative(w http.ResponseWriter, r *http.Request) {
	if err := h.encounters.RollInitiative(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	tracker, err := h.encounters.GetEncounter(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tracker)
}

func (h *Handler) startEncounter(w http.ResponseWriter, r *http.Request) {
	warning, err := h.encounters.StartEncounter(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	tracker, err := h.encounters.GetEncounter(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Warning   string `json:"warning,omitempty"`
		Encounter any    `json:"encounter"`
	}{Warning: warning, Encounter: tracker})
}

func (h *Handler) nextTurn(w http.ResponseWriter, r *http.Request) {
	if err := h.encounters.NextTurn(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	tracker, err := h.encounters.GetEncounter(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tracker)
}

func (h *Handler) endEncounter(w http.ResponseWriter, r *http.Request) {
	if err := h.encounters.EndEncounter(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type hpChangeRequest struct {
	CombatantID string `json:"combatant_id"`
	Amount      int    `json:"amount"`
}

func (h *Handler) applyDamage(w http.ResponseWriter, r *http.Request) {
	var req hpChangeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.encounters.ApplyDamage(r.Context(), r.PathValue("id"), req.CombatantID, req.Amount); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) healCombatant(w http.ResponseWriter, r *http.Request) {
	var req hpChangeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.encounters.HealCombatant(r.Context(), r.PathValue("id"), req.CombatantID, req.Amount); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeCombatant(w http.ResponseWriter, r *http.Request) {
	if err := h.encounters.RemoveCombatant(r.Context(), r.PathValue("id"), r.PathValue("combatant")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) performAttack(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AttackerID string `json:"attacker_id"`
		TargetID   string `json:"target_id"`
		Action     string `json:"action,omitempty"`
		Mode       string `json:"mode,omitempty"`
		TwoHanded  bool   `json:"two_handed,omitempty"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.encounters.PerformAttack(r.Context(), &encounterService.AttackInput{
		EncounterID: r.PathValue("id"),
		AttackerID:  req.AttackerID,
		TargetID:    req.TargetID,
		ActionName:  req.Action,
		Mode:        dice.Mode(req.Mode),
		TwoHanded:   req.TwoHanded,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) resolveSave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AttackerID string `json:"attacker_id"`
		TargetID   string `json:"target_id"`
		Action     string `json:"action"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.encounters.ResolveSave(r.Context(), &encounterService.SaveInput{
		EncounterID: r.PathValue("id"),
		AttackerID:  req.AttackerID,
		TargetID:    req.TargetID,
		ActionName:  req.Action,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
