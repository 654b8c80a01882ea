package api

import (
	"net/http"

	"github.com/KirkDiggler/character-vault/internal/domain/npc"
)

func (h *Handler) createNPC(w http.ResponseWriter, r *http.Request) {
	var data npc.NPCData
	if err := decode(r, &data); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.content.CreateNPC(r.Context(), &data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getNPC(w http.ResponseWriter, r *http.Request) {
	data, err := h.content.GetNPC(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) listNPCs(w http.ResponseWriter, r *http.Request) {
	data, err := h.content.ListNPCs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) updateNPC(w http.ResponseWriter, r *http.Request) {
	var data npc.NPCData
	if err := decode(r, &data); err != nil {
		writeError(w, err)
		return
	}
	data.ID = r.PathValue("id")

	updated, err := h.content.UpdateNPC(r.Context(), &data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteNPC(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteNPC(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) importMonsters(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MinCR float64 `json:"min_cr"`
		MaxCR float64 `json:"max_cr"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	count, err := h.content.ImportMonsters(r.Context(), req.MinCR, req.MaxCR)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Imported int `json:"imported"`
	}{Imported: count})
}

func (h *Handler) listClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.dndClient.ListClasses()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

func (h *Handler) listSpecies(w http.ResponseWriter, r *http.Request) {
	species, err := h.dndClient.ListSpecies()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, species)
}

func (h *Handler) listBackgrounds(w http.ResponseWriter, r *http.Request) {
	backgrounds, err := h.dndClient.ListBackgrounds()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, backgrounds)
}

func (h *Handler) listEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.dndClient.ListEquipment()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMonster(w http.ResponseWriter, r *http.Request) {
	monster, err := h.dndClient.GetMonster(r.PathValue("key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, monster)
}
