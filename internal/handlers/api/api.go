// Package api exposes the application over a JSON HTTP surface. The
// handlers stay thin: decode, call a service, encode. All rules live in
// the services and domain packages.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/KirkDiggler/character-vault/internal/clients/dnd5e"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	characterService "github.com/KirkDiggler/character-vault/internal/services/character"
	contentService "github.com/KirkDiggler/character-vault/internal/services/content"
	encounterService "github.com/KirkDiggler/character-vault/internal/services/encounter"
)

// Handler owns the HTTP routes and their service dependencies
type Handler struct {
	characters characterService.Service
	encounters encounterService.Service
	content    contentService.Service
	dndClient  dnd5e.Client
}

// HandlerConfig holds dependencies for the API handler
type HandlerConfig struct {
	CharacterService characterService.Service
	EncounterService encounterService.Service
	ContentService   contentService.Service
	DNDClient        dnd5e.Client
}

// NewHandler creates the API handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.CharacterService == nil {
		panic("character service is required")
	}
	if cfg.EncounterService == nil {
		panic("encounter service is required")
	}
	if cfg.ContentService == nil {
		panic("content service is required")
	}
	if cfg.DNDClient == nil {
		panic("dnd client is required")
	}

	return &Handler{
		characters: cfg.CharacterService,
		encounters: cfg.EncounterService,
		content:    cfg.ContentService,
		dndClient:  cfg.DNDClient,
	}
}

// Routes builds the route table
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/characters", h.createCharacter)
	mux.HandleFunc("GET /v1/characters", h.listCharacters)
	mux.HandleFunc("GET /v1/characters/{id}", h.getCharacter)
	mux.HandleFunc("DELETE /v1/characters/{id}", h.deleteCharacter)
	mux.HandleFunc("PUT /v1/characters/{id}/abilities/{attr}", h.setAbilityScore)
	mux.HandleFunc("PUT /v1/characters/{id}/class", h.setClass)
	mux.HandleFunc("PUT /v1/characters/{id}/species", h.setSpecies)
	mux.HandleFunc("PUT /v1/characters/{id}/background", h.setBackground)
	mux.HandleFunc("PUT /v1/characters/{id}/hp", h.setCurrentHP)
	mux.HandleFunc("POST /v1/characters/{id}/items", h.addItem)
	mux.HandleFunc("DELETE /v1/characters/{id}/items/{instance}", h.removeItem)
	mux.HandleFunc("POST /v1/characters/{id}/items/{instance}/equip", h.equipItem)
	mux.HandleFunc("POST /v1/characters/{id}/items/{instance}/unequip", h.unequipItem)

	mux.HandleFunc("POST /v1/encounters", h.createEncounter)
	mux.HandleFunc("GET /v1/encounters", h.listEncounters)
	mux.HandleFunc("GET /v1/encounters/{id}", h.getEncounter)
	mux.HandleFunc("DELETE /v1/encounters/{id}", h.deleteEncounter)
	mux.HandleFunc("POST /v1/encounters/{id}/players", h.addPlayer)
	mux.HandleFunc("POST /v1/encounters/{id}/monsters", h.addMonster)
	mux.HandleFunc("POST /v1/encounters/{id}/initiative", h.rollInitiative)
	mux.HandleFunc("POST /v1/encounters/{id}/start", h.startEncounter)
	mux.HandleFunc("POST /v1/encounters/{id}/next-turn", h.nextTurn)
	mux.HandleFunc("POST /v1/encounters/{id}/end", h.endEncounter)
	mux.HandleFunc("POST /v1/encounters/{id}/damage", h.applyDamage)
	mux.HandleFunc("POST /v1/encounters/{id}/heal", h.healCombatant)
	mux.HandleFunc("DELETE /v1/encounters/{id}/combatants/{combatant}", h.removeCombatant)
	mux.HandleFunc("POST /v1/encounters/{id}/attacks", h.performAttack)
	mux.HandleFunc("POST /v1/encounters/{id}/saves", h.resolveSave)

	mux.HandleFunc("POST /v1/npcs", h.createNPC)
	mux.HandleFunc("GET /v1/npcs", h.listNPCs)
	mux.HandleFunc("GET /v1/npcs/{id}", h.getNPC)
	mux.HandleFunc("PUT /v1/npcs/{id}", h.updateNPC)
	mux.HandleFunc("DELETE /v1/npcs/{id}", h.deleteNPC)
	mux.HandleFunc("POST /v1/npcs/import", h.importMonsters)

	mux.HandleFunc("GET /v1/content/classes", h.listClasses)
	mux.HandleFunc("GET /v1/content/species", h.listSpecies)
	mux.HandleFunc("GET /v1/content/backgrounds", h.listBackgrounds)
	mux.HandleFunc("GET /v1/content/equipment", h.listEquipment)
	mux.HandleFunc("GET /v1/content/monsters/{key}", h.getMonster)

	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// writeError maps application error codes onto HTTP statuses
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch dnderr.GetCode(err) {
	case dnderr.CodeInvalidArgument:
		status = http.StatusBadRequest
	case dnderr.CodeNotFound:
		status = http.StatusNotFound
	case dnderr.CodeAlreadyExists:
		status = http.StatusConflict
	case dnderr.CodeValidation:
		status = http.StatusUnprocessableEntity
	}

	body := errorBody{
		Code:    string(dnderr.GetCode(err)),
		Message: err.Error(),
	}
	var appErr *dnderr.Error
	if errors.As(err, &appErr) {
		body.Meta = appErr.Meta
	}

	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
	}
	writeJSON(w, status, body)
}

func decode(r *http.Request, into any) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return dnderr.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}
