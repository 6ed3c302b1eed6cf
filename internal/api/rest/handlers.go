package rest

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/piggytree/piggytree/internal/metrics"
	"github.com/piggytree/piggytree/internal/refdata"
	"github.com/piggytree/piggytree/internal/resolver"
	"github.com/piggytree/piggytree/internal/store"
)

// csvColumns is the fixed export column order. Entry fields outside this
// set are dropped silently.
var csvColumns = []string{
	"Player", "PlayerTeam", "OppTeam", "Position", "Stat",
	"LineMode", "LineValue", "Pick", "Level", "Multiplier",
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	entries  *store.EntryStore
	resolver *resolver.Resolver
}

// NewHandler creates a new handler
func NewHandler(entries *store.EntryStore, res *resolver.Resolver) *Handler {
	return &Handler{
		entries:  entries,
		resolver: res,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "piggytree",
	})
}

// LookupPlayer resolves a free-text player name to team, position and
// next-opponent facts. Resolution failures come back as a 200 with an
// error payload; the front-end decides how to present them.
func (h *Handler) LookupPlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerName string `json:"player_name"`
		League     string `json:"league"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		respondJSON(w, http.StatusOK, map[string]string{"error": "No player name provided"})
		return
	}

	league := req.League
	if league == "" {
		league = "auto"
	}

	result := h.resolver.Resolve(r.Context(), name, league)
	respondJSON(w, http.StatusOK, lookupPayload(result))
}

// lookupPayload maps a resolver result onto the wire shape: a resolved
// player object, {"multiple": [...]} or {"error": "..."}.
func lookupPayload(result resolver.Result) interface{} {
	switch {
	case result.Err != "":
		return map[string]string{"error": result.Err}
	case len(result.Multiple) > 0:
		return map[string]interface{}{"multiple": result.Multiple}
	default:
		return result.Player
	}
}

// GetEntries returns all recorded entries in index order
func (h *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.entries.List())
}

// SaveEntry creates or overwrites an entry. A body carrying a valid
// existing id replaces that entry; anything else appends.
func (h *Handler) SaveEntry(w http.ResponseWriter, r *http.Request) {
	var entry store.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if entry == nil {
		entry = store.Entry{}
	}

	entries, err := h.entries.Upsert(entry)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save entry", err)
		return
	}
	metrics.EntryMutationsTotal.WithLabelValues("upsert").Inc()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"entries": entries,
	})
}

// DeleteEntry removes an entry by index. Out-of-range ids are a no-op.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid entry ID", err)
		return
	}

	entries, err := h.entries.Delete(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete entry", err)
		return
	}
	metrics.EntryMutationsTotal.WithLabelValues("delete").Inc()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"entries": entries,
	})
}

// ExportCSV streams all entries as a spreadsheet attachment with a fixed
// column order. An empty store yields an error payload, not an empty file.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	entries := h.entries.List()
	if len(entries) == 0 {
		respondJSON(w, http.StatusOK, map[string]string{"error": "No entries to export"})
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvColumns); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate CSV", err)
		return
	}
	for _, entry := range entries {
		row := make([]string, len(csvColumns))
		for i, column := range csvColumns {
			row[i] = csvCell(entry[column])
		}
		if err := writer.Write(row); err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to generate CSV", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate CSV", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="piggytree_entries.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// csvCell renders one entry field as CSV text. Missing fields render as
// blank cells; numbers keep their JSON form (no trailing zeros).
func csvCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// GetCategories returns the stat categories offered per position label
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, refdata.StatCategories)
}

// GetTeams returns the sorted union of NFL, NBA and MLB team names
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, refdata.AllTeamNames())
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}

	respondJSON(w, status, response)
}
