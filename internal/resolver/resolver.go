package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/piggytree/piggytree/internal/espn"
	"github.com/piggytree/piggytree/internal/metrics"
	"github.com/piggytree/piggytree/internal/refdata"
)

// maxCandidates caps the list returned on an ambiguous lookup.
const maxCandidates = 5

// PlayerInfo is a fully resolved lookup.
type PlayerInfo struct {
	Player       string  `json:"player"`
	Team         string  `json:"team"`
	TeamAbbr     string  `json:"team_abbr"`
	NextOpponent *string `json:"next_opponent"`
	GameDate     *string `json:"game_date"`
	League       string  `json:"league"`
	Position     string  `json:"position"`
	PositionAbbr string  `json:"position_abbr,omitempty"`
}

// Candidate is one entry of an ambiguous lookup.
type Candidate struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// Result is the outcome of a lookup. Exactly one branch is populated:
// Player on success, Multiple when the name is ambiguous, Err otherwise.
// Failures are values here, never transport errors.
type Result struct {
	Player   *PlayerInfo
	Multiple []Candidate
	Err      string
}

func (r Result) outcome() string {
	switch {
	case r.Err != "":
		return "error"
	case len(r.Multiple) > 0:
		return "ambiguous"
	default:
		return "resolved"
	}
}

// league describes one resolution scope against the provider.
type league struct {
	tag           string // result tag, e.g. "NFL"
	sport         string // search API sport, e.g. "football"
	slug          string // search API league, e.g. "nfl"
	sportPath     string // site API path segment, e.g. "football/nfl"
	teams         map[string]string
	fetchPosition bool // NFL only: position comes from the athlete detail endpoint
	basePosition  string
}

var (
	nfl = league{
		tag:           "NFL",
		sport:         "football",
		slug:          "nfl",
		sportPath:     "football/nfl",
		teams:         refdata.NFLTeams,
		fetchPosition: true,
		basePosition:  refdata.PositionQB,
	}
	nba = league{
		tag:          "NBA",
		sport:        "basketball",
		slug:         "nba",
		sportPath:    "basketball/nba",
		teams:        refdata.NBATeams,
		basePosition: refdata.PositionNBA,
	}
)

// Resolver turns a free-text player name into team, position and
// next-opponent facts via the ESPN API.
type Resolver struct {
	client *espn.Client
	now    func() time.Time
}

// New creates a Resolver backed by the given ESPN client.
func New(client *espn.Client) *Resolver {
	return &Resolver{
		client: client,
		now:    time.Now,
	}
}

// Resolve looks up name in the league given by hint ("nfl", "nba" or
// "auto"). Auto mode tries NFL then NBA in order, short-circuiting on the
// first non-error result.
func (r *Resolver) Resolve(ctx context.Context, name, hint string) Result {
	switch strings.ToLower(hint) {
	case "nfl":
		return r.resolveLeague(ctx, nfl, name)
	case "nba":
		return r.resolveLeague(ctx, nba, name)
	default:
		for _, lg := range []league{nfl, nba} {
			if res := r.resolveLeague(ctx, lg, name); res.Err == "" {
				return res
			}
		}
		return Result{Err: fmt.Sprintf("No player found matching '%s' in NFL or NBA", name)}
	}
}

func (r *Resolver) resolveLeague(ctx context.Context, lg league, name string) Result {
	res := r.lookup(ctx, lg, name)
	metrics.LookupsTotal.WithLabelValues(lg.slug, res.outcome()).Inc()
	return res
}

// lookup runs one league's resolution. Panics from unexpected provider
// shapes are converted into error results so no lookup ever takes the
// process down.
func (r *Resolver) lookup(ctx context.Context, lg league, name string) (res Result) {
	defer func() {
		if v := recover(); v != nil {
			log.Error().Interface("panic", v).Str("league", lg.tag).Str("player", name).Msg("Player lookup panicked")
			res = Result{Err: fmt.Sprint(v)}
		}
	}()

	searchNorm := Normalize(name)

	doc, err := r.client.SearchPlayers(ctx, lg.sport, lg.slug, name)
	if err != nil {
		log.Warn().Err(err).Str("league", lg.tag).Str("player", name).Msg("Player search failed")
		return Result{Err: "Failed to search for player"}
	}

	players := doc.Docs("items")
	if len(players) == 0 {
		return Result{Err: fmt.Sprintf("No %s player found matching '%s'", lg.tag, name)}
	}

	player := players[0]
	if len(players) > 1 {
		exact := findExactMatch(players, searchNorm)
		if exact == nil {
			return Result{Multiple: listCandidates(players)}
		}
		player = exact
	}

	info := &PlayerInfo{
		Player:   player.StrOr("displayName", "Unknown"),
		Team:     "Unknown",
		League:   lg.tag,
		Position: lg.basePosition,
	}

	var teamID string
	if rels := player.Docs("teamRelationships"); len(rels) > 0 {
		core := rels[0].Doc("core")
		info.TeamAbbr = core.Str("abbreviation")
		info.Team = core.StrOr("displayName", teamName(lg, info.TeamAbbr))
		teamID = core.Str("id")
	}

	if lg.fetchPosition {
		info.PositionAbbr = r.fetchPositionAbbr(ctx, player.Str("id"))
		info.Position = positionLabel(info.PositionAbbr)
	}

	if teamID != "" {
		info.NextOpponent, info.GameDate = r.nextGame(ctx, lg, teamID, info.TeamAbbr)
	}

	return Result{Player: info}
}

// findExactMatch returns the candidate whose normalized display name
// equals the normalized query. Zero or multiple exact matches return nil:
// two players sharing the queried name stay ambiguous.
func findExactMatch(players []espn.Document, searchNorm string) espn.Document {
	var match espn.Document
	for _, p := range players {
		if Normalize(p.Str("displayName")) == searchNorm {
			if match != nil {
				return nil
			}
			match = p
		}
	}
	return match
}

func listCandidates(players []espn.Document) []Candidate {
	if len(players) > maxCandidates {
		players = players[:maxCandidates]
	}
	candidates := make([]Candidate, 0, len(players))
	for _, p := range players {
		abbr := "?"
		if rels := p.Docs("teamRelationships"); len(rels) > 0 {
			abbr = rels[0].Doc("core").StrOr("abbreviation", "?")
		}
		candidates = append(candidates, Candidate{
			Name: p.Str("displayName"),
			Team: abbr,
		})
	}
	return candidates
}

func teamName(lg league, abbr string) string {
	if name, ok := lg.teams[abbr]; ok {
		return name
	}
	return "Unknown"
}

// fetchPositionAbbr asks the athlete detail endpoint for the player's
// position abbreviation. Best effort: any failure just leaves it empty.
func (r *Resolver) fetchPositionAbbr(ctx context.Context, athleteID string) string {
	if athleteID == "" {
		return ""
	}
	athlete, err := r.client.AthleteDetail(ctx, athleteID)
	if err != nil {
		log.Debug().Err(err).Str("athlete_id", athleteID).Msg("Athlete detail fetch failed")
		return ""
	}
	return athlete.Doc("position").Str("abbreviation")
}

// positionLabels collapses raw NFL position abbreviations into the coarse
// labels the entry form uses.
var positionLabels = map[string]string{
	"QB":   refdata.PositionQB,
	"RB":   refdata.PositionRB,
	"FB":   refdata.PositionRB,
	"WR":   refdata.PositionWR,
	"TE":   refdata.PositionWR,
	"K":    refdata.PositionK,
	"P":    refdata.PositionK,
	"LB":   refdata.PositionDefense,
	"DE":   refdata.PositionDefense,
	"DT":   refdata.PositionDefense,
	"CB":   refdata.PositionDefense,
	"S":    refdata.PositionDefense,
	"SS":   refdata.PositionDefense,
	"FS":   refdata.PositionDefense,
	"OLB":  refdata.PositionDefense,
	"ILB":  refdata.PositionDefense,
	"MLB":  refdata.PositionDefense,
	"NT":   refdata.PositionDefense,
	"DB":   refdata.PositionDefense,
	"DL":   refdata.PositionDefense,
	"EDGE": refdata.PositionDefense,
}

// positionLabel maps a raw abbreviation to its form label, defaulting to
// quarterback for unknown or missing abbreviations.
func positionLabel(abbr string) string {
	if label, ok := positionLabels[abbr]; ok {
		return label
	}
	return refdata.PositionQB
}

// nextGame scans the team's schedule for the first event on or after the
// reference date and returns the opposing team's full name and the game
// date. Both are nil when the schedule is unavailable or exhausted.
func (r *Resolver) nextGame(ctx context.Context, lg league, teamID, teamAbbr string) (*string, *string) {
	sched, err := r.client.TeamSchedule(ctx, lg.sportPath, teamID)
	if err != nil {
		log.Debug().Err(err).Str("league", lg.tag).Str("team_id", teamID).Msg("Schedule fetch failed")
		return nil, nil
	}

	ref := referenceDate(r.now())

	for _, event := range sched.Docs("events") {
		eventTime, err := parseEventDate(event.Str("date"))
		if err != nil {
			// Malformed events are skipped, not fatal
			continue
		}

		utc := eventTime.UTC()
		eventDay := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
		if eventDay.Before(ref) {
			continue
		}

		// The first qualifying event decides the outcome, opponent or not.
		if comps := event.Docs("competitions"); len(comps) > 0 {
			for _, competitor := range comps[0].Docs("competitors") {
				team := competitor.Doc("team")
				abbr := team.Str("abbreviation")
				if abbr == teamAbbr {
					continue
				}
				opponent, ok := lg.teams[abbr]
				if !ok {
					opponent = team.StrOr("displayName", "Unknown")
				}
				gameDate := utc.Format("2006-01-02")
				return &opponent, &gameDate
			}
		}
		return nil, nil
	}
	return nil, nil
}

// referenceDate is the lower bound for the next-game scan: the current
// local calendar date, advanced one day at 22:00 or later so tonight's
// already-started game is not offered as "next".
func referenceDate(now time.Time) time.Time {
	if now.Hour() >= 22 {
		now = now.Add(24 * time.Hour)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseEventDate handles both RFC3339 and ESPN's shortened form with no
// seconds ("2025-11-15T01:00Z").
func parseEventDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty event date")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04Z", s)
	}
	return t, err
}
