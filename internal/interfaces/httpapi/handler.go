package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchday-api/internal/platform/logging"
	"github.com/riskibarqy/matchday-api/internal/usecase"
)

const (
	cacheLiveMatches = "s-maxage=600"
	cacheLiveTeams   = "s-maxage=3600"
)

type Handler struct {
	leagueService      *usecase.LeagueService
	fixtureResolver    *usecase.FixtureResolver
	teamService        *usecase.TeamService
	teamStatsService   *usecase.TeamStatsService
	upstreamConfigured bool
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	fixtureResolver *usecase.FixtureResolver,
	teamService *usecase.TeamService,
	teamStatsService *usecase.TeamStatsService,
	upstreamConfigured bool,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:      leagueService,
		fixtureResolver:    fixtureResolver,
		teamService:        teamService,
		teamStatsService:   teamStatsService,
		upstreamConfigured: upstreamConfigured,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type matchesRequest struct {
	League string `validate:"omitempty,max=64"`
	Days   int    `validate:"gte=0,lte=365"`
}

type teamsRequest struct {
	League string `validate:"omitempty,max=64"`
	Search string `validate:"omitempty,max=100"`
	TeamID int64  `validate:"gte=0"`
}

type teamStatsRequest struct {
	TeamName string `validate:"max=100"`
	TeamID   int64  `validate:"gte=0"`
	League   string `validate:"omitempty,max=64"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, healthResponse{
		Status:             "ok",
		UpstreamConfigured: h.upstreamConfigured,
	})
}

// NotFound answers paths no route matches with the JSON error shape.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NotFound")
	defer span.End()

	writeRouteNotFound(ctx, w, r.URL.Path)
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}
	writeJSON(ctx, w, http.StatusOK, leaguesResponse{Success: true, Count: len(items), Leagues: items})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := r.URL.Query()
	req := matchesRequest{
		League: strings.ToLower(strings.TrimSpace(query.Get("league"))),
		Days:   usecase.DefaultWindowDays,
	}
	if raw := strings.TrimSpace(query.Get("days")); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: days must be an integer", usecase.ErrInvalidInput))
			return
		}
		req.Days = days
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var (
		result usecase.MatchesResult
		err    error
	)
	if req.League == "" || req.League == usecase.AllLeaguesKey {
		result, err = h.fixtureResolver.ResolveAll(ctx, req.Days)
	} else {
		result, err = h.fixtureResolver.Resolve(ctx, req.League, req.Days)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "resolve matches failed", "league", req.League, "days", req.Days, "error", err)
		writeError(ctx, w, err)
		return
	}

	setCacheControl(w, result.Meta.Status, cacheLiveMatches)
	writeJSON(ctx, w, http.StatusOK, matchesResponseFromResult(result))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	query := r.URL.Query()
	req := teamsRequest{
		League: strings.ToLower(strings.TrimSpace(query.Get("league"))),
		Search: strings.TrimSpace(query.Get("search")),
	}
	if raw := strings.TrimSpace(query.Get("teamId")); raw != "" {
		teamID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || teamID <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: teamId must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		req.TeamID = teamID
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if req.TeamID > 0 {
		detail, err := h.teamService.Get(ctx, req.TeamID)
		if err != nil {
			h.logger.WarnContext(ctx, "get team failed", "team_id", req.TeamID, "error", err)
			writeError(ctx, w, err)
			return
		}
		setCacheControl(w, detail.Meta.Status, cacheLiveTeams)
		writeJSON(ctx, w, http.StatusOK, teamDetailResponseFromResult(detail))
		return
	}

	result, err := h.teamService.List(ctx, usecase.TeamsQuery{LeagueKey: req.League, Search: req.Search})
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league", req.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	setCacheControl(w, result.Meta.Status, cacheLiveTeams)
	writeJSON(ctx, w, http.StatusOK, teamsResponseFromResult(result))
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	query := r.URL.Query()
	req := teamStatsRequest{
		TeamName: strings.TrimSpace(query.Get("teamName")),
		League:   strings.ToLower(strings.TrimSpace(query.Get("league"))),
	}
	if raw := strings.TrimSpace(query.Get("teamId")); raw != "" {
		teamID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || teamID <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: teamId must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		req.TeamID = teamID
	}
	if req.TeamName == "" && req.TeamID == 0 {
		writeError(ctx, w, fmt.Errorf("%w: teamName or teamId is required", usecase.ErrInvalidInput))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.teamStatsService.Lookup(ctx, usecase.TeamStatsQuery{
		TeamName:  req.TeamName,
		TeamID:    req.TeamID,
		LeagueKey: req.League,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "team stats lookup failed", "team", req.TeamName, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	setCacheControl(w, result.Meta.Status, "")
	writeJSON(ctx, w, http.StatusOK, teamStatsResponseFromResult(result))
}
