// Package v1 serves the battle service as a JSON API over HTTP
package v1

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
	"github.com/KirkDiggler/dino-battle/internal/orchestrators/battle"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	BattleService battle.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.BattleService == nil {
		return errors.InvalidArgument("battle service is required")
	}
	return nil
}

// Handler maps HTTP routes onto the battle service
type Handler struct {
	battleService battle.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		battleService: cfg.BattleService,
	}, nil
}

// Register mounts the v1 routes on the router
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/v1")
	g.GET("/species", h.ListSpecies)
	g.POST("/rosters", h.CreateRoster)
	g.GET("/rosters", h.ListRosters)
	g.GET("/rosters/:id", h.GetRoster)
	g.DELETE("/rosters/:id", h.DeleteRoster)
	g.POST("/battles", h.RunBattle)
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeInternal {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err.Error())
	}
	c.JSON(code.HTTPStatus(), ErrorResponse{Code: code.String(), Message: err.Error()})
}

// ListSpecies returns the catalog
func (h *Handler) ListSpecies(c *gin.Context) {
	out, err := h.battleService.ListSpecies(c.Request.Context(), &battle.ListSpeciesInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CreateRosterRequest is the body of POST /v1/rosters
type CreateRosterRequest struct {
	Name    string   `json:"name"`
	Species []string `json:"species"`
}

// CreateRoster saves a lineup
func (h *Handler) CreateRoster(c *gin.Context) {
	var req CreateRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	species, err := dino.ParseSpeciesList(req.Species)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.battleService.CreateRoster(c.Request.Context(), &battle.CreateRosterInput{
		Name:    req.Name,
		Species: species,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// ListRosters returns every saved lineup
func (h *Handler) ListRosters(c *gin.Context) {
	out, err := h.battleService.ListRosters(c.Request.Context(), &battle.ListRostersInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetRoster returns one saved lineup
func (h *Handler) GetRoster(c *gin.Context) {
	out, err := h.battleService.GetRoster(c.Request.Context(), &battle.GetRosterInput{ID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DeleteRoster removes a saved lineup
func (h *Handler) DeleteRoster(c *gin.Context) {
	if _, err := h.battleService.DeleteRoster(c.Request.Context(), &battle.DeleteRosterInput{ID: c.Param("id")}); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SideRequest picks one team of a battle
type SideRequest struct {
	Name     string   `json:"name"`
	RosterID string   `json:"roster_id"`
	Species  []string `json:"species"`
}

// RunBattleRequest is the body of POST /v1/battles
type RunBattleRequest struct {
	Left      SideRequest `json:"left"`
	Right     SideRequest `json:"right"`
	MaxRounds *int        `json:"max_rounds"`
	Seed      *int64      `json:"seed"`
}

// RunBattle fights one battle and returns the result
func (h *Handler) RunBattle(c *gin.Context) {
	var req RunBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	left, err := toSideInput(req.Left)
	if err != nil {
		writeError(c, errors.Wrap(err, "left"))
		return
	}
	right, err := toSideInput(req.Right)
	if err != nil {
		writeError(c, errors.Wrap(err, "right"))
		return
	}

	out, err := h.battleService.RunBattle(c.Request.Context(), &battle.RunBattleInput{
		Left:      left,
		Right:     right,
		MaxRounds: req.MaxRounds,
		Seed:      req.Seed,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func toSideInput(req SideRequest) (battle.SideInput, error) {
	species, err := dino.ParseSpeciesList(req.Species)
	if err != nil {
		return battle.SideInput{}, err
	}
	return battle.SideInput{Name: req.Name, RosterID: req.RosterID, Species: species}, nil
}
