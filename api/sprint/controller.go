package sprintapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/maze-sprint-api/api/identity"
	"github.com/beka-birhanu/maze-sprint-api/maze"
	"github.com/beka-birhanu/maze-sprint-api/service"
	"github.com/beka-birhanu/maze-sprint-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// queryTimeout bounds leaderboard reads so a slow Redis node cannot hold a
// handler open indefinitely.
const queryTimeout = 2 * time.Second

// SprintController handles HTTP requests related to maze sprints.
type SprintController struct {
	sprintManager i.SprintManager
	runRepo       i.RunRepo
	board         i.Leaderboard
}

// NewSprintController creates a new SprintController with the given manager,
// run repository and leaderboard.
func NewSprintController(sm i.SprintManager, rr i.RunRepo, lb i.Leaderboard) (*SprintController, error) {
	if sm == nil {
		return nil, errors.New("sprint manager cannot be nil")
	}
	if rr == nil {
		return nil, errors.New("run repository cannot be nil")
	}
	if lb == nil {
		return nil, errors.New("leaderboard cannot be nil")
	}

	return &SprintController{
		sprintManager: sm,
		runRepo:       rr,
		board:         lb,
	}, nil
}

// RegisterPublic registers the routes that need no authentication.
func (sc *SprintController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", sc.leaderboard)
}

// RegisterProtected registers the sprint routes. All of them act on the
// authenticated player's own sprint.
func (sc *SprintController) RegisterProtected(route *gin.RouterGroup) {
	sprint := route.Group("/sprint")
	{
		sprint.POST("", sc.start)
		sprint.GET("", sc.state)
		sprint.POST("/moves", sc.move)
		sprint.POST("/reset", sc.reset)
		sprint.GET("/elapsed", sc.elapsed)
		sprint.GET("/runs", sc.runs)
		sprint.DELETE("", sc.end)
	}
	route.GET("/leaderboard/me", sc.personalBest)
}

// playerFromContext extracts the authenticated player's ID and username from
// the claims the authorization middleware stored on the context.
func playerFromContext(ctx *gin.Context) (uuid.UUID, string, bool) {
	raw, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing user claims"})
		return uuid.Nil, "", false
	}

	claims, ok := raw.(map[string]interface{})
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "malformed user claims"})
		return uuid.Nil, "", false
	}

	rawID, ok := claims["playerID"].(string)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "malformed user claims"})
		return uuid.Nil, "", false
	}

	playerID, err := uuid.Parse(rawID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "malformed user claims"})
		return uuid.Nil, "", false
	}

	username, ok := claims["username"].(string)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "malformed user claims"})
		return uuid.Nil, "", false
	}

	return playerID, username, true
}

func (sc *SprintController) start(ctx *gin.Context) {
	playerID, username, ok := playerFromContext(ctx)
	if !ok {
		return
	}

	snapshot, err := sc.sprintManager.StartSprint(playerID, username)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newStateResponse(snapshot))
}

func (sc *SprintController) state(ctx *gin.Context) {
	playerID, _, ok := playerFromContext(ctx)
	if !ok {
		return
	}

	snapshot, err := sc.sprintManager.State(playerID)
	if err != nil {
		sc.sprintError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newStateResponse(snapshot))
}

func (sc *SprintController) move(ctx *gin.Context) {
	playerID, _, ok := playerFromContext(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	direction, err := maze.ParseDirection(request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := sc.sprintManager.Move(playerID, direction)
	if err != nil {
		sc.sprintError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MoveResponse{
		Outcome:   result.Outcome.String(),
		Position:  positionOf(result.Position),
		ElapsedMs: result.Elapsed.Milliseconds(),
	})
}

func (sc *SprintController) reset(ctx *gin.Context) {
	playerID, _, ok := playerFromContext(ctx)
	if !ok {
		return
	}

	snapshot, err := sc.sprintManager.Reset(playerID)
	if err != nil {
		sc.sprintError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newStateResponse(snapshot))
}

func (sc *SprintController) elapsed(ctx *gin.Context) {
	playerID, _, ok := playerFromContext(ctx)
	if !ok {
		return
	}

	elapsed, err := sc.sprintManager.Elapsed(playerID)
	if err != nil {
		sc.sprintError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ElapsedResponse{ElapsedMs: elapsed.Milliseconds()})
}

func (sc *SprintController) runs(ctx *gin.Context) {
	playerID, _, ok := playerFromContext(ctx)
	if !ok {
		return
	}

	limit, err := queryInt(ctx, "limit", 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runs, err := sc.runRepo.ByPlayer(playerID, int64(limit))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, newRunResponse(run))
	}

	ctx.JSON(http.StatusOK, responses)
}

func (sc *SprintController) end(ctx *gin.Context) {
	playerID, _, ok := playerFromContext(ctx)
	if !ok {
		return
	}

	if err := sc.sprintManager.EndSprint(playerID); err != nil {
		sc.sprintError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (sc *SprintController) leaderboard(ctx *gin.Context) {
	limit, err := queryInt(ctx, "limit", 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	queryCtx, cancel := context.WithTimeout(ctx.Request.Context(), queryTimeout)
	defer cancel()

	entries, err := sc.board.Top(queryCtx, int64(limit))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, LeaderboardEntryResponse{
			Rank:     entry.Rank,
			Username: entry.Username,
			Millis:   entry.Millis,
		})
	}

	ctx.JSON(http.StatusOK, responses)
}

func (sc *SprintController) personalBest(ctx *gin.Context) {
	_, username, ok := playerFromContext(ctx)
	if !ok {
		return
	}

	queryCtx, cancel := context.WithTimeout(ctx.Request.Context(), queryTimeout)
	defer cancel()

	millis, found, err := sc.board.PersonalBest(queryCtx, username)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no recorded finish"})
		return
	}

	ctx.JSON(http.StatusOK, PersonalBestResponse{Username: username, Millis: millis})
}

// sprintError maps service errors to status codes. A missing sprint is the
// caller's problem, everything else is ours.
func (sc *SprintController) sprintError(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrNoActiveSprint) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func queryInt(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return value, nil
}
