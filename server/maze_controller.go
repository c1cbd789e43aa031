package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

// MazeController serves maze generation and the default board.
type MazeController struct {
	cfg  config.Config
	log  *logrus.Logger
	seed func() int64
}

// NewMazeController initializes a MazeController backed by cfg.
func NewMazeController(cfg config.Config, log *logrus.Logger) *MazeController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &MazeController{
		cfg:  cfg,
		log:  log,
		seed: func() int64 { return time.Now().UnixNano() },
	}
}

// Register mounts the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	route.GET("/generators", mc.generators)
	route.GET("/grid/default", mc.defaultGrid)
	route.POST("/maze", mc.generate)
}

func (mc *MazeController) generators(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, maze.Generators())
}

func (mc *MazeController) defaultGrid(ctx *gin.Context) {
	g, err := mc.cfg.Grid()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, &GridResponse{
		Rows:   g.Rows,
		Cols:   g.Cols,
		Start:  g.Start,
		Finish: g.Finish,
		Grid:   g.Lines(),
	})
}

// generate rewrites the requested board with the named generator. The seed
// actually used is echoed back so the board can be reproduced.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gen, err := maze.ParseGenerator(request.Generator)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var g *grid.Grid
	if len(request.Grid) == 0 {
		g, err = mc.cfg.Grid()
	} else {
		g, err = grid.Parse(request.Grid)
	}
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := request.Seed
	if seed == 0 {
		seed = mc.cfg.MazeSeed
	}
	if seed == 0 {
		seed = mc.seed()
	}
	p := mc.cfg.WallProbability
	if request.WallProbability != nil {
		p = *request.WallProbability
	}

	out, err := maze.Generate(gen, g, g.Start, g.Finish, maze.WithSeed(seed), maze.WithWallProbability(p))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := &MazeResponse{
		ID:        requestID(ctx),
		Generator: string(gen),
		Seed:      seed,
		Grid:      out.Lines(),
		Walls:     out.WallCount(),
		Connected: out.Connected(),
	}
	mc.log.WithFields(logrus.Fields{
		"request_id": response.ID,
		"generator":  gen,
		"seed":       seed,
		"walls":      response.Walls,
	}).Debug("maze generated")

	ctx.JSON(http.StatusOK, response)
}
