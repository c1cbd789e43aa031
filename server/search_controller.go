package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// SearchController runs path searches on request.
type SearchController struct {
	log *logrus.Logger
}

// NewSearchController initializes a SearchController.
func NewSearchController(log *logrus.Logger) *SearchController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SearchController{log: log}
}

// Register mounts the search routes.
func (sc *SearchController) Register(route *gin.RouterGroup) {
	route.GET("/algorithms", sc.algorithms)
	route.POST("/search", sc.search)
}

// algorithms lists the search catalog.
func (sc *SearchController) algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, search.Algorithms())
}

// search parses the board, runs the requested algorithm and reports the
// visit order, the path and timing.
func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alg, err := search.ParseAlgorithm(request.Algorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := grid.Parse(request.Grid)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	began := time.Now()
	res, err := search.Run(alg, g, g.Start, g.Finish)
	elapsed := time.Since(began)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	path := []grid.Coord{}
	if res.Found() {
		path = res.Path()
	}
	response := &SearchResponse{
		ID:        requestID(ctx),
		Algorithm: alg,
		Found:     res.Found(),
		Visited:   pairs(res.Order),
		Path:      pairs(path),
		Metrics: Metrics{
			NodesVisited:    res.Visited(),
			PathLength:      res.PathLength(),
			ExecutionTimeMS: float64(elapsed.Microseconds()) / 1000,
		},
	}
	sc.log.WithFields(logrus.Fields{
		"request_id":  response.ID,
		"algorithm":   alg,
		"found":       response.Found,
		"visited":     response.Metrics.NodesVisited,
		"path_length": response.Metrics.PathLength,
		"elapsed":     elapsed,
	}).Debug("search finished")

	ctx.JSON(http.StatusOK, response)
}
