package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"humansudoku/internal/core"
	"humansudoku/internal/engine"
	"humansudoku/internal/engine/technique"
	"humansudoku/internal/puzzleio"
	"humansudoku/internal/resolver"
	"humansudoku/pkg/constants"
)

// RegisterRoutes wires the solver's HTTP surface onto r, generalizing the
// teacher's fixed 9x9 gin routes to the generic engine: a puzzle is now a
// flat string of any perfect-square length, decoded via
// internal/puzzleio.DecodeFlat, rather than a hard-coded 81-int array.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve/next", solveNextHandler)
		api.POST("/solve/all", solveAllHandler)
		api.POST("/validate", validateHandler)
		api.GET("/technique/:slug", techniqueHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

func buildField(puzzle string) (*engine.Field, error) {
	givens, n, err := puzzleio.DecodeFlat(puzzle)
	if err != nil {
		return nil, err
	}
	return engine.NewField(n, givens)
}

// newResolver builds a Resolver for one request, enabling only the slugs in
// wantSlugs when non-empty (an unknown slug is ignored, matching
// Registry.SetEnabled's false-but-non-fatal return).
func newResolver(wantSlugs []string) *resolver.Resolver {
	res := resolver.New()
	if len(wantSlugs) == 0 {
		return res
	}
	for _, t := range res.Registry().All() {
		t.SetEnabled(false)
	}
	for _, slug := range wantSlugs {
		res.Registry().SetEnabled(slug, true)
	}
	return res
}

type solveRequest struct {
	Puzzle     string   `json:"puzzle" binding:"required"`
	Techniques []string `json:"techniques"`
}

// solveNextHandler returns the single next move the solver would take,
// without mutating any server-side state -- the caller reloads the puzzle
// string on every call, mirroring the teacher's stateless solveNextHandler
// shape but without its session-token/board-diffing machinery, which
// belonged to the game layer this module doesn't carry forward.
func solveNextHandler(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := buildField(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := newResolver(req.Techniques)
	var found *core.Move
	for _, t := range res.Registry().All() {
		if !t.Enabled() {
			continue
		}
		result, move, perr := t.Perform(f, nil)
		if perr != nil {
			c.JSON(http.StatusOK, gin.H{"move": nil, "outcome": core.OutcomeInvalid})
			return
		}
		if result == technique.Changed {
			found = move
			break
		}
	}
	c.JSON(http.StatusOK, gin.H{"move": found})
}

// solveAllHandler runs the fixed-point loop to completion or quiescence and
// returns every move taken plus the terminal outcome, mirroring the
// teacher's solveAllHandler without its puzzle-generation fallback.
func solveAllHandler(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := buildField(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var moves []*core.Move
	res := newResolver(req.Techniques)
	res.Hooks = &resolver.Hooks{OnMove: func(m *core.Move) { moves = append(moves, m) }}
	outcome := res.Run(f)

	c.JSON(http.StatusOK, gin.H{
		"moves":   moves,
		"outcome": outcome,
	})
}

type validateRequest struct {
	Puzzle string `json:"puzzle" binding:"required"`
}

// validateHandler reports structural validity and completion without
// running any technique, mirroring the teacher's validateBoardHandler.
func validateHandler(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := buildField(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "reason": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":  f.IsValid(),
		"solved": f.IsSolved(),
	})
}

// techniqueHandler returns a technique's descriptive metadata by slug, for
// documentation/UI enablement panels -- the generalized analog of the
// teacher's technique-registry introspection.
func techniqueHandler(c *gin.Context) {
	slug := c.Param("slug")
	t, ok := resolver.New().Registry().BySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown technique", "slug": slug})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name": t.Name(),
		"slug": t.Slug(),
		"tier": t.Tier(),
	})
}
