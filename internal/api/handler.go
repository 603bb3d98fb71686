package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prepper/internal/assistant"
	"prepper/internal/recipe"
)

// Per-request deadlines for the single outbound call each handler makes.
const (
	recipeTimeout = 10 * time.Second
	chatTimeout   = 30 * time.Second
)

// RecipeSource defines the interface for fetching raw upstream records.
type RecipeSource interface {
	Search(ctx context.Context, query string) ([]recipe.SourceRecord, error)
	Lookup(ctx context.Context, id string) ([]recipe.SourceRecord, error)
	Random(ctx context.Context) ([]recipe.SourceRecord, error)
}

// Responder defines the interface for answering chat messages.
type Responder interface {
	Reply(ctx context.Context, message string, c assistant.Context) (text string, mode string, err error)
}

// Handler handles HTTP requests.
type Handler struct {
	Source     RecipeSource
	Responder  Responder
	Normalizer *recipe.Normalizer
}

// NewHandler creates a new Handler.
func NewHandler(source RecipeSource, responder Responder, normalizer *recipe.Normalizer) *Handler {
	return &Handler{Source: source, Responder: responder, Normalizer: normalizer}
}

// SearchRecipes handles recipe search by name.
func (h *Handler) SearchRecipes(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), recipeTimeout)
	defer cancel()

	records, err := h.Source.Search(ctx, query)
	if err != nil {
		log.Printf("Search error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Recipe service unavailable"})
		return
	}

	recipes := make([]*recipe.Recipe, 0, len(records))
	for _, rec := range records {
		if r := h.Normalizer.Normalize(rec); r != nil {
			recipes = append(recipes, r)
		}
	}

	if len(recipes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No recipes found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipeByID handles recipe lookup by id.
func (h *Handler) GetRecipeByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe ID required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), recipeTimeout)
	defer cancel()

	records, err := h.Source.Lookup(ctx, id)
	if err != nil {
		log.Printf("Lookup error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Recipe service unavailable"})
		return
	}

	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": h.Normalizer.Normalize(records[0])})
}

// RandomRecipe handles requests for one randomly chosen recipe.
func (h *Handler) RandomRecipe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), recipeTimeout)
	defer cancel()

	records, err := h.Source.Random(ctx)
	if err != nil {
		log.Printf("Random recipe error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Recipe service unavailable"})
		return
	}

	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No recipe found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": h.Normalizer.Normalize(records[0])})
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "prepper-backend"})
}

// chatRequest is the body of a chat message.
type chatRequest struct {
	Message string            `json:"message"`
	Context assistant.Context `json:"context"`
}

// Chat answers a chat message, delegating to the configured assistant.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	text, mode, err := h.Responder.Reply(ctx, req.Message, req.Context)
	if err != nil {
		log.Printf("Chat error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":  text,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"mode":      mode,
	})
}
