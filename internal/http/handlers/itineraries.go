package handlers

import (
	"net/http"

	"travel/internal/domain"
	"travel/internal/domain/models"
	"travel/internal/services"

	"github.com/gin-gonic/gin"
)

// ItineraryHandler serves itinerary creation, listing and documents.
type ItineraryHandler struct {
	Itineraries services.ItineraryService
	Docs        services.DocsService
}

type createItineraryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Nights      *int    `json:"nights" binding:"required,min=0,max=2147483647"`
	HotelID     *int64  `json:"hotel_id" binding:"required"`
	ActivityIDs []int64 `json:"activity_ids" binding:"required"`
	TransferIDs []int64 `json:"transfer_ids" binding:"required"`
}

func (r createItineraryRequest) toModel() models.ItineraryCreate {
	return models.ItineraryCreate{
		Name:        r.Name,
		Nights:      *r.Nights,
		HotelID:     domain.ID(*r.HotelID),
		ActivityIDs: toIDs(r.ActivityIDs),
		TransferIDs: toIDs(r.TransferIDs),
	}
}

func toIDs(raw []int64) []domain.ID {
	out := make([]domain.ID, 0, len(raw))
	for _, v := range raw {
		out = append(out, domain.ID(v))
	}
	return out
}

// Create handles POST /itineraries/.
func (h ItineraryHandler) Create(c *gin.Context) {
	var req createItineraryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Itineraries.Create(c.Request.Context(), req.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// List handles GET /itineraries/.
func (h ItineraryHandler) List(c *gin.Context) {
	out, err := h.Itineraries.ListAll(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListByNights handles GET /mcp/:nights.
func (h ItineraryHandler) ListByNights(c *gin.Context) {
	nights, ok := pathInt(c, "nights")
	if !ok {
		return
	}
	out, err := h.Itineraries.ListByNights(c.Request.Context(), nights)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h ItineraryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.Itineraries.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Document returns the itinerary summary PDF (inline).
func (h ItineraryHandler) Document(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	pdfBytes, filename, err := h.Docs.GenerateItinerary(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
