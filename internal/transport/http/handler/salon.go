package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glowbook/salon-directory/internal/domain"
	"github.com/glowbook/salon-directory/internal/usecase"
)

type salonUsecaser interface {
	List(ctx context.Context) ([]*domain.Salon, error)
	Create(ctx context.Context, in usecase.CreateSalonInput) (*domain.Salon, error)
}

type SalonHandler struct {
	salons salonUsecaser
	logger *slog.Logger
}

func NewSalonHandler(salons salonUsecaser, logger *slog.Logger) *SalonHandler {
	return &SalonHandler{salons: salons, logger: logger.With("component", "salon_handler")}
}

// tagList accepts either a JSON array of strings or a single
// comma-separated string.
type tagList []string

func (t *tagList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = strings.Split(s, ",")
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*t = items
	return nil
}

type createSalonRequest struct {
	Name       string  `json:"name"`
	Area       string  `json:"area"`
	Rating     float64 `json:"rating"`
	Services   tagList `json:"services"`
	PriceRange string  `json:"priceRange"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	Hours      string  `json:"hours"`
	Notes      string  `json:"notes"`
}

type salonResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Area       string    `json:"area"`
	Rating     float64   `json:"rating"`
	Services   []string  `json:"services"`
	PriceRange string    `json:"priceRange"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Hours      string    `json:"hours"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

type listSalonsResponse struct {
	Success bool            `json:"success"`
	Salons  []salonResponse `json:"salons"`
}

type createSalonResponse struct {
	Success bool          `json:"success"`
	Salon   salonResponse `json:"salon"`
}

// GET /salons
func (h *SalonHandler) List(c *gin.Context) {
	salons, err := h.salons.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list salons", "error", err)
		c.JSON(http.StatusInternalServerError, fail(msgServerError))
		return
	}

	out := make([]salonResponse, 0, len(salons))
	for _, s := range salons {
		out = append(out, toSalonResponse(s))
	}
	c.JSON(http.StatusOK, listSalonsResponse{Success: true, Salons: out})
}

// POST /salons
func (h *SalonHandler) Create(c *gin.Context) {
	var req createSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(msgInvalidBody))
		return
	}

	salon, err := h.salons.Create(c.Request.Context(), usecase.CreateSalonInput{
		Name:       req.Name,
		Area:       req.Area,
		Rating:     req.Rating,
		Services:   req.Services,
		PriceRange: req.PriceRange,
		Phone:      req.Phone,
		Address:    req.Address,
		Hours:      req.Hours,
		Notes:      req.Notes,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, fail(ve.Reason))
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create salon", "error", err)
		c.JSON(http.StatusInternalServerError, fail(msgServerError))
		return
	}

	c.JSON(http.StatusCreated, createSalonResponse{Success: true, Salon: toSalonResponse(salon)})
}

func toSalonResponse(s *domain.Salon) salonResponse {
	services := s.Services
	if services == nil {
		services = []string{}
	}
	return salonResponse{
		ID:         s.ID,
		Name:       s.Name,
		Area:       s.Area,
		Rating:     s.Rating,
		Services:   services,
		PriceRange: s.PriceRange,
		Phone:      s.Phone,
		Address:    s.Address,
		Hours:      s.Hours,
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt,
	}
}
