package venue

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/external"
	"github.com/DhavalSuthar-24/livescore/internal/models"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VenueLookup fetches one venue from the scoreboard provider.
type VenueLookup interface {
	LookupVenue(ctx context.Context, id string) (*external.ScoreboardVenue, error)
}

type VenueController struct {
	repo     VenueRepository
	provider VenueLookup
}

func NewVenueController(repo VenueRepository, provider VenueLookup) *VenueController {
	return &VenueController{repo: repo, provider: provider}
}

// GetAllVenues godoc
// @Summary      List venues
// @Tags         Venues
// @Produce      json
// @Param        city       query  string  false  "City (case-insensitive)"
// @Param        page       query  int     false  "Page"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  responses.PaginatedResponse{data=[]Venue}
// @Router       /venues [get]
func (vc *VenueController) GetAllVenues(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	venues, total, err := vc.repo.GetAllVenues(page, pageSize, strings.TrimSpace(c.Query("city")))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve venues", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Venues retrieved successfully", venues, total, page, pageSize)
}

// GetVenueByID godoc
// @Summary      Get a venue
// @Tags         Venues
// @Produce      json
// @Param        id   path  int  true  "Venue ID"
// @Success      200  {object}  responses.SuccessResponse{data=Venue}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /venues/{id} [get]
func (vc *VenueController) GetVenueByID(c *gin.Context) {
	venue, ok := vc.loadVenue(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Venue retrieved successfully", venue)
}

// CreateVenue godoc
// @Summary      Create a venue
// @Tags         Venues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  CreateVenueRequest  true  "Venue"
// @Success      201  {object}  responses.SuccessResponse{data=Venue}
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /venues [post]
func (vc *VenueController) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if vc.nameTaken(c, req.Name, 0) {
		return
	}

	venue := &Venue{
		Name:        req.Name,
		City:        req.City,
		Country:     req.Country,
		Capacity:    req.Capacity,
		Coordinates: datatypes.NewJSONType(req.Coordinates),
		ImageURL:    req.ImageURL,
		ExternalID:  req.ExternalID,
	}
	if err := vc.repo.CreateVenue(venue); err != nil {
		vc.writeError(c, "Failed to create venue", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Venue created successfully", venue)
}

// UpdateVenue godoc
// @Summary      Update a venue
// @Tags         Venues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Venue ID"
// @Param        body  body  UpdateVenueRequest  true  "Fields to change"
// @Success      200  {object}  responses.SuccessResponse{data=Venue}
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /venues/{id} [put]
func (vc *VenueController) UpdateVenue(c *gin.Context) {
	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	venue, ok := vc.loadVenue(c)
	if !ok {
		return
	}

	if req.Name != nil && !strings.EqualFold(*req.Name, venue.Name) {
		if vc.nameTaken(c, *req.Name, venue.ID) {
			return
		}
	}
	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.City != nil {
		venue.City = *req.City
	}
	if req.Country != nil {
		venue.Country = *req.Country
	}
	if req.Capacity != nil {
		venue.Capacity = *req.Capacity
	}
	if req.Coordinates != nil {
		venue.Coordinates = datatypes.NewJSONType(*req.Coordinates)
	}
	if req.ImageURL != nil {
		venue.ImageURL = *req.ImageURL
	}
	if req.ExternalID != nil {
		venue.ExternalID = *req.ExternalID
	}

	if err := vc.repo.UpdateVenue(venue); err != nil {
		vc.writeError(c, "Failed to update venue", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Venue updated successfully", venue)
}

// DeleteVenue godoc
// @Summary      Delete a venue
// @Tags         Venues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Venue ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /venues/{id} [delete]
func (vc *VenueController) DeleteVenue(c *gin.Context) {
	venue, ok := vc.loadVenue(c)
	if !ok {
		return
	}
	if err := vc.repo.DeleteVenue(venue.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete venue", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Venue deleted successfully", nil)
}

// SyncVenue godoc
// @Summary      Import a venue from the scoreboard provider
// @Description  Creates the venue or refreshes the one already linked to external_id.
// @Tags         Venues
// @Produce      json
// @Security     BearerAuth
// @Param        external_id  path  string  true  "Provider venue ID"
// @Success      200  {object}  responses.SuccessResponse{data=Venue}
// @Success      201  {object}  responses.SuccessResponse{data=Venue}
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      502  {object}  responses.ErrorResponse
// @Router       /venues/sync/{external_id} [post]
func (vc *VenueController) SyncVenue(c *gin.Context) {
	externalID := c.Param("external_id")
	remote, err := vc.provider.LookupVenue(c.Request.Context(), externalID)
	if err != nil {
		log.Warn().Err(err).Str("external_id", externalID).Msg("venue sync: provider request failed")
		responses.SendError(c, http.StatusBadGateway, "Venue provider is unavailable")
		return
	}
	if remote == nil {
		responses.NotFound(c, "Provider venue")
		return
	}

	venue, err := vc.repo.GetVenueByExternalID(externalID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve venue", err)
		return
	}
	if venue == nil {
		// Link a manually created venue of the same name instead of colliding with it.
		if venue, err = vc.repo.GetVenueByName(remote.Name); err != nil {
			responses.InternalServerError(c, "Failed to retrieve venue", err)
			return
		}
	}
	created := venue == nil
	if created {
		venue = &Venue{}
	}
	applyRemote(venue, remote)

	if created {
		err = vc.repo.CreateVenue(venue)
	} else {
		err = vc.repo.UpdateVenue(venue)
	}
	if err != nil {
		vc.writeError(c, "Failed to save venue", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	responses.SendSuccess(c, status, "Venue synchronized", venue)
}

func applyRemote(v *Venue, remote *external.ScoreboardVenue) {
	v.Name = remote.Name
	v.City = remote.Location
	v.Country = remote.Country
	v.Capacity = remote.CapacityInt()
	v.ImageURL = remote.Thumb
	v.ExternalID = remote.ID

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(remote.Latitude), 64)
	long, longErr := strconv.ParseFloat(strings.TrimSpace(remote.Longitude), 64)
	if latErr == nil && longErr == nil {
		v.Coordinates = datatypes.NewJSONType(models.Coordinates{Latitude: lat, Longitude: long})
	}
}

func (vc *VenueController) loadVenue(c *gin.Context) (*Venue, bool) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid venue ID")
		return nil, false
	}
	venue, err := vc.repo.GetVenueByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve venue", err)
		return nil, false
	}
	if venue == nil {
		responses.NotFound(c, "Venue")
		return nil, false
	}
	return venue, true
}

// nameTaken writes a 409 when another venue already uses name.
func (vc *VenueController) nameTaken(c *gin.Context, name string, selfID uint) bool {
	other, err := vc.repo.GetVenueByName(name)
	if err != nil {
		responses.InternalServerError(c, "Failed to check venue name", err)
		return true
	}
	if other != nil && other.ID != selfID {
		responses.Conflict(c, "A venue with this name already exists")
		return true
	}
	return false
}

func (vc *VenueController) writeError(c *gin.Context, message string, err error) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		responses.Conflict(c, "A venue with this name already exists")
		return
	}
	responses.InternalServerError(c, message, err)
}
