package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ashishk-dev/renteasy-backend/models"
	"github.com/ashishk-dev/renteasy-backend/repositories"
	"github.com/ashishk-dev/renteasy-backend/utils"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	photoFieldName = "photos"
	maxPhotos      = 5
	maxUploadBytes = 32 << 20

	houseType        = "house"
	houseCacheKey    = "properties:houses"
	houseCacheExpiry = 10 * time.Minute
)

// PropertyStore is the subset of the property repository used by handlers.
type PropertyStore interface {
	Insert(ctx context.Context, property *models.Property) error
	FindByType(ctx context.Context, propertyType string) ([]models.Property, error)
	DeleteByID(ctx context.Context, id string) error
}

// MediaUploader sends a local file to the media host and returns its
// durable URL.
type MediaUploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// ListingCache holds rendered listing responses. Get returns "" on a miss;
// a nil ListingCache disables caching. Invalidation happens before the
// success response is written, so a subsequent GET never sees a listing
// that predates a completed upload or delete.
type ListingCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, payload []byte, expiry time.Duration) error
	Del(ctx context.Context, key string) error
}

func UploadProperty(properties PropertyStore, media MediaUploader, cache ListingCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid multipart form", err)
			return
		}

		propertyType := r.FormValue("type")
		if propertyType == "" {
			utils.RespondError(w, http.StatusBadRequest, "Property type is required")
			return
		}

		files := r.MultipartForm.File[photoFieldName]
		if len(files) == 0 {
			utils.RespondError(w, http.StatusBadRequest, "At least one photo is required")
			return
		}
		if len(files) > maxPhotos {
			utils.RespondError(w, http.StatusBadRequest, "A maximum of 5 photos are allowed")
			return
		}

		// Photos go up one at a time in submission order. A failure aborts
		// the request; files already uploaded stay on the media host.
		imageURLs := make([]string, 0, len(files))
		for _, fileHeader := range files {
			url, err := uploadPhoto(r.Context(), media, fileHeader)
			if err != nil {
				utils.RespondError(w, http.StatusInternalServerError, "Failed to upload photos", err)
				return
			}
			imageURLs = append(imageURLs, url)
		}

		price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
		rent, _ := strconv.ParseFloat(r.FormValue("rent"), 64)
		location := r.FormValue("location")

		property := models.Property{
			ID:          primitive.NewObjectID(),
			Type:        propertyType,
			OwnerName:   r.FormValue("ownerName"),
			Mobile:      r.FormValue("mobile"),
			Location:    location,
			Price:       price,
			Rent:        rent,
			Description: r.FormValue("description"),
			Floor:       r.FormValue("floor"),
			Kitchen:     r.FormValue("kitchen"),
			Bedroom:     r.FormValue("bedroom"),
			Hall:        r.FormValue("hall"),
			Garden:      r.FormValue("garden"),
			WaterSupply: r.FormValue("waterSupply"),
			ImageURL:    imageURLs,
			MapLink:     utils.BuildMapLink(location),
			Date:        time.Now(),
		}

		if err := properties.Insert(r.Context(), &property); err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to save property", err)
			return
		}

		invalidateHouseCache(r.Context(), cache)

		utils.RespondJSON(w, http.StatusCreated, map[string]any{
			"success":  true,
			"message":  "Property uploaded successfully",
			"property": property,
		})
	}
}

// uploadPhoto stages the multipart file on local disk, pushes it to the
// media host, and removes the local copy.
func uploadPhoto(ctx context.Context, media MediaUploader, fileHeader *multipart.FileHeader) (string, error) {
	localPath, err := saveTempFile(fileHeader)
	if err != nil {
		return "", err
	}
	defer os.Remove(localPath)

	return media.Upload(ctx, localPath)
}

func saveTempFile(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "photo-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func GetHouses(properties PropertyStore, cache ListingCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cache != nil {
			cached, err := cache.Get(r.Context(), houseCacheKey)
			if err != nil {
				utils.Logger.Errorf("Cache GET error for key %s: %v", houseCacheKey, err)
			} else if cached != "" {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(cached))
				return
			}
		}

		houses, err := properties.FindByType(r.Context(), houseType)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch houses", err)
			return
		}
		if houses == nil {
			houses = []models.Property{}
		}

		payload := map[string]any{
			"success": true,
			"houses":  houses,
		}

		resultBytes, err := json.Marshal(payload)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to encode response", err)
			return
		}

		if cache != nil {
			if err := cache.Set(r.Context(), houseCacheKey, resultBytes, houseCacheExpiry); err != nil {
				utils.Logger.Errorf("Failed to cache houses response: %v", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

func DeleteProperty(properties PropertyStore, cache ListingCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID := mux.Vars(r)["id"]

		err := properties.DeleteByID(r.Context(), propertyID)
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Property not found")
			return
		}
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to delete property", err)
			return
		}

		invalidateHouseCache(r.Context(), cache)

		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Property deleted successfully",
		})
	}
}

func invalidateHouseCache(ctx context.Context, cache ListingCache) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, houseCacheKey); err != nil {
		utils.Logger.Errorf("Failed to invalidate houses cache: %v", err)
	}
}
