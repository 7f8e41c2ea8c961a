package pest

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"agrimitra/agronomy"
	"agrimitra/db"
	"agrimitra/models"
	"agrimitra/utils"
	"agrimitra/weather"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Handlers takes pest reports with an optional field photo. The photo goes to
// an external vision service for identification (out of scope here); the
// report is answered immediately with the weather-threshold risk assessment.
type Handlers struct {
	Weather   weather.Provider
	UploadDir string
}

func NewHandlers(wp weather.Provider) *Handlers {
	return &Handlers{Weather: wp, UploadDir: "./static/uploads/pests"}
}

// parseCoords validates the optional lat/lon form fields. Missing or
// malformed values must not fall through as 0,0 — that would score risks
// against open-ocean weather.
func parseCoords(latStr, lonStr string) (float64, float64, bool) {
	if latStr == "" || lonStr == "" {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lon, err2 := strconv.ParseFloat(lonStr, 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

func (h *Handlers) savePhoto(r *http.Request) (string, string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	if err := os.MkdirAll(h.UploadDir, os.ModePerm); err != nil {
		return "", "", err
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), header.Filename)
	path := filepath.Join(h.UploadDir, filename)

	out, err := os.Create(path)
	if err != nil {
		return "", "", err
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		return "", "", err
	}
	out.Close()

	// 320px thumbnail for the report list view
	thumbName := "thumb_" + filename
	thumbPath := filepath.Join(h.UploadDir, thumbName)
	if img, err := imaging.Open(path); err == nil {
		thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
		_ = imaging.Save(thumb, thumbPath)
	}

	return "/uploads/pests/" + filename, "/uploads/pests/" + thumbName, nil
}

// CreateReport accepts a multipart pest report: cropType, notes, lat/lon and
// an optional image.
func (h *Handlers) CreateReport(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Invalid user", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form")
		return
	}

	cropType := r.FormValue("cropType")
	if cropType == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "cropType is required")
		return
	}

	report := models.PestReport{
		ID:        uuid.NewString(),
		UserID:    userID,
		CropType:  cropType,
		Notes:     r.FormValue("notes"),
		CreatedAt: time.Now(),
	}

	if imageURL, thumbURL, err := h.savePhoto(r); err == nil {
		report.ImageURL = imageURL
		report.ThumbnailURL = thumbURL
	}

	// risks are only scored against real field weather; reports without
	// usable coordinates keep an empty risk section
	if lat, lon, ok := parseCoords(r.FormValue("lat"), r.FormValue("lon")); ok {
		if snap, err := h.Weather.Fetch(r.Context(), lat, lon); err == nil {
			report.Risks = agronomy.ScoreRisks(cropType, *snap)
		}
	}

	ctx, cancel := db.Ctx()
	defer cancel()
	if _, err := db.PestReportsCollection.InsertOne(ctx, report); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save report")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "report": report})
}

// GetMyReports lists the caller's pest reports, newest first.
func (h *Handlers) GetMyReports(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Invalid user", http.StatusBadRequest)
		return
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	cursor, err := db.PestReportsCollection.Find(ctx, bson.M{"userId": userID}, db.OptionsFindLatest(50))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}
	var reports []models.PestReport
	if err := cursor.All(ctx, &reports); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode reports")
		return
	}
	if reports == nil {
		reports = []models.PestReport{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "reports": reports})
}
