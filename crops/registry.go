package crops

import (
	"encoding/json"
	"net/http"
	"time"

	"agrimitra/agronomy"
	"agrimitra/db"
	"agrimitra/models"
	"agrimitra/mq"
	"agrimitra/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type registerRequest struct {
	CropType         string             `json:"cropType"`
	Variety          string             `json:"variety"`
	PlantingDate     string             `json:"plantingDate"` // YYYY-MM-DD
	FarmSizeAcres    float64            `json:"farmSizeAcres"`
	IrrigationMethod string             `json:"irrigationMethod"`
	SoilType         string             `json:"soilType"`
	Soil             *models.SoilSample `json:"soil"`
	Latitude         float64            `json:"latitude"`
	Longitude        float64            `json:"longitude"`
	ExpectedYieldQtl float64            `json:"expectedYieldQtl"`
}

var irrigationMethods = map[string]bool{"drip": true, "sprinkler": true, "flood": true}

// validate enforces the boundary checks: positive farm size, a parseable
// planting date that is not in the future, and a known irrigation method.
func (req registerRequest) validate(now time.Time) (time.Time, string) {
	if req.CropType == "" {
		return time.Time{}, "cropType is required"
	}
	if req.FarmSizeAcres <= 0 {
		return time.Time{}, "farmSizeAcres must be positive"
	}
	planted := utils.ParseDate(req.PlantingDate)
	if planted == nil {
		return time.Time{}, "plantingDate must be a valid YYYY-MM-DD date"
	}
	if planted.After(now) {
		return time.Time{}, "plantingDate cannot be in the future"
	}
	if req.IrrigationMethod != "" && !irrigationMethods[req.IrrigationMethod] {
		return time.Time{}, "irrigationMethod must be drip, sprinkler or flood"
	}
	return *planted, ""
}

func RegisterCrop(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Invalid user", http.StatusBadRequest)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	planted, msg := req.validate(time.Now())
	if msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	crop := models.Crop{
		ID:               primitive.NewObjectID(),
		OwnerID:          userID,
		CropType:         req.CropType,
		Variety:          req.Variety,
		PlantingDate:     planted,
		FarmSizeAcres:    req.FarmSizeAcres,
		IrrigationMethod: req.IrrigationMethod,
		SoilType:         req.SoilType,
		HealthScore:      100,
		Soil:             req.Soil,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		ExpectedYieldQtl: req.ExpectedYieldQtl,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	ctx, cancel := db.Ctx()
	defer cancel()
	if _, err := db.CropsCollection.InsertOne(ctx, crop); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Insert failed")
		return
	}

	mq.Emit("crop-registered", mq.Event{EntityType: "crop", Method: "POST", EntityId: crop.ID.Hex(), UserId: userID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "cropId": crop.ID.Hex()})
}

func GetMyCrops(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Invalid user", http.StatusBadRequest)
		return
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	cursor, err := db.CropsCollection.Find(ctx, bson.M{"ownerId": userID}, db.OptionsFindLatest(100))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch crops")
		return
	}
	var crops []models.Crop
	if err := cursor.All(ctx, &crops); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode crops")
		return
	}
	if crops == nil {
		crops = []models.Crop{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "crops": crops})
}

// LoadOwned loads the crop named by the :id route param and checks the caller
// owns it. Shared with the advisory handlers.
func LoadOwned(r *http.Request, ps httprouter.Params) (*models.Crop, int, string) {
	return ownedCrop(r, ps)
}

// ownedCrop loads a crop and checks the caller owns it.
func ownedCrop(r *http.Request, ps httprouter.Params) (*models.Crop, int, string) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		return nil, http.StatusBadRequest, "Invalid user"
	}

	cropID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		return nil, http.StatusBadRequest, "Invalid crop ID"
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	var crop models.Crop
	err = db.CropsCollection.FindOne(ctx, bson.M{"_id": cropID}).Decode(&crop)
	if err == mongo.ErrNoDocuments {
		return nil, http.StatusNotFound, "Crop not found"
	}
	if err != nil {
		return nil, http.StatusInternalServerError, "Failed to fetch crop"
	}
	if crop.OwnerID != userID {
		return nil, http.StatusForbidden, "Not your crop"
	}
	return &crop, 0, ""
}

func GetCrop(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := ownedCrop(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "crop": crop})
}

func EditCrop(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := ownedCrop(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.Variety != "" {
		update["variety"] = req.Variety
	}
	if req.SoilType != "" {
		update["soilType"] = req.SoilType
	}
	if req.IrrigationMethod != "" {
		if !irrigationMethods[req.IrrigationMethod] {
			utils.RespondWithError(w, http.StatusBadRequest, "irrigationMethod must be drip, sprinkler or flood")
			return
		}
		update["irrigationMethod"] = req.IrrigationMethod
	}
	if req.FarmSizeAcres != 0 {
		if req.FarmSizeAcres < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "farmSizeAcres must be positive")
			return
		}
		update["farmSizeAcres"] = req.FarmSizeAcres
	}
	if req.ExpectedYieldQtl > 0 {
		update["expectedYieldQtl"] = req.ExpectedYieldQtl
	}
	if req.Soil != nil {
		update["soil"] = req.Soil
	}

	ctx, cancel := db.Ctx()
	defer cancel()
	if _, err := db.CropsCollection.UpdateOne(ctx, bson.M{"_id": crop.ID}, bson.M{"$set": update}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Update failed")
		return
	}

	mq.Emit("crop-updated", mq.Event{EntityType: "crop", Method: "PUT", EntityId: crop.ID.Hex(), UserId: crop.OwnerID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

func DeleteCrop(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := ownedCrop(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}

	ctx, cancel := db.Ctx()
	defer cancel()
	res, err := db.CropsCollection.DeleteOne(ctx, bson.M{"_id": crop.ID})
	if err != nil || res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete crop")
		return
	}

	mq.Emit("crop-deleted", mq.Event{EntityType: "crop", Method: "DELETE", EntityId: crop.ID.Hex(), UserId: crop.OwnerID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// GetStage returns the current phenology computation for a crop.
func GetStage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := ownedCrop(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}
	stage := agronomy.CalculateStage(crop.CropType, crop.PlantingDate, time.Now())
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "stage": stage})
}

// GetMilestones returns the dated stage timeline for a crop.
func GetMilestones(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := ownedCrop(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}
	milestones := agronomy.GenerateMilestones(crop.CropType, crop.PlantingDate, time.Now())
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "milestones": milestones})
}

type logEntryRequest struct {
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
	Amount   float64 `json:"amount"`
}

// AddActivity appends one activity entry to the crop's log.
func AddActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := ownedCrop(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}

	var req logEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Type == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Activity type is required")
		return
	}

	entry := models.ActivityEntry{
		ID:       uuid.NewString(),
		Type:     req.Type,
		Notes:    req.Notes,
		LoggedAt: time.Now(),
	}

	ctx, cancel := db.Ctx()
	defer cancel()
	_, err := db.CropsCollection.UpdateOne(ctx, bson.M{"_id": crop.ID}, bson.M{
		"$push": bson.M{"activities": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to log activity")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "entry": entry})
}

// AddCost appends one cost entry to the crop's log.
func AddCost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := ownedCrop(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}

	var req logEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Category == "" || req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cost category and a positive amount are required")
		return
	}

	entry := models.CostEntry{
		ID:       uuid.NewString(),
		Category: req.Category,
		Amount:   req.Amount,
		LoggedAt: time.Now(),
	}

	ctx, cancel := db.Ctx()
	defer cancel()
	_, err := db.CropsCollection.UpdateOne(ctx, bson.M{"_id": crop.ID}, bson.M{
		"$push": bson.M{"costs": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to log cost")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "entry": entry})
}
