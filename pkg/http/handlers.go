package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"carkeep.kr/consumable-service/pkg/lifecycle"
	"carkeep.kr/consumable-service/pkg/models"
)

func parseCategory(value string) (models.Category, bool) {
	switch models.Category(value) {
	case models.CategoryOil, models.CategoryFilter, models.CategoryOther:
		return models.Category(value), true
	}
	return "", false
}

func parseMode(value string) (models.CycleMode, bool) {
	switch models.CycleMode(value) {
	case models.ModeDistance, models.ModeTime:
		return models.CycleMode(value), true
	}
	return "", false
}

func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", value)
	return t, err == nil
}

func parseID(value string) (uint, bool) {
	id, err := strconv.ParseUint(value, 10, 32)
	return uint(id), err == nil
}

type RecordRequest struct {
	Category string   `json:"category"`
	Kind     string   `json:"kind"`
	Date     *string  `json:"date"`
	OdoKm    *int     `json:"odo_km"`
	Cost     *float64 `json:"cost"`
	Memo     *string  `json:"memo"`
}

var recordRequestSchema = z.Struct(z.Shape{
	"Category": z.String().Required(),
	"Kind":     z.String().Required(),
	"Date":     z.Ptr(z.String()),
	"OdoKm":    z.Ptr(z.Int()),
	"Cost":     z.Ptr(z.Float64()),
	"Memo":     z.Ptr(z.String()),
})

func (rs *RestfulServer) PostRecord(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req RecordRequest
	if err := recordRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	category, ok := parseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + req.Category})
		return
	}

	input := models.ReplacementRecord{
		Category: category,
		Kind:     req.Kind,
		OdoKm:    req.OdoKm,
		Memo:     req.Memo,
	}
	if req.Date != nil {
		date, ok := parseDate(*req.Date)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		input.Date = &date
	}
	if req.Cost != nil {
		input.Cost = decimal.NewNullDecimal(decimal.NewFromFloat(*req.Cost))
	}

	record, err := rs.Engine.Record.AddRecord(vehicleID, &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (rs *RestfulServer) SearchRecords(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	category, ok := parseCategory(c.Query("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + c.Query("category")})
		return
	}

	records, err := rs.Engine.Record.SearchRecords(
		vehicleID, category, c.Query("kind"), c.Query("sort"), c.Query("order"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (rs *RestfulServer) GetLatestRecord(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	kind := c.Query("kind")
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind is required"})
		return
	}

	record, err := rs.Engine.Record.LatestRecord(vehicleID, kind)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no record for kind: " + kind})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

type RecordPatchRequest struct {
	Date  *string  `json:"date"`
	OdoKm *int     `json:"odo_km"`
	Cost  *float64 `json:"cost"`
	Memo  *string  `json:"memo"`
}

var recordPatchRequestSchema = z.Struct(z.Shape{
	"Date":  z.Ptr(z.String()),
	"OdoKm": z.Ptr(z.Int()),
	"Cost":  z.Ptr(z.Float64()),
	"Memo":  z.Ptr(z.String()),
})

func (rs *RestfulServer) PatchRecord(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	recordID, ok := parseID(c.Param("record_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	var req RecordPatchRequest
	if err := recordPatchRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	patch := lifecycle.RecordPatch{
		OdoKm: req.OdoKm,
		Memo:  req.Memo,
	}
	if req.Date != nil {
		date, ok := parseDate(*req.Date)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		patch.Date = &date
	}
	if req.Cost != nil {
		cost := decimal.NewFromFloat(*req.Cost)
		patch.Cost = &cost
	}

	record, err := rs.Engine.Record.UpdateRecord(vehicleID, recordID, patch)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

type BulkDeleteRequest struct {
	Ids []int `json:"ids"`
}

var bulkDeleteRequestSchema = z.Struct(z.Shape{
	"Ids": z.Slice(z.Int()).Min(1),
})

func (rs *RestfulServer) BulkDeleteRecords(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req BulkDeleteRequest
	if err := bulkDeleteRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	ids := make([]uint, 0, len(req.Ids))
	for _, id := range req.Ids {
		if id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ids must be positive"})
			return
		}
		ids = append(ids, uint(id))
	}

	deleted, err := rs.Engine.Record.DeleteRecords(vehicleID, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no matching records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
}

func (rs *RestfulServer) GetItems(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	category, ok := parseCategory(c.Query("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + c.Query("category")})
		return
	}

	items, err := rs.Engine.Item.ListItems(vehicleID, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

type ItemRequest struct {
	Category    string  `json:"category"`
	Kind        string  `json:"kind"`
	Mode        *string `json:"mode"`
	CycleKm     *int    `json:"cycle_km"`
	CycleMonths *int    `json:"cycle_months"`
}

var itemRequestSchema = z.Struct(z.Shape{
	"Category":    z.String().Required(),
	"Kind":        z.String().Required(),
	"Mode":        z.Ptr(z.String()),
	"CycleKm":     z.Ptr(z.Int()),
	"CycleMonths": z.Ptr(z.Int()),
})

func (rs *RestfulServer) PostItem(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ItemRequest
	if err := itemRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	category, ok := parseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + req.Category})
		return
	}

	input := models.PartConfig{
		Category:    category,
		Kind:        req.Kind,
		CycleKm:     req.CycleKm,
		CycleMonths: req.CycleMonths,
	}
	if req.Mode != nil {
		mode, ok := parseMode(*req.Mode)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be distance or time"})
			return
		}
		input.Mode = mode
	}

	item, err := rs.Engine.Item.CreateItem(vehicleID, &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

type ItemPatchRequest struct {
	Kind        *string `json:"kind"`
	Mode        *string `json:"mode"`
	CycleKm     *int    `json:"cycle_km"`
	CycleMonths *int    `json:"cycle_months"`
}

var itemPatchRequestSchema = z.Struct(z.Shape{
	"Kind":        z.Ptr(z.String()),
	"Mode":        z.Ptr(z.String()),
	"CycleKm":     z.Ptr(z.Int()),
	"CycleMonths": z.Ptr(z.Int()),
})

func (rs *RestfulServer) PutItem(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	itemID, ok := parseID(c.Param("item_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req ItemPatchRequest
	if err := itemPatchRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	patch := lifecycle.ItemPatch{
		Kind:        req.Kind,
		CycleKm:     req.CycleKm,
		CycleMonths: req.CycleMonths,
	}
	if req.Mode != nil {
		mode, ok := parseMode(*req.Mode)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be distance or time"})
			return
		}
		patch.Mode = &mode
	}

	item, err := rs.Engine.Item.UpdateItem(vehicleID, itemID, patch)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (rs *RestfulServer) DeleteItem(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	itemID, ok := parseID(c.Param("item_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	err := rs.Engine.Item.DeleteItem(vehicleID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (rs *RestfulServer) GetStatus(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	category, ok := parseCategory(c.Query("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + c.Query("category")})
		return
	}

	statuses, err := rs.Engine.Status.CategoryStatus(vehicleID, category, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}

type DraftRequest struct {
	Category string `json:"category"`
	Kind     string `json:"kind"`
	Value    string `json:"value"`
}

var draftRequestSchema = z.Struct(z.Shape{
	"Category": z.String().Required(),
	"Kind":     z.String().Required(),
	"Value":    z.String().Required(),
})

func (rs *RestfulServer) PostDraft(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	var req DraftRequest
	if err := draftRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	category, ok := parseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + req.Category})
		return
	}

	rs.Engine.Drafts.Set(vehicleID, category, req.Kind, req.Value)
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetDraft(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	category, ok := parseCategory(c.Query("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + c.Query("category")})
		return
	}

	value, pending := rs.Engine.Drafts.Get(vehicleID, category, c.Query("kind"))
	c.JSON(http.StatusOK, gin.H{"value": value, "pending": pending})
}

func (rs *RestfulServer) GetDueSummary(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	items, err := rs.Engine.Status.DueSummary(vehicleID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle_id": vehicleID, "items": items})
}

func (rs *RestfulServer) GetCostSummary(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	summary, err := rs.Engine.Record.CostSummary(vehicleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

type OdometerRequest struct {
	Date  string `json:"date"`
	OdoKm int    `json:"odo_km"`
}

var odometerRequestSchema = z.Struct(z.Shape{
	"Date":  z.String().Required(),
	"OdoKm": z.Int().Required(),
})

func (rs *RestfulServer) PostOdometer(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req OdometerRequest
	if err := odometerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	date, ok := parseDate(req.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if req.OdoKm < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "odo_km must be non-negative"})
		return
	}

	entry, err := rs.Odometer.Update(vehicleID, date, req.OdoKm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (rs *RestfulServer) GetOdometerCurrent(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	current, err := rs.Odometer.Current(vehicleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"odo_km": current})
}

func (rs *RestfulServer) GetOdometerMonthly(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	distance, err := rs.Odometer.MonthlyDistance(vehicleID, year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"distance": distance})
}

func (rs *RestfulServer) GetTireSummary(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	if !rs.CheckVehicleLimiter(vehicleID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	summaries, err := rs.Tires.Summary(vehicleID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle_id": vehicleID, "tires": summaries})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(vehicleID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
