package controllers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/edulizanay/voice-food-logger/models"
	"github.com/edulizanay/voice-food-logger/services"
	"github.com/edulizanay/voice-food-logger/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MaxAudioBytes caps uploaded recordings at 16 MB.
const MaxAudioBytes = 16 << 20

var allowedAudioExt = map[string]bool{
	".wav": true, ".mp3": true, ".mp4": true, ".m4a": true, ".ogg": true, ".webm": true,
}

type LogController struct {
	transcriber services.Transcriber
	parser      services.FoodParser
	resolver    *services.Resolver
	store       *services.DayStore
	db          *gorm.DB
	hub         *services.RealtimeHub
	log         *utils.Logger
}

func NewLogController(
	transcriber services.Transcriber,
	parser services.FoodParser,
	resolver *services.Resolver,
	store *services.DayStore,
	db *gorm.DB,
	hub *services.RealtimeHub,
	log *utils.Logger,
) *LogController {
	return &LogController{
		transcriber: transcriber,
		parser:      parser,
		resolver:    resolver,
		store:       store,
		db:          db,
		hub:         hub,
		log:         log.With("controller", "Log"),
	}
}

// UploadAudio runs the full pipeline: transcribe the recording, parse the
// transcript into food/quantity pairs, resolve them and append to the day
// record.
func (lc *LogController) UploadAudio(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
		return
	}
	if fileHeader.Size > MaxAudioBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large. Maximum size is 16MB."})
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedAudioExt[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format. Allowed: wav, mp3, mp4, m4a, ogg, webm"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audio file"})
		return
	}
	defer f.Close()
	audio, err := io.ReadAll(io.LimitReader(f, MaxAudioBytes+1))
	if err != nil || len(audio) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read audio file"})
		return
	}

	transcript, err := lc.transcriber.Transcribe(c.Request.Context(), audio, fileHeader.Filename)
	if err != nil {
		lc.log.Error("transcription failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transcribe audio"})
		return
	}

	lc.runPipeline(c, transcript)
}

// LogText skips transcription and feeds a transcript straight into the
// parsing pipeline. Useful for typed input and for pipeline testing.
func (lc *LogController) LogText(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No food description provided"})
		return
	}
	lc.runPipeline(c, body.Text)
}

func (lc *LogController) runPipeline(c *gin.Context, transcript string) {
	pairs, err := lc.parser.Parse(c.Request.Context(), transcript)
	if err != nil {
		lc.log.Error("food parsing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse food description"})
		return
	}

	items := lc.resolver.Resolve(pairs)
	now := time.Now().UTC()
	date := now.Format(models.DateKey)

	// an empty parse is a valid outcome: nothing to append, totals unchanged
	if len(items) == 0 {
		day, err := lc.store.Day(date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"transcription": transcript,
			"items":         []models.FoodItem{},
			"timestamp":     now,
			"daily_macros":  day.DailyMacros,
		})
		return
	}

	entry := models.Entry{Timestamp: now, Items: items}
	day, err := lc.store.Append(date, entry)
	if err != nil {
		lc.log.Error("append failed", "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store food data"})
		return
	}

	if err := services.UpsertProgress(lc.db, day); err != nil {
		// history row is derived data; the authoritative log already landed
		lc.log.Warn("progress upsert failed", "date", date, "error", err)
	}
	lc.hub.Broadcast(gin.H{
		"kind":         "day_updated",
		"date":         date,
		"entry":        entry,
		"daily_macros": day.DailyMacros,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"transcription": transcript,
		"items":         items,
		"timestamp":     now,
		"daily_macros":  day.DailyMacros,
	})
}

// TodayEntries returns the persisted record for the current calendar day.
func (lc *LogController) TodayEntries(c *gin.Context) {
	lc.dayResponse(c, time.Now().UTC().Format(models.DateKey))
}

// EntriesByDate returns the persisted record for any day.
func (lc *LogController) EntriesByDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse(models.DateKey, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	lc.dayResponse(c, date)
}

func (lc *LogController) dayResponse(c *gin.Context, date string) {
	day, err := lc.store.Day(date)
	if err != nil {
		lc.log.Error("read day failed", "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, day)
}

// Progress lists the daily history rows, newest first.
func (lc *LogController) Progress(c *gin.Context) {
	rows, err := services.ListProgress(lc.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Insights reports advisory findings over one day's totals.
func (lc *LogController) Insights(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse(models.DateKey, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	day, err := lc.store.Day(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"daily_macros": day.DailyMacros,
		"warnings":     utils.AssessDailyMacros(day.DailyMacros),
	})
}

// Health is a liveness probe.
func (lc *LogController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
